package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/soyeonjeong/maumlog/internal/config"
	"github.com/soyeonjeong/maumlog/internal/handlers"
	"github.com/soyeonjeong/maumlog/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	emotionHandler *handlers.EmotionHandler,
	comfortHandler *handlers.ComfortHandler,
	challengeHandler *handlers.ChallengeHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth is public but carries a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	jwt := middleware.JWTProtected(cfg)

	api.Post("/auth/logout", jwt, authHandler.Logout)

	// Emotion catalog is public; everything user-scoped requires a JWT.
	api.Get("/emotions", emotionHandler.ListCatalog)
	api.Get("/emotions/logs", jwt, emotionHandler.ListLogs)
	api.Post("/emotions/logs", jwt, emotionHandler.CreateLogs)
	api.Get("/emotions/stats", jwt, emotionHandler.Stats)
	api.Get("/emotions/trend", jwt, emotionHandler.Trend)
	api.Get("/emotions/daily-check", jwt, emotionHandler.DailyCheck)

	comfort := api.Group("/comfort-wall", jwt)
	comfort.Post("/", comfortHandler.CreatePost)
	comfort.Get("/", comfortHandler.ListPosts)
	comfort.Post("/:id/like", comfortHandler.ToggleLike)
	comfort.Post("/:id/messages", comfortHandler.AddMessage)
	comfort.Get("/:id/messages", comfortHandler.ListMessages)

	challenges := api.Group("/challenges", jwt)
	challenges.Post("/", challengeHandler.Create)
	challenges.Get("/", challengeHandler.List)
	challenges.Post("/:id/join", challengeHandler.Join)
}
