package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/soyeonjeong/maumlog/internal/dto"
	"github.com/soyeonjeong/maumlog/internal/middleware"
	"github.com/soyeonjeong/maumlog/internal/services"
)

// ComfortHandler handles comfort wall posts, likes and support messages.
type ComfortHandler struct {
	service *services.ComfortService
}

func NewComfortHandler(service *services.ComfortService) *ComfortHandler {
	return &ComfortHandler{service: service}
}

// CreatePost handles POST /api/comfort-wall
func (h *ComfortHandler) CreatePost(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateComfortPostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	post, err := h.service.CreatePost(userID, req.Title, req.Content, req.IsAnonymous)
	if err != nil {
		slog.Error("comfort post creation failed", "error", err, "user_id", userID.String())
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Post created successfully",
		"data":    post,
	})
}

// ListPosts handles GET /api/comfort-wall
func (h *ComfortHandler) ListPosts(c *fiber.Ctx) error {
	if _, err := middleware.GetUserID(c); err != nil {
		return unauthorized(c)
	}

	query := dto.ListComfortQuery{Page: 1, Limit: 10, Sort: dto.SortRecent}
	if v := c.Query("page"); v != "" {
		query.Page, _ = strconv.Atoi(v)
	}
	if v := c.Query("limit"); v != "" {
		query.Limit, _ = strconv.Atoi(v)
	}
	if v := c.Query("sort"); v != "" {
		query.Sort = v
	}
	if err := dto.Validate(&query); err != nil {
		return badRequest(c, err.Error())
	}

	items, total, err := h.service.ListPosts(query.Page, query.Limit, query.Sort)
	if err != nil {
		slog.Error("comfort post query failed", "error", err)
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   items,
		"pagination": dto.PagePagination{
			Total:      total,
			Page:       query.Page,
			Limit:      query.Limit,
			TotalPages: dto.TotalPages(total, query.Limit),
		},
	})
}

// ToggleLike handles POST /api/comfort-wall/:id/like
func (h *ComfortHandler) ToggleLike(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	postID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}

	liked, err := h.service.ToggleLike(userID, uint(postID))
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Status: "error", Message: err.Error(),
			})
		}
		slog.Error("comfort like toggle failed", "error", err, "user_id", userID.String())
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"liked": liked},
	})
}

// AddMessage handles POST /api/comfort-wall/:id/messages
func (h *ComfortHandler) AddMessage(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	postID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}

	var req dto.CreateComfortMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	message, err := h.service.AddMessage(userID, uint(postID), req.Content, req.IsAnonymous)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Status: "error", Message: err.Error(),
			})
		}
		slog.Error("comfort message creation failed", "error", err, "user_id", userID.String())
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   message,
	})
}

// ListMessages handles GET /api/comfort-wall/:id/messages
func (h *ComfortHandler) ListMessages(c *fiber.Ctx) error {
	if _, err := middleware.GetUserID(c); err != nil {
		return unauthorized(c)
	}

	postID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	messages, total, err := h.service.ListMessages(uint(postID), page, limit)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Status: "error", Message: err.Error(),
			})
		}
		slog.Error("comfort message query failed", "error", err)
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   messages,
		"pagination": dto.PagePagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: dto.TotalPages(total, limit),
		},
	})
}
