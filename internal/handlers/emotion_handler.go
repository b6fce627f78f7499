package handlers

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/soyeonjeong/maumlog/internal/dto"
	"github.com/soyeonjeong/maumlog/internal/middleware"
	"github.com/soyeonjeong/maumlog/internal/services"
	"github.com/soyeonjeong/maumlog/internal/stats"
)

// EmotionHandler handles the emotion catalog, daily logs and statistics.
type EmotionHandler struct {
	service *services.EmotionService
}

func NewEmotionHandler(service *services.EmotionService) *EmotionHandler {
	return &EmotionHandler{service: service}
}

// ListCatalog handles GET /api/emotions
func (h *EmotionHandler) ListCatalog(c *fiber.Ctx) error {
	emotions, err := h.service.ListCatalog()
	if err != nil {
		slog.Error("emotion catalog query failed", "error", err)
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   emotions,
	})
}

// ListLogs handles GET /api/emotions/logs
func (h *EmotionHandler) ListLogs(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit, _ := strconv.Atoi(c.Query("limit", "30"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	items, total, err := h.service.ListLogs(userID, limit, offset)
	if err != nil {
		slog.Error("emotion log query failed", "error", err, "user_id", userID.String())
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   items,
		"pagination": dto.Pagination{
			Total:      total,
			Limit:      limit,
			Offset:     offset,
			TotalPages: dto.TotalPages(total, limit),
		},
	})
}

// CreateLogs handles POST /api/emotions/logs
func (h *EmotionHandler) CreateLogs(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateEmotionLogRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	created, err := h.service.CreateToday(userID, req.EmotionIDs, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoEmotions), errors.Is(err, services.ErrAlreadyLogged):
			return badRequest(c, err.Error())
		}
		slog.Error("emotion log creation failed", "error", err, "user_id", userID.String())
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Emotions recorded successfully",
		"data":    created,
	})
}

// Stats handles GET /api/emotions/stats
func (h *EmotionHandler) Stats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	start, end, err := dateRange(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	grouped, err := h.service.Stats(userID, start, end)
	if err != nil {
		slog.Error("emotion stats query failed", "error", err, "user_id", userID.String())
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   grouped.Stats(),
	})
}

// Trend handles GET /api/emotions/trend
func (h *EmotionHandler) Trend(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	start, end, err := dateRange(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	bucket, err := stats.ParseBucket(c.Query("group_by"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	grouped, err := h.service.Trend(userID, start, end, bucket)
	if err != nil {
		slog.Error("emotion trend query failed", "error", err, "user_id", userID.String())
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   grouped.Stats(),
	})
}

// DailyCheck handles GET /api/emotions/daily-check
func (h *EmotionHandler) DailyCheck(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	check, err := h.service.DailyCheck(userID)
	if err != nil {
		slog.Error("daily check query failed", "error", err, "user_id", userID.String())
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"hasDailyCheck": check != nil,
			"lastCheck":     check,
		},
	})
}

// dateRange parses the start_date/end_date query parameters. Both default to
// today, giving a single-day range.
func dateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	today := services.DayStart(time.Now())
	start, end := today, today

	if v := c.Query("start_date"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return start, end, errors.New("start_date must be formatted as YYYY-MM-DD")
		}
		start = t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return start, end, errors.New("end_date must be formatted as YYYY-MM-DD")
		}
		end = t
	}
	return start, end, nil
}
