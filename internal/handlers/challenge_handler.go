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
)

// ChallengeHandler handles shared emotion-tracking challenges.
type ChallengeHandler struct {
	service *services.ChallengeService
}

func NewChallengeHandler(service *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{service: service}
}

// Create handles POST /api/challenges
func (h *ChallengeHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	start, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		return badRequest(c, "start_date must be formatted as YYYY-MM-DD")
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
	if err != nil {
		return badRequest(c, "end_date must be formatted as YYYY-MM-DD")
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	challenge, err := h.service.Create(userID, req.Title, req.Description, start, end, isPublic, req.MaxParticipants)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateRange) {
			return badRequest(c, err.Error())
		}
		slog.Error("challenge creation failed", "error", err, "user_id", userID.String())
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   challenge,
	})
}

// List handles GET /api/challenges
func (h *ChallengeHandler) List(c *fiber.Ctx) error {
	if _, err := middleware.GetUserID(c); err != nil {
		return unauthorized(c)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	challenges, total, err := h.service.ListPublic(page, limit)
	if err != nil {
		slog.Error("challenge query failed", "error", err)
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   challenges,
		"pagination": dto.PagePagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: dto.TotalPages(total, limit),
		},
	})
}

// Join handles POST /api/challenges/:id/join
func (h *ChallengeHandler) Join(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	challengeID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return badRequest(c, "Invalid challenge ID")
	}

	if err := h.service.Join(userID, uint(challengeID)); err != nil {
		switch {
		case errors.Is(err, services.ErrChallengeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Status: "error", Message: err.Error(),
			})
		case errors.Is(err, services.ErrAlreadyJoined), errors.Is(err, services.ErrChallengeFull):
			return badRequest(c, err.Error())
		}
		slog.Error("challenge join failed", "error", err, "user_id", userID.String())
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Joined challenge",
	})
}
