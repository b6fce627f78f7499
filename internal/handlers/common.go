package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soyeonjeong/maumlog/internal/dto"
)

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Status:  "error",
		Message: "Authentication required",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Status:  "error",
		Message: message,
	})
}

// internalError hides the cause from the client; callers log it first.
func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Status:  "error",
		Message: "Internal server error",
	})
}
