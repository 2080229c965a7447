package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/hiring-portal/internal/models"
	"alfredoptarigan/hiring-portal/internal/services"
)

// statusFor maps a pipeline error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrUnsafeQuery):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrUnsupportedFormat), errors.Is(err, services.ErrExtraction):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrGenerationUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, services.ErrGeneration), errors.Is(err, services.ErrExecution):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		OK:    false,
		Error: message,
	})
}

func respondPipelineError(c *fiber.Ctx, err error) error {
	return respondError(c, statusFor(err), err.Error())
}

// validationMessage reports the first failed validation rule.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
