package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/hiring-portal/internal/models"
	"alfredoptarigan/hiring-portal/internal/services"
)

type EvaluationHandler struct {
	evaluator services.EvaluatorService
	validator *validator.Validate
}

func NewEvaluationHandler(evaluator services.EvaluatorService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluator: evaluator,
		validator: validator.New(),
	}
}

// HandleEvaluate handles POST /evaluate
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateRequest

	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	if err := h.validator.Struct(req); err != nil {
		return respondError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	applicationID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid application_id format")
	}

	ack, err := h.evaluator.EvaluateApplication(c.UserContext(), applicationID, "")
	if err != nil {
		return respondPipelineError(c, err)
	}

	score := ack.RelevanceScore
	return c.JSON(models.EvaluateResponse{
		OK:             true,
		RelevanceScore: &score,
		Verdict:        ack.Verdict,
	})
}
