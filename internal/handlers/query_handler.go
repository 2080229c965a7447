package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/hiring-portal/internal/models"
	"alfredoptarigan/hiring-portal/internal/services"
)

type QueryHandler struct {
	translator services.QueryTranslator
	validator  *validator.Validate
}

func NewQueryHandler(translator services.QueryTranslator) *QueryHandler {
	return &QueryHandler{
		translator: translator,
		validator:  validator.New(),
	}
}

// HandleQuery handles POST /nlpsql
func (h *QueryHandler) HandleQuery(c *fiber.Ctx) error {
	var req models.QueryRequest

	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	if err := h.validator.Struct(req); err != nil {
		return respondError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	result, err := h.translator.TranslateAndRun(c.UserContext(), req.Query)
	if err != nil {
		return respondPipelineError(c, err)
	}

	return c.JSON(models.QueryResponse{
		OK:      true,
		Columns: result.Columns,
		Rows:    result.Rows,
	})
}
