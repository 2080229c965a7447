package handlers

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/hiring-portal/internal/models"
	"alfredoptarigan/hiring-portal/internal/services"
)

type ApplyHandler struct {
	applyService services.ApplyService
	validator    *validator.Validate
	maxFileSize  int64
}

func NewApplyHandler(applyService services.ApplyService, maxFileSize int64) *ApplyHandler {
	return &ApplyHandler{
		applyService: applyService,
		validator:    validator.New(),
		maxFileSize:  maxFileSize,
	}
}

// HandleApply handles POST /apply
func (h *ApplyHandler) HandleApply(c *fiber.Ctx) error {
	var req models.ApplyRequest

	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "failed to parse multipart form")
	}

	if err := h.validator.Struct(req); err != nil {
		return respondError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	file, err := c.FormFile("file")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "file is required")
	}

	if file.Size > h.maxFileSize {
		return respondError(c, fiber.StatusBadRequest, fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	src, err := file.Open()
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "failed to read uploaded file")
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid job_id format")
	}

	in := services.ApplyInput{
		JobID:    jobID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		College:  req.College,
		Filename: file.Filename,
		Data:     data,
	}
	if req.StudentID != "" {
		studentID, err := uuid.Parse(req.StudentID)
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "Invalid student_id format")
		}
		in.StudentID = &studentID
	}

	outcome, err := h.applyService.Apply(c.UserContext(), in)
	if err != nil {
		return respondPipelineError(c, err)
	}

	evaluation := models.EvaluateResponse{OK: outcome.EvaluationErr == nil}
	if outcome.EvaluationErr != nil {
		evaluation.Error = outcome.EvaluationErr.Error()
	} else {
		score := outcome.Evaluation.RelevanceScore
		evaluation.RelevanceScore = &score
		evaluation.Verdict = outcome.Evaluation.Verdict
	}

	return c.Status(fiber.StatusCreated).JSON(models.ApplyResponse{
		OK:            true,
		ApplicationID: outcome.ApplicationID,
		Evaluation:    evaluation,
	})
}
