package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/hiring-portal/internal/models"
	"alfredoptarigan/hiring-portal/internal/repositories"
)

type ApplicationHandler struct {
	appRepo     repositories.ApplicationRepository
	studentRepo repositories.StudentRepository
	jobRepo     repositories.JobRepository
}

func NewApplicationHandler(
	appRepo repositories.ApplicationRepository,
	studentRepo repositories.StudentRepository,
	jobRepo repositories.JobRepository,
) *ApplicationHandler {
	return &ApplicationHandler{
		appRepo:     appRepo,
		studentRepo: studentRepo,
		jobRepo:     jobRepo,
	}
}

// HandleGetApplication handles GET /applications/:id
func (h *ApplicationHandler) HandleGetApplication(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid application ID format")
	}

	ctx := c.UserContext()

	application, err := h.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return respondError(c, fiber.StatusNotFound, "Application not found")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to load application")
	}

	response := models.ApplicationResponse{
		OK:          true,
		Application: application,
	}

	// Missing relations are left out of the response
	if application.StudentID != nil {
		if student, err := h.studentRepo.FindByID(ctx, *application.StudentID); err == nil {
			response.Student = student
		} else {
			log.Printf("⚠️  Student %s for application %s: %v", *application.StudentID, applicationID, err)
		}
	}

	if application.JobID != nil {
		if job, err := h.jobRepo.FindByID(ctx, *application.JobID); err == nil {
			response.Job = job
		} else {
			log.Printf("⚠️  Job %s for application %s: %v", *application.JobID, applicationID, err)
		}
	}

	return c.JSON(response)
}
