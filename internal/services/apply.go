package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"alfredoptarigan/hiring-portal/internal/models"
	"alfredoptarigan/hiring-portal/internal/repositories"
)

type ApplyInput struct {
	JobID     uuid.UUID
	StudentID *uuid.UUID
	Name      string
	Email     string
	Phone     string
	College   string
	Filename  string
	Data      []byte
}

// ApplyOutcome reports the created application and how its evaluation went.
// EvaluationErr is set instead of failing the whole application.
type ApplyOutcome struct {
	ApplicationID uuid.UUID
	Evaluation    *models.EvaluationAck
	EvaluationErr error
}

type ApplyService interface {
	Apply(ctx context.Context, in ApplyInput) (*ApplyOutcome, error)
}

type applyService struct {
	studentRepo repositories.StudentRepository
	appRepo     repositories.ApplicationRepository
	blobStore   BlobStore
	extractor   TextExtractor
	evaluator   EvaluatorService
}

func NewApplyService(
	studentRepo repositories.StudentRepository,
	appRepo repositories.ApplicationRepository,
	blobStore BlobStore,
	extractor TextExtractor,
	evaluator EvaluatorService,
) ApplyService {
	return &applyService{
		studentRepo: studentRepo,
		appRepo:     appRepo,
		blobStore:   blobStore,
		extractor:   extractor,
		evaluator:   evaluator,
	}
}

// Apply stores the resume, records the application and evaluates it with the
// text already extracted from the upload.
func (s *applyService) Apply(ctx context.Context, in ApplyInput) (*ApplyOutcome, error) {
	log.Printf("📄 Extracting text from %s...", filepath.Base(in.Filename))
	resumeText, err := s.extractor.ExtractText(in.Data, in.Filename)
	if err != nil {
		return nil, err
	}

	student, err := s.resolveStudent(ctx, in)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(in.Filename))
	resumePath := fmt.Sprintf("resumes/%s_%s_%s%s", student.ID, in.JobID, strings.ReplaceAll(uuid.New().String(), "-", ""), ext)
	if err := s.blobStore.Save(resumePath, in.Data); err != nil {
		return nil, fmt.Errorf("failed to store resume: %w", err)
	}

	jobID := in.JobID
	application := &models.Application{
		ID:        uuid.New(),
		StudentID: &student.ID,
		JobID:     &jobID,
		ResumeURL: resumePath,
		College:   in.College,
	}

	if err := s.appRepo.Create(ctx, application); err != nil {
		// Cleanup stored resume if the insert fails
		if delErr := s.blobStore.Delete(resumePath); delErr != nil {
			log.Printf("⚠️  Failed to remove orphaned resume %s: %v", resumePath, delErr)
		}
		return nil, err
	}
	log.Printf("✅ Application %s created for student %s", application.ID, student.ID)

	outcome := &ApplyOutcome{ApplicationID: application.ID}
	outcome.Evaluation, outcome.EvaluationErr = s.evaluator.EvaluateApplication(ctx, application.ID, resumeText)
	if outcome.EvaluationErr != nil {
		log.Printf("⚠️  Application %s saved but evaluation failed: %v", application.ID, outcome.EvaluationErr)
	}

	return outcome, nil
}

// resolveStudent uses the given student ID when it exists, otherwise the
// student registered under the email, otherwise a new student.
func (s *applyService) resolveStudent(ctx context.Context, in ApplyInput) (*models.Student, error) {
	if in.StudentID != nil {
		student, err := s.studentRepo.FindByID(ctx, *in.StudentID)
		if err == nil {
			return student, nil
		}
		if !errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, err
		}
		log.Printf("⚠️  Student %s not found, matching by email", *in.StudentID)
	}

	student, err := s.studentRepo.FindByEmail(ctx, in.Email)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, err
	}

	student = &models.Student{
		ID:       uuid.New(),
		FullName: in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		College:  in.College,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	log.Printf("👤 Created student %s", student.ID)

	return student, nil
}
