package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"alfredoptarigan/hiring-portal/internal/models"
	"alfredoptarigan/hiring-portal/internal/repositories"
)

// EvaluationStage names the step an evaluation was in; errors are prefixed with it.
type EvaluationStage string

const (
	StageFetching     EvaluationStage = "fetching"
	StageContextBuilt EvaluationStage = "context_built"
	StageGenerating   EvaluationStage = "generating"
	StageParsed       EvaluationStage = "parsed"
	StagePersisted    EvaluationStage = "persisted"
)

type EvaluatorService interface {
	// EvaluateApplication scores the application's resume against its job and
	// persists the result. When resumeText is empty the stored resume is
	// downloaded and extracted.
	EvaluateApplication(ctx context.Context, applicationID uuid.UUID, resumeText string) (*models.EvaluationAck, error)
}

type evaluatorService struct {
	appRepo       repositories.ApplicationRepository
	jobRepo       repositories.JobRepository
	studentRepo   repositories.StudentRepository
	blobStore     BlobStore
	extractor     TextExtractor
	generator     GenerationClient
	promptBuilder *PromptBuilder
	temperature   float32
}

// NewEvaluatorService accepts a nil generator; evaluations then fail with
// ErrGenerationUnavailable.
func NewEvaluatorService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	studentRepo repositories.StudentRepository,
	blobStore BlobStore,
	extractor TextExtractor,
	generator GenerationClient,
) EvaluatorService {
	return &evaluatorService{
		appRepo:       appRepo,
		jobRepo:       jobRepo,
		studentRepo:   studentRepo,
		blobStore:     blobStore,
		extractor:     extractor,
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		temperature:   DefaultTemperature,
	}
}

func (e *evaluatorService) EvaluateApplication(ctx context.Context, applicationID uuid.UUID, resumeText string) (*models.EvaluationAck, error) {
	log.Printf("🔄 Starting evaluation for application %s", applicationID)

	// Fetching
	application, err := e.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, stageError(StageFetching, "application", notFound(err))
	}

	job := e.fetchJob(ctx, application)
	e.fetchStudent(ctx, application)

	if strings.TrimSpace(resumeText) == "" {
		resumeText, err = e.loadResume(ctx, application)
		if err != nil {
			return nil, stageError(StageFetching, "resume", err)
		}
	}

	// ContextBuilt
	prompt := e.promptBuilder.BuildResumeEvaluationPrompt(job.Title, job.Description, job.Requirements, resumeText)
	log.Printf("📝 [%s] Evaluation prompt length: %d characters", StageContextBuilt, len(prompt))

	// Generating
	if e.generator == nil {
		return nil, stageError(StageGenerating, "client", ErrGenerationUnavailable)
	}

	log.Println("🤖 Evaluating resume with LLM...")
	reply, err := e.generator.Generate(ctx, EvaluationSystemInstruction, prompt, e.temperature)
	if err != nil {
		return nil, stageError(StageGenerating, "reply", err)
	}

	// Parsed
	result, fellBack := ParseEvaluation(reply)
	if fellBack {
		log.Printf("⚠️  [%s] Using fallback evaluation for application %s", StageParsed, applicationID)
	}

	// Persisted
	log.Println("💾 Saving evaluation results...")
	if err := e.appRepo.UpdateEvaluation(ctx, applicationID, result, job.Title); err != nil {
		return nil, stageError(StagePersisted, "evaluation", notFound(err))
	}

	log.Printf("✅ Evaluation completed for application %s: %d (%s)", applicationID, result.RelevanceScore, result.Verdict)
	return &models.EvaluationAck{
		RelevanceScore: result.RelevanceScore,
		Verdict:        result.Verdict,
	}, nil
}

// fetchJob returns an empty job when the application has none or it cannot be loaded.
func (e *evaluatorService) fetchJob(ctx context.Context, application *models.Application) models.Job {
	if application.JobID == nil {
		return models.Job{}
	}

	job, err := e.jobRepo.FindByID(ctx, *application.JobID)
	if err != nil {
		log.Printf("⚠️  Job %s unavailable, evaluating without job context: %v", *application.JobID, err)
		return models.Job{}
	}

	return *job
}

func (e *evaluatorService) fetchStudent(ctx context.Context, application *models.Application) {
	if application.StudentID == nil {
		return
	}

	student, err := e.studentRepo.FindByID(ctx, *application.StudentID)
	if err != nil {
		log.Printf("⚠️  Student %s unavailable: %v", *application.StudentID, err)
		return
	}

	log.Printf("👤 Candidate: %s", student.FullName)
}

func (e *evaluatorService) loadResume(ctx context.Context, application *models.Application) (string, error) {
	if application.ResumeURL == "" {
		return "", errors.New("application has no stored resume")
	}

	log.Println("📄 Downloading stored resume...")
	data, err := e.blobStore.Download(ctx, application.ResumeURL)
	if err != nil {
		return "", err
	}

	return e.extractor.ExtractText(data, application.ResumeURL)
}

func stageError(stage EvaluationStage, what string, err error) error {
	log.Printf("❌ Evaluation failed at %s stage (%s): %v", stage, what, err)
	return fmt.Errorf("%s %s: %w", stage, what, err)
}

func notFound(err error) error {
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
