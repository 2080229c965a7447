package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"alfredoptarigan/hiring-portal/internal/models"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	UpdateEvaluation(ctx context.Context, id uuid.UUID, result models.EvaluationResult, appliedFor string) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *models.Application) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

// UpdateEvaluation writes the evaluation fields onto the application. Concurrent
// evaluations of the same application are last-write-wins.
func (r *applicationRepository) UpdateEvaluation(ctx context.Context, id uuid.UUID, result models.EvaluationResult, appliedFor string) error {
	updates := map[string]interface{}{
		"relevance_score": result.RelevanceScore,
		"verdict":         result.Verdict,
		"strong_points":   pq.StringArray(result.StrongPoints),
		"weak_points":     pq.StringArray(result.WeakPoints),
		"skills":          pq.StringArray(result.Skills),
		"key_projects":    pq.StringArray(result.KeyProjects),
		"certifications":  pq.StringArray(result.Certifications),
		"experience":      result.ExperienceSummary,
		"summary":         result.CandidateSummary,
		"applied_for":     appliedFor,
	}

	res := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Updates(updates)

	if res.Error != nil {
		return fmt.Errorf("failed to update application evaluation: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("application %s: %w", id, ErrRecordNotFound)
	}

	return nil
}
