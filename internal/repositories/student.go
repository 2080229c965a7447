package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/hiring-portal/internal/models"
)

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	if err := r.db.WithContext(ctx).Create(student).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func (r *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *studentRepository) findOne(ctx context.Context, cond string, arg interface{}) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student %v: %w", arg, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	return &student, nil
}
