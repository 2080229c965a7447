package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Application struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID      *uuid.UUID     `gorm:"type:uuid;index" json:"student_id,omitempty"`
	JobID          *uuid.UUID     `gorm:"type:uuid;index" json:"job_id,omitempty"`
	ResumeURL      string         `gorm:"type:text" json:"resume_url"`
	RelevanceScore *int           `json:"relevance_score,omitempty"`
	Verdict        *Verdict       `gorm:"type:text" json:"verdict,omitempty"`
	StrongPoints   pq.StringArray `gorm:"type:text[]" json:"strong_points"`
	WeakPoints     pq.StringArray `gorm:"type:text[]" json:"weak_points"`
	Skills         pq.StringArray `gorm:"type:text[]" json:"skills"`
	KeyProjects    pq.StringArray `gorm:"type:text[]" json:"key_projects"`
	Certifications pq.StringArray `gorm:"type:text[]" json:"certifications"`
	Experience     string         `gorm:"type:text" json:"experience"`
	Summary        string         `gorm:"type:text" json:"summary"`
	College        string         `gorm:"type:text" json:"college"`
	AppliedFor     string         `gorm:"type:text" json:"applied_for"`
	Status         string         `gorm:"type:text;default:'applied'" json:"status"`
	CreatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Application) TableName() string {
	return "applications"
}
