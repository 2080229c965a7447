package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string     `gorm:"type:text" json:"title"`
	Company      string     `gorm:"type:text" json:"company"`
	Location     string     `gorm:"type:text" json:"location"`
	Type         string     `gorm:"type:text" json:"type"`
	Level        string     `gorm:"type:text" json:"level"`
	Salary       string     `gorm:"type:text" json:"salary"`
	Description  string     `gorm:"type:text" json:"description"`
	Requirements string     `gorm:"type:text" json:"requirements"`
	Benefits     string     `gorm:"type:text" json:"benefits"`
	Deadline     *time.Time `gorm:"type:timestamp" json:"deadline,omitempty"`
	Status       string     `gorm:"type:text;default:'open'" json:"status"`
	PostedDate   *time.Time `gorm:"type:timestamp" json:"posted_date,omitempty"`
	CreatedBy    string     `gorm:"type:text" json:"created_by"`
	CreatedAt    time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Job) TableName() string {
	return "jobs"
}
