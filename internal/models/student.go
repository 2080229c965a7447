package models

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	FullName  string     `gorm:"type:text" json:"full_name"`
	Email     string     `gorm:"type:text;uniqueIndex" json:"email"`
	Phone     string     `gorm:"type:text" json:"phone"`
	College   string     `gorm:"type:text" json:"college"`
	CreatedAt time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Student) TableName() string {
	return "students"
}
