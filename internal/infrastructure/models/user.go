package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SubjectID           string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	Email               string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName           string    `gorm:"type:varchar(100);not null"`
	LastName            string    `gorm:"type:varchar(100);not null"`
	PasswordHash        string    `gorm:"type:varchar(255)"`
	FarmName            string    `gorm:"type:varchar(255)"`
	FarmSize            string    `gorm:"type:varchar(50)"`
	PhotoURL            string    `gorm:"type:varchar(512)"`
	OnboardingCompleted bool      `gorm:"default:false"`
	LastLoginAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
