package models

import (
	"time"

	"github.com/google/uuid"
)

type FarmInfo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CropType    string    `gorm:"type:varchar(100)"`
	LandArea    string    `gorm:"type:varchar(50)"`
	Season      string    `gorm:"type:varchar(50)"`
	Location    string    `gorm:"type:varchar(255)"`
	FarmingType string    `gorm:"type:varchar(50)"`
	SoilType    string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
