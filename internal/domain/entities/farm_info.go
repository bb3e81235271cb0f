package entities

import (
	"time"

	"github.com/google/uuid"
)

// Season represents a cropping season
type Season string

const (
	SeasonRabi   Season = "Rabi"
	SeasonKharif Season = "Kharif"
	SeasonZaid   Season = "Zaid"
)

// ValidSeason reports whether s is one of the recognized cropping seasons
func ValidSeason(s Season) bool {
	switch s {
	case SeasonRabi, SeasonKharif, SeasonZaid:
		return true
	}
	return false
}

// FarmingType represents the farming practice
type FarmingType string

const (
	FarmingTraditional FarmingType = "Traditional"
	FarmingModern      FarmingType = "Modern"
	FarmingOrganic     FarmingType = "Organic"
	FarmingMixed       FarmingType = "Mixed"
)

// ValidFarmingType reports whether f is a recognized farming practice
func ValidFarmingType(f FarmingType) bool {
	switch f {
	case FarmingTraditional, FarmingModern, FarmingOrganic, FarmingMixed:
		return true
	}
	return false
}

// FarmInfo represents a user's farm details. Each user owns at most one.
type FarmInfo struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	CropType    string      `json:"crop_type"`
	LandArea    string      `json:"land_area"`
	Season      Season      `json:"season"`
	Location    string      `json:"location"`
	FarmingType FarmingType `json:"farming_type"`
	SoilType    string      `json:"soil_type"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CreateFarmInfoInput represents input for creating farm info
type CreateFarmInfoInput struct {
	CropType    string `json:"crop_type" binding:"required"`
	LandArea    string `json:"land_area" binding:"required"`
	Season      string `json:"season" binding:"required"`
	Location    string `json:"location" binding:"required"`
	FarmingType string `json:"farming_type" binding:"required"`
	SoilType    string `json:"soil_type"`
}

// UpdateFarmInfoInput represents a partial farm info update
type UpdateFarmInfoInput struct {
	CropType    *string `json:"crop_type"`
	LandArea    *string `json:"land_area"`
	Season      *string `json:"season"`
	Location    *string `json:"location"`
	FarmingType *string `json:"farming_type"`
	SoilType    *string `json:"soil_type"`
}
