package entities

import (
	"time"

	"github.com/google/uuid"
)

// FarmerProfile represents a user's contact profile. Each user owns at most
// one; the owner reference never changes after creation.
type FarmerProfile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateFarmerProfileInput represents input for creating a farmer profile.
// The email is always taken from the verified token, never from the body.
type CreateFarmerProfileInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// UpdateFarmerProfileInput represents a partial profile update. Only fields
// present in the request body are replaced.
type UpdateFarmerProfileInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}
