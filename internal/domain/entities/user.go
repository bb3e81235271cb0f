package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// User represents a registered account. SubjectID is the stable identifier
// carried by verified tokens; for password signups it equals the user's UUID,
// for identity-provider sign-ins it is the provider's subject id.
type User struct {
	ID                  uuid.UUID `json:"id"`
	SubjectID           string    `json:"subjectId"`
	Email               string    `json:"email"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	PasswordHash        string    `json:"-"`
	FarmName            string    `json:"farmName"`
	FarmSize            string    `json:"farmSize"`
	PhotoURL            string    `json:"photoUrl,omitempty"`
	OnboardingCompleted bool      `json:"onboardingCompleted"`
	LastLoginAt         null.Time `json:"lastLoginAt,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// SignupInput represents input for password signup
type SignupInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FarmName  string `json:"farmName" binding:"required"`
	FarmSize  string `json:"farmSize" binding:"required"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUserInput represents the identity-provider sign-in upsert payload
type RegisterUserInput struct {
	SubjectID string `json:"subjectId" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	FarmName  string `json:"farmName"`
	FarmSize  string `json:"farmSize"`
	PhotoURL  string `json:"photoUrl"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	User        *User  `json:"user"`
}
