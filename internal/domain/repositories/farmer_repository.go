package repositories

import (
	"context"

	"agrioptimize.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// FarmerProfileRepository defines farmer profile data operations. Every
// lookup is scoped by the owning user id.
type FarmerProfileRepository interface {
	Create(ctx context.Context, profile *entities.FarmerProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.FarmerProfile, error)
	Update(ctx context.Context, profile *entities.FarmerProfile) error
}
