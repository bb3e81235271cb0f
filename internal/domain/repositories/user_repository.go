package repositories

import (
	"context"

	"agrioptimize.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetBySubjectID(ctx context.Context, subjectID string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}
