package repositories

import (
	"context"

	"agrioptimize.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// FarmInfoRepository defines farm info data operations, scoped by owner
type FarmInfoRepository interface {
	Create(ctx context.Context, info *entities.FarmInfo) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.FarmInfo, error)
	Update(ctx context.Context, info *entities.FarmInfo) error
}
