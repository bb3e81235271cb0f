package repositories

import (
	"context"

	"agrioptimize.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// ConversationStore keeps per-user assistant conversation history. Entries
// expire after the configured TTL; appending resets the clock.
type ConversationStore interface {
	History(ctx context.Context, userID uuid.UUID) ([]entities.ConversationTurn, error)
	Append(ctx context.Context, userID uuid.UUID, turns ...entities.ConversationTurn) error
	Clear(ctx context.Context, userID uuid.UUID) error
}
