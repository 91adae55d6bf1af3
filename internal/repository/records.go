package repository

import (
	"context"

	"github.com/fortuna-games/fortuna/internal/domain"
)

// Records defines the interface for prize record persistence. Each game type
// is backed by its own external database; implementations resolve the routing
// at construction time so an unconfigured game never surfaces per request.
//
// Implementations are pure translation + transport: no rate limiting, no win
// logic. Calls are never retried internally.
type Records interface {
	// Create persists a new record in the game's database.
	Create(ctx context.Context, rec domain.PrizeRecord, game domain.Game) error

	// List returns all records of the game's database, following pagination.
	List(ctx context.Context, game domain.Game) ([]domain.PrizeRecord, error)

	// Update overwrites the mutable fields of the record with external id.
	Update(ctx context.Context, id string, rec domain.PrizeRecord, game domain.Game) error

	// Delete soft-deletes (archives) the record with external id.
	Delete(ctx context.Context, id string, game domain.Game) error
}
