package repository

import (
	"context"

	"masthead/internal/domain/entity"
)

// MagazineRepository is the append-only registry of every magazine in
// the system. Registration order matters: whole-registry queries break
// ties on it.
type MagazineRepository interface {
	// Append registers a magazine at the end of the registry.
	Append(ctx context.Context, magazine *entity.Magazine) error
	// List retrieves all magazines in registry insertion order.
	// Implementations must return a snapshot that later appends do not mutate.
	List(ctx context.Context) ([]*entity.Magazine, error)
}
