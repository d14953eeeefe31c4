package repository

import (
	"context"

	"masthead/internal/domain/entity"
)

// ArticleRepository is the append-only registry of every article in the
// system. Articles are never updated or removed; all relationship
// queries are recomputed from List on each call.
type ArticleRepository interface {
	// Append registers an article at the end of the registry.
	Append(ctx context.Context, article *entity.Article) error
	// List retrieves all articles in registry insertion order.
	// Implementations must return a snapshot that later appends do not mutate.
	List(ctx context.Context) ([]*entity.Article, error)
	// Count returns the total number of registered articles.
	Count(ctx context.Context) (int64, error)
}
