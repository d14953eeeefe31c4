// Package memory provides in-memory implementations of the repository interfaces.
// The registry is the single source of truth for the relationship graph: articles
// and magazines are appended once and never removed, and every query layer above
// recomputes its results from the snapshots returned here.
package memory

import (
	"sync"

	"masthead/internal/domain/entity"
)

// Registry holds the process-wide article and magazine registries.
// A single RWMutex guards both sequences so that a reader always
// observes a consistent snapshot even if another goroutine appends.
// It plays the role a database handle plays for SQL-backed adapters:
// repositories share one Registry rather than owning state themselves.
type Registry struct {
	mu        sync.RWMutex
	articles  []*entity.Article
	magazines []*entity.Magazine
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}
