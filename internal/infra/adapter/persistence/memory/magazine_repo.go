package memory

import (
	"context"
	"time"

	"masthead/internal/domain/entity"
	"masthead/internal/observability/metrics"
	"masthead/internal/repository"
)

// MagazineRepo implements the MagazineRepository interface over a shared Registry.
type MagazineRepo struct{ reg *Registry }

// NewMagazineRepo creates a new registry-backed magazine repository.
func NewMagazineRepo(reg *Registry) repository.MagazineRepository {
	return &MagazineRepo{reg: reg}
}

// Append registers a magazine at the end of the magazine registry.
func (repo *MagazineRepo) Append(ctx context.Context, magazine *entity.Magazine) error {
	start := time.Now()
	defer func() { metrics.RecordRegistryOp("append_magazine", time.Since(start)) }()

	if magazine == nil {
		return &entity.ValidationError{Field: "magazine", Message: "is required"}
	}

	repo.reg.mu.Lock()
	defer repo.reg.mu.Unlock()

	repo.reg.magazines = append(repo.reg.magazines, magazine)
	metrics.UpdateMagazinesTotal(len(repo.reg.magazines))
	return nil
}

// List retrieves all magazines in insertion order.
// The returned slice is a copy; appends after this call do not mutate it.
func (repo *MagazineRepo) List(ctx context.Context) ([]*entity.Magazine, error) {
	start := time.Now()
	defer func() { metrics.RecordRegistryOp("list_magazines", time.Since(start)) }()

	repo.reg.mu.RLock()
	defer repo.reg.mu.RUnlock()

	out := make([]*entity.Magazine, len(repo.reg.magazines))
	copy(out, repo.reg.magazines)
	return out, nil
}
