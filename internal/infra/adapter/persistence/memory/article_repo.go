package memory

import (
	"context"
	"time"

	"masthead/internal/domain/entity"
	"masthead/internal/observability/metrics"
	"masthead/internal/repository"
)

// ArticleRepo implements the ArticleRepository interface over a shared Registry.
type ArticleRepo struct{ reg *Registry }

// NewArticleRepo creates a new registry-backed article repository.
func NewArticleRepo(reg *Registry) repository.ArticleRepository {
	return &ArticleRepo{reg: reg}
}

// Append registers an article at the end of the article registry.
func (repo *ArticleRepo) Append(ctx context.Context, article *entity.Article) error {
	start := time.Now()
	defer func() { metrics.RecordRegistryOp("append_article", time.Since(start)) }()

	if article == nil {
		return &entity.ValidationError{Field: "article", Message: "is required"}
	}

	repo.reg.mu.Lock()
	defer repo.reg.mu.Unlock()

	repo.reg.articles = append(repo.reg.articles, article)
	metrics.UpdateArticlesTotal(len(repo.reg.articles))
	return nil
}

// List retrieves all articles in insertion order.
// The returned slice is a copy; appends after this call do not mutate it.
func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	start := time.Now()
	defer func() { metrics.RecordRegistryOp("list_articles", time.Since(start)) }()

	repo.reg.mu.RLock()
	defer repo.reg.mu.RUnlock()

	out := make([]*entity.Article, len(repo.reg.articles))
	copy(out, repo.reg.articles)
	return out, nil
}

// Count returns the total number of registered articles.
func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	repo.reg.mu.RLock()
	defer repo.reg.mu.RUnlock()
	return int64(len(repo.reg.articles)), nil
}
