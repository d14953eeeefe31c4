package catalog

import (
	"context"
	"fmt"

	"masthead/internal/domain/entity"
	"masthead/internal/observability/metrics"
	"masthead/internal/repository"
)

// Service provides relationship queries over the article and magazine
// registries. Every query scans the registries at call time; nothing is
// cached, so results always reflect articles published after an earlier
// call.
type Service struct {
	Articles  repository.ArticleRepository
	Magazines repository.MagazineRepository
}

// RegisterMagazine creates a magazine and registers it.
// Registration order is observable: TopPublisher breaks ties in favor of
// the earliest registered magazine.
func (s *Service) RegisterMagazine(ctx context.Context, name, category string) (*entity.Magazine, error) {
	mag := entity.NewMagazine(name, category)
	if err := s.Magazines.Append(ctx, mag); err != nil {
		return nil, fmt.Errorf("register magazine: %w", err)
	}
	return mag, nil
}

// PublishArticle creates an article written by author for magazine and
// registers it. On a validation failure nothing is registered: either
// the article is fully constructed and appended, or the registry is
// untouched and the error propagates to the caller.
func (s *Service) PublishArticle(ctx context.Context, author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error) {
	art, err := entity.NewArticle(author, magazine, title)
	if err != nil {
		metrics.RecordValidationFailure("publish_article")
		return nil, fmt.Errorf("publish article: %w", err)
	}

	if err := s.Articles.Append(ctx, art); err != nil {
		return nil, fmt.Errorf("publish article: %w", err)
	}

	metrics.RecordArticlePublished(magazine.Name())
	return art, nil
}

// ArticlesByAuthor returns the articles written by the author, in
// registry insertion order. Authorship is matched by identity, never by
// name: two authors who share a name keep separate bodies of work.
func (s *Service) ArticlesByAuthor(ctx context.Context, author *entity.Author) ([]*entity.Article, error) {
	if author == nil {
		return nil, &entity.ValidationError{Field: "author", Message: "is required"}
	}

	all, err := s.Articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	var out []*entity.Article
	for _, art := range all {
		if art.Author != nil && art.Author.ID() == author.ID() {
			out = append(out, art)
		}
	}
	return out, nil
}

// MagazinesForAuthor returns the distinct magazines the author has
// written for, in order of the author's first article in each.
func (s *Service) MagazinesForAuthor(ctx context.Context, author *entity.Author) ([]*entity.Magazine, error) {
	articles, err := s.ArticlesByAuthor(ctx, author)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []*entity.Magazine
	for _, art := range articles {
		if art.Magazine == nil || seen[art.Magazine.ID()] {
			continue
		}
		seen[art.Magazine.ID()] = true
		out = append(out, art.Magazine)
	}
	return out, nil
}

// TopicAreas returns the distinct categories of the magazines the
// author has written for. Returns ErrNoTopicAreas when the author has
// no magazines at all, which is different from categories collapsing
// into a single value.
func (s *Service) TopicAreas(ctx context.Context, author *entity.Author) ([]string, error) {
	magazines, err := s.MagazinesForAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	if len(magazines) == 0 {
		return nil, ErrNoTopicAreas
	}

	seen := make(map[string]bool)
	var out []string
	for _, mag := range magazines {
		if seen[mag.Category()] {
			continue
		}
		seen[mag.Category()] = true
		out = append(out, mag.Category())
	}
	return out, nil
}

// ArticlesInMagazine returns the articles published in the magazine, in
// registry insertion order.
func (s *Service) ArticlesInMagazine(ctx context.Context, magazine *entity.Magazine) ([]*entity.Article, error) {
	if magazine == nil {
		return nil, &entity.ValidationError{Field: "magazine", Message: "is required"}
	}

	all, err := s.Articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	var out []*entity.Article
	for _, art := range all {
		if art.Magazine != nil && art.Magazine.ID() == magazine.ID() {
			out = append(out, art)
		}
	}
	return out, nil
}

// Contributors returns the distinct authors who have written for the
// magazine, in order of their first article in it.
func (s *Service) Contributors(ctx context.Context, magazine *entity.Magazine) ([]*entity.Author, error) {
	articles, err := s.ArticlesInMagazine(ctx, magazine)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []*entity.Author
	for _, art := range articles {
		if art.Author == nil || seen[art.Author.ID()] {
			continue
		}
		seen[art.Author.ID()] = true
		out = append(out, art.Author)
	}
	return out, nil
}

// ArticleTitles returns the titles of the magazine's articles in
// registry insertion order, or ErrNoArticles when the magazine has
// none.
func (s *Service) ArticleTitles(ctx context.Context, magazine *entity.Magazine) ([]string, error) {
	articles, err := s.ArticlesInMagazine(ctx, magazine)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, ErrNoArticles
	}

	titles := make([]string, 0, len(articles))
	for _, art := range articles {
		titles = append(titles, art.Title)
	}
	return titles, nil
}

// ContributingAuthors returns the authors with strictly more than two
// articles in the magazine, or ErrNoContributingAuthors when nobody
// crosses that threshold. An author with exactly two articles does not
// qualify.
func (s *Service) ContributingAuthors(ctx context.Context, magazine *entity.Magazine) ([]*entity.Author, error) {
	articles, err := s.ArticlesInMagazine(ctx, magazine)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	byID := make(map[string]*entity.Author)
	var order []string
	for _, art := range articles {
		if art.Author == nil {
			continue
		}
		id := art.Author.ID()
		if _, ok := byID[id]; !ok {
			byID[id] = art.Author
			order = append(order, id)
		}
		counts[id]++
	}

	var out []*entity.Author
	for _, id := range order {
		if counts[id] > 2 {
			out = append(out, byID[id])
		}
	}
	if len(out) == 0 {
		return nil, ErrNoContributingAuthors
	}
	return out, nil
}

// TopPublisher returns the magazine with the most articles across the
// entire registry, or ErrNoArticles when no article exists anywhere.
// Counts are seeded with every registered magazine, zero-article ones
// included, so on a tie the earliest registered magazine wins.
func (s *Service) TopPublisher(ctx context.Context) (*entity.Magazine, error) {
	articles, err := s.Articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	if len(articles) == 0 {
		return nil, ErrNoArticles
	}

	magazines, err := s.Magazines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}

	counts := make(map[string]int, len(magazines))
	byID := make(map[string]*entity.Magazine, len(magazines))
	order := make([]string, 0, len(magazines))
	for _, mag := range magazines {
		counts[mag.ID()] = 0
		byID[mag.ID()] = mag
		order = append(order, mag.ID())
	}
	for _, art := range articles {
		if art.Magazine == nil {
			continue
		}
		id := art.Magazine.ID()
		if _, ok := byID[id]; !ok {
			// Magazine that bypassed registration; count it after the
			// registered ones so tie-breaks stay on registration order.
			byID[id] = art.Magazine
			order = append(order, id)
		}
		counts[id]++
	}

	var top *entity.Magazine
	best := -1
	for _, id := range order {
		if counts[id] > best {
			best = counts[id]
			top = byID[id]
		}
	}
	if top == nil {
		return nil, ErrNoArticles
	}
	return top, nil
}
