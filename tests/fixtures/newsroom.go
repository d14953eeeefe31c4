// Package fixtures provides reusable test data builders shared across
// test suites. The standard scenario is a small newsroom: two authors,
// two magazines, and three articles.
package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"masthead/internal/domain/entity"
	"masthead/internal/usecase/catalog"
)

// Newsroom bundles the entities created by SeedNewsroom so tests can
// refer to them directly.
type Newsroom struct {
	Melki     *entity.Author
	Alare     *entity.Author
	TechToday *entity.Magazine
	Wellness  *entity.Magazine
	Articles  []*entity.Article
}

// SeedNewsroom populates the service's registries with the standard
// scenario: Melki writes "The Future of AI" and "Exploring Robotics"
// for Tech Today, Alare writes "Healthy Living Tips" for
// Health & Wellness.
func SeedNewsroom(t *testing.T, ctx context.Context, svc *catalog.Service) *Newsroom {
	t.Helper()

	n := &Newsroom{
		Melki: entity.NewAuthor("Melki"),
		Alare: entity.NewAuthor("Alare"),
	}

	var err error
	n.TechToday, err = svc.RegisterMagazine(ctx, "Tech Today", "Technology")
	require.NoError(t, err)
	n.Wellness, err = svc.RegisterMagazine(ctx, "Health & Wellness", "Health")
	require.NoError(t, err)

	for _, spec := range []struct {
		author   *entity.Author
		magazine *entity.Magazine
		title    string
	}{
		{n.Melki, n.TechToday, "The Future of AI"},
		{n.Melki, n.TechToday, "Exploring Robotics"},
		{n.Alare, n.Wellness, "Healthy Living Tips"},
	} {
		art, err := svc.PublishArticle(ctx, spec.author, spec.magazine, spec.title)
		require.NoError(t, err)
		n.Articles = append(n.Articles, art)
	}

	return n
}
