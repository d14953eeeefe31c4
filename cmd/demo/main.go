// Command demo exercises the catalog end to end. It seeds the registries
// either from a YAML file (SEED_FILE) or with a small built-in newsroom,
// then logs every derived relationship query.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"masthead/internal/domain/entity"
	"masthead/internal/infra/adapter/persistence/memory"
	"masthead/internal/infra/seed"
	"masthead/internal/observability/logging"
	"masthead/internal/pkg/config"
	"masthead/internal/usecase/catalog"
)

func initLogger() *slog.Logger {
	result := config.LoadEnvWithFallback("LOG_FORMAT", "text", validateLogFormat)
	logger := logging.NewTextLogger()
	if result.Value == "json" {
		logger = logging.NewLogger()
	}
	for _, warning := range result.Warnings {
		logger.Warn("configuration fallback", slog.String("warning", warning))
	}
	return logger
}

func validateLogFormat(v string) error {
	if v != "json" && v != "text" {
		return fmt.Errorf("unsupported log format %q", v)
	}
	return nil
}

// builtinNewsroom registers the default demonstration data: two authors,
// two magazines, and three articles.
func builtinNewsroom(ctx context.Context, svc *catalog.Service) (*seed.Result, error) {
	f := &seed.File{
		Authors: []seed.AuthorSpec{
			{Name: "Melki"},
			{Name: "Alare"},
		},
		Magazines: []seed.MagazineSpec{
			{Name: "Tech Today", Category: "Technology"},
			{Name: "Health & Wellness", Category: "Health"},
		},
		Articles: []seed.ArticleSpec{
			{Author: "Melki", Magazine: "Tech Today", Title: "The Future of AI"},
			{Author: "Melki", Magazine: "Tech Today", Title: "Exploring Robotics"},
			{Author: "Alare", Magazine: "Health & Wellness", Title: "Healthy Living Tips"},
		},
	}
	return f.Apply(ctx, svc)
}

func reportAuthor(ctx context.Context, logger *slog.Logger, svc *catalog.Service, author *entity.Author) {
	articles, err := svc.ArticlesByAuthor(ctx, author)
	if err != nil {
		logger.Error("articles by author", slog.Any("error", err))
		return
	}
	titles := make([]string, 0, len(articles))
	for _, art := range articles {
		titles = append(titles, art.String())
	}
	logger.Info("author articles",
		slog.String("author", author.String()),
		slog.Any("articles", titles))

	magazines, err := svc.MagazinesForAuthor(ctx, author)
	if err != nil {
		logger.Error("magazines for author", slog.Any("error", err))
		return
	}
	names := make([]string, 0, len(magazines))
	for _, mag := range magazines {
		names = append(names, mag.String())
	}
	logger.Info("author magazines",
		slog.String("author", author.String()),
		slog.Any("magazines", names))

	topics, err := svc.TopicAreas(ctx, author)
	switch {
	case errors.Is(err, catalog.ErrNoTopicAreas):
		logger.Info("author has no topic areas", slog.String("author", author.String()))
	case err != nil:
		logger.Error("topic areas", slog.Any("error", err))
	default:
		logger.Info("author topic areas",
			slog.String("author", author.String()),
			slog.Any("topics", topics))
	}
}

func reportMagazine(ctx context.Context, logger *slog.Logger, svc *catalog.Service, mag *entity.Magazine) {
	contributors, err := svc.Contributors(ctx, mag)
	if err != nil {
		logger.Error("contributors", slog.Any("error", err))
		return
	}
	names := make([]string, 0, len(contributors))
	for _, author := range contributors {
		names = append(names, author.String())
	}
	logger.Info("magazine contributors",
		slog.String("magazine", mag.String()),
		slog.Any("contributors", names))

	titles, err := svc.ArticleTitles(ctx, mag)
	switch {
	case errors.Is(err, catalog.ErrNoArticles):
		logger.Info("magazine has no articles", slog.String("magazine", mag.String()))
	case err != nil:
		logger.Error("article titles", slog.Any("error", err))
	default:
		logger.Info("magazine article titles",
			slog.String("magazine", mag.String()),
			slog.Any("titles", titles))
	}

	regulars, err := svc.ContributingAuthors(ctx, mag)
	switch {
	case errors.Is(err, catalog.ErrNoContributingAuthors):
		logger.Info("magazine has no contributing authors (more than two articles)",
			slog.String("magazine", mag.String()))
	case err != nil:
		logger.Error("contributing authors", slog.Any("error", err))
	default:
		names := make([]string, 0, len(regulars))
		for _, author := range regulars {
			names = append(names, author.String())
		}
		logger.Info("magazine contributing authors",
			slog.String("magazine", mag.String()),
			slog.Any("authors", names))
	}
}

func main() {
	logger := initLogger()
	ctx := context.Background()

	registry := memory.NewRegistry()
	svc := &catalog.Service{
		Articles:  memory.NewArticleRepo(registry),
		Magazines: memory.NewMagazineRepo(registry),
	}

	var (
		res *seed.Result
		err error
	)
	if path := config.LoadEnvString("SEED_FILE", ""); path != "" {
		logger.Info("seeding catalog from file", slog.String("path", path))
		var f *seed.File
		if f, err = seed.Load(path); err == nil {
			res, err = f.Apply(ctx, svc)
		}
	} else {
		logger.Info("seeding catalog with built-in newsroom")
		res, err = builtinNewsroom(ctx, svc)
	}
	if err != nil {
		logger.Error("seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("catalog seeded",
		slog.Int("authors", len(res.Authors)),
		slog.Int("magazines", len(res.Magazines)),
		slog.Int("articles", len(res.Articles)))

	for _, author := range res.Authors {
		reportAuthor(ctx, logger, svc, author)
	}
	for _, mag := range res.Magazines {
		reportMagazine(ctx, logger, svc, mag)
	}

	top, err := svc.TopPublisher(ctx)
	switch {
	case errors.Is(err, catalog.ErrNoArticles):
		logger.Info("no articles registered, no top publisher")
	case err != nil:
		logger.Error("top publisher", slog.Any("error", err))
		os.Exit(1)
	default:
		logger.Info("top publisher", slog.String("magazine", top.String()))
	}
}
