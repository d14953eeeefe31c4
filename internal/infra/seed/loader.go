// Package seed loads a declarative YAML description of authors, magazines,
// and articles and applies it through the catalog service, so seeded data
// passes exactly the same validation as data created programmatically.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"masthead/internal/domain/entity"
	"masthead/internal/usecase/catalog"
)

// File is the top-level structure of a seed file.
type File struct {
	Authors   []AuthorSpec   `yaml:"authors"`
	Magazines []MagazineSpec `yaml:"magazines"`
	Articles  []ArticleSpec  `yaml:"articles"`
}

// AuthorSpec declares an author by name.
type AuthorSpec struct {
	Name string `yaml:"name"`
}

// MagazineSpec declares a magazine by name and category.
type MagazineSpec struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// ArticleSpec declares an article by title, referencing its author and
// magazine by the names declared above.
type ArticleSpec struct {
	Author   string `yaml:"author"`
	Magazine string `yaml:"magazine"`
	Title    string `yaml:"title"`
}

// Load reads and parses a seed file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// Result holds the entities created while applying a seed file, keyed by
// the names used in the file so the caller can query them afterwards.
type Result struct {
	Authors   map[string]*entity.Author
	Magazines map[string]*entity.Magazine
	Articles  []*entity.Article
}

// Apply creates every declared entity through the catalog service, in
// declaration order. Duplicate author or magazine names are rejected
// because article specs reference entities by name. Any validation
// failure aborts the apply; entities created before the failure remain
// registered, later ones are never created.
func (f *File) Apply(ctx context.Context, svc *catalog.Service) (*Result, error) {
	res := &Result{
		Authors:   make(map[string]*entity.Author, len(f.Authors)),
		Magazines: make(map[string]*entity.Magazine, len(f.Magazines)),
	}

	for _, spec := range f.Authors {
		if _, ok := res.Authors[spec.Name]; ok {
			return nil, fmt.Errorf("duplicate author %q", spec.Name)
		}
		res.Authors[spec.Name] = entity.NewAuthor(spec.Name)
	}

	for _, spec := range f.Magazines {
		if _, ok := res.Magazines[spec.Name]; ok {
			return nil, fmt.Errorf("duplicate magazine %q", spec.Name)
		}
		mag, err := svc.RegisterMagazine(ctx, spec.Name, spec.Category)
		if err != nil {
			return nil, fmt.Errorf("seed magazine %q: %w", spec.Name, err)
		}
		res.Magazines[spec.Name] = mag
	}

	for _, spec := range f.Articles {
		author, ok := res.Authors[spec.Author]
		if !ok {
			return nil, fmt.Errorf("article %q references unknown author %q", spec.Title, spec.Author)
		}
		mag, ok := res.Magazines[spec.Magazine]
		if !ok {
			return nil, fmt.Errorf("article %q references unknown magazine %q", spec.Title, spec.Magazine)
		}
		art, err := svc.PublishArticle(ctx, author, mag, spec.Title)
		if err != nil {
			return nil, fmt.Errorf("seed article %q: %w", spec.Title, err)
		}
		res.Articles = append(res.Articles, art)
	}

	return res, nil
}
