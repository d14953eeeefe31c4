package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Article title length bounds, in characters.
const (
	MinArticleTitleLen = 5
	MaxArticleTitleLen = 50
)

// Article is the join entity binding exactly one Author, one Magazine,
// and a title. It is the only realization of the many-to-many
// relationship between authors and magazines.
//
// Fields are validated at construction time only. Post-construction
// mutation is unguarded; callers that rewire an article after the fact
// own the consequences.
type Article struct {
	ID        string
	Author    *Author
	Magazine  *Magazine
	Title     string
	CreatedAt time.Time
}

// NewArticle creates a new article written by author for magazine.
// The author and magazine must be non-nil and the title must be between
// 5 and 50 characters. Returns a ValidationError on any violation; a
// failed construction produces no article at all.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if author == nil {
		return nil, &ValidationError{Field: "author", Message: "is required"}
	}
	if magazine == nil {
		return nil, &ValidationError{Field: "magazine", Message: "is required"}
	}
	if err := ValidateRuneRange("title", title, MinArticleTitleLen, MaxArticleTitleLen); err != nil {
		return nil, err
	}

	return &Article{
		ID:        uuid.NewString(),
		Author:    author,
		Magazine:  magazine,
		Title:     title,
		CreatedAt: time.Now(),
	}, nil
}

// String returns the article's display form: "'<title>' by <author>".
func (a *Article) String() string {
	return fmt.Sprintf("'%s' by %s", a.Title, a.Author)
}
