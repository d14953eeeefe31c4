package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// Magazine name length bounds, in characters.
const (
	MinMagazineNameLen = 2
	MaxMagazineNameLen = 16
)

// Magazine represents a categorized publication that contains articles.
// Name and category are mutable but validated on every reassignment.
type Magazine struct {
	id       string
	name     string
	category string
}

// NewMagazine creates a new magazine with the given name and category.
// Construction deliberately skips the length and blankness rules that
// SetName and SetCategory enforce: existing catalogs contain magazines
// like "Health & Wellness" whose names exceed the rename bound, and
// rejecting them at construction would make those unrepresentable.
func NewMagazine(name, category string) *Magazine {
	return &Magazine{
		id:       uuid.NewString(),
		name:     name,
		category: category,
	}
}

// ID returns the magazine's unique identifier.
func (m *Magazine) ID() string { return m.id }

// Name returns the magazine's name.
func (m *Magazine) Name() string { return m.name }

// SetName renames the magazine. The new name must be between 2 and 16
// characters; on failure the prior name is retained.
func (m *Magazine) SetName(name string) error {
	if err := ValidateRuneRange("name", name, MinMagazineNameLen, MaxMagazineNameLen); err != nil {
		return err
	}
	m.name = name
	return nil
}

// Category returns the magazine's category.
func (m *Magazine) Category() string { return m.category }

// SetCategory changes the magazine's category. The new category must
// contain at least one non-whitespace character; on failure the prior
// category is retained.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateNonBlank("category", category); err != nil {
		return err
	}
	m.category = category
	return nil
}

// String returns the magazine's display form: "<name> (<category>)".
func (m *Magazine) String() string {
	return fmt.Sprintf("%s (%s)", m.name, m.category)
}
