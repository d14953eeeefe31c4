// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects Author, Magazine, and Article, along with
// their validation rules and domain-specific errors.
package entity

import "github.com/google/uuid"

// Author represents a named party that writes articles for magazines.
// Two authors with the same name are still distinct entities; identity
// is the generated ID, never the name.
type Author struct {
	id   string
	name string
}

// NewAuthor creates a new author with the given name.
// Names carry no length constraint, but once set they are immutable.
func NewAuthor(name string) *Author {
	return &Author{
		id:   uuid.NewString(),
		name: name,
	}
}

// ID returns the author's unique identifier.
func (a *Author) ID() string { return a.id }

// Name returns the author's name.
func (a *Author) Name() string { return a.name }

// SetName always fails with ErrNameImmutable and never mutates state.
// It exists so that callers attempting a rename get a deliberate error
// instead of silently diverging from the articles already attributed.
func (a *Author) SetName(string) error {
	return ErrNameImmutable
}

// String returns the author's display form: the bare name.
func (a *Author) String() string { return a.name }
