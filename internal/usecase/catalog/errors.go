// Package catalog provides use cases for the author/magazine/article
// relationship graph. It implements business logic for registering
// magazines, publishing articles, and computing derived relationship
// queries over the registries.
package catalog

import "errors"

// Sentinel errors for catalog use case operations.
//
// Queries that can legitimately come up empty return one of these
// instead of an empty slice, so callers can tell "nothing recorded yet"
// apart from a result that merely collapsed to nothing.
var (
	// ErrNoArticles indicates that a query found no articles to draw from.
	// Returned by ArticleTitles when the magazine has no articles and by
	// TopPublisher when the article registry is empty.
	ErrNoArticles = errors.New("no articles recorded")

	// ErrNoTopicAreas indicates that the author has not written for any
	// magazine, so no topic areas can be derived.
	ErrNoTopicAreas = errors.New("author has no topic areas")

	// ErrNoContributingAuthors indicates that no author has published
	// more than two articles in the magazine.
	ErrNoContributingAuthors = errors.New("no contributing authors")
)
