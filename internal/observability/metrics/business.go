package metrics

import "time"

// RecordArticlePublished records a successfully published article.
// The magazine label is the magazine's name at publication time.
func RecordArticlePublished(magazineName string) {
	ArticlesPublishedTotal.WithLabelValues(magazineName).Inc()
}

// RecordValidationFailure records a rejected construction or mutation.
// Operation names the attempted action (e.g. "publish_article").
func RecordValidationFailure(operation string) {
	ValidationFailuresTotal.WithLabelValues(operation).Inc()
}

// UpdateArticlesTotal updates the total count of registered articles.
func UpdateArticlesTotal(count int) {
	ArticlesTotal.Set(float64(count))
}

// UpdateMagazinesTotal updates the total count of registered magazines.
func UpdateMagazinesTotal(count int) {
	MagazinesTotal.Set(float64(count))
}

// RecordRegistryOp records the duration of a registry operation.
// Operation should describe the access (e.g. "append_article", "list_articles").
func RecordRegistryOp(operation string, duration time.Duration) {
	RegistryOpDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
