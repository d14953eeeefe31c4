package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	author := NewAuthor("Melki")
	mag := NewMagazine("Tech Today", "Technology")

	art, err := NewArticle(author, mag, "The Future of AI")

	require.NoError(t, err)
	assert.NotEmpty(t, art.ID)
	assert.Same(t, author, art.Author)
	assert.Same(t, mag, art.Magazine)
	assert.Equal(t, "The Future of AI", art.Title)
	assert.False(t, art.CreatedAt.IsZero())
}

func TestNewArticle_RequiresAuthorAndMagazine(t *testing.T) {
	author := NewAuthor("Melki")
	mag := NewMagazine("Tech Today", "Technology")

	t.Run("nil author", func(t *testing.T) {
		art, err := NewArticle(nil, mag, "The Future of AI")

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "author", vErr.Field)
		assert.Nil(t, art)
	})

	t.Run("nil magazine", func(t *testing.T) {
		art, err := NewArticle(author, nil, "The Future of AI")

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "magazine", vErr.Field)
		assert.Nil(t, art)
	})
}

func TestNewArticle_TitleLength(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{
			name:    "four characters is too short",
			title:   "Tips",
			wantErr: true,
		},
		{
			name:  "five characters is the lower bound",
			title: "Title",
		},
		{
			name:  "fifty characters is the upper bound",
			title: strings.Repeat("a", 50),
		},
		{
			name:    "fifty-one characters is too long",
			title:   strings.Repeat("a", 51),
			wantErr: true,
		},
		{
			name:  "length counts characters, not bytes",
			title: strings.Repeat("記", 50), // 150 bytes, 50 characters
		},
	}

	author := NewAuthor("Melki")
	mag := NewMagazine("Tech Today", "Technology")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art, err := NewArticle(author, mag, tt.title)

			if tt.wantErr {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "title", vErr.Field)
				assert.Nil(t, art)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, art.Title)
		})
	}
}

func TestArticle_String(t *testing.T) {
	author := NewAuthor("Melki")
	mag := NewMagazine("Tech Today", "Technology")
	art, err := NewArticle(author, mag, "The Future of AI")
	require.NoError(t, err)

	assert.Equal(t, "'The Future of AI' by Melki", art.String())
}
