package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/bloglist/internal/model"
)

func intPtr(i int) *int { return &i }

func TestValidateBlog(t *testing.T) {
	valid := model.BlogInput{
		Title:  "TDD harms architecture",
		Author: "Robert C. Martin",
		URL:    "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html",
	}

	tests := []struct {
		name  string
		edit  func(in *model.BlogInput)
		field string
	}{
		{"valid without likes", func(in *model.BlogInput) {}, ""},
		{"valid with likes", func(in *model.BlogInput) { in.Likes = intPtr(67) }, ""},
		{"missing title", func(in *model.BlogInput) { in.Title = "" }, "title"},
		{"blank title", func(in *model.BlogInput) { in.Title = "   " }, "title"},
		{"missing author", func(in *model.BlogInput) { in.Author = "" }, "author"},
		{"missing url", func(in *model.BlogInput) { in.URL = "" }, "url"},
		{"relative url", func(in *model.BlogInput) { in.URL = "/en/part4/" }, "url"},
		{"ftp url", func(in *model.BlogInput) { in.URL = "ftp://example.com/post" }, "url"},
		{"long title", func(in *model.BlogInput) { in.Title = strings.Repeat("a", maxTitleLength+1) }, "title"},
		{"multibyte title at limit", func(in *model.BlogInput) { in.Title = strings.Repeat("é", maxTitleLength) }, ""},
		{"multibyte title over limit", func(in *model.BlogInput) { in.Title = strings.Repeat("é", maxTitleLength+1) }, "title"},
		{"multibyte author at limit", func(in *model.BlogInput) { in.Author = strings.Repeat("ß", maxAuthorLength) }, ""},
		{"negative likes", func(in *model.BlogInput) { in.Likes = intPtr(-1) }, "likes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.edit(&in)

			_, err := ValidateBlog(in)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateBlogTrims(t *testing.T) {
	out, err := ValidateBlog(model.BlogInput{
		Title:  "  title ",
		Author: "\tauthor",
		URL:    " https://fullstackopen.com/en/part4/ ",
	})
	require.NoError(t, err)

	assert.Equal(t, "title", out.Title)
	assert.Equal(t, "author", out.Author)
	assert.Equal(t, "https://fullstackopen.com/en/part4/", out.URL)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "title", Message: "is required"}
	assert.Equal(t, "title: is required", err.Error())
}
