package validation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/templui/bloglist/internal/model"
)

const (
	maxTitleLength  = 300
	maxAuthorLength = 100
	maxURLLength    = 2048
)

// ValidationError reports which input field was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ValidateBlog checks a create or replace body and returns the trimmed values.
func ValidateBlog(in model.BlogInput) (model.BlogInput, error) {
	out := model.BlogInput{
		Title:  strings.TrimSpace(in.Title),
		Author: strings.TrimSpace(in.Author),
		URL:    strings.TrimSpace(in.URL),
		Likes:  in.Likes,
	}

	err := validateText("title", out.Title, maxTitleLength)
	if err != nil {
		return out, err
	}

	err = validateText("author", out.Author, maxAuthorLength)
	if err != nil {
		return out, err
	}

	err = ValidateURL(out.URL)
	if err != nil {
		return out, err
	}

	if out.LikesOrDefault() < 0 {
		return out, invalid("likes", "must not be negative")
	}

	return out, nil
}

func validateText(field, value string, max int) error {
	if value == "" {
		return invalid(field, "is required")
	}

	if utf8.RuneCountInString(value) > max {
		return invalid(field, fmt.Sprintf("is too long (max %d characters)", max))
	}

	return nil
}

// ValidateURL requires an absolute http(s) URL
func ValidateURL(raw string) error {
	if raw == "" {
		return invalid("url", "is required")
	}

	if utf8.RuneCountInString(raw) > maxURLLength {
		return invalid("url", fmt.Sprintf("is too long (max %d characters)", maxURLLength))
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return invalid("url", "must be an absolute http or https URL")
	}

	return nil
}
