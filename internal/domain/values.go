package domain

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// MaxTitleLength is the maximum number of characters in a title.
	MaxTitleLength = 256
	// MaxContentLength is the maximum number of characters in article content.
	MaxContentLength = 5000
)

// Title is a trimmed, non-empty article title.
type Title struct {
	value string
}

// NewTitle trims raw and validates its length.
func NewTitle(raw string) (Title, error) {
	value := strings.TrimSpace(raw)
	err := validation.Validate(value,
		validation.Required.Error("title cannot be empty"),
		validation.RuneLength(1, MaxTitleLength).Error(fmt.Sprintf("title cannot be longer than %d characters", MaxTitleLength)),
	)
	if err != nil {
		return Title{}, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return Title{value: value}, nil
}

// MustTitle is NewTitle for values known to be valid. It panics otherwise.
func MustTitle(raw string) Title {
	t, err := NewTitle(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the trimmed title.
func (t Title) String() string { return t.value }

// Equals reports whether both titles hold the same text.
func (t Title) Equals(other Title) bool { return t.value == other.value }

// Content is the trimmed, non-empty body of an article.
type Content struct {
	value string
}

// NewContent trims raw and validates its length.
func NewContent(raw string) (Content, error) {
	value := strings.TrimSpace(raw)
	err := validation.Validate(value,
		validation.Required.Error("content cannot be empty"),
		validation.RuneLength(1, MaxContentLength).Error(fmt.Sprintf("content cannot be longer than %d characters", MaxContentLength)),
	)
	if err != nil {
		return Content{}, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return Content{value: value}, nil
}

// MustContent is NewContent for values known to be valid. It panics otherwise.
func MustContent(raw string) Content {
	c, err := NewContent(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the trimmed content.
func (c Content) String() string { return c.value }

// Equals reports whether both contents hold the same text.
func (c Content) Equals(other Content) bool { return c.value == other.value }
