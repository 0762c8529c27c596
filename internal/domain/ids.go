package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ArticleID identifies an article aggregate.
type ArticleID struct {
	value uuid.UUID
}

// NewArticleID generates a fresh random article id.
func NewArticleID() ArticleID {
	return ArticleID{value: uuid.New()}
}

// ParseArticleID parses a UUID string into an ArticleID.
func ParseArticleID(s string) (ArticleID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ArticleID{}, fmt.Errorf("%w: invalid article id %q", ErrValidation, s)
	}
	return ArticleID{value: id}, nil
}

func (id ArticleID) String() string { return id.value.String() }

// IsZero reports whether the id was never set.
func (id ArticleID) IsZero() bool { return id.value == uuid.Nil }

// AuthorID identifies the author owning an article.
type AuthorID struct {
	value uuid.UUID
}

// NewAuthorID generates a fresh random author id.
func NewAuthorID() AuthorID {
	return AuthorID{value: uuid.New()}
}

// ParseAuthorID parses a UUID string into an AuthorID.
func ParseAuthorID(s string) (AuthorID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return AuthorID{}, fmt.Errorf("%w: invalid author id %q", ErrValidation, s)
	}
	return AuthorID{value: id}, nil
}

func (id AuthorID) String() string { return id.value.String() }

// IsZero reports whether the id was never set.
func (id AuthorID) IsZero() bool { return id.value == uuid.Nil }
