// Package validator checks the shape of article requests before they
// reach the domain. Length and trimming rules stay with the value objects.
package validator

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-article-service/internal/domain"
)

const (
	maxTitleLength   = 256
	maxContentLength = 5000
	// MaxSearchIDs bounds a single search request.
	MaxSearchIDs = 100
)

var validStatus = []interface{}{
	string(domain.StatusDraft),
	string(domain.StatusPublished),
	string(domain.StatusArchived),
}

// CreateArticleRequest is the body of a create request.
type CreateArticleRequest struct {
	ID       string `json:"id"`
	AuthorID string `json:"authorId"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// ChangeTitleRequest is the body of a rename request.
type ChangeTitleRequest struct {
	Title string `json:"title"`
}

// ChangeContentRequest is the body of a content update request.
type ChangeContentRequest struct {
	Content string `json:"content"`
}

// FieldError describes one rejected field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validator provides validation methods for article requests.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateArticle validates a CreateArticleRequest.
func (v *Validator) ValidateCreateArticle(r *CreateArticleRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID,
			is.UUID.Error("invalid_article_id"),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id_required"),
			is.UUID.Error("invalid_author_id"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(0, maxTitleLength).Error("title_too_long"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content_required"),
			validation.RuneLength(0, maxContentLength).Error("content_too_long"),
		),
	)
}

// ValidateChangeTitle validates a ChangeTitleRequest.
func (v *Validator) ValidateChangeTitle(r *ChangeTitleRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(0, maxTitleLength).Error("title_too_long"),
		),
	)
}

// ValidateChangeContent validates a ChangeContentRequest.
func (v *Validator) ValidateChangeContent(r *ChangeContentRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content,
			validation.Required.Error("content_required"),
			validation.RuneLength(0, maxContentLength).Error("content_too_long"),
		),
	)
}

// ValidateArticleID validates an article id taken from the path.
func (v *Validator) ValidateArticleID(id string) error {
	return validation.Validate(id,
		validation.Required.Error("article_id_required"),
		is.UUID.Error("invalid_article_id"),
	)
}

// ValidateSearchIDs validates the ids of a search request.
func (v *Validator) ValidateSearchIDs(ids []string) error {
	return validation.Validate(ids,
		validation.Required.Error("ids_required"),
		validation.Length(1, MaxSearchIDs).Error("too_many_ids"),
		validation.Each(is.UUID.Error("invalid_article_id")),
	)
}

// ValidateStatus validates a status taken from the path.
func (v *Validator) ValidateStatus(status string) error {
	return validation.Validate(status,
		validation.Required.Error("status_required"),
		validation.In(validStatus...).Error("invalid_status"),
	)
}

// ConvertValidationErrors flattens ozzo validation errors into field
// errors sorted by field name. field names the value when err is not a
// struct-level error.
func ConvertValidationErrors(field string, err error) []FieldError {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []FieldError{{Field: field, Reason: err.Error()}}
	}

	out := make([]FieldError, 0, len(fieldErrs))
	for name, fieldErr := range fieldErrs {
		out = append(out, FieldError{Field: name, Reason: fieldErr.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
