// Package eventcodec converts article events to and from the JSON shape
// used in the event store, the outbox and on the broker.
package eventcodec

import (
	"encoding/json"
	"fmt"
	"time"

	"blog-article-service/internal/domain"
)

// Primitive is the flat, serializable form of a domain event.
type Primitive struct {
	ArticleID  string          `json:"articleId"`
	AuthorID   string          `json:"authorId"`
	Type       string          `json:"type"`
	Version    int             `json:"version"`
	OccurredAt string          `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

type createdData struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type titleChangedData struct {
	OldTitle *string `json:"oldTitle"`
	NewTitle string  `json:"newTitle"`
}

type contentChangedData struct {
	OldContent *string `json:"oldContent"`
	NewContent string  `json:"newContent"`
}

var emptyData = json.RawMessage(`{}`)

// ToPrimitive flattens an event.
func ToPrimitive(e domain.Event) (Primitive, error) {
	var data any
	switch p := e.Payload.(type) {
	case domain.Created:
		data = createdData{Title: p.Title.String(), Content: p.Content.String()}
	case domain.TitleChanged:
		d := titleChangedData{NewTitle: p.NewTitle.String()}
		if p.OldTitle != nil {
			s := p.OldTitle.String()
			d.OldTitle = &s
		}
		data = d
	case domain.ContentChanged:
		d := contentChangedData{NewContent: p.NewContent.String()}
		if p.OldContent != nil {
			s := p.OldContent.String()
			d.OldContent = &s
		}
		data = d
	case domain.Published, domain.Archived, domain.ReDrafted, domain.Deleted:
		data = nil
	default:
		return Primitive{}, fmt.Errorf("%w: unsupported payload %T", domain.ErrInvalidPayload, e.Payload)
	}

	raw := emptyData
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return Primitive{}, fmt.Errorf("marshal event data: %w", err)
		}
		raw = b
	}

	return Primitive{
		ArticleID:  e.ArticleID.String(),
		AuthorID:   e.AuthorID.String(),
		Type:       string(e.Type()),
		Version:    e.Version,
		OccurredAt: e.OccurredAt.UTC().Format(time.RFC3339Nano),
		Data:       raw,
	}, nil
}

// FromPrimitive rebuilds an event, validating every field.
func FromPrimitive(p Primitive) (domain.Event, error) {
	articleID, err := domain.ParseArticleID(p.ArticleID)
	if err != nil {
		return domain.Event{}, invalid(err)
	}
	authorID, err := domain.ParseAuthorID(p.AuthorID)
	if err != nil {
		return domain.Event{}, invalid(err)
	}
	if p.Version < 1 {
		return domain.Event{}, fmt.Errorf("%w: version must be positive, got %d", domain.ErrInvalidPayload, p.Version)
	}
	occurredAt, err := time.Parse(time.RFC3339Nano, p.OccurredAt)
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: occurredAt: %v", domain.ErrInvalidPayload, err)
	}

	payload, err := decodePayload(domain.EventType(p.Type), p.Data)
	if err != nil {
		return domain.Event{}, err
	}

	return domain.Event{
		ArticleID:  articleID,
		AuthorID:   authorID,
		Version:    p.Version,
		OccurredAt: occurredAt,
		Payload:    payload,
	}, nil
}

func decodePayload(t domain.EventType, raw json.RawMessage) (domain.Payload, error) {
	switch t {
	case domain.EventTypeCreate:
		var d createdData
		if err := unmarshalData(raw, &d); err != nil {
			return nil, err
		}
		title, err := domain.NewTitle(d.Title)
		if err != nil {
			return nil, invalid(err)
		}
		content, err := domain.NewContent(d.Content)
		if err != nil {
			return nil, invalid(err)
		}
		return domain.Created{Title: title, Content: content}, nil

	case domain.EventTypeChangeTitle:
		var d titleChangedData
		if err := unmarshalData(raw, &d); err != nil {
			return nil, err
		}
		newTitle, err := domain.NewTitle(d.NewTitle)
		if err != nil {
			return nil, invalid(err)
		}
		out := domain.TitleChanged{NewTitle: newTitle}
		if d.OldTitle != nil {
			old, err := domain.NewTitle(*d.OldTitle)
			if err != nil {
				return nil, invalid(err)
			}
			out.OldTitle = &old
		}
		return out, nil

	case domain.EventTypeChangeContent:
		var d contentChangedData
		if err := unmarshalData(raw, &d); err != nil {
			return nil, err
		}
		newContent, err := domain.NewContent(d.NewContent)
		if err != nil {
			return nil, invalid(err)
		}
		out := domain.ContentChanged{NewContent: newContent}
		if d.OldContent != nil {
			old, err := domain.NewContent(*d.OldContent)
			if err != nil {
				return nil, invalid(err)
			}
			out.OldContent = &old
		}
		return out, nil

	case domain.EventTypePublish:
		return domain.Published{}, nil
	case domain.EventTypeArchive:
		return domain.Archived{}, nil
	case domain.EventTypeReDraft:
		return domain.ReDrafted{}, nil
	case domain.EventTypeDelete:
		return domain.Deleted{}, nil
	}

	return nil, fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidPayload, t)
}

func unmarshalData(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: missing data", domain.ErrInvalidPayload)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
}

// Marshal encodes an event as JSON.
func Marshal(e domain.Event) ([]byte, error) {
	p, err := ToPrimitive(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(p)
}

// Unmarshal decodes a JSON event.
func Unmarshal(b []byte) (domain.Event, error) {
	var p Primitive
	if err := json.Unmarshal(b, &p); err != nil {
		return domain.Event{}, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return FromPrimitive(p)
}
