package domain

import "time"

// EventType names the kind of change an event records.
type EventType string

const (
	EventTypeCreate        EventType = "CREATE"
	EventTypeChangeTitle   EventType = "CHANGE_TITLE"
	EventTypeChangeContent EventType = "CHANGE_CONTENT"
	EventTypePublish       EventType = "PUBLISH"
	EventTypeArchive       EventType = "ARCHIVE"
	EventTypeReDraft       EventType = "RE_DRAFT"
	EventTypeDelete        EventType = "DELETE"
)

// EventTypes lists every known event type.
var EventTypes = []EventType{
	EventTypeCreate,
	EventTypeChangeTitle,
	EventTypeChangeContent,
	EventTypePublish,
	EventTypeArchive,
	EventTypeReDraft,
	EventTypeDelete,
}

// IsValidEventType checks if t is a known event type.
func IsValidEventType(t string) bool {
	for _, et := range EventTypes {
		if string(et) == t {
			return true
		}
	}
	return false
}

// Payload is the type-specific part of an event. The set of
// implementations is closed to this package.
type Payload interface {
	EventType() EventType
	isPayload()
}

// Created is the payload of a CREATE event.
type Created struct {
	Title   Title
	Content Content
}

// TitleChanged is the payload of a CHANGE_TITLE event. OldTitle is nil
// when the previous title was unknown.
type TitleChanged struct {
	OldTitle *Title
	NewTitle Title
}

// ContentChanged is the payload of a CHANGE_CONTENT event.
type ContentChanged struct {
	OldContent *Content
	NewContent Content
}

// Published is the payload of a PUBLISH event.
type Published struct{}

// Archived is the payload of an ARCHIVE event.
type Archived struct{}

// ReDrafted is the payload of a RE_DRAFT event.
type ReDrafted struct{}

// Deleted is the payload of a DELETE event.
type Deleted struct{}

func (Created) EventType() EventType        { return EventTypeCreate }
func (TitleChanged) EventType() EventType   { return EventTypeChangeTitle }
func (ContentChanged) EventType() EventType { return EventTypeChangeContent }
func (Published) EventType() EventType      { return EventTypePublish }
func (Archived) EventType() EventType       { return EventTypeArchive }
func (ReDrafted) EventType() EventType      { return EventTypeReDraft }
func (Deleted) EventType() EventType        { return EventTypeDelete }

func (Created) isPayload()        {}
func (TitleChanged) isPayload()   {}
func (ContentChanged) isPayload() {}
func (Published) isPayload()      {}
func (Archived) isPayload()       {}
func (ReDrafted) isPayload()      {}
func (Deleted) isPayload()        {}

// Event is an immutable fact about one article.
type Event struct {
	ArticleID  ArticleID
	AuthorID   AuthorID
	Version    int
	OccurredAt time.Time
	Payload    Payload
}

// NewEvent builds an event stamped with the current time at microsecond
// precision, the resolution Postgres stores.
func NewEvent(articleID ArticleID, authorID AuthorID, version int, payload Payload) Event {
	return Event{
		ArticleID:  articleID,
		AuthorID:   authorID,
		Version:    version,
		OccurredAt: time.Now().UTC().Truncate(time.Microsecond),
		Payload:    payload,
	}
}

// Type returns the event type of the payload.
func (e Event) Type() EventType {
	return e.Payload.EventType()
}

// Equal reports whether two events carry the same envelope and payload.
func (e Event) Equal(other Event) bool {
	if e.ArticleID != other.ArticleID ||
		e.AuthorID != other.AuthorID ||
		e.Version != other.Version ||
		!e.OccurredAt.Equal(other.OccurredAt) {
		return false
	}
	return payloadEqual(e.Payload, other.Payload)
}

func payloadEqual(a, b Payload) bool {
	switch pa := a.(type) {
	case Created:
		pb, ok := b.(Created)
		return ok && pa.Title.Equals(pb.Title) && pa.Content.Equals(pb.Content)
	case TitleChanged:
		pb, ok := b.(TitleChanged)
		return ok && pa.NewTitle.Equals(pb.NewTitle) && optionalEqual(pa.OldTitle, pb.OldTitle)
	case ContentChanged:
		pb, ok := b.(ContentChanged)
		return ok && pa.NewContent.Equals(pb.NewContent) && optionalEqual(pa.OldContent, pb.OldContent)
	case nil:
		return b == nil
	default:
		return b != nil && a.EventType() == b.EventType()
	}
}

func optionalEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
