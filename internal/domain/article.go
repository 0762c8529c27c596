package domain

import (
	"fmt"
	"sort"
)

// Article is the event-sourced article aggregate. Its state is derived
// from the ordered list of events it has applied.
type Article struct {
	id       ArticleID
	authorID AuthorID
	events   []Event
}

// CreateArticle starts a new aggregate with a CREATE event at version 1.
func CreateArticle(id ArticleID, authorID AuthorID, title Title, content Content) *Article {
	a := &Article{id: id, authorID: authorID}
	// version 1 on an empty history cannot fail the gate
	_ = a.apply(NewEvent(id, authorID, 1, Created{Title: title, Content: content}))
	return a
}

// Rehydrate rebuilds an aggregate from its stored history. Events may be
// given in any order; they are replayed by ascending version.
func Rehydrate(events []Event) (*Article, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: cannot rehydrate article without events", ErrInconsistentStream)
	}

	ordered := make([]Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Version < ordered[j].Version
	})

	first := ordered[0]
	a := &Article{id: first.ArticleID, authorID: first.AuthorID}

	for _, e := range ordered {
		if e.ArticleID != a.id {
			return nil, fmt.Errorf("%w: Inconsistent Article ID in event stream", ErrInconsistentStream)
		}
		if e.AuthorID != a.authorID {
			return nil, fmt.Errorf("%w: Inconsistent Author ID in event stream", ErrInconsistentStream)
		}
		if err := a.apply(e); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// apply appends e after checking it continues the version sequence.
func (a *Article) apply(e Event) error {
	expected := len(a.events) + 1
	if e.Version != expected {
		return fmt.Errorf("%w: Invalid event version: expected %d, received %d", ErrInconsistentStream, expected, e.Version)
	}
	a.events = append(a.events, e)
	return nil
}

func (a *Article) next(payload Payload) {
	_ = a.apply(NewEvent(a.id, a.authorID, a.Version()+1, payload))
}

// ChangeTitle records a title change. It reports false and records
// nothing when the title is unchanged.
func (a *Article) ChangeTitle(newTitle Title) bool {
	current := a.CurrentTitle()
	if current != nil && current.Equals(newTitle) {
		return false
	}
	a.next(TitleChanged{OldTitle: current, NewTitle: newTitle})
	return true
}

// ChangeContent records a content change. It reports false and records
// nothing when the content is unchanged.
func (a *Article) ChangeContent(newContent Content) bool {
	current := a.CurrentContent()
	if current != nil && current.Equals(newContent) {
		return false
	}
	a.next(ContentChanged{OldContent: current, NewContent: newContent})
	return true
}

// Publish records a PUBLISH event. An article needs both a title and
// content to be published.
func (a *Article) Publish() error {
	if a.CurrentTitle() == nil || a.CurrentContent() == nil {
		return fmt.Errorf("%w: cannot publish article: title or content is missing", ErrBusinessRule)
	}
	a.next(Published{})
	return nil
}

// Archive records an ARCHIVE event.
func (a *Article) Archive() {
	a.next(Archived{})
}

// ReDraft records a RE_DRAFT event.
func (a *Article) ReDraft() {
	a.next(ReDrafted{})
}

// NewDeleteEvent returns the DELETE event that would follow the current
// history. The aggregate itself is not modified.
func (a *Article) NewDeleteEvent() Event {
	return NewEvent(a.id, a.authorID, a.Version()+1, Deleted{})
}

// ID returns the article id.
func (a *Article) ID() ArticleID { return a.id }

// AuthorID returns the id of the owning author.
func (a *Article) AuthorID() AuthorID { return a.authorID }

// Version returns the number of applied events.
func (a *Article) Version() int { return len(a.events) }

// Events returns a copy of the applied history.
func (a *Article) Events() []Event {
	out := make([]Event, len(a.events))
	copy(out, a.events)
	return out
}

// LatestEvent returns the most recently applied event.
func (a *Article) LatestEvent() (Event, bool) {
	if len(a.events) == 0 {
		return Event{}, false
	}
	return a.events[len(a.events)-1], true
}

// CurrentTitle returns the title set by the latest CREATE or CHANGE_TITLE
// event, or nil when no such event exists.
func (a *Article) CurrentTitle() *Title {
	for i := len(a.events) - 1; i >= 0; i-- {
		switch p := a.events[i].Payload.(type) {
		case Created:
			t := p.Title
			return &t
		case TitleChanged:
			t := p.NewTitle
			return &t
		}
	}
	return nil
}

// CurrentContent returns the content set by the latest CREATE or
// CHANGE_CONTENT event, or nil when no such event exists.
func (a *Article) CurrentContent() *Content {
	for i := len(a.events) - 1; i >= 0; i-- {
		switch p := a.events[i].Payload.(type) {
		case Created:
			c := p.Content
			return &c
		case ContentChanged:
			c := p.NewContent
			return &c
		}
	}
	return nil
}
