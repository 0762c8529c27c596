package domain

import "time"

// OutboxStatus is the delivery state of an outbox record.
type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "PENDING"
	OutboxStatusSent    OutboxStatus = "SENT"
	OutboxStatusFailed  OutboxStatus = "FAILED"
)

// Outbox contexts tag which command produced a record.
const (
	OutboxContextCreate = "article-create"
	OutboxContextUpdate = "article-update"
	OutboxContextDelete = "article-delete"
)

// DefaultEventTopic is the broker topic article events are published to.
const DefaultEventTopic = "article-events"

// OutboxRecord is a pending broker delivery written in the same
// transaction as the event it carries.
type OutboxRecord struct {
	ID          string
	Context     string
	Topic       string
	Payload     []byte
	Status      OutboxStatus
	Attempts    int
	AvailableAt time.Time
	LastError   *string
	SentAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
