package domain

// ArticleStatus is the publication state shown by the read side.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []ArticleStatus{StatusDraft, StatusPublished, StatusArchived}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}
