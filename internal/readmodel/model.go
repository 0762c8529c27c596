// Package readmodel maintains the denormalized article view in Redis.
//
// Every article is stored as JSON under article:<id>. The set articles:all
// holds the record keys, and articles:status:<status> is a hash of
// id -> {title, updatedAt} used for status listings.
package readmodel

import (
	"blog-article-service/internal/domain"
)

// AllArticlesKey is the set of every projected record key.
const AllArticlesKey = "articles:all"

// Article is the query-side representation of one article.
type Article struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Content     string               `json:"content"`
	AuthorID    string               `json:"authorId"`
	Status      domain.ArticleStatus `json:"status"`
	Version     int                  `json:"version"`
	CreatedAt   string               `json:"createdAt"`
	UpdatedAt   string               `json:"updatedAt"`
	PublishedAt *string              `json:"publishedAt,omitempty"`
}

// StatusEntry is the value stored in a status hash.
type StatusEntry struct {
	Title     string `json:"title"`
	UpdatedAt string `json:"updatedAt"`
}

// StatusListing is one row of a status listing.
type StatusListing struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	UpdatedAt string `json:"updatedAt"`
}

// ArticleKey returns the record key of an article.
func ArticleKey(id string) string {
	return "article:" + id
}

// StatsKey returns the per-article statistics key.
func StatsKey(id string) string {
	return "article:" + id + ":stats"
}

// StatusKey returns the hash key listing articles in status.
func StatusKey(status domain.ArticleStatus) string {
	return "articles:status:" + string(status)
}
