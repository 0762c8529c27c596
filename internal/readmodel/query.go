package readmodel

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"blog-article-service/internal/domain"
)

// Query reads article views from Redis.
type Query struct {
	client redis.Cmdable
}

// NewQuery creates a new Query.
func NewQuery(client redis.Cmdable) *Query {
	return &Query{client: client}
}

// FindManyByIDs returns the stored articles among ids, in request order.
// Unknown ids are omitted.
func (q *Query) FindManyByIDs(ctx context.Context, ids []string) ([]Article, error) {
	articles := make([]Article, 0, len(ids))
	if len(ids) == 0 {
		return articles, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = ArticleKey(id)
	}

	values, err := q.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("mget articles: %w", err)
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var article Article
		if err := json.Unmarshal([]byte(raw), &article); err != nil {
			return nil, fmt.Errorf("decode read model %s: %w", keys[i], err)
		}
		articles = append(articles, article)
	}
	return articles, nil
}

// ListByStatus returns the entries of one status bucket, most recently
// updated first.
func (q *Query) ListByStatus(ctx context.Context, status domain.ArticleStatus) ([]StatusListing, error) {
	fields, err := q.client.HGetAll(ctx, StatusKey(status)).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", StatusKey(status), err)
	}

	listings := make([]StatusListing, 0, len(fields))
	for id, raw := range fields {
		var entry StatusEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("decode status entry %s: %w", id, err)
		}
		listings = append(listings, StatusListing{ID: id, Title: entry.Title, UpdatedAt: entry.UpdatedAt})
	}

	sort.Slice(listings, func(i, j int) bool {
		ti, tj := parseTime(listings[i].UpdatedAt), parseTime(listings[j].UpdatedAt)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return listings[i].ID < listings[j].ID
	})
	return listings, nil
}

func parseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
