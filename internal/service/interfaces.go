package service

import (
	"context"

	"blog-article-service/internal/domain"
	"blog-article-service/internal/readmodel"
)

// ArticleReader is the query side the service reads from.
type ArticleReader interface {
	FindManyByIDs(ctx context.Context, ids []string) ([]readmodel.Article, error)
	ListByStatus(ctx context.Context, status domain.ArticleStatus) ([]readmodel.StatusListing, error)
}

// ArticleServiceInterface defines the article use cases.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// CreateArticle creates a draft article and returns its id.
	CreateArticle(ctx context.Context, input CreateArticleInput) (domain.ArticleID, error)
	// ChangeTitle renames an article. Returns the resulting version.
	ChangeTitle(ctx context.Context, id, title string) (int, error)
	// ChangeContent replaces the body of an article. Returns the resulting version.
	ChangeContent(ctx context.Context, id, content string) (int, error)
	// Publish publishes an article.
	Publish(ctx context.Context, id string) (int, error)
	// Archive archives an article.
	Archive(ctx context.Context, id string) (int, error)
	// ReDraft moves an article back to draft.
	ReDraft(ctx context.Context, id string) (int, error)
	// DeleteArticle removes an article. Unknown ids are ignored.
	DeleteArticle(ctx context.Context, id string) error
	// SearchArticles returns the read models of the given ids.
	SearchArticles(ctx context.Context, ids []string) ([]readmodel.Article, error)
	// ListArticlesByStatus lists the articles in one status.
	ListArticlesByStatus(ctx context.Context, status string) ([]readmodel.StatusListing, error)
}
