package service

import (
	"context"
	"fmt"
	"log/slog"

	"blog-article-service/internal/domain"
	"blog-article-service/internal/logger"
	"blog-article-service/internal/metrics"
	"blog-article-service/internal/readmodel"
	"blog-article-service/internal/repository"
)

// Command names used for metrics and logs.
const (
	CommandCreate        = "create"
	CommandChangeTitle   = "change_title"
	CommandChangeContent = "change_content"
	CommandPublish       = "publish"
	CommandArchive       = "archive"
	CommandReDraft       = "re_draft"
	CommandDelete        = "delete"
)

// CreateArticleInput carries the raw values of a create request.
// ArticleID is optional; a new id is generated when it is empty.
type CreateArticleInput struct {
	ArticleID string
	AuthorID  string
	Title     string
	Content   string
}

// ArticleService runs article commands against the event store and
// answers queries from the read model.
type ArticleService struct {
	events repository.ArticleEventRepository
	reader ArticleReader
}

// NewArticleService creates a new ArticleService.
func NewArticleService(events repository.ArticleEventRepository, reader ArticleReader) *ArticleService {
	return &ArticleService{events: events, reader: reader}
}

// CreateArticle validates the input, rejects a title the author already
// uses and stores the CREATE event.
func (s *ArticleService) CreateArticle(ctx context.Context, input CreateArticleInput) (id domain.ArticleID, err error) {
	defer func() { metrics.ObserveCommand(CommandCreate, err) }()

	title, err := domain.NewTitle(input.Title)
	if err != nil {
		return domain.ArticleID{}, err
	}
	content, err := domain.NewContent(input.Content)
	if err != nil {
		return domain.ArticleID{}, err
	}
	authorID, err := domain.ParseAuthorID(input.AuthorID)
	if err != nil {
		return domain.ArticleID{}, err
	}

	id = domain.NewArticleID()
	if input.ArticleID != "" {
		if id, err = domain.ParseArticleID(input.ArticleID); err != nil {
			return domain.ArticleID{}, err
		}
	}

	if err := s.ensureUniqueTitle(ctx, authorID, title); err != nil {
		return domain.ArticleID{}, err
	}

	article := domain.CreateArticle(id, authorID, title, content)
	if err := s.events.Create(ctx, article); err != nil {
		return domain.ArticleID{}, fmt.Errorf("create article: %w", err)
	}

	logger.WithArticleID(id.String()).InfoContext(ctx, "Article created",
		slog.String("author_id", authorID.String()))
	return id, nil
}

// ChangeTitle renames an article. An unchanged title stores nothing.
func (s *ArticleService) ChangeTitle(ctx context.Context, rawID, rawTitle string) (version int, err error) {
	defer func() { metrics.ObserveCommand(CommandChangeTitle, err) }()

	title, err := domain.NewTitle(rawTitle)
	if err != nil {
		return 0, err
	}

	return s.mutate(ctx, rawID, CommandChangeTitle, func(article *domain.Article) (bool, error) {
		current := article.CurrentTitle()
		if current != nil && current.Equals(title) {
			return false, nil
		}
		if err := s.ensureUniqueTitle(ctx, article.AuthorID(), title); err != nil {
			return false, err
		}
		return article.ChangeTitle(title), nil
	})
}

// ChangeContent replaces the body of an article. Unchanged content stores
// nothing.
func (s *ArticleService) ChangeContent(ctx context.Context, rawID, rawContent string) (version int, err error) {
	defer func() { metrics.ObserveCommand(CommandChangeContent, err) }()

	content, err := domain.NewContent(rawContent)
	if err != nil {
		return 0, err
	}

	return s.mutate(ctx, rawID, CommandChangeContent, func(article *domain.Article) (bool, error) {
		return article.ChangeContent(content), nil
	})
}

// Publish publishes an article.
func (s *ArticleService) Publish(ctx context.Context, rawID string) (version int, err error) {
	defer func() { metrics.ObserveCommand(CommandPublish, err) }()

	return s.mutate(ctx, rawID, CommandPublish, func(article *domain.Article) (bool, error) {
		if err := article.Publish(); err != nil {
			return false, err
		}
		return true, nil
	})
}

// Archive archives an article.
func (s *ArticleService) Archive(ctx context.Context, rawID string) (version int, err error) {
	defer func() { metrics.ObserveCommand(CommandArchive, err) }()

	return s.mutate(ctx, rawID, CommandArchive, func(article *domain.Article) (bool, error) {
		article.Archive()
		return true, nil
	})
}

// ReDraft moves an article back to draft.
func (s *ArticleService) ReDraft(ctx context.Context, rawID string) (version int, err error) {
	defer func() { metrics.ObserveCommand(CommandReDraft, err) }()

	return s.mutate(ctx, rawID, CommandReDraft, func(article *domain.Article) (bool, error) {
		article.ReDraft()
		return true, nil
	})
}

// DeleteArticle purges the event history of an article and queues its
// DELETE event. Deleting an unknown article does nothing.
func (s *ArticleService) DeleteArticle(ctx context.Context, rawID string) (err error) {
	defer func() { metrics.ObserveCommand(CommandDelete, err) }()

	id, err := domain.ParseArticleID(rawID)
	if err != nil {
		return err
	}

	article, err := s.events.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load article: %w", err)
	}
	if article == nil {
		logger.WithArticleID(id.String()).DebugContext(ctx, "Delete of unknown article ignored")
		return nil
	}

	if err := s.events.Delete(ctx, article.NewDeleteEvent()); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	logger.WithArticleID(id.String()).InfoContext(ctx, "Article deleted")
	return nil
}

// SearchArticles returns the read models of ids. Unknown and malformed
// ids are omitted.
func (s *ArticleService) SearchArticles(ctx context.Context, ids []string) ([]readmodel.Article, error) {
	valid := make([]string, 0, len(ids))
	for _, raw := range ids {
		id, err := domain.ParseArticleID(raw)
		if err != nil {
			continue
		}
		valid = append(valid, id.String())
	}
	return s.reader.FindManyByIDs(ctx, valid)
}

// ListArticlesByStatus lists the articles currently in status.
func (s *ArticleService) ListArticlesByStatus(ctx context.Context, status string) ([]readmodel.StatusListing, error) {
	if !domain.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	return s.reader.ListByStatus(ctx, domain.ArticleStatus(status))
}

func (s *ArticleService) ensureUniqueTitle(ctx context.Context, authorID domain.AuthorID, title domain.Title) error {
	duplicate, err := s.events.CheckDuplicate(ctx, authorID, title.String())
	if err != nil {
		return fmt.Errorf("check duplicate title: %w", err)
	}
	if duplicate {
		return fmt.Errorf("%w: author already has an article titled %q", domain.ErrConflict, title.String())
	}
	return nil
}

// mutate loads an article, runs command on it and appends the event it
// produced. command reports false when it produced no event.
func (s *ArticleService) mutate(ctx context.Context, rawID, name string, command func(*domain.Article) (bool, error)) (int, error) {
	id, err := domain.ParseArticleID(rawID)
	if err != nil {
		return 0, err
	}

	article, err := s.events.FindByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("load article: %w", err)
	}
	if article == nil {
		return 0, fmt.Errorf("%w: article %s", domain.ErrNotFound, id)
	}

	changed, err := command(article)
	if err != nil {
		return 0, err
	}
	if !changed {
		return article.Version(), nil
	}

	if err := s.events.Append(ctx, article); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	logger.WithArticleID(id.String()).InfoContext(ctx, "Article updated",
		slog.String("command", name),
		slog.Int("version", article.Version()))
	return article.Version(), nil
}
