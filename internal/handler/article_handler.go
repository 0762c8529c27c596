package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-article-service/internal/readmodel"
	"blog-article-service/internal/service"
	"blog-article-service/internal/validator"
)

// ArticleHandler handles article HTTP requests.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
	validator      *validator.Validator
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface, v *validator.Validator) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		validator:      v,
	}
}

// RegisterRoutes mounts the article routes on group.
func (h *ArticleHandler) RegisterRoutes(group *gin.RouterGroup) {
	articles := group.Group("/articles")
	articles.POST("", h.CreateArticle)
	articles.GET("", h.SearchArticles)
	articles.GET("/status/:status", h.ListByStatus)
	articles.PATCH("/:id/title", h.ChangeTitle)
	articles.PATCH("/:id/content", h.ChangeContent)
	articles.POST("/:id/publish", h.Publish)
	articles.POST("/:id/archive", h.Archive)
	articles.POST("/:id/redraft", h.ReDraft)
	articles.DELETE("/:id", h.DeleteArticle)
}

// CreateArticleResponse is returned by a successful create.
type CreateArticleResponse struct {
	ID string `json:"id"`
}

// CommandResponse is returned by update commands.
type CommandResponse struct {
	ID      string `json:"id"`
	Version int    `json:"version"`
}

// SearchResponse wraps the articles found by a search.
type SearchResponse struct {
	Articles []readmodel.Article `json:"articles"`
}

// ListResponse wraps a status listing.
type ListResponse struct {
	Status   string                    `json:"status"`
	Articles []readmodel.StatusListing `json:"articles"`
}

// CreateArticle handles POST /api/v1/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req validator.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body must be a JSON object"})
		return
	}
	if err := h.validator.ValidateCreateArticle(&req); err != nil {
		respondInvalid(c, "body", err)
		return
	}

	id, err := h.articleService.CreateArticle(c.Request.Context(), service.CreateArticleInput{
		ArticleID: req.ID,
		AuthorID:  req.AuthorID,
		Title:     req.Title,
		Content:   req.Content,
	})
	if err != nil {
		respondError(c, err, "create article")
		return
	}

	c.JSON(http.StatusCreated, CreateArticleResponse{ID: id.String()})
}

// SearchArticles handles GET /api/v1/articles?ids=a,b or ?ids=a&ids=b
func (h *ArticleHandler) SearchArticles(c *gin.Context) {
	ids := splitIDs(c.QueryArray("ids"))
	if err := h.validator.ValidateSearchIDs(ids); err != nil {
		respondInvalid(c, "ids", err)
		return
	}

	articles, err := h.articleService.SearchArticles(c.Request.Context(), ids)
	if err != nil {
		respondError(c, err, "search articles")
		return
	}
	if articles == nil {
		articles = []readmodel.Article{}
	}

	c.JSON(http.StatusOK, SearchResponse{Articles: articles})
}

// ListByStatus handles GET /api/v1/articles/status/:status
func (h *ArticleHandler) ListByStatus(c *gin.Context) {
	status := c.Param("status")
	if err := h.validator.ValidateStatus(status); err != nil {
		respondInvalid(c, "status", err)
		return
	}

	listings, err := h.articleService.ListArticlesByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err, "list articles")
		return
	}
	if listings == nil {
		listings = []readmodel.StatusListing{}
	}

	c.JSON(http.StatusOK, ListResponse{Status: status, Articles: listings})
}

// ChangeTitle handles PATCH /api/v1/articles/:id/title
func (h *ArticleHandler) ChangeTitle(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	var req validator.ChangeTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body must be a JSON object"})
		return
	}
	if err := h.validator.ValidateChangeTitle(&req); err != nil {
		respondInvalid(c, "body", err)
		return
	}

	version, err := h.articleService.ChangeTitle(c.Request.Context(), id, req.Title)
	h.respondCommand(c, id, version, err, "change title")
}

// ChangeContent handles PATCH /api/v1/articles/:id/content
func (h *ArticleHandler) ChangeContent(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	var req validator.ChangeContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body must be a JSON object"})
		return
	}
	if err := h.validator.ValidateChangeContent(&req); err != nil {
		respondInvalid(c, "body", err)
		return
	}

	version, err := h.articleService.ChangeContent(c.Request.Context(), id, req.Content)
	h.respondCommand(c, id, version, err, "change content")
}

// Publish handles POST /api/v1/articles/:id/publish
func (h *ArticleHandler) Publish(c *gin.Context) {
	if id, ok := h.articleID(c); ok {
		version, err := h.articleService.Publish(c.Request.Context(), id)
		h.respondCommand(c, id, version, err, "publish article")
	}
}

// Archive handles POST /api/v1/articles/:id/archive
func (h *ArticleHandler) Archive(c *gin.Context) {
	if id, ok := h.articleID(c); ok {
		version, err := h.articleService.Archive(c.Request.Context(), id)
		h.respondCommand(c, id, version, err, "archive article")
	}
}

// ReDraft handles POST /api/v1/articles/:id/redraft
func (h *ArticleHandler) ReDraft(c *gin.Context) {
	if id, ok := h.articleID(c); ok {
		version, err := h.articleService.ReDraft(c.Request.Context(), id)
		h.respondCommand(c, id, version, err, "re-draft article")
	}
}

// DeleteArticle handles DELETE /api/v1/articles/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete article")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) articleID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if err := h.validator.ValidateArticleID(id); err != nil {
		respondInvalid(c, "id", err)
		return "", false
	}
	return id, true
}

func (h *ArticleHandler) respondCommand(c *gin.Context, id string, version int, err error, action string) {
	if err != nil {
		respondError(c, err, action)
		return
	}
	c.JSON(http.StatusOK, CommandResponse{ID: id, Version: version})
}

// splitIDs accepts both repeated and comma-separated ids.
func splitIDs(values []string) []string {
	var ids []string
	for _, value := range values {
		for _, id := range strings.Split(value, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
