package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"admin-panel-server/helper"
	"admin-panel-server/models"
	"admin-panel-server/services"
	"admin-panel-server/storage"
)

type ArticleHandler struct {
	articleService services.ArticleService
	images         storage.ImageStorage
	Helper         *helper.HTTPHelper
	lg             *zap.Logger
}

func NewArticleHandler(articleService services.ArticleService, images storage.ImageStorage, h *helper.HTTPHelper, lg *zap.Logger) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, images: images, Helper: h, lg: lg}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendError(c, models.ValidationError{Message: "Invalid query parameters"})
		return
	}

	articles, pagination, err := h.articleService.List(params, helper.BaseURL(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":   articles,
		"pagination": pagination,
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendError(c, models.ValidationError{Message: "Invalid article ID"})
		return
	}

	article, err := h.articleService.Get(uint(id), helper.BaseURL(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendError(c, models.ValidationError{Message: "Invalid article ID"})
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendError(c, models.ValidationError{Message: err.Error()})
		return
	}

	article, err := h.articleService.Update(uint(id), req, helper.BaseURL(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Article updated successfully",
		"article": article,
	})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendError(c, models.ValidationError{Message: "Invalid article ID"})
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), uint(id)); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article and comments deleted successfully"})
}

// StreamImage serves the article's image blob without authentication. Once the
// body copy has started the headers are committed, so a mid-stream failure is
// only logged; a second response must never be written.
func (h *ArticleHandler) StreamImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendError(c, models.ValidationError{Message: "Invalid article ID"})
		return
	}

	article, err := h.articleService.GetImageRef(uint(id))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	obj, err := h.images.Get(c.Request.Context(), article.Image.Key)
	if err != nil {
		h.lg.Error("failed to open article image",
			zap.Uint64("article_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load image"})
		return
	}
	defer obj.Body.Close()

	mimeType := article.Image.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	c.Header("Content-Type", mimeType)
	c.Header("Cache-Control", "public, max-age=3600")
	c.Header("Content-Disposition", `inline; filename="`+helper.SafeFilename(article.Image.Filename)+`"`)
	if obj.ContentLength > 0 {
		c.Header("Content-Length", strconv.FormatInt(obj.ContentLength, 10))
	}
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, obj.Body); err != nil {
		h.lg.Error("failed to stream article image",
			zap.Uint64("article_id", id),
			zap.Error(err),
		)
	}
}
