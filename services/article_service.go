package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"admin-panel-server/helper"
	"admin-panel-server/models"
	"admin-panel-server/repositories"
	"admin-panel-server/storage"
)

type ArticleService interface {
	List(params models.ArticleListParams, baseURL string) ([]models.ArticleView, models.Pagination, error)
	Get(id uint, baseURL string) (*models.ArticleView, error)
	Update(id uint, req models.UpdateArticleRequest, baseURL string) (*models.ArticleView, error)
	Delete(ctx context.Context, id uint) error
	GetImageRef(id uint) (*models.Article, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	commentRepo repositories.CommentRepository
	images      storage.ImageStorage
	lg          *zap.Logger
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	commentRepo repositories.CommentRepository,
	images storage.ImageStorage,
	lg *zap.Logger,
) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		images:      images,
		lg:          lg,
	}
}

func (s *articleService) List(params models.ArticleListParams, baseURL string) ([]models.ArticleView, models.Pagination, error) {
	params.Page, params.Limit = helper.ClampPaging(params.Page, params.Limit)

	articles, total, err := s.articleRepo.List(params)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	views := make([]models.ArticleView, 0, len(articles))
	for i := range articles {
		view, err := s.buildView(&articles[i], baseURL)
		if err != nil {
			return nil, models.Pagination{}, err
		}
		views = append(views, *view)
	}

	return views, helper.NewPagination(params.Page, params.Limit, total), nil
}

func (s *articleService) Get(id uint, baseURL string) (*models.ArticleView, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError{Resource: "Article"}
		}
		return nil, err
	}

	return s.buildView(article, baseURL)
}

// Update applies a partial edit to title, content, tags and status. Fields
// absent from the request are left untouched.
func (s *articleService) Update(id uint, req models.UpdateArticleRequest, baseURL string) (*models.ArticleView, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError{Resource: "Article"}
		}
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Tags != nil {
		article.Tags = *req.Tags
	}
	if req.Status != nil {
		article.Status = *req.Status
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return s.buildView(article, baseURL)
}

// Delete cascades: comments and likes are removed first, then the image blob
// is released best-effort, then the article row goes. A failed blob release
// is logged and never blocks the delete.
func (s *articleService) Delete(ctx context.Context, id uint) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFoundError{Resource: "Article"}
		}
		return err
	}

	if err := s.commentRepo.DeleteByArticle(id); err != nil {
		return fmt.Errorf("delete comments for article %d: %w", id, err)
	}

	if err := s.articleRepo.DeleteLikesByArticle(id); err != nil {
		return fmt.Errorf("delete likes for article %d: %w", id, err)
	}

	if article.HasImage() {
		if err := s.images.Delete(ctx, article.Image.Key); err != nil {
			s.lg.Warn("failed to release article image",
				zap.Uint("article_id", id),
				zap.String("key", article.Image.Key),
				zap.Error(err),
			)
		}
	}

	return s.articleRepo.Delete(id)
}

func (s *articleService) GetImageRef(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError{Resource: "Image"}
		}
		return nil, err
	}

	if !article.HasImage() {
		return nil, models.NotFoundError{Resource: "Image"}
	}

	return article, nil
}

func (s *articleService) buildView(article *models.Article, baseURL string) (*models.ArticleView, error) {
	commentCount, err := s.commentRepo.CountByArticle(article.ID)
	if err != nil {
		return nil, err
	}

	likesCount, err := s.articleRepo.CountLikes(article.ID)
	if err != nil {
		return nil, err
	}

	view := &models.ArticleView{
		ID:           article.ID,
		Title:        article.Title,
		Content:      article.Content,
		Tags:         article.Tags,
		Status:       article.Status,
		Views:        article.Views,
		LikesCount:   likesCount,
		CommentCount: commentCount,
		Author:       &article.Author,
		Image:        article.Image,
		CreatedAt:    article.CreatedAt,
		UpdatedAt:    article.UpdatedAt,
	}

	if view.Tags == nil {
		view.Tags = models.TagList{}
	}

	if article.HasImage() {
		view.ImageURL = fmt.Sprintf("%s/api/articles/%d/image", baseURL, article.ID)
	}

	return view, nil
}
