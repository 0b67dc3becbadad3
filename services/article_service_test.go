package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"admin-panel-server/models"
)

type articleFixture struct {
	articleRepo *fakeArticleRepo
	commentRepo *fakeCommentRepo
	images      *fakeImageStorage
	svc         ArticleService
}

func newArticleFixture() *articleFixture {
	f := &articleFixture{
		articleRepo: newFakeArticleRepo(),
		commentRepo: newFakeCommentRepo(),
		images:      &fakeImageStorage{},
	}
	f.svc = NewArticleService(f.articleRepo, f.commentRepo, f.images, zap.NewNop())
	return f
}

const testBaseURL = "http://localhost:4000"

func TestGetArticleBuildsView(t *testing.T) {
	f := newArticleFixture()
	article := f.articleRepo.add(models.Article{
		Title:   "Go Concurrency",
		Content: "About goroutines",
		Tags:    models.TagList{"go", "concurrency"},
		Status:  models.StatusPublished,
		Views:   120,
		Author:  models.User{Username: "alice"},
		Image:   models.ArticleImage{Key: "blob-1", Filename: "gopher.png", MimeType: "image/png"},
	})
	f.articleRepo.likes[article.ID] = 4
	f.commentRepo.counts[article.ID] = 7

	view, err := f.svc.Get(article.ID, testBaseURL)
	require.NoError(t, err)

	assert.Equal(t, "Go Concurrency", view.Title)
	assert.EqualValues(t, 4, view.LikesCount)
	assert.EqualValues(t, 7, view.CommentCount)
	assert.Equal(t, "http://localhost:4000/api/articles/1/image", view.ImageURL)
}

func TestGetArticleWithoutImageHasNoURL(t *testing.T) {
	f := newArticleFixture()
	article := f.articleRepo.add(models.Article{Title: "Plain", Content: "text", Status: models.StatusDraft})

	view, err := f.svc.Get(article.ID, testBaseURL)
	require.NoError(t, err)

	assert.Empty(t, view.ImageURL)
	assert.NotNil(t, view.Tags)
	assert.Empty(t, view.Tags)
}

func TestGetArticleNotFound(t *testing.T) {
	f := newArticleFixture()

	_, err := f.svc.Get(42, testBaseURL)

	var nfErr models.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "Article not found", err.Error())
}

func TestUpdateArticleIsPartial(t *testing.T) {
	f := newArticleFixture()
	article := f.articleRepo.add(models.Article{
		Title:   "Original",
		Content: "Original content",
		Status:  models.StatusDraft,
	})

	newTitle := "Revised"
	newStatus := models.StatusPublished
	view, err := f.svc.Update(article.ID, models.UpdateArticleRequest{
		Title:  &newTitle,
		Status: &newStatus,
	}, testBaseURL)
	require.NoError(t, err)

	assert.Equal(t, "Revised", view.Title)
	assert.Equal(t, models.StatusPublished, view.Status)
	assert.Equal(t, "Original content", view.Content)
}

func TestDeleteArticleCascades(t *testing.T) {
	f := newArticleFixture()
	article := f.articleRepo.add(models.Article{
		Title:  "Doomed",
		Image:  models.ArticleImage{Key: "blob-9"},
		Status: models.StatusPublished,
	})
	f.articleRepo.likes[article.ID] = 3
	f.commentRepo.counts[article.ID] = 2

	require.NoError(t, f.svc.Delete(context.Background(), article.ID))

	assert.Contains(t, f.commentRepo.deleted, article.ID)
	assert.Contains(t, f.articleRepo.deletedLikes, article.ID)
	assert.Contains(t, f.articleRepo.deletedIDs, article.ID)
	assert.Contains(t, f.images.deletedKeys, "blob-9")

	_, err := f.articleRepo.GetByID(article.ID)
	assert.Error(t, err)
}

func TestDeleteArticleSurvivesBlobReleaseFailure(t *testing.T) {
	f := newArticleFixture()
	f.images.deleteErr = errors.New("bucket unavailable")
	article := f.articleRepo.add(models.Article{
		Title: "Doomed",
		Image: models.ArticleImage{Key: "blob-9"},
	})

	require.NoError(t, f.svc.Delete(context.Background(), article.ID))

	assert.Contains(t, f.articleRepo.deletedIDs, article.ID)
}

func TestDeleteArticleNotFound(t *testing.T) {
	f := newArticleFixture()

	err := f.svc.Delete(context.Background(), 42)

	var nfErr models.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestListArticlesFiltersAndPaginates(t *testing.T) {
	f := newArticleFixture()
	now := time.Now()
	for i := 0; i < 15; i++ {
		status := models.StatusDraft
		if i%2 == 0 {
			status = models.StatusPublished
		}
		f.articleRepo.add(models.Article{
			Title:     "Article",
			Content:   "content",
			Status:    status,
			CreatedAt: now.Add(time.Duration(i) * time.Hour),
		})
	}

	views, pagination, err := f.svc.List(models.ArticleListParams{
		Page:   1,
		Limit:  5,
		Status: string(models.StatusPublished),
	}, testBaseURL)
	require.NoError(t, err)

	assert.Len(t, views, 5)
	assert.EqualValues(t, 8, pagination.Total)
	assert.Equal(t, 2, pagination.Pages)
}

func TestGetImageRef(t *testing.T) {
	f := newArticleFixture()
	withImage := f.articleRepo.add(models.Article{Title: "A", Image: models.ArticleImage{Key: "blob-1"}})
	without := f.articleRepo.add(models.Article{Title: "B"})

	article, err := f.svc.GetImageRef(withImage.ID)
	require.NoError(t, err)
	assert.Equal(t, "blob-1", article.Image.Key)

	_, err = f.svc.GetImageRef(without.ID)
	var nfErr models.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "Image not found", err.Error())

	_, err = f.svc.GetImageRef(999)
	require.ErrorAs(t, err, &nfErr)
}
