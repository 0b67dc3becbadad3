package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	"admin-panel-server/models"
	"admin-panel-server/repositories"
	"admin-panel-server/storage"
)

// In-memory stand-ins for the repository and storage interfaces. They mimic
// the store closely enough for service behavior: not-found maps to
// gorm.ErrRecordNotFound and unique collisions to gorm.ErrDuplicatedKey.

type fakeUserRepo struct {
	users     map[uint]*models.User
	nextID    uint
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) add(user models.User) *models.User {
	if user.ID == 0 {
		user.ID = f.nextID
	}
	if user.ID >= f.nextID {
		f.nextID = user.ID + 1
	}
	f.users[user.ID] = &user
	return &user
}

func (f *fakeUserRepo) Create(user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(user *models.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) List(params models.UserListParams, roles []models.UserRole) ([]models.User, int64, error) {
	allowed := map[models.UserRole]bool{}
	for _, role := range roles {
		allowed[role] = true
	}

	var matched []models.User
	for _, user := range f.users {
		if !allowed[user.Role] {
			continue
		}
		if params.IsActive != nil && user.IsActive != *params.IsActive {
			continue
		}
		if params.Search != "" {
			needle := strings.ToLower(params.Search)
			if !strings.Contains(strings.ToLower(user.Username), needle) &&
				!strings.Contains(strings.ToLower(user.Email), needle) {
				continue
			}
		}
		matched = append(matched, *user)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	offset := (params.Page - 1) * params.Limit
	if offset >= len(matched) {
		return []models.User{}, total, nil
	}
	end := offset + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeUserRepo) CountAll() (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountActive() (int64, error) {
	var total int64
	for _, user := range f.users {
		if user.IsActive {
			total++
		}
	}
	return total, nil
}

type fakeArticleRepo struct {
	articles     map[uint]*models.Article
	likes        map[uint]int64
	nextID       uint
	deletedIDs   []uint
	deletedLikes []uint
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles: map[uint]*models.Article{},
		likes:    map[uint]int64{},
		nextID:   1,
	}
}

func (f *fakeArticleRepo) add(article models.Article) *models.Article {
	if article.ID == 0 {
		article.ID = f.nextID
	}
	if article.ID >= f.nextID {
		f.nextID = article.ID + 1
	}
	f.articles[article.ID] = &article
	return &article
}

func (f *fakeArticleRepo) sorted() []models.Article {
	result := make([]models.Article, 0, len(f.articles))
	for _, article := range f.articles {
		result = append(result, *article)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (f *fakeArticleRepo) inWindow(article models.Article, window repositories.TimeWindow) bool {
	if window.Start != nil && article.CreatedAt.Before(*window.Start) {
		return false
	}
	if window.End != nil && article.CreatedAt.After(*window.End) {
		return false
	}
	return true
}

func (f *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	article, ok := f.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *article
	return &copied, nil
}

func (f *fakeArticleRepo) List(params models.ArticleListParams) ([]models.Article, int64, error) {
	var matched []models.Article
	for _, article := range f.sorted() {
		if params.Status != "" && string(article.Status) != params.Status {
			continue
		}
		if params.AuthorID > 0 && article.AuthorID != params.AuthorID {
			continue
		}
		if params.Search != "" {
			needle := strings.ToLower(params.Search)
			if !strings.Contains(strings.ToLower(article.Title), needle) &&
				!strings.Contains(strings.ToLower(article.Content), needle) {
				continue
			}
		}
		matched = append(matched, article)
	}

	total := int64(len(matched))
	offset := (params.Page - 1) * params.Limit
	if offset >= len(matched) {
		return []models.Article{}, total, nil
	}
	end := offset + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeArticleRepo) Update(article *models.Article) error {
	stored := *article
	f.articles[article.ID] = &stored
	return nil
}

func (f *fakeArticleRepo) Delete(id uint) error {
	delete(f.articles, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeArticleRepo) DeleteLikesByArticle(articleID uint) error {
	delete(f.likes, articleID)
	f.deletedLikes = append(f.deletedLikes, articleID)
	return nil
}

func (f *fakeArticleRepo) CountLikes(articleID uint) (int64, error) {
	return f.likes[articleID], nil
}

func (f *fakeArticleRepo) Count(window repositories.TimeWindow) (int64, error) {
	var total int64
	for _, article := range f.articles {
		if f.inWindow(*article, window) {
			total++
		}
	}
	return total, nil
}

func (f *fakeArticleRepo) CountWithStatus(status models.ArticleStatus) (int64, error) {
	var total int64
	for _, article := range f.articles {
		if article.Status == status {
			total++
		}
	}
	return total, nil
}

func (f *fakeArticleRepo) SumViews(window repositories.TimeWindow) (int64, error) {
	var total int64
	for _, article := range f.articles {
		if f.inWindow(*article, window) {
			total += article.Views
		}
	}
	return total, nil
}

func (f *fakeArticleRepo) TotalLikes() (int64, error) {
	var total int64
	for _, likes := range f.likes {
		total += likes
	}
	return total, nil
}

func (f *fakeArticleRepo) CountByStatus(window repositories.TimeWindow) ([]models.StatusCount, error) {
	counts := map[string]int64{}
	for _, article := range f.articles {
		if f.inWindow(*article, window) {
			counts[string(article.Status)]++
		}
	}
	var results []models.StatusCount
	for status, count := range counts {
		results = append(results, models.StatusCount{Status: status, Count: count})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Status < results[j].Status })
	return results, nil
}

func (f *fakeArticleRepo) CountByMonth(window repositories.TimeWindow) ([]models.MonthStat, error) {
	buckets := map[string]*models.MonthStat{}
	for _, article := range f.articles {
		if !f.inWindow(*article, window) {
			continue
		}
		month := article.CreatedAt.Format("2006-01")
		bucket, ok := buckets[month]
		if !ok {
			bucket = &models.MonthStat{Month: month}
			buckets[month] = bucket
		}
		bucket.Count++
		bucket.TotalViews += article.Views
	}
	var results []models.MonthStat
	for _, bucket := range buckets {
		results = append(results, *bucket)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Month < results[j].Month })
	return results, nil
}

func (f *fakeArticleRepo) TopByViews(window repositories.TimeWindow, limit int) ([]models.Article, error) {
	var matched []models.Article
	for _, article := range f.sorted() {
		if f.inWindow(article, window) {
			matched = append(matched, article)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Views > matched[j].Views })
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeArticleRepo) Recent(limit int) ([]models.Article, error) {
	matched := f.sorted()
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeArticleRepo) ListLikeStats(window repositories.TimeWindow) ([]models.TopArticle, error) {
	var results []models.TopArticle
	for _, article := range f.sorted() {
		if !f.inWindow(article, window) {
			continue
		}
		results = append(results, models.TopArticle{
			ID:        article.ID,
			Title:     article.Title,
			Views:     article.Views,
			Likes:     f.likes[article.ID],
			Author:    article.Author.Username,
			Status:    article.Status,
			CreatedAt: article.CreatedAt,
		})
	}
	return results, nil
}

func (f *fakeArticleRepo) CountByAuthor(window repositories.TimeWindow, limit int) ([]models.AuthorStat, error) {
	stats := map[uint]*models.AuthorStat{}
	for _, article := range f.articles {
		if !f.inWindow(*article, window) {
			continue
		}
		stat, ok := stats[article.AuthorID]
		if !ok {
			stat = &models.AuthorStat{
				AuthorID:    article.AuthorID,
				AuthorName:  article.Author.Username,
				AuthorEmail: article.Author.Email,
			}
			stats[article.AuthorID] = stat
		}
		stat.ArticleCount++
		stat.TotalViews += article.Views
	}
	var results []models.AuthorStat
	for _, stat := range stats {
		results = append(results, *stat)
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].ArticleCount > results[j].ArticleCount })
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

type fakeCommentRepo struct {
	counts  map[uint]int64
	deleted []uint
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{counts: map[uint]int64{}}
}

func (f *fakeCommentRepo) CountByArticle(articleID uint) (int64, error) {
	return f.counts[articleID], nil
}

func (f *fakeCommentRepo) CountActive() (int64, error) {
	var total int64
	for _, count := range f.counts {
		total += count
	}
	return total, nil
}

func (f *fakeCommentRepo) DeleteByArticle(articleID uint) error {
	delete(f.counts, articleID)
	f.deleted = append(f.deleted, articleID)
	return nil
}

type fakeImageStorage struct {
	deleteErr   error
	deletedKeys []string
}

func (f *fakeImageStorage) Get(ctx context.Context, key string) (*storage.Object, error) {
	return nil, errors.New("no object stored")
}

func (f *fakeImageStorage) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedKeys = append(f.deletedKeys, key)
	return nil
}
