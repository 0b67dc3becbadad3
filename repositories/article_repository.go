package repositories

import (
	"time"

	"gorm.io/gorm"

	"admin-panel-server/models"
)

// TimeWindow bounds a query by article creation time. Nil ends are open.
type TimeWindow struct {
	Start *time.Time
	End   *time.Time
}

type ArticleRepository interface {
	GetByID(id uint) (*models.Article, error)
	List(params models.ArticleListParams) ([]models.Article, int64, error)
	Update(article *models.Article) error
	Delete(id uint) error
	DeleteLikesByArticle(articleID uint) error
	CountLikes(articleID uint) (int64, error)

	Count(window TimeWindow) (int64, error)
	CountWithStatus(status models.ArticleStatus) (int64, error)
	SumViews(window TimeWindow) (int64, error)
	TotalLikes() (int64, error)
	CountByStatus(window TimeWindow) ([]models.StatusCount, error)
	CountByMonth(window TimeWindow) ([]models.MonthStat, error)
	TopByViews(window TimeWindow, limit int) ([]models.Article, error)
	Recent(limit int) ([]models.Article, error)
	ListLikeStats(window TimeWindow) ([]models.TopArticle, error)
	CountByAuthor(window TimeWindow, limit int) ([]models.AuthorStat, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").First(&article, id).Error
	return &article, err
}

func (r *articleRepository) List(params models.ArticleListParams) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Preload("Author")

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ? OR tags ILIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

func (r *articleRepository) DeleteLikesByArticle(articleID uint) error {
	return r.db.Where("article_id = ?", articleID).Delete(&models.Like{}).Error
}

func (r *articleRepository) CountLikes(articleID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.Like{}).Where("article_id = ?", articleID).Count(&total).Error
	return total, err
}

func (r *articleRepository) Count(window TimeWindow) (int64, error) {
	var total int64
	err := r.windowed(r.db.Model(&models.Article{}), window, "created_at").Count(&total).Error
	return total, err
}

func (r *articleRepository) CountWithStatus(status models.ArticleStatus) (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).Where("status = ?", status).Count(&total).Error
	return total, err
}

func (r *articleRepository) SumViews(window TimeWindow) (int64, error) {
	var total int64
	err := r.windowed(r.db.Model(&models.Article{}), window, "created_at").
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}

func (r *articleRepository) TotalLikes() (int64, error) {
	var total int64
	err := r.db.Model(&models.Like{}).Count(&total).Error
	return total, err
}

func (r *articleRepository) CountByStatus(window TimeWindow) ([]models.StatusCount, error) {
	var results []models.StatusCount
	err := r.windowed(r.db.Model(&models.Article{}), window, "created_at").
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&results).Error
	return results, err
}

// CountByMonth buckets article creation by calendar month (key "YYYY-MM"),
// ascending, with summed views per bucket.
func (r *articleRepository) CountByMonth(window TimeWindow) ([]models.MonthStat, error) {
	var results []models.MonthStat
	err := r.windowed(r.db.Model(&models.Article{}), window, "created_at").
		Select("to_char(created_at, 'YYYY-MM') AS month, COUNT(*) AS count, COALESCE(SUM(views), 0) AS total_views").
		Group("to_char(created_at, 'YYYY-MM')").
		Order("month asc").
		Scan(&results).Error
	return results, err
}

func (r *articleRepository) TopByViews(window TimeWindow, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.windowed(r.db.Preload("Author"), window, "created_at").
		Order("views desc").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Recent(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").
		Order("created_at desc").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

// ListLikeStats returns every article in the window with its like count. The
// result is deliberately unordered by likes: ranking by a counted quantity is
// the caller's job.
func (r *articleRepository) ListLikeStats(window TimeWindow) ([]models.TopArticle, error) {
	var results []models.TopArticle
	query := `
		SELECT
			a.id,
			a.title,
			a.views,
			a.status,
			a.created_at,
			u.username AS author,
			COUNT(l.id) AS likes
		FROM articles a
		JOIN users u ON u.id = a.author_id
		LEFT JOIN likes l ON l.article_id = a.id
		WHERE (?::timestamptz IS NULL OR a.created_at >= ?)
		  AND (?::timestamptz IS NULL OR a.created_at <= ?)
		GROUP BY a.id, a.title, a.views, a.status, a.created_at, u.username
	`
	err := r.db.Raw(query, window.Start, window.Start, window.End, window.End).Scan(&results).Error
	return results, err
}

func (r *articleRepository) CountByAuthor(window TimeWindow, limit int) ([]models.AuthorStat, error) {
	var results []models.AuthorStat
	query := `
		SELECT
			a.author_id AS author_id,
			u.username AS author_name,
			u.email AS author_email,
			COUNT(*) AS article_count,
			COALESCE(SUM(a.views), 0) AS total_views
		FROM articles a
		JOIN users u ON u.id = a.author_id
		WHERE (?::timestamptz IS NULL OR a.created_at >= ?)
		  AND (?::timestamptz IS NULL OR a.created_at <= ?)
		GROUP BY a.author_id, u.username, u.email
		ORDER BY article_count DESC
		LIMIT ?
	`
	err := r.db.Raw(query, window.Start, window.Start, window.End, window.End, limit).Scan(&results).Error
	return results, err
}

func (r *articleRepository) windowed(query *gorm.DB, window TimeWindow, column string) *gorm.DB {
	if window.Start != nil {
		query = query.Where(column+" >= ?", *window.Start)
	}
	if window.End != nil {
		query = query.Where(column+" <= ?", *window.End)
	}
	return query
}
