package repositories

import (
	"admin-panel-server/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	CountByArticle(articleID uint) (int64, error)
	CountActive() (int64, error)
	DeleteByArticle(articleID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CountByArticle(articleID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.Comment{}).
		Where("article_id = ? AND is_deleted = ?", articleID, false).
		Count(&total).Error
	return total, err
}

func (r *commentRepository) CountActive() (int64, error) {
	var total int64
	err := r.db.Model(&models.Comment{}).
		Where("is_deleted = ?", false).
		Count(&total).Error
	return total, err
}

// DeleteByArticle removes every comment referencing the article, soft-deleted
// ones included.
func (r *commentRepository) DeleteByArticle(articleID uint) error {
	return r.db.Where("article_id = ?", articleID).Delete(&models.Comment{}).Error
}
