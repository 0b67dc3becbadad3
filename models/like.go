package models

import "time"

// Like records that a user liked an article. One row per (article, user) pair;
// like totals are always counted from this table, never stored on the article.
type Like struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null;uniqueIndex:idx_likes_article_user"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_likes_article_user"`
	CreatedAt time.Time `json:"created_at"`
}
