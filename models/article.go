package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// TagList stores an ordered list of tag strings as a JSON text column.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	return json.Marshal(t)
}

func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = TagList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return errors.New("unsupported type for TagList")
	}
}

// ArticleImage references an image blob held in object storage.
// A zero Key means the article has no image.
type ArticleImage struct {
	Key      string `json:"file_id,omitempty"`
	Filename string `json:"filename,omitempty"`
	MimeType string `json:"mimetype,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

type Article struct {
	ID        uint          `json:"id" gorm:"primarykey"`
	Title     string        `json:"title" gorm:"not null;size:200"`
	Content   string        `json:"content" gorm:"type:text;not null"`
	Tags      TagList       `json:"tags" gorm:"type:text"`
	AuthorID  uint          `json:"author_id" gorm:"not null;index:idx_articles_author_created"`
	Author    User          `json:"author" gorm:"foreignKey:AuthorID"`
	Status    ArticleStatus `json:"status" gorm:"default:'draft';index:idx_articles_status_created"`
	Views     int64         `json:"views" gorm:"default:0"`
	Image     ArticleImage  `json:"image" gorm:"embedded;embeddedPrefix:image_"`
	CreatedAt time.Time     `json:"created_at" gorm:"index:idx_articles_author_created;index:idx_articles_status_created"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// HasImage reports whether the article references a stored image blob.
func (a *Article) HasImage() bool {
	return a.Image.Key != ""
}
