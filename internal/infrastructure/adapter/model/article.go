package model

import (
	"time"
)

// Article represents the database model for CMS content
type Article struct {
	ID         string    `gorm:"primaryKey;size:64"`
	Title      string    `gorm:"size:255;not null"`
	Category   string    `gorm:"size:64"`
	Slug       string    `gorm:"size:255;not null;uniqueIndex:idx_articles_slug"`
	Body       string    `gorm:"type:text"`
	AuthorID   string    `gorm:"size:128;not null;index"`
	AuthorName string    `gorm:"size:255"`
	Status     string    `gorm:"size:16;not null;index"`
	CreatedAt  time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Article
func (Article) TableName() string {
	return "articles"
}
