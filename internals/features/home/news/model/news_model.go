package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NewsModel struct {
	NewsID            uuid.UUID                   `gorm:"column:news_id;primaryKey;type:uuid"`
	NewsTitle         string                      `gorm:"column:news_title;type:varchar(255);not null"`
	NewsTitleLocal    *string                     `gorm:"column:news_title_local;type:varchar(255)"`
	NewsSlug          string                      `gorm:"column:news_slug;type:varchar(255);not null;uniqueIndex"`
	NewsExcerpt       string                      `gorm:"column:news_excerpt;type:text"`
	NewsContent       string                      `gorm:"column:news_content;type:text;not null"`
	NewsFeaturedImage *string                     `gorm:"column:news_featured_image;type:text"`
	NewsCategory      string                      `gorm:"column:news_category;type:varchar(100);index"`
	NewsTags          datatypes.JSONSlice[string] `gorm:"column:news_tags"`
	NewsAuthor        string                      `gorm:"column:news_author;type:varchar(150)"`
	NewsFeatured      bool                        `gorm:"column:news_featured;not null;default:false"`
	NewsPublished     bool                        `gorm:"column:news_published;not null;default:false;index"`
	NewsPublishedAt   time.Time                   `gorm:"column:news_published_at;index"`
	NewsCreatedAt     time.Time                   `gorm:"column:news_created_at;autoCreateTime"`
	NewsUpdatedAt     time.Time                   `gorm:"column:news_updated_at;autoUpdateTime"`
}

func (NewsModel) TableName() string {
	return "news"
}

func (m *NewsModel) BeforeCreate(tx *gorm.DB) error {
	if m.NewsID == uuid.Nil {
		m.NewsID = uuid.New()
	}
	if m.NewsPublishedAt.IsZero() {
		m.NewsPublishedAt = time.Now()
	}
	return nil
}
