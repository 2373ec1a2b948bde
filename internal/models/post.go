package models

import "time"

type Post struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title string `gorm:"size:200;not null" json:"title"`
	Slug  string `gorm:"size:200;uniqueIndex;not null" json:"slug"`

	// Conteúdo em markdown
	Content  string `gorm:"type:text" json:"content"`
	Excerpt  string `gorm:"size:500" json:"excerpt"`
	CoverURL string `gorm:"size:500" json:"cover_url"`

	Published   bool       `gorm:"default:false" json:"published"`
	PublishedAt *time.Time `json:"published_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
