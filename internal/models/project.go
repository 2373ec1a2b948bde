package models

import (
	"time"

	"gorm.io/datatypes"
)

type Project struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	Tags     datatypes.JSONSlice[string] `json:"tags"`
	CoverURL string                      `gorm:"size:500" json:"cover_url"`
	RepoURL  string                      `gorm:"size:500" json:"repo_url"`
	DemoURL  string                      `gorm:"size:500" json:"demo_url"`

	Featured bool `gorm:"default:false" json:"featured"`
	Position int  `gorm:"default:0" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
