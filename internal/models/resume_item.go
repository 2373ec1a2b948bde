package models

import (
	"time"

	"gorm.io/datatypes"
)

// Tipos de item de currículo. Cada tipo tem um esquema próprio de conteúdo,
// validado na borda antes da persistência (ver handlers).
const (
	ResumeTypeExperience    = "experience"
	ResumeTypeEducation     = "education"
	ResumeTypeSkill         = "skill"
	ResumeTypeCertification = "certification"
)

type ResumeItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Type     string         `gorm:"size:30;not null;index" json:"type"`
	Content  datatypes.JSON `json:"content"`
	Position int            `gorm:"default:0" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Esquemas por variante

type ResumeExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type ResumeEducation struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type ResumeSkill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type ResumeCertification struct {
	Name     string `json:"name"`
	Issuer   string `json:"issuer"`
	IssuedAt string `json:"issued_at"`
	URL      string `json:"url"`
}
