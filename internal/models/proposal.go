package models

import (
	"time"

	"gorm.io/datatypes"
)

type TimelineStep struct {
	Step   string `json:"step"`
	Period string `json:"period"`
}

type Proposal struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName string `gorm:"size:150;not null" json:"client_name"`
	Slug       string `gorm:"size:120;uniqueIndex;not null" json:"slug"`

	Objective string                               `gorm:"type:text" json:"objective"`
	Scope     datatypes.JSONSlice[string]          `json:"scope"`
	Timeline  datatypes.JSONSlice[TimelineStep]    `json:"timeline"`

	DeliveryDate    *time.Time `json:"delivery_date"`
	InvestmentValue float64    `gorm:"not null;default:0" json:"investment_value"`

	PaymentMethods      datatypes.JSONSlice[string] `json:"payment_methods"`
	CustomPaymentMethod string                      `gorm:"size:150" json:"custom_payment_method"`

	Conditions      datatypes.JSONSlice[string] `json:"conditions"`
	RescisionPolicy string                      `gorm:"type:text" json:"rescision_policy"`

	AcceptedAt         *time.Time `json:"accepted_at"`
	AcceptedByName     string     `gorm:"size:150" json:"accepted_by_name"`
	AcceptedByDocument string     `gorm:"size:20" json:"accepted_by_document"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
