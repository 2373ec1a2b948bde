package models

import "time"

type Checkout struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Link público imutável (16 caracteres alfanuméricos)
	UniqueLink string `gorm:"size:16;uniqueIndex;not null" json:"unique_link"`

	CustomerName        string `gorm:"size:150;not null" json:"customer_name"`
	CustomerEmail       string `gorm:"size:150" json:"customer_email"`
	CustomerCpfCnpj     string `gorm:"size:20;not null" json:"customer_cpf_cnpj"`
	CustomerMobilePhone string `gorm:"size:20;not null" json:"customer_mobile_phone"`
	CustomerPhone       string `gorm:"size:20" json:"customer_phone"`
	CustomerCompany     string `gorm:"size:150" json:"customer_company"`

	Value       float64   `gorm:"not null" json:"value"`
	Description string    `gorm:"size:500" json:"description"`
	DueDate     time.Time `json:"due_date"`
	BillingType string    `gorm:"size:30" json:"billing_type"`

	Status        string  `gorm:"size:30;default:'pending'" json:"status"`
	PaymentMethod *string `gorm:"size:20" json:"payment_method"`

	InstallmentCount *int     `json:"installment_count"`
	InstallmentValue *float64 `json:"installment_value"`
	InterestRate     *float64 `json:"interest_rate"`
	InterestAmount   *float64 `json:"interest_amount"`
	TotalValue       *float64 `json:"total_value"`

	PixQrCode      string     `gorm:"type:text" json:"pix_qr_code"`
	PixQrCodeImage string     `gorm:"type:text" json:"pix_qr_code_image"`
	PixExpiresAt   *time.Time `json:"pix_expires_at"`

	GatewayCustomerID string `gorm:"size:64" json:"gateway_customer_id"`
	ChargeID          string `gorm:"size:64;index" json:"charge_id"`

	ExpiresAt   time.Time  `json:"expires_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
