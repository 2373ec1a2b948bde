package dto

import "time"

type CheckoutListDTO struct {
	ID            uint      `json:"id"`
	UniqueLink    string    `json:"unique_link"`
	CustomerName  string    `json:"customer_name"`
	Value         float64   `json:"value"`
	Status        string    `json:"status"`
	PaymentMethod *string   `json:"payment_method"`
	DueDate       time.Time `json:"due_date"`
	CreatedAt     time.Time `json:"created_at"`
}
