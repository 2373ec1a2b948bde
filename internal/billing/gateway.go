package billing

import "context"

// Gateway é o contrato consumido pelos usecases de checkout. A implementação
// concreta (Client) fala HTTP com o serviço externo; testes usam um fake.
type Gateway interface {
	CreateCustomer(ctx context.Context, in CustomerInput) (*Customer, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	UpdateCustomer(ctx context.Context, id string, in CustomerInput) (*Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context, limit, offset int) (*List[Customer], error)

	CreateCharge(ctx context.Context, in ChargeInput) (*Charge, error)
	GetCharge(ctx context.Context, id string) (*Charge, error)
	DeleteCharge(ctx context.Context, id string) error
	ListCharges(ctx context.Context, limit, offset int) (*List[Charge], error)
	GetPixQrCode(ctx context.Context, chargeID string) (*PixQrCode, error)

	GetInvoice(ctx context.Context, id string) (*Invoice, error)
	ListInvoices(ctx context.Context, limit, offset int) (*List[Invoice], error)
}
