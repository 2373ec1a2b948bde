package billing

// Recursos do gateway de cobrança (clientes, cobranças e notas), no formato
// de fio da API externa.

type CustomerInput struct {
	Name              string `json:"name"`
	Email             string `json:"email,omitempty"`
	CpfCnpj           string `json:"cpfCnpj"`
	MobilePhone       string `json:"mobilePhone"`
	Phone             string `json:"phone,omitempty"`
	Company           string `json:"company,omitempty"`
	ExternalReference string `json:"externalReference,omitempty"`
}

type Customer struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	CpfCnpj           string `json:"cpfCnpj"`
	MobilePhone       string `json:"mobilePhone"`
	Phone             string `json:"phone"`
	Company           string `json:"company"`
	ExternalReference string `json:"externalReference"`
	Deleted           bool   `json:"deleted"`
}

type ChargeInput struct {
	Customer          string  `json:"customer"`
	BillingType       string  `json:"billingType"`
	Value             float64 `json:"value"`
	DueDate           string  `json:"dueDate"`
	Description       string  `json:"description,omitempty"`
	ExternalReference string  `json:"externalReference,omitempty"`
	InstallmentCount  int     `json:"installmentCount,omitempty"`
	InstallmentValue  float64 `json:"installmentValue,omitempty"`
}

type Charge struct {
	ID                string  `json:"id"`
	Customer          string  `json:"customer"`
	BillingType       string  `json:"billingType"`
	Value             float64 `json:"value"`
	NetValue          float64 `json:"netValue"`
	Description       string  `json:"description"`
	DueDate           string  `json:"dueDate"`
	Status            string  `json:"status"`
	ExternalReference string  `json:"externalReference"`
	InvoiceURL        string  `json:"invoiceUrl"`
	BankSlipURL       string  `json:"bankSlipUrl"`
	InstallmentCount  int     `json:"installmentCount"`
	Deleted           bool    `json:"deleted"`
}

type PixQrCode struct {
	EncodedImage   string `json:"encodedImage"`
	Payload        string `json:"payload"`
	ExpirationDate string `json:"expirationDate"`
}

type Invoice struct {
	ID      string  `json:"id"`
	Payment string  `json:"payment"`
	Value   float64 `json:"value"`
	Status  string  `json:"status"`
	PdfURL  string  `json:"pdfUrl"`
	XmlURL  string  `json:"xmlUrl"`
}

type List[T any] struct {
	Data       []T  `json:"data"`
	TotalCount int  `json:"totalCount"`
	HasMore    bool `json:"hasMore"`
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
}

// Statuses de cobrança reportados pelo gateway.
const (
	ChargeStatusPending   = "PENDING"
	ChargeStatusConfirmed = "CONFIRMED"
	ChargeStatusReceived  = "RECEIVED"
	ChargeStatusOverdue   = "OVERDUE"
	ChargeStatusRefunded  = "REFUNDED"
	ChargeStatusDeleted   = "DELETED"
)

// Tipos de cobrança aceitos.
const (
	BillingTypePix        = "PIX"
	BillingTypeBoleto     = "BOLETO"
	BillingTypeCreditCard = "CREDIT_CARD"
	BillingTypeUndefined  = "UNDEFINED"
)
