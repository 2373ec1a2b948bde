package billing

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/feliperamosdev/portfolio-api/internal/config"
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
)

// Client é o adaptador HTTP para o gateway de cobrança. Validações acontecem
// localmente, antes de qualquer chamada de rede; erros reportados pelo
// gateway são repassados com a descrição dele quando disponível. Não há
// retry: uma chamada falha é reportada uma única vez ao chamador.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BillingBaseURL, "/"),
		apiKey:  cfg.BillingAPIKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// --------------------------------------------------
// Customers
// --------------------------------------------------

func (c *Client) CreateCustomer(ctx context.Context, in CustomerInput) (*Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, httperr.ErrBusinessMsg("customer_name_required", "o nome do cliente é obrigatório")
	}
	if strings.TrimSpace(in.MobilePhone) == "" {
		return nil, httperr.ErrBusinessMsg("customer_mobile_phone_required", "o celular do cliente é obrigatório")
	}

	digits := DigitsOnly(in.CpfCnpj)
	if len(digits) != 11 && len(digits) != 14 {
		return nil, httperr.ErrBusinessMsg("invalid_cpf_cnpj", "o CPF/CNPJ deve ter 11 ou 14 dígitos")
	}
	in.CpfCnpj = digits

	var out Customer
	if err := c.do(ctx, http.MethodPost, "/customers", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	var out Customer
	if err := c.do(ctx, http.MethodGet, "/customers/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, in CustomerInput) (*Customer, error) {
	if in.CpfCnpj != "" {
		digits := DigitsOnly(in.CpfCnpj)
		if len(digits) != 11 && len(digits) != 14 {
			return nil, httperr.ErrBusinessMsg("invalid_cpf_cnpj", "o CPF/CNPJ deve ter 11 ou 14 dígitos")
		}
		in.CpfCnpj = digits
	}

	var out Customer
	if err := c.do(ctx, http.MethodPut, "/customers/"+id, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/customers/"+id, nil, nil, nil)
}

func (c *Client) ListCustomers(ctx context.Context, limit, offset int) (*List[Customer], error) {
	var out List[Customer]
	if err := c.do(ctx, http.MethodGet, "/customers", pagination(limit, offset), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --------------------------------------------------
// Charges
// --------------------------------------------------

func (c *Client) CreateCharge(ctx context.Context, in ChargeInput) (*Charge, error) {
	if strings.TrimSpace(in.Customer) == "" {
		return nil, httperr.ErrBusinessMsg("charge_customer_required", "a cobrança precisa de um cliente")
	}
	if in.Value <= 0 {
		return nil, httperr.ErrBusinessMsg("invalid_charge_value", "o valor da cobrança deve ser maior que zero")
	}
	if strings.TrimSpace(in.DueDate) == "" {
		return nil, httperr.ErrBusinessMsg("charge_due_date_required", "a data de vencimento é obrigatória")
	}
	if strings.TrimSpace(in.BillingType) == "" {
		return nil, httperr.ErrBusinessMsg("charge_billing_type_required", "o tipo de cobrança é obrigatório")
	}

	// Truncagem em caracteres, na fronteira da runa — nunca UTF-8 quebrado
	if utf8.RuneCountInString(in.Description) > 500 {
		in.Description = string([]rune(in.Description)[:500])
	}
	if in.ExternalReference == "" {
		in.ExternalReference = randomReference()
	}

	var out Charge
	if err := c.do(ctx, http.MethodPost, "/payments", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCharge(ctx context.Context, id string) (*Charge, error) {
	var out Charge
	if err := c.do(ctx, http.MethodGet, "/payments/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCharge(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/payments/"+id, nil, nil, nil)
}

func (c *Client) ListCharges(ctx context.Context, limit, offset int) (*List[Charge], error) {
	var out List[Charge]
	if err := c.do(ctx, http.MethodGet, "/payments", pagination(limit, offset), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPixQrCode(ctx context.Context, chargeID string) (*PixQrCode, error) {
	var out PixQrCode
	if err := c.do(ctx, http.MethodGet, "/payments/"+chargeID+"/pixQrCode", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --------------------------------------------------
// Invoices
// --------------------------------------------------

func (c *Client) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	var out Invoice
	if err := c.do(ctx, http.MethodGet, "/invoices/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListInvoices(ctx context.Context, limit, offset int) (*List[Invoice], error) {
	var out List[Invoice]
	if err := c.do(ctx, http.MethodGet, "/invoices", pagination(limit, offset), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --------------------------------------------------
// HTTP
// --------------------------------------------------

type gatewayErrorBody struct {
	Errors []struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"errors"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[billing] %s %s failed: %v", method, path, err)
		return httperr.ErrBusinessMsg("billing_gateway_unreachable", "falha ao comunicar com o gateway de cobrança")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return gatewayError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// gatewayError repassa a descrição do próprio gateway quando presente;
// caso contrário, uma mensagem genérica de falha.
func gatewayError(status int, raw []byte) error {
	var body gatewayErrorBody
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Errors) > 0 {
		first := body.Errors[0]
		if first.Description != "" {
			return httperr.ErrBusinessMsg("billing_gateway_error", first.Description)
		}
	}
	return httperr.ErrBusinessMsg("billing_gateway_error", fmt.Sprintf("a requisição ao gateway de cobrança falhou (HTTP %d)", status))
}

func pagination(limit, offset int) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	return q
}

// DigitsOnly remove tudo que não for dígito.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Referência numérica de 6 dígitos usada quando o chamador não fornece uma.
func randomReference() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}

// Compile-time check
var _ Gateway = (*Client)(nil)
