package asaas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/xavierca1/carecompany-backend/internal/entity"
	"github.com/xavierca1/carecompany-backend/internal/infra/requestid"
)

// Client é montado uma vez no boot e compartilhado entre requisições.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	http      *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

// CreateCustomer: POST /customers com o payload já normalizado
func (c *Client) CreateCustomer(ctx context.Context, customer entity.Customer) (*Response, error) {
	return c.post(ctx, "/customers", customer)
}

// CreatePayment: POST /payments, corpo repassado como veio
func (c *Client) CreatePayment(ctx context.Context, payment entity.Record) (*Response, error) {
	return c.post(ctx, "/payments", payment)
}

// CreateSubscription: POST /subscriptions, corpo repassado como veio
func (c *Client) CreateSubscription(ctx context.Context, sub entity.Record) (*Response, error) {
	return c.post(ctx, "/subscriptions", sub)
}

func (c *Client) post(ctx context.Context, path string, payload any) (*Response, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na conexão com asaas: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta asaas: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// setHeaders centraliza os headers obrigatórios
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("access_token", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if id := requestid.FromContext(req.Context()); id != "" {
		req.Header.Set(requestid.Header, id)
	}
}

// ErrorDetails extrai o que vai no campo "details" da resposta de erro:
// o corpo do Asaas quando ele respondeu, senão a mensagem do erro.
func ErrorDetails(err error) any {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Details()
	}
	return err.Error()
}
