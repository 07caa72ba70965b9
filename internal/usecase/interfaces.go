package usecase

import (
	"context"

	"github.com/xavierca1/carecompany-backend/internal/entity"
	"github.com/xavierca1/carecompany-backend/internal/infra/integration/asaas"
)

type PaymentGateway interface {
	CreateCustomer(ctx context.Context, customer entity.Customer) (*asaas.Response, error)
	CreatePayment(ctx context.Context, payment entity.Record) (*asaas.Response, error)
	CreateSubscription(ctx context.Context, sub entity.Record) (*asaas.Response, error)
}

// WebhookListener é o ponto de extensão para quem quiser tratar eventos
// do Asaas. Sem listener o webhook só loga e confirma o recebimento.
type WebhookListener interface {
	OnEvent(ctx context.Context, event entity.WebhookEvent) error
}
