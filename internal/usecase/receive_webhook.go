package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/xavierca1/carecompany-backend/internal/entity"
)

type ReceiveWebhookUseCase struct {
	// Listener é opcional
	Listener WebhookListener
}

func NewReceiveWebhookUseCase(listener WebhookListener) *ReceiveWebhookUseCase {
	return &ReceiveWebhookUseCase{Listener: listener}
}

func (uc *ReceiveWebhookUseCase) Execute(ctx context.Context, input entity.Record) (entity.WebhookEvent, error) {
	event := entity.NewWebhookEvent(input)
	log.Printf("🔔 Webhook recebido: event=%s payment=%s", event.Event, event.PaymentID)

	if uc.Listener == nil {
		return event, nil
	}
	if err := uc.Listener.OnEvent(ctx, event); err != nil {
		return event, fmt.Errorf("listener do webhook falhou: %w", err)
	}
	return event, nil
}
