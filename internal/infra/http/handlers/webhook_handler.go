package handlers

import (
	"log"
	"net/http"

	"github.com/xavierca1/carecompany-backend/internal/infra/http/middleware"
	"github.com/xavierca1/carecompany-backend/internal/usecase"
)

type WebhookHandler struct {
	ReceiveWebhookUC *usecase.ReceiveWebhookUseCase
}

func NewWebhookHandler(uc *usecase.ReceiveWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{ReceiveWebhookUC: uc}
}

// Handle (POST /api/asaas/webhook): loga e confirma. Qualquer falha vira 500
// para o Asaas reenviar a notificação.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	input, err := decodeRecord(r)
	if err != nil {
		return webhookError(err)
	}

	event, err := h.ReceiveWebhookUC.Execute(r.Context(), input)
	middleware.RecordWebhookEvent(event.Event)
	if err != nil {
		return webhookError(err)
	}

	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
	return nil
}

func webhookError(err error) error {
	log.Printf("❌ Erro no webhook: %v", err)
	return NewHTTPError(http.StatusInternalServerError, "Erro ao processar webhook", err)
}
