package handlers

import (
	"net/http"

	"github.com/xavierca1/carecompany-backend/internal/usecase"
)

type PaymentHandler struct {
	CreatePaymentUC      *usecase.CreatePaymentUseCase
	CreateSubscriptionUC *usecase.CreateSubscriptionUseCase
}

func NewPaymentHandler(paymentUC *usecase.CreatePaymentUseCase, subUC *usecase.CreateSubscriptionUseCase) *PaymentHandler {
	return &PaymentHandler{
		CreatePaymentUC:      paymentUC,
		CreateSubscriptionUC: subUC,
	}
}

// CreatePayment (POST /api/asaas/payments)
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) error {
	input, err := decodeRecord(r)
	if err != nil {
		return err
	}

	resp, err := h.CreatePaymentUC.Execute(r.Context(), input)
	observeGateway("create_payment", err)
	if err != nil {
		return err
	}

	writeRaw(w, http.StatusOK, resp.Body, resp.ContentType)
	return nil
}

// CreateSubscription (POST /api/asaas/subscriptions)
func (h *PaymentHandler) CreateSubscription(w http.ResponseWriter, r *http.Request) error {
	input, err := decodeRecord(r)
	if err != nil {
		return err
	}

	resp, err := h.CreateSubscriptionUC.Execute(r.Context(), input)
	observeGateway("create_subscription", err)
	if err != nil {
		return err
	}

	writeRaw(w, http.StatusOK, resp.Body, resp.ContentType)
	return nil
}
