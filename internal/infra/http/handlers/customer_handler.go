package handlers

import (
	"errors"
	"net/http"

	"github.com/xavierca1/carecompany-backend/internal/infra/http/middleware"
	"github.com/xavierca1/carecompany-backend/internal/usecase"
)

type CustomerHandler struct {
	CreateCustomerUC *usecase.CreateCustomerUseCase
}

func NewCustomerHandler(uc *usecase.CreateCustomerUseCase) *CustomerHandler {
	return &CustomerHandler{CreateCustomerUC: uc}
}

// Create (POST /api/asaas/customers)
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) error {
	input, err := decodeRecord(r)
	if err != nil {
		return err
	}

	resp, err := h.CreateCustomerUC.Execute(r.Context(), input)
	observeGateway("create_customer", err)
	if err != nil {
		return err
	}

	writeRaw(w, http.StatusOK, resp.Body, resp.ContentType)
	return nil
}

// observeGateway conta só chamadas que chegaram a sair para o Asaas.
func observeGateway(operation string, err error) {
	var validationErr *usecase.ValidationError
	switch {
	case err == nil:
		middleware.RecordAsaasRequest(operation, "success")
	case errors.As(err, &validationErr):
		return
	default:
		middleware.RecordAsaasRequest(operation, "failure")
		middleware.RecordIntegrationError("asaas")
	}
}
