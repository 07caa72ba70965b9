package usecase

import (
	"github.com/xavierca1/carecompany-backend/internal/infra/integration/asaas"
)

// ValidationError: campos obrigatórios ausentes. Nunca chega ao Asaas.
type ValidationError struct {
	Required []string
	Missing  []string
}

func (e *ValidationError) Error() string {
	return "Dados obrigatórios não fornecidos"
}

// GatewayError: o Asaas rejeitou ou não respondeu.
// Não há distinção entre falha transitória e permanente, nem retry.
type GatewayError struct {
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Details é o corpo de erro do Asaas, ou a mensagem da falha de conexão.
func (e *GatewayError) Details() any {
	return asaas.ErrorDetails(e.Err)
}
