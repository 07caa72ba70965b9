package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/carecompany-backend/internal/entity"
	"github.com/xavierca1/carecompany-backend/internal/infra/integration/asaas"
)

type CreateCustomerUseCase struct {
	Gateway PaymentGateway
}

func NewCreateCustomerUseCase(gateway PaymentGateway) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{Gateway: gateway}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, input entity.Record) (*asaas.Response, error) {
	if err := validateRequired(input, entity.CustomerRequiredFields); err != nil {
		return nil, err
	}

	customer := entity.NewCustomer(input)
	log.Printf("📋 Criando cliente: %s", customer.Name)

	resp, err := uc.Gateway.CreateCustomer(ctx, customer)
	if err != nil {
		gwErr := &GatewayError{Message: "Erro ao criar cliente", Err: err}
		log.Printf("❌ Erro ao criar cliente: %s", gwErr.Details())
		return nil, gwErr
	}

	log.Printf("✅ Cliente criado com sucesso: %s", resp.ID())
	return resp, nil
}
