package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/carecompany-backend/internal/entity"
	"github.com/xavierca1/carecompany-backend/internal/infra/integration/asaas"
)

type CreatePaymentUseCase struct {
	Gateway PaymentGateway
}

func NewCreatePaymentUseCase(gateway PaymentGateway) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{Gateway: gateway}
}

func (uc *CreatePaymentUseCase) Execute(ctx context.Context, input entity.Record) (*asaas.Response, error) {
	if err := validateRequired(input, entity.PaymentRequiredFields); err != nil {
		return nil, err
	}

	log.Printf("💳 Criando pagamento para cliente: %s", input.String("customer"))

	resp, err := uc.Gateway.CreatePayment(ctx, input)
	if err != nil {
		gwErr := &GatewayError{Message: "Erro ao criar pagamento", Err: err}
		log.Printf("❌ Erro ao criar pagamento: %s", gwErr.Details())
		return nil, gwErr
	}

	log.Printf("✅ Pagamento criado com sucesso: %s", resp.ID())
	return resp, nil
}

type CreateSubscriptionUseCase struct {
	Gateway PaymentGateway
}

func NewCreateSubscriptionUseCase(gateway PaymentGateway) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{Gateway: gateway}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, input entity.Record) (*asaas.Response, error) {
	if err := validateRequired(input, entity.SubscriptionRequiredFields); err != nil {
		return nil, err
	}

	log.Printf("🔄 Criando assinatura para cliente: %s", input.String("customer"))

	resp, err := uc.Gateway.CreateSubscription(ctx, input)
	if err != nil {
		gwErr := &GatewayError{Message: "Erro ao criar assinatura", Err: err}
		log.Printf("❌ Erro ao criar assinatura: %s", gwErr.Details())
		return nil, gwErr
	}

	log.Printf("✅ Assinatura criada com sucesso: %s", resp.ID())
	return resp, nil
}
