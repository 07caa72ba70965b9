// Package router monta o gateway HTTP: middlewares globais, health check,
// métricas e as rotas do proxy Asaas em /api/asaas.
package router

import (
	"io"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/carecompany-backend/internal/config"
	"github.com/xavierca1/carecompany-backend/internal/infra/http/handlers"
	"github.com/xavierca1/carecompany-backend/internal/infra/http/middleware"
	"github.com/xavierca1/carecompany-backend/internal/usecase"
)

const APIPrefix = "/api/asaas"

type Deps struct {
	Gateway usecase.PaymentGateway
	// Listener opcional para eventos do webhook
	Listener usecase.WebhookListener
	// AccessLog recebe o log de acesso; os.Stdout quando nil
	AccessLog io.Writer
}

func New(cfg config.Config, deps Deps) http.Handler {
	accessLog := deps.AccessLog
	if accessLog == nil {
		accessLog = os.Stdout
	}

	errs := handlers.NewErrorHandler(cfg.IsDevelopment())

	customerHandler := handlers.NewCustomerHandler(usecase.NewCreateCustomerUseCase(deps.Gateway))
	paymentHandler := handlers.NewPaymentHandler(
		usecase.NewCreatePaymentUseCase(deps.Gateway),
		usecase.NewCreateSubscriptionUseCase(deps.Gateway),
	)
	webhookHandler := handlers.NewWebhookHandler(usecase.NewReceiveWebhookUseCase(deps.Listener))
	healthHandler := handlers.NewHealthHandler()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.AccessLog(accessLog))
	r.Use(middleware.Metrics)
	// Recovery fica dentro do log e das métricas para que o 500 seja registrado
	r.Use(middleware.Recovery(errs.WriteError))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(chimw.RequestSize(cfg.Server.MaxBodyBytes))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.NotFound)

	r.Get("/health", healthHandler.Handle)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route(APIPrefix, func(r chi.Router) {
		r.NotFound(handlers.NotFound)
		r.MethodNotAllowed(handlers.NotFound)

		r.Post("/customers", errs.Wrap(customerHandler.Create))
		r.Post("/payments", errs.Wrap(paymentHandler.CreatePayment))
		r.Post("/subscriptions", errs.Wrap(paymentHandler.CreateSubscription))
		r.Post("/webhook", errs.Wrap(webhookHandler.Handle))
	})

	return r
}
