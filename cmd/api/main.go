package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xavierca1/carecompany-backend/internal/config"
	"github.com/xavierca1/carecompany-backend/internal/infra/http/router"
	"github.com/xavierca1/carecompany-backend/internal/infra/integration/asaas"
)

func main() {
	cfg := config.Load()
	for _, w := range cfg.Warnings() {
		log.Printf("⚠️ %s", w)
	}

	// Cliente único, configurado uma vez e compartilhado pelas rotas
	gateway := asaas.NewClient(asaas.Config{
		BaseURL:   cfg.Asaas.BaseURL,
		APIKey:    cfg.Asaas.APIKey,
		UserAgent: cfg.Asaas.UserAgent,
		Timeout:   cfg.Asaas.Timeout,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router.New(cfg, router.Deps{Gateway: gateway}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("🚀 Servidor rodando na porta %s", cfg.Server.Port)
		log.Printf("🌍 Ambiente: %s", cfg.EnvName())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Erro ao iniciar servidor: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Erro no shutdown: %v", err)
	}
}
