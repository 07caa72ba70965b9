package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xavierca1/carecompany-backend/internal/usecase"
)

// HandlerFunc é a assinatura de toda rota: qualquer erro devolvido
// passa pelo ErrorHandler e vira o envelope JSON {"error": ...}.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// HTTPError já carrega status e corpo prontos para o cliente.
type HTTPError struct {
	Status int
	Body   any
	Err    error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Body: map[string]any{"error": message}, Err: err}
}

type ErrorHandler struct {
	// Development libera a mensagem interna nos erros 500
	Development bool
}

func NewErrorHandler(development bool) *ErrorHandler {
	return &ErrorHandler{Development: development}
}

// Wrap adapta uma HandlerFunc para http.HandlerFunc.
func (h *ErrorHandler) Wrap(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.WriteError(w, err)
		}
	}
}

func (h *ErrorHandler) WriteError(w http.ResponseWriter, err error) {
	var (
		httpErr       *HTTPError
		validationErr *usecase.ValidationError
		gatewayErr    *usecase.GatewayError
	)

	switch {
	case errors.As(err, &httpErr):
		writeJSON(w, httpErr.Status, httpErr.Body)

	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":    validationErr.Error(),
			"required": validationErr.Required,
			"missing":  validationErr.Missing,
		})

	case errors.As(err, &gatewayErr):
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   gatewayErr.Message,
			"details": gatewayErr.Details(),
		})

	default:
		log.Printf("❌ Erro: %v", err)
		message := "Algo deu errado"
		if h.Development {
			message = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Erro interno do servidor",
			"message": message,
		})
	}
}

// NotFound responde qualquer rota sem match.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Rota não encontrada"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("❌ Erro ao escrever resposta: %v", err)
	}
}

// writeRaw repassa o corpo do Asaas sem decodificar, com o Content-Type que
// o Asaas mandou. Sem header, só declara JSON se o corpo for JSON válido.
func writeRaw(w http.ResponseWriter, status int, body []byte, contentType string) {
	switch {
	case len(body) == 0:
		body = []byte("{}")
		contentType = "application/json; charset=utf-8"
	case contentType != "":
	case json.Valid(body):
		contentType = "application/json; charset=utf-8"
	default:
		contentType = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Printf("❌ Erro ao escrever resposta: %v", err)
	}
}
