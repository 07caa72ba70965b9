package handlers

import (
	"net/http"
	"time"
)

// ISO-8601 em UTC com milissegundos
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type HealthHandler struct {
	Now func() time.Time
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{Now: time.Now}
}

// Handle nunca consulta o Asaas: responde OK enquanto o processo estiver de pé.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: h.Now().UTC().Format(timestampLayout),
	})
}
