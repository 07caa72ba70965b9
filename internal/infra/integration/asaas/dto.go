package asaas

import (
	"encoding/json"
	"fmt"
	"time"
)

type Config struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	Timeout   time.Duration
}

// Response é o corpo devolvido pelo Asaas, repassado sem alteração ao frontend.
type Response struct {
	StatusCode  int
	ContentType string
	Body        json.RawMessage
}

// ID lê o campo "id" do corpo só para log; vazio se não houver.
func (r *Response) ID() string {
	var out struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(r.Body, &out)
	return out.ID
}

// APIError representa uma resposta fora da faixa 2xx do Asaas.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api asaas rejeitou (status %d): %s", e.StatusCode, string(e.Body))
}

// Details devolve o corpo do erro como JSON quando possível, senão como texto.
func (e *APIError) Details() any {
	if len(e.Body) > 0 && json.Valid(e.Body) {
		return json.RawMessage(e.Body)
	}
	if len(e.Body) > 0 {
		return string(e.Body)
	}
	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}
