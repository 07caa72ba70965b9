// Package requestid carrega o ID de correlação entre o gateway e as
// integrações externas. O valor vive na mesma chave de contexto do
// middleware.RequestID do chi.
package requestid

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Header também é o nome que o chi lê em middleware.RequestIDHeader.
const Header = "X-Request-Id"

func New() string {
	return uuid.NewString()
}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, chimw.RequestIDKey, id)
}

func FromContext(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
