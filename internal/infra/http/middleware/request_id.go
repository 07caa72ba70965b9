package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/xavierca1/carecompany-backend/internal/infra/requestid"
)

const maxRequestIDLen = 128

// RequestID usa o middleware.RequestID do chi com IDs UUID: quando o cliente
// não manda X-Request-Id (ou manda um grande demais) um UUID é colocado no
// header antes do chi ler. O ID volta na resposta.
func RequestID(next http.Handler) http.Handler {
	tagged := chimw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(chimw.RequestIDHeader, chimw.GetReqID(r.Context()))
		next.ServeHTTP(w, r)
	}))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(chimw.RequestIDHeader); id == "" || len(id) > maxRequestIDLen {
			r.Header.Set(chimw.RequestIDHeader, requestid.New())
		}
		tagged.ServeHTTP(w, r)
	})
}
