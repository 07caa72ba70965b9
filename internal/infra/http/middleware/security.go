package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/secure"
)

const contentSecurityPolicy = "default-src 'self';base-uri 'self';font-src 'self' https: data:;form-action 'self';frame-ancestors 'self';img-src 'self' data:;object-src 'none';script-src 'self';script-src-attr 'none';style-src 'self' https: 'unsafe-inline';upgrade-insecure-requests"

// O TLS termina no proxy reverso, por isso o HSTS é forçado mesmo em HTTP.
var secureHeaders = secure.New(secure.Options{
	STSSeconds:              31536000,
	STSIncludeSubdomains:    true,
	ForceSTSHeader:          true,
	CustomFrameOptionsValue: "SAMEORIGIN",
	ContentTypeNosniff:      true,
	ContentSecurityPolicy:   contentSecurityPolicy,
	ReferrerPolicy:          "no-referrer",
	CrossOriginOpenerPolicy: "same-origin",
})

// Headers do conjunto padrão do helmet que o secure não emite.
var extraHeaders = [][2]string{
	{"Cross-Origin-Resource-Policy", "same-origin"},
	{"Origin-Agent-Cluster", "?1"},
	{"X-DNS-Prefetch-Control", "off"},
	{"X-Download-Options", "noopen"},
	{"X-Permitted-Cross-Domain-Policies", "none"},
	{"X-XSS-Protection", "0"},
}

// SecureHeaders aplica os headers em toda resposta, inclusive erros e 404.
func SecureHeaders(next http.Handler) http.Handler {
	h := next
	for i := len(extraHeaders) - 1; i >= 0; i-- {
		h = chimw.SetHeader(extraHeaders[i][0], extraHeaders[i][1])(h)
	}
	return secureHeaders.Handler(h)
}
