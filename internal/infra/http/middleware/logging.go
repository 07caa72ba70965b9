package middleware

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const clfLayout = "02/Jan/2006:15:04:05 -0700"

// CombinedFormatter gera entradas no formato "combined" do Apache, seguidas
// do tempo de resposta em milissegundos.
type CombinedFormatter struct {
	Logger *log.Logger
}

func (f *CombinedFormatter) NewLogEntry(r *http.Request) chimw.LogEntry {
	return &combinedEntry{logger: f.Logger, req: r, start: time.Now()}
}

type combinedEntry struct {
	logger *log.Logger
	req    *http.Request
	start  time.Time
}

func (e *combinedEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	e.logger.Print(combinedLine(e.req, status, bytes, e.start, elapsed))
}

// Panic não loga nada: o stack já sai pelo Recovery.
func (e *combinedEntry) Panic(v interface{}, stack []byte) {}

// AccessLog escreve uma linha por requisição em out, inclusive quando o
// handler entra em pânico.
func AccessLog(out io.Writer) func(http.Handler) http.Handler {
	return chimw.RequestLogger(&CombinedFormatter{Logger: log.New(out, "", 0)})
}

func combinedLine(r *http.Request, status, size int, start time.Time, elapsed time.Duration) string {
	user := "-"
	if u, _, ok := r.BasicAuth(); ok && u != "" {
		user = u
	}

	length := "-"
	if size > 0 {
		length = fmt.Sprint(size)
	}

	return fmt.Sprintf(`%s - %s [%s] "%s %s %s" %d %s "%s" "%s" %.3f ms`,
		remoteAddr(r),
		user,
		start.UTC().Format(clfLayout),
		r.Method,
		r.URL.RequestURI(),
		r.Proto,
		status,
		length,
		orDash(r.Referer()),
		orDash(r.UserAgent()),
		float64(elapsed.Microseconds())/1000,
	)
}

func remoteAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
