package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/xavierca1/carecompany-backend/internal/entity"
)

// decodeRecord lê JSON ou form urlencoded. Outros content-types resultam
// em corpo vazio, e a checagem de campos obrigatórios responde 400.
func decodeRecord(r *http.Request) (entity.Record, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		return decodeJSON(r.Body)
	case mediaType == "application/x-www-form-urlencoded":
		return decodeForm(r)
	default:
		return entity.Record{}, nil
	}
}

// decodeJSON aceita qualquer JSON válido; só objetos viram campos; arrays e
// escalares resultam em corpo vazio.
func decodeJSON(body io.Reader) (entity.Record, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return entity.Record{}, nil
		}
		return nil, bodyError(err, "JSON inválido")
	}
	if obj, ok := v.(map[string]any); ok {
		return entity.Record(obj), nil
	}
	return entity.Record{}, nil
}

func decodeForm(r *http.Request) (entity.Record, error) {
	if err := r.ParseForm(); err != nil {
		return nil, bodyError(err, "Formulário inválido")
	}

	record := make(entity.Record, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) == 1 {
			record[key] = values[0]
			continue
		}
		list := make([]any, len(values))
		for i, v := range values {
			list[i] = v
		}
		record[key] = list
	}
	return record, nil
}

func bodyError(err error, message string) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return NewHTTPError(http.StatusRequestEntityTooLarge, "Payload muito grande", err)
	}
	return NewHTTPError(http.StatusBadRequest, message, err)
}
