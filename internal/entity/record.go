package entity

import (
	"encoding/json"
	"strconv"
)

// Record é o corpo bruto recebido do frontend. Números chegam como
// json.Number para que o repasse ao Asaas não perca precisão.
type Record map[string]any

// Missing devolve, na ordem pedida, os campos ausentes ou vazios.
// Segue a regra de "falsy" do frontend: nil, "", false e 0 contam como ausentes.
func (r Record) Missing(fields ...string) []string {
	var missing []string
	for _, f := range fields {
		if IsBlank(r[f]) {
			missing = append(missing, f)
		}
	}
	return missing
}

// String devolve o campo como texto; vazio quando ausente ou não escalar.
func (r Record) String(field string) string {
	return scalarString(r[field])
}

func IsBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case json.Number:
		f, err := val.Float64()
		return err == nil && f == 0
	case float64:
		return val == 0
	default:
		return false
	}
}

func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "true"
		}
		return ""
	default:
		return ""
	}
}
