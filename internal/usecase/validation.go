package usecase

import "github.com/xavierca1/carecompany-backend/internal/entity"

func validateRequired(r entity.Record, required []string) error {
	missing := r.Missing(required...)
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Required: required, Missing: missing}
}
