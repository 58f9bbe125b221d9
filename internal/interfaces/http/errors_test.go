package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/wellcomputer-pos/internal/domain"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrDuplicateCode, 400, "DUPLICATE_CODE"},
		{domain.ErrValidation, 400, "VALIDATION"},
		{domain.ErrInvalidCredentials, 401, "INVALID_CREDENTIALS"},
		{domain.ErrActionForbidden, 403, "FORBIDDEN"},
		{domain.ErrRoleNotAssignable, 403, "ROLE_NOT_ASSIGNABLE"},
		{fmt.Errorf("record: %w", domain.ErrProductNotFound), 404, "PRODUCT_NOT_FOUND"},
		{domain.ErrOutOfStock, 409, "OUT_OF_STOCK"},
		{fmt.Errorf("%w: timeout", domain.ErrExtractionFailed), 502, "EXTRACTION_FAILED"},
		{domain.ErrExtractionUnavailable, 503, "EXTRACTION_UNAVAILABLE"},
		{domain.ErrArchiveUnavailable, 503, "ARCHIVE_UNAVAILABLE"},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			status, body := errorStatus(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestErrorStatus_SinCategoriaNoExponeTexto(t *testing.T) {
	status, body := errorStatus(errors.New("pq: connection refused 10.0.0.3"))
	assert.Equal(t, 500, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.NotContains(t, body.Message, "10.0.0.3")
}
