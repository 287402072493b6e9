package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := New("DSB_001", "Missing bank_code or account_number", http.StatusBadRequest)
	assert.Equal(t, "[DSB_001] Missing bank_code or account_number", e.Error())
}

func TestAppError_ErrorWithWrapped(t *testing.T) {
	inner := errors.New("connection refused")
	e := Wrap("SYS_002", "Payment gateway unavailable", http.StatusServiceUnavailable, inner)
	assert.Contains(t, e.Error(), "SYS_002")
	assert.Contains(t, e.Error(), "connection refused")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("root cause")
	e := InternalError(fmt.Errorf("mid layer: %w", inner))
	assert.True(t, errors.Is(e, inner))
}

func TestErrBelowThreshold(t *testing.T) {
	e := ErrBelowThreshold(5000, 10000)
	assert.Equal(t, "DSB_002", e.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, e.HTTPStatus)
	assert.Contains(t, e.Message, "5000")
	assert.Contains(t, e.Message, "10000")
}

func TestErrVoucherNotFound(t *testing.T) {
	e := ErrVoucherNotFound("ABC-123")
	assert.Equal(t, "RDM_002", e.Code)
	assert.Equal(t, http.StatusNotFound, e.HTTPStatus)
	assert.Contains(t, e.Message, "ABC-123")
}

func TestErrorsAsAppError(t *testing.T) {
	var appErr *AppError
	err := fmt.Errorf("handler: %w", ErrInvalidBankAccount())
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DSB_001", appErr.Code)
}
