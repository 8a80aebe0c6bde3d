package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("outer: %w", Wrap(cause, CodeInternal, "failed to generate"))

	assert.ErrorIs(t, err, cause)
	assert.True(t, HasCode(err, CodeInternal))
	assert.False(t, HasCode(err, CodeNotFound))

	de, ok := From(err)
	require.True(t, ok)
	assert.Equal(t, "failed to generate", de.Message)
	assert.Equal(t, "failed to generate: boom", de.Error())
}

func TestHasCodeOnPlainError(t *testing.T) {
	assert.False(t, HasCode(errors.New("plain"), CodeInternal))
	assert.False(t, HasCode(nil, CodeInternal))
}

func TestStatus(t *testing.T) {
	tests := map[Code]int{
		CodeBadRequest:    http.StatusBadRequest,
		CodeValidation:    http.StatusBadRequest,
		CodeNotFound:      http.StatusNotFound,
		CodeUnprocessable: http.StatusUnprocessableEntity,
		CodeInternal:      http.StatusInternalServerError,
		Code("other"):     http.StatusInternalServerError,
	}
	for code, want := range tests {
		assert.Equal(t, want, code.Status(), string(code))
	}
}
