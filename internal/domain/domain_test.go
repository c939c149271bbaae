package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without wrapped error",
			err:  ErrEventNotFound,
			want: "Evento no encontrado",
		},
		{
			name: "with wrapped error",
			err:  ErrInternal.WithError(errors.New("connection refused")),
			want: "An unexpected error occurred: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_WithError(t *testing.T) {
	cause := errors.New("duplicate key")
	wrapped := ErrPersonExists.WithError(cause)

	// WithError returns a copy; the sentinel stays pristine.
	assert.Nil(t, ErrPersonExists.Err)
	assert.Equal(t, cause, wrapped.Err)
	assert.Equal(t, ErrPersonExists.Code, wrapped.Code)
	assert.ErrorIs(t, wrapped, cause)
}

func TestSeverity_Valid(t *testing.T) {
	for _, s := range []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
		assert.True(t, s.Valid(), "severity %q", s)
	}

	assert.False(t, Severity("urgente").Valid())
	assert.False(t, Severity("").Valid())
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Ana Lopez", Detection{FirstName: "Ana", LastName: "Lopez"}.FullName())
	assert.Equal(t, "Desconocido", Detection{FirstName: "Desconocido"}.FullName())
	assert.Equal(t, "Ana Lopez", Person{FirstName: "Ana", LastName: "Lopez"}.FullName())
}
