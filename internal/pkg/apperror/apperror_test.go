package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"missing token", AuthenticationMissing("missing token"), http.StatusUnauthorized},
		{"denied", AuthorizationDenied("not yours"), http.StatusForbidden},
		{"not found", NotFound("booking not found"), http.StatusNotFound},
		{"validation", ValidationFailure("bad id"), http.StatusBadRequest},
		{"quota", QuotaExhausted("no tokens left"), http.StatusBadRequest},
		{"transition", InvalidStateTransition("cannot start", "pending"), http.StatusConflict},
		{"dependency", DependencyFailure("db down", errors.New("dial tcp")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAs_FindsWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("confirm: %w", InvalidStateTransition("cannot confirm", "cancelled"))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "cancelled", appErr.CurrentStatus)
	assert.True(t, Is(wrapped, KindInvalidStateTransition))
	assert.False(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(errors.New("plain"), KindNotFound))
}

func TestDependencyFailure_HidesCause(t *testing.T) {
	cause := errors.New("pq: password authentication failed")
	err := DependencyFailure("failed to load booking", cause)

	assert.Equal(t, "internal server error", err.PublicMessage())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "cannot cancel", InvalidStateTransition("cannot cancel", "started").PublicMessage())
}
