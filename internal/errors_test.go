package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/turbohomes/website/internal"
)

func TestIsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct HTTPError", func(t *testing.T) {
		t.Parallel()
		require.True(t, internal.IsHTTPError(internal.ErrNotFound("not found")))
	})

	t.Run("wrapped HTTPError", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("handler failed: %w", internal.ErrBadRequest("bad request"))
		require.True(t, internal.IsHTTPError(err))
	})

	t.Run("unrelated error", func(t *testing.T) {
		t.Parallel()
		require.False(t, internal.IsHTTPError(errors.New("something went wrong")))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		require.False(t, internal.IsHTTPError(nil))
	})
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("wrapped HTTPError preserves fields", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("no such post")
		httpErr := internal.ErrNotFound("page not found",
			internal.WithTitle("Missing"),
			internal.WithRequestID("req-1"),
			internal.WithError(cause),
		)
		err := fmt.Errorf("blog: %w", httpErr)

		got := internal.AsHTTPError(err)
		require.NotNil(t, got)
		require.Equal(t, http.StatusNotFound, got.Code)
		require.Equal(t, "page not found", got.Message)
		require.Equal(t, "Missing", got.Title)
		require.Equal(t, "req-1", got.RequestID)
		require.ErrorIs(t, err, cause)
		require.Equal(t, "page not found: no such post", got.Error())
	})

	t.Run("unrelated error returns nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(errors.New("plain error")))
	})

	t.Run("nil returns nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(nil))
	})
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", internal.ErrNotFound("x"), http.StatusNotFound},
		{"wrapped method not allowed", fmt.Errorf("x: %w", internal.ErrMethodNotAllowed("y")), http.StatusMethodNotAllowed},
		{"unavailable", internal.ErrServiceUnavailable("x"), http.StatusServiceUnavailable},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
		{"zero code", &internal.HTTPError{Message: "x"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, internal.StatusOf(tt.err))
		})
	}
}
