package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcardenas/centavo/internal/auth"
)

func TestAuthenticator_RoundTrip(t *testing.T) {
	a := auth.NewAuthenticator("test-secret", time.Hour)
	ownerID := uuid.New()

	token, err := a.Issue(ownerID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := a.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, ownerID, got)
}

func TestAuthenticator_Verify(t *testing.T) {
	a := auth.NewAuthenticator("test-secret", time.Hour)

	t.Run("WrongSecret", func(t *testing.T) {
		other := auth.NewAuthenticator("other-secret", time.Hour)

		token, err := other.Issue(uuid.New())
		require.NoError(t, err)

		_, err = a.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := a.Verify("not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := auth.NewAuthenticator("test-secret", -time.Minute)

		token, err := expired.Issue(uuid.New())
		require.NoError(t, err)

		_, err = a.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestMiddleware(t *testing.T) {
	a := auth.NewAuthenticator("test-secret", time.Hour)
	ownerID := uuid.New()

	token, err := a.Issue(ownerID)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := auth.OwnerFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, ownerID, got)

		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "ValidToken", header: "Bearer " + token, wantStatus: http.StatusNoContent},
		{name: "MissingHeader", header: "", wantStatus: http.StatusUnauthorized},
		{name: "NotBearer", header: "Basic abc123", wantStatus: http.StatusUnauthorized},
		{name: "BadToken", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			a.Middleware(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestOwnerFromContext_Empty(t *testing.T) {
	_, ok := auth.OwnerFromContext(context.Background())
	assert.False(t, ok)
}
