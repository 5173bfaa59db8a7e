package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/movie-api/internal/service"
	"github.com/MKhiriev/movie-api/internal/store"
	"github.com/MKhiriev/movie-api/internal/utils"
	"github.com/MKhiriev/movie-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		authenticateFn func(ctx context.Context, s string) (models.User, error)
		expectedStatus int
		nextCalled     bool
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "scheme without token → 401",
			authHeader:     "Bearer",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "basic scheme → 401",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token → 401",
			authHeader: "Bearer bad",
			authenticateFn: func(context.Context, string) (models.User, error) {
				return models.User{}, service.ErrTokenIsExpiredOrInvalid
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "store failure → 500",
			authHeader: "Bearer some-token",
			authenticateFn: func(context.Context, string) (models.User, error) {
				return models.User{}, store.ErrExecutingQuery
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:       "valid token → next handler",
			authHeader: "Bearer " + validToken,
			authenticateFn: func(_ context.Context, s string) (models.User, error) {
				return alice, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:       "lowercase scheme is accepted",
			authHeader: "bearer " + validToken,
			authenticateFn: func(_ context.Context, s string) (models.User, error) {
				return alice, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{
				AuthService: &mockAuthService{authenticateFn: tt.authenticateFn},
			})

			var called bool
			var identity *models.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				identity, _ = utils.IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, called)
			if tt.nextCalled {
				require.NotNil(t, identity)
				assert.Equal(t, alice.ID, identity.ID)
				assert.Equal(t, "alice1", identity.Username)
			}
		})
	}
}

func TestAuth_PassesTokenToService(t *testing.T) {
	var received string
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{
			authenticateFn: func(_ context.Context, s string) (models.User, error) {
				received = s
				return alice, nil
			},
		},
	})

	executeAuth(h, "Bearer   abc.def.ghi  ", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	assert.Equal(t, "abc.def.ghi", received)
}
