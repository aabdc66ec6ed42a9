package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpost/blog-api/internal/api/shared"
	"github.com/inkpost/blog-api/internal/domain"
	"github.com/inkpost/blog-api/internal/mocks"
	"github.com/inkpost/blog-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	alice := &domain.User{ID: 7, Username: "alice", Email: "alice@example.com"}

	tests := []struct {
		name        string
		authHeader  string
		validateErr error
		claims      *auth.Claims
		storedUser  *domain.User
		wantStatus  int
		wantNext    bool
	}{
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			claims:     &auth.Claims{UserID: alice.ID},
			storedUser: alice,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer scheme",
			authHeader: "Basic abc123",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "scheme without token",
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:        "expired token",
			authHeader:  "Bearer stale-token",
			validateErr: auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "bad signature",
			authHeader:  "Bearer forged-token",
			validateErr: auth.ErrBadSignature,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "malformed token",
			authHeader:  "Bearer not.a.jwt",
			validateErr: auth.ErrMalformedToken,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:       "principal deleted after issuance",
			authHeader: "Bearer orphan-token",
			claims:     &auth.Claims{UserID: 404},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:        "unexpected validation failure",
			authHeader:  "Bearer good-token",
			validateErr: errors.New("keystore unavailable"),
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			userStore := mocks.NewMockUserStore()
			if tt.storedUser != nil {
				userStore.Users[tt.storedUser.ID] = tt.storedUser
			}

			jwtService := &mocks.MockJWTService{
				Claims:      tt.claims,
				ValidateErr: tt.validateErr,
			}

			nextCalled := false
			var seenUser *domain.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				seenUser, _ = UserFromRequest(r)
				w.WriteHeader(http.StatusOK)
			})

			middleware := NewAuthMiddleware(jwtService, userStore)

			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()
			middleware.Authenticate(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if tt.wantNext {
				require.NotNil(t, seenUser)
				assert.Equal(t, alice.ID, seenUser.ID)
			} else if recorder.Code == http.StatusUnauthorized {
				// Every rejection reads the same; clients cannot tell
				// which failure occurred.
				assert.Contains(t, recorder.Body.String(), "Invalid credentials")
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"well-formed", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"absent header", "", "", auth.ErrMissingToken},
		{"wrong scheme", "Basic abc123", "", auth.ErrMalformedToken},
		{"scheme only", "Bearer", "", auth.ErrMalformedToken},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := bearerToken(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, auth.IsVerificationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestUserFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		user, ok := UserFromRequest(req)
		assert.False(t, ok)
		assert.Nil(t, user)
	})

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		alice := &domain.User{ID: 7, Username: "alice"}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), shared.UserContextKey, alice)
		user, ok := UserFromRequest(req.WithContext(ctx))
		assert.True(t, ok)
		assert.Equal(t, alice, user)
	})
}
