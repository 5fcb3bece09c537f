package token

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToken_GenerateAndParse(t *testing.T) {
	tok := New("test-secret", time.Hour)
	ctx := context.Background()

	signed, err := tok.Generate(ctx, 42, "session-abc")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	userID, sessionID, err := tok.Parse(ctx, signed)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "session-abc", sessionID)
}

func TestToken_Parse_WrongSecret(t *testing.T) {
	ctx := context.Background()

	signed, err := New("secret-a", time.Hour).Generate(ctx, 1, "sid")
	assert.NoError(t, err)

	_, _, err = New("secret-b", time.Hour).Parse(ctx, signed)
	assert.Error(t, err)
}

func TestToken_Parse_Expired(t *testing.T) {
	ctx := context.Background()

	signed, err := New("secret", -time.Minute).Generate(ctx, 1, "sid")
	assert.NoError(t, err)

	_, _, err = New("secret", -time.Minute).Parse(ctx, signed)
	assert.Error(t, err)
}

func TestToken_Parse_Garbage(t *testing.T) {
	_, _, err := New("secret", time.Hour).Parse(context.Background(), "not.a.token")
	assert.Error(t, err)
}

func TestToken_FromRequest(t *testing.T) {
	tok := New("secret", time.Hour)
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(r *http.Request)
		expected  string
		expectErr bool
	}{
		{
			name: "cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
			},
			expected: "cookie-token",
		},
		{
			name: "bearer header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer header-token")
			},
			expected: "header-token",
		},
		{
			name: "cookie wins over header",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
				r.Header.Set("Authorization", "Bearer header-token")
			},
			expected: "cookie-token",
		},
		{
			name:      "missing",
			setup:     func(r *http.Request) {},
			expectErr: true,
		},
		{
			name: "malformed header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Basic abc")
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)

			got, err := tok.FromRequest(ctx, req)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
