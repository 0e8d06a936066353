package identity

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"album/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFetcher(t *testing.T, url string, enabled bool) *profileFetcher {
	t.Helper()
	cfg := &config.Config{IdentityAPI: &config.IdentityAPIConfig{
		Enabled:     enabled,
		UserInfoURL: url,
		Token:       "api-token",
		Timeout:     time.Second,
	}}
	f, ok := NewProfileFetcher(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*profileFetcher)
	require.True(t, ok)

	return f
}

func TestProfileFetcher_FetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer api-token", r.Header.Get("Authorization"))
		assert.Equal(t, "ann@example.com", r.URL.Query().Get("email"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"sub":"g-1","email":"Ann@example.com","email_verified":true,"name":"Ann Lee","picture":"https://img/ann.png"}`)
	}))
	defer srv.Close()

	f := newFetcher(t, srv.URL+"/userinfo", true)
	require.True(t, f.Enabled())

	profile, err := f.FetchProfile(context.Background(), "ann@example.com")

	require.NoError(t, err)
	assert.Equal(t, "g-1", profile.Subject)
	assert.Equal(t, "Ann Lee", profile.Name)
	assert.Equal(t, "https://img/ann.png", profile.Picture)
	assert.True(t, profile.EmailVerified)
}

func TestProfileFetcher_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "nope", http.StatusBadGateway)
			},
			wantErr: "identity API returned 502",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, "{")
			},
			wantErr: "failed to decode",
		},
		{
			name: "different account",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `{"email":"bob@example.com"}`)
			},
			wantErr: "instead of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := newFetcher(t, srv.URL, true).FetchProfile(context.Background(), "ann@example.com")

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestProfileFetcher_Disabled(t *testing.T) {
	f := newFetcher(t, "http://unused.invalid", false)

	assert.False(t, f.Enabled())
	_, err := f.FetchProfile(context.Background(), "ann@example.com")
	assert.Error(t, err)
}
