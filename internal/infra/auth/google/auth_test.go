package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestVerifier_VerifyIDToken(t *testing.T) {
	var gotAudience string
	v := newVerifier("client-123", func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{
			Issuer:  "https://accounts.google.com",
			Subject: "1098",
			Claims: map[string]any{
				"email":          "mia@other.org",
				"email_verified": true,
				"name":           "Mia Example",
				"given_name":     "Mia",
				"family_name":    "Example",
				"picture":        "https://img/mia.png",
				"locale":         "en",
			},
		}, nil
	}, discardLogger())

	profile, err := v.VerifyIDToken(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, "client-123", gotAudience)
	assert.Equal(t, "1098", profile.Subject)
	assert.Equal(t, "mia@other.org", profile.Email)
	assert.True(t, profile.EmailVerified)
	assert.Equal(t, "Mia", profile.GivenName)
	assert.Equal(t, "en", profile.Locale)
}

func TestVerifier_Rejections(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		v := newVerifier("client-123", func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, errors.New("idtoken: audience provided does not match aud claim in the JWT")
		}, discardLogger())

		_, err := v.VerifyIDToken(context.Background(), "token")

		assert.ErrorContains(t, err, "invalid ID token")
	})

	t.Run("foreign issuer", func(t *testing.T) {
		v := newVerifier("client-123", func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}, discardLogger())

		_, err := v.VerifyIDToken(context.Background(), "token")

		assert.ErrorContains(t, err, "invalid issuer")
	})

	t.Run("missing client id", func(t *testing.T) {
		v := newVerifier("", nil, discardLogger())

		_, err := v.VerifyIDToken(context.Background(), "token")

		assert.Error(t, err)
	})
}

func TestProfileFromClaims_IgnoresWrongTypes(t *testing.T) {
	profile := profileFromClaims("s", map[string]any{"email": 42, "email_verified": "true"})

	assert.Empty(t, profile.Email)
	assert.False(t, profile.EmailVerified)
}
