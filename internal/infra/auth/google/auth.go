// Package google verifies Google ID tokens presented at login.
package google

import (
	"context"
	"log/slog"

	"album/config"
	"album/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// validateFunc matches idtoken.Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// verifier checks signature, audience, issuer and expiry through Google's public keys.
type verifier struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewIdentityVerifier creates the Google-backed IdentityVerifier.
func NewIdentityVerifier(cfg *config.Config, logger *slog.Logger) service.IdentityVerifier {
	return newVerifier(cfg.GoogleOAuth.ClientID, idtoken.Validate, logger)
}

func newVerifier(clientID string, validate validateFunc, logger *slog.Logger) *verifier {
	return &verifier{clientID: clientID, validate: validate, logger: logger}
}

// VerifyIDToken implements service.IdentityVerifier.
func (v *verifier) VerifyIDToken(ctx context.Context, idToken string) (*service.ExternalProfile, error) {
	if v.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid ID token")
	}

	if payload.Issuer != "https://accounts.google.com" && payload.Issuer != "accounts.google.com" {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	profile := profileFromClaims(payload.Subject, payload.Claims)

	v.logger.Debug("Google ID token verified",
		slog.String("subject", profile.Subject),
		slog.String("email", profile.Email))

	return profile, nil
}

func profileFromClaims(subject string, claims map[string]any) *service.ExternalProfile {
	str := func(key string) string {
		s, _ := claims[key].(string)

		return s
	}

	verified, _ := claims["email_verified"].(bool)

	return &service.ExternalProfile{
		Subject:       subject,
		Email:         str("email"),
		EmailVerified: verified,
		Name:          str("name"),
		GivenName:     str("given_name"),
		FamilyName:    str("family_name"),
		Picture:       str("picture"),
		Locale:        str("locale"),
	}
}
