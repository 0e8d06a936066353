package service

import "context"

// ExternalProfile is the profile data an identity provider knows about an agent.
type ExternalProfile struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	GivenName     string
	FamilyName    string
	Picture       string
	Locale        string
}

// IdentityVerifier verifies identity-provider ID tokens presented at login.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*ExternalProfile, error)
}

// ProfileFetcher looks up current profile data for an email from the external identity API.
type ProfileFetcher interface {
	// Enabled reports whether the identity API should be consulted.
	Enabled() bool

	FetchProfile(ctx context.Context, email string) (*ExternalProfile, error)
}
