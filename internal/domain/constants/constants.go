// Package constants holds string values shared between configuration and wiring.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal posts events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// SessionCookie carries the browser session token.
	SessionCookie = "session"
	// TokenCookie carries a bearer token for clients that cannot set headers.
	TokenCookie = "jwt"
	// FlashCookie carries the one-shot user-facing message after a redirect.
	FlashCookie = "flash"
	// TokenHeader is the custom header accepted for bearer tokens.
	TokenHeader = "X-Access-Token"
	// TokenField is the body and query parameter name accepted for bearer tokens.
	TokenField = "token"
)
