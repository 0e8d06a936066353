// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Agent is a registered identity, uniquely keyed by email.
type Agent struct {
	ID           uuid.UUID   // Primary key.
	Email        string      // Case-sensitive unique key; also the source of the agent's directory.
	PasswordHash string      // bcrypt hash, empty for agents that only ever signed in through the identity provider.
	Name         string      // Profile fields synced from the identity provider.
	GivenName    string      //
	FamilyName   string      //
	Picture      string      //
	Locale       string      //
	ProviderID   string      // Identity provider subject, empty for local registrations.
	CanRead      []uuid.UUID // Agents whose directories this agent may read. Directed, non-transitive.
	ResetToken   string
	ResetExpires *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Directory returns the storage path segment owned by the agent.
func (a *Agent) Directory() string {
	return DirectoryOf(a.Email)
}

// CanReadAgent reports whether other is in the agent's grant set.
func (a *Agent) CanReadAgent(other uuid.UUID) bool {
	return slices.Contains(a.CanRead, other)
}

// ResetTokenValid reports whether token matches an unexpired reset token.
func (a *Agent) ResetTokenValid(token string, now time.Time) bool {
	if a.ResetToken == "" || token == "" || a.ResetToken != token {
		return false
	}

	return a.ResetExpires != nil && now.Before(*a.ResetExpires)
}

// DirectoryOf maps an email address to "domain/localpart". Callers guarantee the
// address contains an '@'.
func DirectoryOf(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}

	return email[at+1:] + "/" + email[:at]
}

// EmailOf is the inverse of DirectoryOf for the two path segments of a directory.
func EmailOf(domain, localpart string) string {
	return localpart + "@" + domain
}
