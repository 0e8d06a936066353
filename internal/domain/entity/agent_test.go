package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDirectoryOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  string
	}{
		{email: "daniel@example.com", want: "example.com/daniel"},
		{email: "Lanny.Two@Sub.Example.org", want: "Sub.Example.org/Lanny.Two"},
		{email: "odd@local@example.com", want: "example.com/odd@local"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, DirectoryOf(tt.email))
		})
	}
}

func TestEmailOf_InvertsDirectoryOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "daniel@example.com", EmailOf("example.com", "daniel"))
	assert.Equal(t, "example.com/daniel", (&Agent{Email: EmailOf("example.com", "daniel")}).Directory())
}

func TestAgent_ResetTokenValid(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	earlier := now.Add(-time.Minute)

	assert.True(t, (&Agent{ResetToken: "abc", ResetExpires: &later}).ResetTokenValid("abc", now))
	assert.False(t, (&Agent{ResetToken: "abc", ResetExpires: &earlier}).ResetTokenValid("abc", now))
	assert.False(t, (&Agent{ResetToken: "abc", ResetExpires: &later}).ResetTokenValid("xyz", now))
	assert.False(t, (&Agent{ResetToken: "", ResetExpires: &later}).ResetTokenValid("", now))
	assert.False(t, (&Agent{ResetToken: "abc"}).ResetTokenValid("abc", now))
}

func TestAgent_CanReadAgent(t *testing.T) {
	t.Parallel()

	other := uuid.New()
	agent := &Agent{CanRead: []uuid.UUID{other}}

	assert.True(t, agent.CanReadAgent(other))
	assert.False(t, agent.CanReadAgent(uuid.New()))
}
