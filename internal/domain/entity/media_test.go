package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMedia_DirectoryAndFilename(t *testing.T) {
	t.Parallel()

	m := &Media{Path: "uploads/example.com/daniel/1700000000000.jpg"}

	assert.Equal(t, "example.com/daniel", m.Directory("uploads"))
	assert.Equal(t, "example.com/daniel", m.Directory("uploads/"))
	assert.Equal(t, "1700000000000.jpg", m.Filename())
}

func TestMedia_IsPublic(t *testing.T) {
	t.Parallel()

	now := time.Now()

	assert.False(t, (&Media{}).IsPublic())
	assert.True(t, (&Media{PublishedAt: &now}).IsPublic())
	assert.False(t, (&Media{PublishedAt: &now, Flagged: true}).IsPublic())
}

func TestMedia_FindNote(t *testing.T) {
	t.Parallel()

	note := &Note{ID: uuid.New(), Text: "nice"}
	m := &Media{Notes: []*Note{{ID: uuid.New()}, note}}

	assert.Same(t, note, m.FindNote(note.ID))
	assert.Nil(t, m.FindNote(uuid.New()))
}

func TestMediaKind_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, MediaKindImage.IsValid())
	assert.True(t, MediaKindTrack.IsValid())
	assert.False(t, MediaKind("video").IsValid())
}
