package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaKind distinguishes photographs from audio recordings.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindTrack MediaKind = "track"
)

// IsValid checks if the MediaKind is a known value.
func (k MediaKind) IsValid() bool {
	switch k {
	case MediaKindImage, MediaKindTrack:
		return true
	default:
		return false
	}
}

// String returns the string representation of the MediaKind.
func (k MediaKind) String() string {
	return string(k)
}

// MaxNoteLength caps the text of a single note.
const MaxNoteLength = 1000

// Media is an uploaded Image or Track. Tracks additionally carry a name and a transcript.
type Media struct {
	ID          uuid.UUID
	Kind        MediaKind
	Path        string // Natural key, e.g. uploads/example.com/daniel/1700000000000.jpg
	OwnerID     uuid.UUID
	Owner       *Agent // Loaded with the item; nil only on freshly built values.
	Name        string
	Transcript  string
	PublishedAt *time.Time // nil means private.
	Flagged     bool
	Flaggers    []uuid.UUID
	Likes       []uuid.UUID
	Notes       []*Note
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Note is a comment appended to a media item.
type Note struct {
	ID        uuid.UUID
	MediaID   uuid.UUID
	AuthorID  uuid.UUID
	Author    *Agent
	Text      string
	CreatedAt time.Time
}

// IsPublished reports whether the item is on the public feed.
func (m *Media) IsPublished() bool {
	return m.PublishedAt != nil
}

// IsPublic reports whether anyone may see the item through the feed.
func (m *Media) IsPublic() bool {
	return m.IsPublished() && !m.Flagged
}

// FlaggedBy reports whether agentID has flagged the item.
func (m *Media) FlaggedBy(agentID uuid.UUID) bool {
	return slices.Contains(m.Flaggers, agentID)
}

// LikedBy reports whether agentID currently likes the item.
func (m *Media) LikedBy(agentID uuid.UUID) bool {
	return slices.Contains(m.Likes, agentID)
}

// FindNote returns the note with the given ID or nil.
func (m *Media) FindNote(noteID uuid.UUID) *Note {
	for _, n := range m.Notes {
		if n.ID == noteID {
			return n
		}
	}

	return nil
}

// Directory returns the owner directory the item lives in, derived from its path.
func (m *Media) Directory(staticPrefix string) string {
	rel := strings.TrimPrefix(m.Path, strings.TrimSuffix(staticPrefix, "/")+"/")
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		return rel[:i]
	}

	return ""
}

// Filename returns the last path segment.
func (m *Media) Filename() string {
	if i := strings.LastIndex(m.Path, "/"); i >= 0 {
		return m.Path[i+1:]
	}

	return m.Path
}

// FlagOutcome tells the caller what a flag request did.
type FlagOutcome int

const (
	// FlagAdded means the caller's flag was recorded and the item is now flagged.
	FlagAdded FlagOutcome = iota
	// FlagAlreadyHandled means the caller flagged before; nothing changed.
	FlagAlreadyHandled
	// FlagCleared means the privileged identity lifted the flag.
	FlagCleared
)
