package handler

import (
	"time"

	"album/internal/domain/entity"
	"album/internal/usecase"

	"github.com/google/uuid"
)

// AgentView is the public shape of an agent. Credentials never leave the server.
type AgentView struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name,omitempty"`
	GivenName  string    `json:"given_name,omitempty"`
	FamilyName string    `json:"family_name,omitempty"`
	Picture    string    `json:"picture,omitempty"`
	Locale     string    `json:"locale,omitempty"`
	Directory  string    `json:"directory"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NoteView is a note with its author's email.
type NoteView struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	AuthorID  uuid.UUID `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// MediaView is an item as seen by one viewer.
type MediaView struct {
	ID          uuid.UUID  `json:"id"`
	Kind        string     `json:"kind"`
	Path        string     `json:"path"`
	URL         string     `json:"url"`
	Owner       string     `json:"owner"`
	Name        string     `json:"name,omitempty"`
	Transcript  string     `json:"transcript,omitempty"`
	PublishedAt *time.Time `json:"published_at"`
	Flagged     bool       `json:"flagged"`
	Likes       int        `json:"likes"`
	Liked       bool       `json:"liked"`
	Notes       []NoteView `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
}

// PageView is one page of a media listing.
type PageView struct {
	Items   []MediaView `json:"items"`
	Page    int         `json:"page"`
	Size    int         `json:"size"`
	Total   int64       `json:"total"`
	HasNext bool        `json:"has_next"`
}

// GrantsView lists both sides of the caller's grants.
type GrantsView struct {
	Readable []string `json:"readable"`
	Readers  []string `json:"readers"`
}

func toAgentView(a *entity.Agent) AgentView {
	return AgentView{
		ID:         a.ID,
		Email:      a.Email,
		Name:       a.Name,
		GivenName:  a.GivenName,
		FamilyName: a.FamilyName,
		Picture:    a.Picture,
		Locale:     a.Locale,
		Directory:  a.Directory(),
		UpdatedAt:  a.UpdatedAt,
	}
}

func toAgentViews(agents []*entity.Agent) []AgentView {
	out := make([]AgentView, 0, len(agents))
	for _, a := range agents {
		out = append(out, toAgentView(a))
	}

	return out
}

func toNoteView(n *entity.Note) NoteView {
	view := NoteView{
		ID:        n.ID,
		AuthorID:  n.AuthorID,
		Text:      n.Text,
		CreatedAt: n.CreatedAt,
	}
	if n.Author != nil {
		view.Author = n.Author.Email
	}

	return view
}

func toMediaView(m *entity.Media, viewer *entity.Agent) MediaView {
	view := MediaView{
		ID:          m.ID,
		Kind:        m.Kind.String(),
		Path:        m.Path,
		URL:         "/" + m.Path,
		Name:        m.Name,
		Transcript:  m.Transcript,
		PublishedAt: m.PublishedAt,
		Flagged:     m.Flagged,
		Likes:       len(m.Likes),
		Notes:       make([]NoteView, 0, len(m.Notes)),
		CreatedAt:   m.CreatedAt,
	}
	if m.Owner != nil {
		view.Owner = m.Owner.Email
	}
	if viewer != nil {
		view.Liked = m.LikedBy(viewer.ID)
	}
	for _, n := range m.Notes {
		view.Notes = append(view.Notes, toNoteView(n))
	}

	return view
}

func toMediaViews(items []*entity.Media, viewer *entity.Agent) []MediaView {
	out := make([]MediaView, 0, len(items))
	for _, m := range items {
		out = append(out, toMediaView(m, viewer))
	}

	return out
}

func toPageView(page *entity.PageResult[*entity.Media], viewer *entity.Agent) PageView {
	return PageView{
		Items:   toMediaViews(page.Items, viewer),
		Page:    page.Page,
		Size:    page.Size,
		Total:   page.Total,
		HasNext: page.HasNext(),
	}
}

func toGrantsView(out *usecase.GrantsOutput) GrantsView {
	view := GrantsView{Readable: out.Readable, Readers: out.Readers}
	if view.Readable == nil {
		view.Readable = []string{}
	}
	if view.Readers == nil {
		view.Readers = []string{}
	}

	return view
}
