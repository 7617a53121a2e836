package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"portfolio-app/internal/domain/artwork"
	"portfolio-app/pkg/client"
)

func loadedList(titles ...string) listLoadedMsg {
	var list artwork.ListResponse
	for i, title := range titles {
		list.Artworks = append(list.Artworks, artwork.Artwork{
			ID:    "art-" + string(rune('1'+i)),
			Title: title,
		})
	}
	list.Total = len(titles)
	return listLoadedMsg{list: &list}
}

func TestListLoadAndNavigate(t *testing.T) {
	m := newListModel(nil)
	m, _ = m.Update(loadedList("First", "Second", "Third"))

	if m.loading {
		t.Fatal("expected loading=false")
	}
	if m.total != 3 {
		t.Errorf("total = %d", m.total)
	}

	m, _ = m.Update(keyRunes("j"))
	m, _ = m.Update(keyRunes("j"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
	m, _ = m.Update(keyRunes("j"))
	if m.cursor != 2 {
		t.Errorf("cursor past end = %d", m.cursor)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected open command on enter")
	}
	msg := cmd()
	open, ok := msg.(openArtworkMsg)
	if !ok {
		t.Fatalf("expected openArtworkMsg, got %T", msg)
	}
	if open.id != "art-3" {
		t.Errorf("opened id = %q", open.id)
	}
}

func TestListLoadFailureShowsError(t *testing.T) {
	m := newListModel(nil)
	m, _ = m.Update(listLoadedMsg{err: errors.New("connection refused")})

	if m.errMsg == "" {
		t.Fatal("expected error message")
	}
	if !strings.Contains(m.View(), "connection refused") {
		t.Error("expected error surfaced in view")
	}
}

func TestListCreateFlow(t *testing.T) {
	m := newListModel(nil)
	m, _ = m.Update(loadedList("First"))

	m, _ = m.Update(keyRunes("n"))
	if !m.creating {
		t.Fatal("expected create prompt open after n")
	}

	for _, r := range "Nocturne" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected title pre-check command on enter")
	}
	if !m.submitting {
		t.Error("expected submitting=true while the check runs")
	}

	// Available title proceeds to the create request.
	_, cmd = m.Update(createTitleCheckedMsg{title: "Nocturne", available: true})
	if cmd == nil {
		t.Fatal("expected create command for available title")
	}

	// Created record opens its editor.
	m, cmd = m.Update(artworkCreatedMsg{a: &artwork.Artwork{ID: "art-9", Title: "Nocturne"}})
	if m.creating {
		t.Error("expected prompt closed after create")
	}
	if cmd == nil {
		t.Fatal("expected open command after create")
	}
	if open, ok := cmd().(openArtworkMsg); !ok || open.id != "art-9" {
		t.Errorf("expected editor opened for art-9, got %v", cmd())
	}
}

func TestListCreateTakenTitle(t *testing.T) {
	m := newListModel(nil)
	m, _ = m.Update(loadedList())
	m, _ = m.Update(keyRunes("n"))
	for _, r := range "First" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := m.Update(createTitleCheckedMsg{title: "First", available: false})
	if cmd != nil {
		t.Error("expected no create command for a taken title")
	}
	if m.titleErr == "" {
		t.Fatal("expected inline title error")
	}
	if m.submitting {
		t.Error("expected submitting=false after rejection")
	}
	if !m.creating {
		t.Error("expected prompt to stay open for correction")
	}

	// Editing the title clears the error.
	m, _ = m.Update(keyRunes("x"))
	if m.titleErr != "" {
		t.Errorf("expected error cleared after edit, got %q", m.titleErr)
	}
}

func TestListCreateConflictFromBackend(t *testing.T) {
	m := newListModel(nil)
	m, _ = m.Update(loadedList())
	m, _ = m.Update(keyRunes("n"))
	for _, r := range "Race" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(createTitleCheckedMsg{title: "Race", available: true})

	// The pre-check raced another writer; the create itself returns 409.
	m, _ = m.Update(artworkCreatedMsg{err: &client.HTTPError{StatusCode: 409, Message: "title already exists"}})
	if m.titleErr == "" {
		t.Fatal("expected inline title error from create conflict")
	}
	if !m.creating {
		t.Error("expected prompt still open after conflict")
	}
}

func TestListStaleCreateCheckIgnored(t *testing.T) {
	m := newListModel(nil)
	m, _ = m.Update(loadedList())
	m, _ = m.Update(keyRunes("n"))
	for _, r := range "Now" {
		m, _ = m.Update(keyRunes(string(r)))
	}

	_, cmd := m.Update(createTitleCheckedMsg{title: "Before", available: true})
	if cmd != nil {
		t.Error("expected stale check result ignored")
	}
}

func TestListEmptyTitleNotSubmitted(t *testing.T) {
	m := newListModel(nil)
	m, _ = m.Update(loadedList())
	m, _ = m.Update(keyRunes("n"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for empty title")
	}
}

func TestListInProgressColumn(t *testing.T) {
	m := newListModel(nil)
	list := artwork.ListResponse{
		Artworks: []artwork.Artwork{
			{ID: "a", Title: "Done", EndDate: "2024-03-02"},
			{ID: "b", Title: "Wet Paint", InProgress: true},
		},
		Total: 2,
	}
	m, _ = m.Update(listLoadedMsg{list: &list})

	out := m.View()
	if !strings.Contains(out, "IN PROGRESS") {
		t.Error("expected in-progress marker in view")
	}
	if !strings.Contains(out, "2024-03-02") {
		t.Error("expected end date in view")
	}
}
