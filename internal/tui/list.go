package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"portfolio-app/internal/domain/artwork"
	"portfolio-app/pkg/client"
)

// listModel shows the admin artwork list and hosts the create-new flow.
type listModel struct {
	client *client.Client

	artworks []artwork.Artwork
	total    int
	cursor   int

	loading bool
	errMsg  string

	creating   bool
	newTitle   string
	titleErr   string
	submitting bool
}

type listLoadedMsg struct {
	list *artwork.ListResponse
	err  error
}

type createTitleCheckedMsg struct {
	title     string
	available bool
	err       error
}

type artworkCreatedMsg struct {
	a   *artwork.Artwork
	err error
}

func newListModel(c *client.Client) listModel {
	return listModel{client: c, loading: true}
}

func (m listModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m listModel) loadCmd() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		list, err := c.AdminListArtworks(context.Background())
		return listLoadedMsg{list: list, err: err}
	}
}

func (m listModel) checkTitleCmd(title string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		available, err := c.CheckTitle(context.Background(), title, "")
		return createTitleCheckedMsg{title: title, available: available, err: err}
	}
}

func (m listModel) createCmd(title string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		a, err := c.CreateArtwork(context.Background(), title)
		return artworkCreatedMsg{a: a, err: err}
	}
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("failed to load artworks: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.artworks = msg.list.Artworks
		m.total = msg.list.Total
		if m.cursor >= len(m.artworks) {
			m.cursor = 0
		}
		return m, nil

	case createTitleCheckedMsg:
		if !m.creating || msg.title != strings.TrimSpace(m.newTitle) {
			return m, nil
		}
		if msg.err != nil {
			m.submitting = false
			m.errMsg = fmt.Sprintf("title check failed: %v", msg.err)
			return m, nil
		}
		if !msg.available {
			m.submitting = false
			m.titleErr = "Title already taken"
			return m, nil
		}
		return m, m.createCmd(msg.title)

	case artworkCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			if client.IsTitleConflict(msg.err) {
				m.titleErr = "Title already taken"
				return m, nil
			}
			m.errMsg = fmt.Sprintf("failed to create artwork: %v", msg.err)
			return m, nil
		}
		m.creating = false
		m.newTitle = ""
		return m, openArtwork(msg.a.ID)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m listModel) updateKeys(msg tea.KeyMsg) (listModel, tea.Cmd) {
	if m.creating {
		switch msg.String() {
		case "esc":
			m.creating = false
			m.newTitle = ""
			m.titleErr = ""
			return m, nil
		case "enter":
			title := strings.TrimSpace(m.newTitle)
			if title == "" || m.submitting {
				return m, nil
			}
			m.submitting = true
			// Best-effort pre-check; the create itself still owns the 409.
			return m, m.checkTitleCmd(title)
		}
		before := m.newTitle
		m.newTitle = editRune(m.newTitle, msg.String())
		if m.newTitle != before {
			m.titleErr = ""
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.artworks)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.artworks) {
			return m, openArtwork(m.artworks[m.cursor].ID)
		}
	case "n":
		m.creating = true
		m.newTitle = ""
		m.titleErr = ""
	case "r":
		m.loading = true
		return m, m.loadCmd()
	}
	return m, nil
}

func (m listModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Artworks") + "  " + metaStyle.Render(fmt.Sprintf("total: %d", m.total)) + "\n\n")

	switch {
	case m.loading:
		b.WriteString(metaStyle.Render("Loading…") + "\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	case len(m.artworks) == 0:
		b.WriteString(metaStyle.Render("No artworks yet. Press n to create one.") + "\n")
	default:
		for i, a := range m.artworks {
			state := a.EndDate
			if a.InProgress {
				state = "IN PROGRESS"
			}
			line := fmt.Sprintf("%-40s %s", a.Title, metaStyle.Render(state))
			if i == m.cursor {
				line = selectedStyle.Render(line)
			}
			b.WriteString("  " + line + "\n")
		}
	}

	if m.creating {
		b.WriteString("\n" + labelStyle.Render("New artwork title: ") + m.newTitle + "█\n")
		if m.titleErr != "" {
			b.WriteString(errorStyle.Render(m.titleErr) + "\n")
		}
	}

	b.WriteString("\n" + helpStyle.Render("↑↓: move · enter: open · n: new · r: reload · ctrl+l: logout · ctrl+c: quit"))
	return b.String()
}
