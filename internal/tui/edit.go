package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"portfolio-app/internal/domain/artwork"
	"portfolio-app/pkg/client"
)

type editField int

const (
	fieldTitle editField = iota
	fieldPaintedLocation
	fieldStartDate
	fieldEndDate
	fieldInProgress
	fieldDetalle
	fieldBitacora
	fieldImages
	numEditFields
)

var editFieldLabels = [numEditFields]string{
	"Title",
	"Painted at",
	"Start date (YYYY-MM-DD)",
	"End date (YYYY-MM-DD)",
	"In progress",
	"Detail",
	"Logbook",
	"Images",
}

// deleteDialog is the confirmation modal gating image deletion.
type deleteDialog struct {
	open     bool
	filename string
	choice   int // 0 = detach only, 1 = detach and delete file, 2 = cancel
}

// editModel drives the artwork editor: load, edit, save, uploads, deletions
// and primary-image selection. The backend stays authoritative; every
// mutation replaces the local record with the server's response.
type editModel struct {
	client *client.Client
	id     string

	artwork *artwork.Artwork
	form    artwork.UpdateRequest

	focus       editField
	imageCursor int

	loading    bool
	loadFailed bool

	status    string
	statusErr bool

	titleErr         string
	lastCheckedTitle string

	uploading   bool
	uploadQueue []string

	uploadPrompt bool
	uploadInput  string

	deleting bool
	dialog   deleteDialog

	width  int
	height int
}

type artworkLoadedMsg struct {
	a   *artwork.Artwork
	err error
}

type artworkSavedMsg struct {
	a   *artwork.Artwork
	err error
}

type titleCheckedMsg struct {
	title     string
	available bool
	err       error
}

type imageUploadedMsg struct {
	a    *artwork.Artwork
	path string
	err  error
}

type imageDeletedMsg struct {
	a        *artwork.Artwork
	filename string
	err      error
}

func newEditModel(c *client.Client, id string) editModel {
	return editModel{client: c, id: id, loading: true}
}

func (m editModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m editModel) loadCmd() tea.Cmd {
	c, id := m.client, m.id
	return func() tea.Msg {
		a, err := c.AdminGetArtwork(context.Background(), id)
		return artworkLoadedMsg{a: a, err: err}
	}
}

func (m editModel) saveCmd() tea.Cmd {
	c, id, form := m.client, m.id, m.form
	return func() tea.Msg {
		a, err := c.UpdateArtwork(context.Background(), id, form)
		return artworkSavedMsg{a: a, err: err}
	}
}

func (m editModel) checkTitleCmd(title string) tea.Cmd {
	c, id := m.client, m.id
	return func() tea.Msg {
		available, err := c.CheckTitle(context.Background(), title, id)
		return titleCheckedMsg{title: title, available: available, err: err}
	}
}

func (m editModel) uploadCmd(path string) tea.Cmd {
	c, id := m.client, m.id
	return func() tea.Msg {
		file, err := os.Open(path)
		if err != nil {
			return imageUploadedMsg{path: path, err: err}
		}
		defer file.Close()
		a, err := c.UploadImage(context.Background(), id, filepath.Base(path), file)
		return imageUploadedMsg{a: a, path: path, err: err}
	}
}

func (m editModel) deleteCmd(filename string, deleteFile bool) tea.Cmd {
	c, id := m.client, m.id
	return func() tea.Msg {
		a, err := c.DeleteImage(context.Background(), id, filename, deleteFile)
		return imageDeletedMsg{a: a, filename: filename, err: err}
	}
}

func (m editModel) Update(msg tea.Msg) (editModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case artworkLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadFailed = true
			m.setError(fmt.Sprintf("failed to load artwork: %v", msg.err))
			return m, nil
		}
		m.artwork = msg.a
		m.form = artwork.FormFromArtwork(*msg.a)
		m.lastCheckedTitle = m.form.Title
		return m, nil

	case artworkSavedMsg:
		if msg.err != nil {
			if client.IsTitleConflict(msg.err) {
				// Conflict goes to the inline field error, not the banner.
				m.titleErr = "Title already taken"
				m.status = ""
				m.statusErr = false
				return m, nil
			}
			m.setError(fmt.Sprintf("failed to save: %v", msg.err))
			return m, nil
		}
		m.artwork = msg.a
		m.form = artwork.FormFromArtwork(*msg.a)
		m.lastCheckedTitle = m.form.Title
		m.setStatus("Saved ✓")
		return m, statusClearCmd()

	case titleCheckedMsg:
		if msg.title != strings.TrimSpace(m.form.Title) {
			// Stale check; the field changed since.
			return m, nil
		}
		if msg.err != nil {
			m.setError(fmt.Sprintf("title check failed: %v", msg.err))
			return m, nil
		}
		if !msg.available {
			m.titleErr = "Title already taken"
		} else {
			m.titleErr = ""
		}
		m.lastCheckedTitle = msg.title
		return m, nil

	case imageUploadedMsg:
		if msg.err != nil {
			// Abort the rest of the batch; already-applied uploads stay.
			m.uploading = false
			m.uploadQueue = nil
			m.setError(fmt.Sprintf("failed to upload %s: %v", msg.path, msg.err))
			return m, nil
		}
		m.artwork = msg.a
		if m.form.PrimaryImage == "" {
			if msg.a.PrimaryImage != "" {
				m.form.PrimaryImage = msg.a.PrimaryImage
			} else {
				m.form.PrimaryImage = artwork.NextPrimary(msg.a.Images)
			}
		}
		if len(m.uploadQueue) > 0 {
			m.uploadQueue = m.uploadQueue[1:]
		}
		if len(m.uploadQueue) > 0 {
			return m, m.uploadCmd(m.uploadQueue[0])
		}
		m.uploading = false
		m.setStatus("Images uploaded ✓")
		return m, statusClearCmd()

	case imageDeletedMsg:
		m.deleting = false
		if msg.err != nil {
			m.setError(fmt.Sprintf("failed to remove image: %v", msg.err))
			return m, nil
		}
		m.artwork = msg.a
		if m.imageCursor >= len(msg.a.Images) && m.imageCursor > 0 {
			m.imageCursor = len(msg.a.Images) - 1
		}
		if m.form.PrimaryImage == msg.filename {
			m.form.PrimaryImage = artwork.NextPrimary(msg.a.Images)
		}
		m.setStatus("Image removed ✓")
		return m, statusClearCmd()

	case statusClearMsg:
		if !m.statusErr {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m editModel) updateKeys(msg tea.KeyMsg) (editModel, tea.Cmd) {
	if m.loading || m.loadFailed {
		if msg.String() == "esc" {
			return m, backToList()
		}
		return m, nil
	}
	if m.dialog.open {
		return m.updateDialogKeys(msg)
	}
	if m.uploadPrompt {
		return m.updateUploadPromptKeys(msg)
	}

	switch msg.String() {
	case "esc":
		return m, backToList()

	case "ctrl+s":
		if m.uploading || m.deleting {
			return m, nil
		}
		if m.titleErr != "" {
			// An unresolved title conflict blocks saving.
			return m, nil
		}
		m.form.Normalize()
		m.setStatus("Saving…")
		return m, m.saveCmd()

	case "tab", "down":
		return m.moveFocus(1)

	case "shift+tab", "up":
		return m.moveFocus(-1)

	case "u":
		if m.focus == fieldImages && !m.uploading {
			m.uploadPrompt = true
			m.uploadInput = ""
			return m, nil
		}

	case "left":
		if m.focus == fieldImages && m.imageCursor > 0 {
			m.imageCursor--
			return m, nil
		}

	case "right":
		if m.focus == fieldImages && m.artwork != nil && m.imageCursor < len(m.artwork.Images)-1 {
			m.imageCursor++
			return m, nil
		}

	case "p":
		if m.focus == fieldImages && m.artwork != nil && m.imageCursor < len(m.artwork.Images) {
			// Local selection only; persisted by the next save.
			m.form.PrimaryImage = m.artwork.Images[m.imageCursor]
			return m, nil
		}

	case "x", "delete":
		if m.focus == fieldImages && m.artwork != nil && m.imageCursor < len(m.artwork.Images) && !m.deleting {
			m.dialog = deleteDialog{open: true, filename: m.artwork.Images[m.imageCursor]}
			return m, nil
		}

	case "enter", " ":
		if m.focus == fieldInProgress {
			m.form.SetInProgress(!m.form.InProgress)
			return m, nil
		}
		if msg.String() == "enter" {
			return m.moveFocus(1)
		}
	}

	return m.updateTextField(msg)
}

func (m editModel) updateTextField(msg tea.KeyMsg) (editModel, tea.Cmd) {
	key := msg.String()
	switch m.focus {
	case fieldTitle:
		before := m.form.Title
		m.form.Title = editRune(m.form.Title, key)
		if m.form.Title != before {
			// Retyping clears the inline error until the next check.
			m.titleErr = ""
		}
	case fieldPaintedLocation:
		m.form.PaintedLocation = editRune(m.form.PaintedLocation, key)
	case fieldStartDate:
		m.form.StartDate = editRune(m.form.StartDate, key)
	case fieldEndDate:
		if !m.form.InProgress {
			m.form.EndDate = editRune(m.form.EndDate, key)
		}
	case fieldDetalle:
		m.form.Detalle = editRune(m.form.Detalle, key)
	case fieldBitacora:
		m.form.Bitacora = editRune(m.form.Bitacora, key)
	}
	return m, nil
}

// moveFocus shifts field focus; leaving the title field triggers the
// availability check when the title changed since it was last checked.
func (m editModel) moveFocus(delta int) (editModel, tea.Cmd) {
	leavingTitle := m.focus == fieldTitle
	m.focus = editField((int(m.focus) + delta + int(numEditFields)) % int(numEditFields))

	if leavingTitle {
		title := strings.TrimSpace(m.form.Title)
		if title != "" && title != m.lastCheckedTitle {
			return m, m.checkTitleCmd(title)
		}
	}
	return m, nil
}

func (m editModel) updateDialogKeys(msg tea.KeyMsg) (editModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dialog = deleteDialog{}
		return m, nil
	case "left", "shift+tab":
		m.dialog.choice = (m.dialog.choice + 2) % 3
		return m, nil
	case "right", "tab":
		m.dialog.choice = (m.dialog.choice + 1) % 3
		return m, nil
	case "enter":
		dialog := m.dialog
		m.dialog = deleteDialog{}
		if dialog.choice == 2 {
			return m, nil
		}
		m.deleting = true
		m.setStatus("Removing image…")
		return m, m.deleteCmd(dialog.filename, dialog.choice == 1)
	}
	return m, nil
}

func (m editModel) updateUploadPromptKeys(msg tea.KeyMsg) (editModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.uploadPrompt = false
		m.uploadInput = ""
		return m, nil
	case "enter":
		paths := strings.Fields(m.uploadInput)
		m.uploadPrompt = false
		m.uploadInput = ""
		if len(paths) == 0 {
			return m, nil
		}
		return m.startUpload(paths)
	}
	m.uploadInput = editRune(m.uploadInput, msg.String())
	return m, nil
}

// startUpload begins a strictly sequential upload batch: one file at a time,
// stopping at the first failure.
func (m editModel) startUpload(paths []string) (editModel, tea.Cmd) {
	m.uploading = true
	m.uploadQueue = paths
	m.setStatus("Uploading images…")
	return m, m.uploadCmd(paths[0])
}

func (m *editModel) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *editModel) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m editModel) View() string {
	if m.loading {
		return metaStyle.Render("Loading artwork…")
	}
	if m.loadFailed {
		return errorStyle.Render(m.status) + "\n" + helpStyle.Render("esc: back")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.artwork.Title))
	b.WriteString("  " + metaStyle.Render(m.id) + "\n\n")

	for f := fieldTitle; f < numEditFields; f++ {
		label := editFieldLabels[f]
		style := labelStyle
		marker := "  "
		if f == m.focus {
			style = focusedStyle
			marker = "> "
		}

		switch f {
		case fieldInProgress:
			check := "[ ]"
			if m.form.InProgress {
				check = "[x]"
			}
			b.WriteString(marker + style.Render(label) + " " + check + "\n")
		case fieldEndDate:
			value := m.form.EndDate
			if m.form.InProgress {
				value = metaStyle.Render("(in progress)")
			}
			b.WriteString(marker + style.Render(label) + ": " + value + "\n")
		case fieldImages:
			b.WriteString(marker + style.Render(fmt.Sprintf("%s (%d)", label, len(m.artwork.Images))) + "\n")
			b.WriteString(m.renderImages())
		default:
			b.WriteString(marker + style.Render(label) + ": " + m.fieldValue(f) + "\n")
			if f == fieldTitle && m.titleErr != "" {
				b.WriteString("    " + errorStyle.Render(m.titleErr) + "\n")
			}
		}
	}

	if m.uploadPrompt {
		b.WriteString("\n" + labelStyle.Render("File paths (space-separated): ") + m.uploadInput + "█\n")
	}

	if m.dialog.open {
		b.WriteString("\n" + m.renderDialog())
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status) + "\n")
		} else {
			b.WriteString(statusStyle.Render(m.status) + "\n")
		}
	}

	b.WriteString("\n" + helpStyle.Render("tab/↑↓: fields · ctrl+s: save · images: ←→ select, p primary, u upload, x remove · esc: back"))
	return b.String()
}

func (m editModel) fieldValue(f editField) string {
	switch f {
	case fieldTitle:
		return m.form.Title
	case fieldPaintedLocation:
		return m.form.PaintedLocation
	case fieldStartDate:
		return m.form.StartDate
	case fieldDetalle:
		return m.form.Detalle
	case fieldBitacora:
		return m.form.Bitacora
	}
	return ""
}

func (m editModel) renderImages() string {
	if len(m.artwork.Images) == 0 {
		return "    " + metaStyle.Render("no images yet") + "\n"
	}
	var b strings.Builder
	for i, img := range m.artwork.Images {
		line := img
		if img == m.form.PrimaryImage {
			line = primaryMarkStyle.Render("★ ") + line
		} else {
			line = "  " + line
		}
		if m.focus == fieldImages && i == m.imageCursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString("    " + line + "\n")
	}
	return b.String()
}

func (m editModel) renderDialog() string {
	options := []string{"Detach only", "Detach and delete file", "Cancel"}
	var rendered []string
	for i, opt := range options {
		if i == m.dialog.choice {
			rendered = append(rendered, selectedStyle.Render(" "+opt+" "))
		} else {
			rendered = append(rendered, " "+opt+" ")
		}
	}
	body := "Remove " + m.dialog.filename + "?\n\n" + strings.Join(rendered, "  ")
	return dialogStyle.Render(body)
}
