package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"portfolio-app/pkg/client"
)

type view int

const (
	viewLogin view = iota
	viewList
	viewEdit
)

// sessionStartedMsg reports a verified credential from the login view.
type sessionStartedMsg struct {
	token string
}

// openArtworkMsg switches to the editor for one artwork.
type openArtworkMsg struct {
	id string
}

// backToListMsg returns from the editor to the list.
type backToListMsg struct{}

func openArtwork(id string) tea.Cmd {
	return func() tea.Msg { return openArtworkMsg{id: id} }
}

func backToList() tea.Cmd {
	return func() tea.Msg { return backToListMsg{} }
}

// App is the root Bubbletea model for the backoffice terminal client.
type App struct {
	client *client.Client

	// credential persistence hooks, wired by the caller
	saveToken  func(string) error
	clearToken func() error

	view  view
	login loginModel
	list  listModel
	edit  editModel

	width  int
	height int
}

// NewApp creates the terminal backoffice. With authenticated the login view
// is skipped and the list loads immediately.
func NewApp(c *client.Client, authenticated bool, saveToken func(string) error, clearToken func() error) App {
	a := App{
		client:     c,
		login:      newLoginModel(c),
		list:       newListModel(c),
		saveToken:  saveToken,
		clearToken: clearToken,
	}
	if authenticated {
		a.view = viewList
	}
	return a
}

func (a App) Init() tea.Cmd {
	if a.view == viewList {
		return a.list.Init()
	}
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.edit, _ = a.edit.Update(msg)
		return a, nil

	case sessionStartedMsg:
		if a.saveToken != nil {
			_ = a.saveToken(msg.token)
		}
		a.view = viewList
		a.list = newListModel(a.client)
		return a, a.list.Init()

	case openArtworkMsg:
		a.edit = newEditModel(a.client, msg.id)
		a.view = viewEdit
		return a, a.edit.Init()

	case backToListMsg:
		a.view = viewList
		a.list.loading = true
		return a, a.list.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+l":
			if a.view != viewLogin {
				if a.clearToken != nil {
					_ = a.clearToken()
				}
				a.client.SetToken("")
				a.login = newLoginModel(a.client)
				a.view = viewLogin
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	case viewList:
		a.list, cmd = a.list.Update(msg)
	case viewEdit:
		a.edit, cmd = a.edit.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	switch a.view {
	case viewLogin:
		return a.login.View()
	case viewList:
		return a.list.View()
	case viewEdit:
		return a.edit.View()
	}
	return ""
}
