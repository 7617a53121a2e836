package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"portfolio-app/pkg/client"
)

// loginModel acquires the admin credential: the operator pastes a token,
// which is verified against the admin surface before the session starts.
type loginModel struct {
	client *client.Client

	token     string
	verifying bool
	errMsg    string
}

type tokenVerifiedMsg struct {
	token string
	err   error
}

func newLoginModel(c *client.Client) loginModel {
	return loginModel{client: c}
}

func (m loginModel) Init() tea.Cmd {
	return nil
}

func (m loginModel) verifyCmd(token string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		c.SetToken(token)
		_, err := c.AdminListArtworks(context.Background())
		return tokenVerifiedMsg{token: token, err: err}
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tokenVerifiedMsg:
		m.verifying = false
		if msg.err != nil {
			if client.IsStatus(msg.err, 401) {
				m.errMsg = "Credential rejected"
			} else {
				m.errMsg = fmt.Sprintf("could not verify credential: %v", msg.err)
			}
			return m, nil
		}
		token := msg.token
		return m, func() tea.Msg { return sessionStartedMsg{token: token} }

	case tea.KeyMsg:
		if m.verifying {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			token := strings.TrimSpace(m.token)
			if token == "" {
				return m, nil
			}
			m.verifying = true
			m.errMsg = ""
			return m, m.verifyCmd(token)
		}
		before := m.token
		m.token = editRune(m.token, msg.String())
		if m.token != before {
			m.errMsg = ""
		}
		return m, nil
	}
	return m, nil
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Backoffice") + "\n\n")
	b.WriteString(labelStyle.Render("Admin token: ") + strings.Repeat("•", len([]rune(m.token))) + "█\n")
	if m.verifying {
		b.WriteString(metaStyle.Render("Verifying…") + "\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter: sign in · ctrl+c: quit"))
	return b.String()
}
