package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"portfolio-app/pkg/client"
)

func TestLoginEmptyTokenNotSubmitted(t *testing.T) {
	m := newLoginModel(nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no verify command for empty token")
	}
}

func TestLoginRejectedCredential(t *testing.T) {
	m := newLoginModel(nil)
	m.verifying = true

	m, _ = m.Update(tokenVerifiedMsg{token: "bad", err: &client.HTTPError{StatusCode: 401, Message: "unauthorized"}})
	if m.verifying {
		t.Error("expected verifying=false after response")
	}
	if m.errMsg != "Credential rejected" {
		t.Errorf("errMsg = %q", m.errMsg)
	}
}

func TestLoginNetworkErrorDistinctFromRejection(t *testing.T) {
	m := newLoginModel(nil)
	m.verifying = true

	m, _ = m.Update(tokenVerifiedMsg{token: "tok", err: errors.New("connection refused")})
	if m.errMsg == "Credential rejected" {
		t.Error("expected network failure not reported as a rejection")
	}
	if m.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestLoginSuccessStartsSession(t *testing.T) {
	m := newLoginModel(nil)
	m.verifying = true

	_, cmd := m.Update(tokenVerifiedMsg{token: "tok-123"})
	if cmd == nil {
		t.Fatal("expected session start command")
	}
	started, ok := cmd().(sessionStartedMsg)
	if !ok {
		t.Fatalf("expected sessionStartedMsg, got %T", cmd())
	}
	if started.token != "tok-123" {
		t.Errorf("token = %q", started.token)
	}
}

func TestLoginViewMasksToken(t *testing.T) {
	m := newLoginModel(nil)
	for _, r := range "secret" {
		m, _ = m.Update(keyRunes(string(r)))
	}

	out := m.View()
	if strings.Contains(out, "secret") {
		t.Error("expected token hidden in view")
	}
	if !strings.Contains(out, strings.Repeat("•", 6)) {
		t.Error("expected mask characters in view")
	}
}

func TestLoginKeysIgnoredWhileVerifying(t *testing.T) {
	m := newLoginModel(nil)
	m.token = "tok"
	m.verifying = true

	m, cmd := m.Update(keyRunes("x"))
	if cmd != nil || m.token != "tok" {
		t.Error("expected input frozen while verifying")
	}
}
