package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"portfolio-app/internal/tui"
	"portfolio-app/pkg/client"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// tokenFilePath returns ~/.artfolio/token.
func tokenFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".artfolio", "token"), nil
}

// readToken returns the admin token using precedence: env var > file > empty.
func readToken() string {
	if tok := os.Getenv("ARTFOLIO_TOKEN"); tok != "" {
		return tok
	}
	path, err := tokenFilePath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func saveToken(tok string) error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create ~/.artfolio dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(tok), 0600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func clearToken() error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

func run() error {
	apiURL := os.Getenv("ARTFOLIO_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8090"
	}

	if len(os.Args) > 1 && os.Args[1] == "logout" {
		if err := clearToken(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	}

	token := readToken()
	c := client.New(apiURL, token)

	app := tui.NewApp(c, token != "", saveToken, clearToken)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
