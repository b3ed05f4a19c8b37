// Package tui implements the interactive terminal client: note and task
// lists with project/category filters, a compose/edit flow, and the
// assistant chat pane. All data lives on the server; the TUI reloads the
// full snapshot after every mutation instead of patching its lists.
package tui

import (
	"fmt"

	"rafpad-cli/internal/api"
	"rafpad-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI and blocks until the user quits.
func Run(client *api.Client, st *store.Store) error {
	applyColorProfilePreference()
	applyThemePreference()

	p := tea.NewProgram(newAppModel(client, st), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
