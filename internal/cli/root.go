// Package cli wires the cobra command tree. Bare invocation starts the
// interactive TUI; subcommands are the scriptable surface over the same
// server API.
package cli

import (
	"os"
	"strings"
	"time"

	"rafpad-cli/internal/api"
	"rafpad-cli/internal/store"
	"rafpad-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Server     string
	Timeout    time.Duration
	PrettyJSON bool
}

func (a *App) client() *api.Client {
	return api.NewClient(a.Server, a.Timeout)
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "rafpad",
		Short:        "Notes, tasks and assistant chat client",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  rafpad

  # Scriptable commands
  rafpad notes list
  rafpad tasks add "Buy milk" --project errands --priority high
  rafpad chat send "What is on my plate today?"
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	defaultServer := api.DefaultBaseURL
	if v := strings.TrimSpace(os.Getenv("RAFPAD_SERVER")); v != "" {
		defaultServer = v
	}
	cmd.PersistentFlags().StringVar(&app.Server, "server", defaultServer, "server base URL (env RAFPAD_SERVER)")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", 30*time.Second, "request timeout")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "indent JSON output")

	cmd.AddCommand(
		newNotesCmd(app),
		newTasksCmd(app),
		newProjectsCmd(app),
		newChatCmd(app),
	)
	return cmd
}

func runTUI(app *App) error {
	// Settings persistence is best-effort; the TUI works without it.
	var st *store.Store
	if dir, err := store.DefaultDir(); err == nil {
		s := &store.Store{Dir: dir}
		if err := s.Ensure(); err == nil {
			st = s
		}
	}
	return tui.Run(app.client(), st)
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
