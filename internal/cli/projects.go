package cli

import (
	"github.com/spf13/cobra"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage projects",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List known project tags with element counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.client().ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, app, projects)
		},
	})
	return cmd
}
