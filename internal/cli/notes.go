package cli

import (
	"strconv"

	"rafpad-cli/internal/api"
	"rafpad-cli/internal/model"

	"github.com/spf13/cobra"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage notes",
	}
	cmd.AddCommand(
		newNotesListCmd(app),
		newNotesShowCmd(app),
		newNotesAddCmd(app),
		newNotesEditCmd(app),
		newNotesMoveCmd(app),
		newNotesDeleteCmd(app),
	)
	return cmd
}

func newNotesListCmd(app *App) *cobra.Command {
	var project, category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := app.client().ListNotes(cmd.Context())
			if err != nil {
				return err
			}
			notes = filterNotesCLI(notes, project, category)
			return printJSON(cmd, app, notes)
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "only notes with this project tag")
	cmd.Flags().StringVar(&category, "category", "", "only notes with this category")
	return cmd
}

func filterNotesCLI(notes []model.Note, project, category string) []model.Note {
	if project == "" && category == "" {
		return notes
	}
	tag := model.FormatProjectTag(project)
	out := notes[:0:0]
	for _, n := range notes {
		if tag != "" && n.ProjectTag != tag {
			continue
		}
		if category != "" && n.Category != category {
			continue
		}
		out = append(out, n)
	}
	return out
}

func newNotesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := app.client().GetNote(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, app, n)
		},
	}
}

func newNotesAddCmd(app *App) *cobra.Command {
	var project, category string
	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Create a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.client().CreateNote(cmd.Context(), api.NotePayload{
				Content:    args[0],
				Category:   category,
				ProjectTag: model.FormatProjectTag(project),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, app, n)
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "project tag (defaults to inbox)")
	cmd.Flags().StringVar(&category, "category", "", "category")
	return cmd
}

func newNotesEditCmd(app *App) *cobra.Command {
	var content, project, category string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a note's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			// Fetch first so unset flags keep their current values.
			current, err := app.client().GetNote(cmd.Context(), id)
			if err != nil {
				return err
			}
			p := api.NotePayload{
				Content:    current.Content,
				Category:   current.Category,
				ProjectTag: current.ProjectTag,
			}
			if cmd.Flags().Changed("content") {
				p.Content = content
			}
			if cmd.Flags().Changed("category") {
				p.Category = category
			}
			if cmd.Flags().Changed("project") {
				p.ProjectTag = model.TagOrDefault(model.FormatProjectTag(project))
			}
			n, err := app.client().UpdateNote(cmd.Context(), id, p)
			if err != nil {
				return err
			}
			return printJSON(cmd, app, n)
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "new content")
	cmd.Flags().StringVar(&project, "project", "", "new project tag")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	return cmd
}

func newNotesMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <project>",
		Short: "Move a note to another project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := app.client().MoveNote(cmd.Context(), id, model.TagOrDefault(model.FormatProjectTag(args[1])))
			if err != nil {
				return err
			}
			return printJSON(cmd, app, n)
		},
	}
}

func newNotesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.client().DeleteNote(cmd.Context(), id)
		},
	}
}

func parseID(s string) (int, error) {
	return strconv.Atoi(s)
}
