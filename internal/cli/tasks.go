package cli

import (
	"rafpad-cli/internal/api"
	"rafpad-cli/internal/model"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTasksListCmd(app),
		newTasksShowCmd(app),
		newTasksAddCmd(app),
		newTasksEditCmd(app),
		newTasksMoveCmd(app),
		newTasksDeleteCmd(app),
	)
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var project, category string
	var pending bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.client().ListTasks(cmd.Context())
			if err != nil {
				return err
			}
			tag := model.FormatProjectTag(project)
			out := tasks[:0:0]
			for _, t := range tasks {
				if tag != "" && t.ProjectTag != tag {
					continue
				}
				if category != "" && t.Category != category {
					continue
				}
				if pending && t.IsCompleted {
					continue
				}
				out = append(out, t)
			}
			return printJSON(cmd, app, out)
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "only tasks with this project tag")
	cmd.Flags().StringVar(&category, "category", "", "only tasks with this category")
	cmd.Flags().BoolVar(&pending, "pending", false, "exclude completed tasks")
	return cmd
}

func newTasksShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := app.client().GetTask(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, app, t)
		},
	}
}

func newTasksAddCmd(app *App) *cobra.Command {
	var project, category, priority, deadline string
	var subtasks []string
	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := api.TaskPayload{
				Content:    args[0],
				Category:   category,
				Priority:   priority,
				Deadline:   deadline,
				ProjectTag: model.FormatProjectTag(project),
			}
			for _, st := range subtasks {
				p.Subtasks = append(p.Subtasks, api.SubtaskPayload{Content: st})
			}
			t, err := app.client().CreateTask(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printJSON(cmd, app, t)
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "project tag (defaults to inbox)")
	cmd.Flags().StringVar(&category, "category", "", "category")
	cmd.Flags().StringVar(&priority, "priority", "", "low, medium or high (defaults to medium)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline as YYYY-MM-DD")
	cmd.Flags().StringArrayVar(&subtasks, "subtask", nil, "subtask content (repeatable)")
	return cmd
}

func newTasksEditCmd(app *App) *cobra.Command {
	var content, project, category, priority, deadline string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a task's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := app.client().GetTask(cmd.Context(), id)
			if err != nil {
				return err
			}
			p := taskPayloadFrom(current)
			if cmd.Flags().Changed("content") {
				p.Content = content
			}
			if cmd.Flags().Changed("category") {
				p.Category = category
			}
			if cmd.Flags().Changed("priority") {
				p.Priority = priority
			}
			if cmd.Flags().Changed("deadline") {
				p.Deadline = deadline
			}
			if cmd.Flags().Changed("project") {
				p.ProjectTag = model.TagOrDefault(model.FormatProjectTag(project))
			}
			t, err := app.client().UpdateTask(cmd.Context(), id, p)
			if err != nil {
				return err
			}
			return printJSON(cmd, app, t)
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "new content")
	cmd.Flags().StringVar(&project, "project", "", "new project tag")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&priority, "priority", "", "new priority")
	cmd.Flags().StringVar(&deadline, "deadline", "", "new deadline as YYYY-MM-DD")
	return cmd
}

func newTasksMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <project>",
		Short: "Move a task to another project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			t, err := app.client().MoveTask(cmd.Context(), id, model.TagOrDefault(model.FormatProjectTag(args[1])))
			if err != nil {
				return err
			}
			return printJSON(cmd, app, t)
		},
	}
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.client().DeleteTask(cmd.Context(), id)
		},
	}
}

// taskPayloadFrom carries a task's current fields into an update payload so
// flag-driven edits only touch what was set.
func taskPayloadFrom(t model.Task) api.TaskPayload {
	p := api.TaskPayload{
		Content:     t.Content,
		Category:    t.Category,
		Priority:    t.Priority,
		IsCompleted: t.IsCompleted,
		ProjectTag:  t.ProjectTag,
	}
	if t.Deadline != nil && !t.Deadline.IsZero() {
		p.Deadline = t.Deadline.DateString()
	}
	return p
}
