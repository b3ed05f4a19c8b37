package cli

import (
	"fmt"
	"strconv"
	"strings"

	"rafpad-cli/internal/model"
	"rafpad-cli/internal/store"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant",
	}
	cmd.AddCommand(
		newChatSendCmd(app),
		newChatHistoryCmd(app),
		newChatClearCmd(app),
		newChatModelCmd(app),
		newChatSettingsCmd(app),
	)
	return cmd
}

// resolveSession returns the session ID for scriptable chat commands. With
// no --session flag a fresh ID is minted, so each invocation is its own
// conversation; pass the same ID to continue one.
func resolveSession(session string) string {
	if s := strings.TrimSpace(session); s != "" {
		return s
	}
	return uuid.NewString()
}

func newChatSendCmd(app *App) *cobra.Command {
	var session string
	cmd := &cobra.Command{
		Use:   "send <message>",
		Short: "Send one message and print the reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := resolveSession(session)
			reply, err := app.client().SendChat(cmd.Context(), id, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply.Response)
			fmt.Fprintln(cmd.ErrOrStderr(), "session:", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "session ID to continue a conversation")
	return cmd
}

func newChatHistoryCmd(app *App) *cobra.Command {
	var session string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print a session's transcript in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(session) == "" {
				return fmt.Errorf("--session is required")
			}
			messages, err := app.client().ChatHistory(cmd.Context(), session)
			if err != nil {
				return err
			}
			return printJSON(cmd, app, messages)
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "session ID")
	return cmd
}

func newChatClearCmd(app *App) *cobra.Command {
	var session string
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear a session's history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(session) == "" {
				return fmt.Errorf("--session is required")
			}
			return app.client().ClearChat(cmd.Context(), session)
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "session ID")
	return cmd
}

func newChatModelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "model <name>",
		Short: "Switch the assistant model (resets server-side context)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.client().SetChatModel(cmd.Context(), args[0])
		},
	}
}

func newChatSettingsCmd(app *App) *cobra.Command {
	var (
		temperature string
		maxTokens   string
		identity    string
		tone        string
		subjectArea string
	)
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update assistant settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := store.DefaultDir()
			if err != nil {
				return err
			}
			st := store.Store{Dir: dir}
			if err := st.Ensure(); err != nil {
				return err
			}
			settings, err := st.LoadChatSettings(cmd.Context())
			if err != nil {
				settings = model.DefaultChatSettings()
			}

			changed := false
			if cmd.Flags().Changed("temperature") {
				t, err := strconv.ParseFloat(temperature, 64)
				if err != nil {
					return fmt.Errorf("temperature must be a number")
				}
				settings.Temperature = t
				changed = true
			}
			if cmd.Flags().Changed("max-tokens") {
				n, err := strconv.Atoi(maxTokens)
				if err != nil {
					return fmt.Errorf("max-tokens must be a whole number")
				}
				settings.MaxTokens = n
				changed = true
			}
			if cmd.Flags().Changed("identity") {
				settings.UserIdentity = identity
				changed = true
			}
			if cmd.Flags().Changed("tone") {
				settings.ResponseTone = tone
				changed = true
			}
			if cmd.Flags().Changed("subject-area") {
				settings.LLMSubjectArea = subjectArea
				changed = true
			}
			settings = settings.Clamp()

			if changed {
				if err := st.SaveChatSettings(cmd.Context(), settings); err != nil {
					return err
				}
				if err := app.client().SaveChatSettings(cmd.Context(), settings); err != nil {
					return err
				}
			}
			return printJSON(cmd, app, settings)
		},
	}
	cmd.Flags().StringVar(&temperature, "temperature", "", "sampling temperature (0–2)")
	cmd.Flags().StringVar(&maxTokens, "max-tokens", "", "reply token cap (1–4096)")
	cmd.Flags().StringVar(&identity, "identity", "", "who the assistant is talking to")
	cmd.Flags().StringVar(&tone, "tone", "", "response tone")
	cmd.Flags().StringVar(&subjectArea, "subject-area", "", "subject area focus")
	return cmd
}
