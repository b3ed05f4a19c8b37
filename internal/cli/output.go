package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// printJSON writes the command result to stdout. Scriptable commands always
// emit JSON so output can be piped into jq without a format flag.
func printJSON(cmd *cobra.Command, app *App, v any) error {
	var (
		b   []byte
		err error
	)
	if app.PrettyJSON {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
