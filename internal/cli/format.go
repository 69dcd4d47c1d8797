package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-typex/pretty"
)

func (a *app) formatCmd() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Pretty-print items as Name/Value tables",
		Long: `Prints every item as a two-column Name/Value table. Nested maps are
flattened into dot-notation names and rows are sorted by name. Items that
are not maps are shown under the name "value".

Output is styled on a terminal and plain otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.readItems(args)
			if err != nil {
				return err
			}
			opts := pretty.Options{
				Plain:  plain || !isTerminal(a.stdout),
				Accent: a.cfg.UI.Accent,
			}
			if !opts.Plain {
				opts.Width = termWidth(a.stdout)
			}
			return writeTables(a.stdout, items, opts)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable styling even on a terminal")
	return cmd
}

func writeTables(w io.Writer, items []any, opts pretty.Options) error {
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			m = map[string]any{"value": item}
		}
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, pretty.Map(m, opts)); err != nil {
			return err
		}
	}
	return nil
}
