package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-typex/dates"
)

func (a *app) dateCmd() *cobra.Command {
	var ago bool
	cmd := &cobra.Command{
		Use:   "date [expr]",
		Short: "Resolve a relative date expression",
		Long: `Resolves keywords (today, yesterday, tomorrow, start-of-week,
end-of-month, ...), offsets (+3d, -2w, 1mo, 90min) and absolute dates.

Examples:
  typex date                 # today
  typex date -- -1w
  typex date end-of-month
  typex date 2025-02-01 --ago`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, err := a.cfg.Weekday()
			if err != nil {
				return err
			}
			expr := "today"
			if len(args) > 0 {
				expr = args[0]
			}

			now := a.now()
			t, err := dates.Resolve(expr, now, weekStart)
			if err != nil {
				return err
			}

			out := t.Format(dates.DateLayout)
			if !t.Equal(dates.StartOfDay(t)) {
				out = t.Format("2006-01-02 15:04:05")
			}
			if ago {
				out += " (" + dates.Ago(t, now) + ")"
			}
			_, err = fmt.Fprintln(a.stdout, out)
			return err
		},
	}
	cmd.Flags().BoolVar(&ago, "ago", false, "Also print the distance from now")
	return cmd
}
