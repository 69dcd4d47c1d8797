package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-typex/collections"
	"github.com/hasbyte1/go-typex/query"
)

func (a *app) foreachCmd() *cobra.Command {
	var (
		member  string
		rawArgs []string
		kind    query.Kind
		strict  bool
	)
	cmd := &cobra.Command{
		Use:   "foreach [file]",
		Short: "Project a member or a conversion over every item",
		Long: `Reads a member of every item, calls a method on it, assigns to it, or
converts the item to another type.

Items that cannot be projected are dropped (logged with --verbose) unless
--strict is given. Nil and false results are dropped.

Examples:
  typex foreach users.yaml --member address.city
  typex foreach words.yaml --member ToUpper
  typex foreach words.yaml --member Substring --arg 0 --arg 3
  typex foreach nums.yaml --convert int --strict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var op query.Operation
			if cmd.Flags().Changed("member") {
				op = query.Member(member, parseArgs(rawArgs)...)
			} else {
				op = query.ConvertTo(kind)
			}

			items, err := a.readItems(args)
			if err != nil {
				return err
			}

			opts := []query.ProjectOption{
				query.OnMiss(func(index int, err error) {
					a.logger.Debug("item skipped", "index", index, "op", op.String(), "err", err)
				}),
			}
			if strict {
				opts = append(opts, query.Strict())
			}
			out, err := collections.From(items).ForEach(op, opts...)
			if err != nil {
				return err
			}
			return a.emit(out.All())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&member, "member", "", "Member name (map key, field or method)")
	flags.StringArrayVar(&rawArgs, "arg", nil, "Method argument or value to assign (repeatable, YAML scalar)")
	flags.Var(&kindValue{kind: &kind}, "convert", "Convert items to string, int, int64, float or bool")
	flags.BoolVar(&strict, "strict", false, "Fail on the first item that cannot be projected")
	cmd.MarkFlagsOneRequired("member", "convert")
	cmd.MarkFlagsMutuallyExclusive("member", "convert")
	cmd.MarkFlagsMutuallyExclusive("arg", "convert")
	return cmd
}

// parseArgs decodes each --arg as a YAML scalar so "3" becomes an int and
// "true" a bool.
func parseArgs(raw []string) []any {
	out := make([]any, len(raw))
	for i, s := range raw {
		var v any
		if err := yaml.Unmarshal([]byte(s), &v); err != nil || v == nil {
			out[i] = s
			continue
		}
		out[i] = v
	}
	return out
}
