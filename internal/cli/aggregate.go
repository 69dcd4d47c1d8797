package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-typex/collections"
	"github.com/hasbyte1/go-typex/query"
)

func (a *app) sumCmd() *cobra.Command {
	var member string
	cmd := &cobra.Command{
		Use:   "sum [file]",
		Short: "Add up numeric items or a numeric member",
		Long: `Adds up the items, or the given member of every item. Every value must
convert to a number; strings are not concatenated.

Examples:
  echo '[1, 2, 3.5]' | typex sum
  typex sum orders.yaml --member total`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.readItems(args)
			if err != nil {
				return err
			}
			values := collections.From(items)
			if member != "" {
				if values, err = values.ForEach(query.Member(member), query.Strict()); err != nil {
					return err
				}
			}
			nums, err := values.ForEach(query.ConvertTo(query.KindFloat), query.Strict())
			if err != nil {
				return err
			}
			total, err := collections.SumBy(nums, func(v any) float64 { return v.(float64) })
			if err != nil {
				return err
			}
			return a.emit(total)
		},
	}
	cmd.Flags().StringVar(&member, "member", "", "Sum this member of every item")
	return cmd
}

func (a *app) containsCmd() *cobra.Command {
	var anyOf, allOf []string
	cmd := &cobra.Command{
		Use:   "contains [file]",
		Short: "Report whether the items contain any or all of the given values",
		Long: `Compares the string form of every item against the given values and
prints true or false. The exit status is 0 either way.

Examples:
  typex contains tags.yaml --any go,rust
  typex contains tags.yaml --all go --all yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.readItems(args)
			if err != nil {
				return err
			}
			strs, err := collections.Map(collections.From(items), func(v any) string { return fmt.Sprint(v) })
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("any") {
				return a.emit(collections.ContainsAny(strs, anyOf...))
			}
			return a.emit(collections.ContainsAll(strs, allOf...))
		},
	}
	cmd.Flags().StringSliceVar(&anyOf, "any", nil, "Values of which at least one must be present")
	cmd.Flags().StringSliceVar(&allOf, "all", nil, "Values that must all be present")
	cmd.MarkFlagsOneRequired("any", "all")
	cmd.MarkFlagsMutuallyExclusive("any", "all")
	return cmd
}
