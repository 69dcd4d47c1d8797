package cli

import (
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-typex/collections"
)

func (a *app) flattenCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "flatten [file]",
		Short: "Flatten nested lists into one list",
		Long: `Expands nested lists into a single list. --depth limits how many levels
are expanded; the default expands all of them.

Example:
  echo '[1, [2, [3, [4]]]]' | typex flatten --depth 1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.readItems(args)
			if err != nil {
				return err
			}
			return a.emit(collections.FlattenDepth(collections.From(items), depth).All())
		},
	}
	cmd.Flags().IntVar(&depth, "depth", -1, "Levels to expand below the items; negative is unlimited")
	return cmd
}

func (a *app) sliceCmd() *cobra.Command {
	var (
		offset, length int
		reverse        bool
	)
	cmd := &cobra.Command{
		Use:   "slice [file]",
		Short: "Select a run of items by position",
		Long: `Returns --length items starting at --offset. A negative offset counts
from the end; a negative length runs to the end.

Examples:
  typex slice items.yaml --offset 2 --length 3
  typex slice items.yaml --offset -2
  typex slice items.yaml --reverse`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.readItems(args)
			if err != nil {
				return err
			}
			c := collections.From(items).Slice(offset, length)
			return a.emit(c.When(reverse, (*collections.Collection[any]).Reverse).All())
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "First position; negative counts from the end")
	cmd.Flags().IntVar(&length, "length", -1, "Number of items; negative runs to the end")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Reverse the selected items")
	return cmd
}
