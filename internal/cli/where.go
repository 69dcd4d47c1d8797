package cli

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-typex/arr"
	"github.com/hasbyte1/go-typex/collections"
	"github.com/hasbyte1/go-typex/query"
)

// condition describes the predicate flags shared by where.
type condition struct {
	member string
	match  string
	like   string
	eq     string
	hasEq  bool
	not    bool
}

// predicate compiles the condition. With only a member, items pass when the
// member exists and is not nil.
func (c condition) predicate() (func(any) bool, error) {
	var test func(v any) bool
	switch {
	case c.match != "":
		re, err := regexp.Compile("(?i)" + c.match)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", query.ErrInvalidPattern, c.match, err)
		}
		test = func(v any) bool { return v != nil && re.MatchString(fmt.Sprint(v)) }
	case c.like != "":
		re, err := query.CompileWildcard(c.like, true)
		if err != nil {
			return nil, err
		}
		test = func(v any) bool { return v != nil && re.MatchString(fmt.Sprint(v)) }
	case c.hasEq:
		test = func(v any) bool { return v != nil && fmt.Sprint(v) == c.eq }
	case c.member != "":
		test = func(v any) bool { return v != nil }
	default:
		return nil, errors.New("one of --match, --like, --eq or --member is required")
	}

	return func(item any) bool {
		v := item
		if c.member != "" {
			var ok bool
			if v, ok = memberValue(item, c.member); !ok {
				return c.not
			}
		}
		return test(v) != c.not
	}, nil
}

// memberValue reads name from item. Map keys are looked up by dot path and
// then case-insensitively; other values go through member projection.
func memberValue(item any, name string) (any, bool) {
	if m, ok := item.(map[string]any); ok {
		key, ok := arr.ResolveKey(m, name)
		if !ok {
			return nil, false
		}
		return arr.Lookup(m, key)
	}
	out, err := query.Project([]any{item}, query.Member(name), query.Strict())
	if err != nil || len(out) == 0 {
		return nil, false
	}
	return out[0], true
}

func (a *app) whereCmd() *cobra.Command {
	var (
		cond  condition
		mode  query.Mode
		count int
	)
	cmd := &cobra.Command{
		Use:   "where [file]",
		Short: "Select items matching a condition",
		Long: `Selects items with a condition and a mode.

Modes:
  default    every match (at most --count)
  first      the first --count matches (default 1)
  last       the last --count matches (default 1)
  skipuntil  everything from the first match on
  until      everything before the first match
  split      matches and the remaining items

Examples:
  typex where users.yaml --member name --like 'a*'
  typex where users.yaml --member age --eq 30 --not
  typex where logs.json --match 'error|warn' --mode split`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cond.hasEq = cmd.Flags().Changed("eq")
			if !cmd.Flags().Changed("mode") {
				mode = a.cfg.DefaultMode
			}
			pred, err := cond.predicate()
			if err != nil {
				return err
			}
			items, err := a.readItems(args)
			if err != nil {
				return err
			}

			matched, rest, err := collections.From(items).Select(pred, mode, count)
			if err != nil {
				return err
			}
			a.logger.Debug("where", "mode", mode, "count", count, "in", len(items), "matched", matched.Count())
			if rest != nil {
				return a.emit(map[string][]any{
					"matches": matched.All(),
					"rest":    rest.All(),
				})
			}
			return a.emit(matched.All())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cond.member, "member", "", "Test this member (dot path for nested maps) instead of the item")
	flags.StringVar(&cond.match, "match", "", "Case-insensitive regular expression")
	flags.StringVar(&cond.like, "like", "", "Case-insensitive wildcard pattern (*, ?, [a-z])")
	flags.StringVar(&cond.eq, "eq", "", "Exact string comparison")
	flags.BoolVar(&cond.not, "not", false, "Negate the condition")
	flags.Var(&modeValue{mode: &mode}, "mode", "Selection mode (default from config)")
	flags.IntVar(&count, "count", 0, "Maximum number of matches; 0 uses the mode default")
	cmd.MarkFlagsMutuallyExclusive("match", "like", "eq")
	_ = cmd.RegisterFlagCompletionFunc("mode", completeModes)
	return cmd
}
