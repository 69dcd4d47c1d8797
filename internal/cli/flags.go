package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hasbyte1/go-typex/query"
)

var (
	_ pflag.Value = (*modeValue)(nil)
	_ pflag.Value = (*kindValue)(nil)
	_ pflag.Value = (*enumValue)(nil)
)

// modeValue is a --mode flag parsed with query.ParseMode.
type modeValue struct{ mode *query.Mode }

func (v *modeValue) String() string { return v.mode.String() }
func (v *modeValue) Type() string   { return "mode" }

func (v *modeValue) Set(s string) error {
	m, err := query.ParseMode(s)
	if err != nil {
		return err
	}
	*v.mode = m
	return nil
}

func completeModes(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	modes := query.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// kindValue is a --convert flag parsed with query.ParseKind.
type kindValue struct{ kind *query.Kind }

func (v *kindValue) Type() string { return "kind" }

func (v *kindValue) String() string {
	if !v.kind.Valid() {
		return ""
	}
	return v.kind.String()
}

func (v *kindValue) Set(s string) error {
	k, err := query.ParseKind(s)
	if err != nil {
		return err
	}
	*v.kind = k
	return nil
}

// enumValue is a string flag restricted to a fixed set of values.
type enumValue struct {
	value   *string
	allowed []string
}

func newEnumValue(p *string, def string, allowed ...string) *enumValue {
	*p = def
	return &enumValue{value: p, allowed: allowed}
}

func (v *enumValue) String() string { return *v.value }
func (v *enumValue) Type() string   { return "string" }

func (v *enumValue) Set(s string) error {
	for _, a := range v.allowed {
		if strings.EqualFold(s, a) {
			*v.value = a
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(v.allowed, ", "))
}
