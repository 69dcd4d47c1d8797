// Package pretty renders maps as two-column Name/Value tables.
//
// Nested map[string]any values are flattened into dot-notation names and
// rows are sorted by name, so output is stable across runs:
//
//	fmt.Print(pretty.Map(map[string]any{
//	    "db":   map[string]any{"host": "localhost", "port": 5432},
//	    "tags": []string{"a", "b"},
//	}, pretty.Options{Plain: true}))
//
//	// Name     Value
//	// ----     -----
//	// db.host  localhost
//	// db.port  5432
//	// tags     {a, b}
package pretty

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/hasbyte1/go-typex/arr"
)

// DefaultAccent is the header colour used when Options.Accent is empty.
const DefaultAccent = "#A78BFA"

// Options controls rendering.
type Options struct {
	// Plain renders space-aligned text with no borders or colour.
	Plain bool
	// Accent is the lipgloss colour of the header row.
	Accent string
	// Width caps the table width in columns; 0 leaves it unbounded.
	Width int
}

// Entry is one rendered row.
type Entry struct {
	Name  string
	Value string
}

// Entries flattens m and returns its rows sorted by name.
func Entries(m map[string]any) []Entry {
	flat := arr.Dot(m)
	keys := arr.Keys(m)
	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = Entry{Name: k, Value: FormatValue(flat[k])}
	}
	return out
}

// Map renders m as a table. An empty map renders as the empty string.
func Map(m map[string]any, opts Options) string {
	entries := Entries(m)
	if len(entries) == 0 {
		return ""
	}
	if opts.Plain {
		return plain(entries)
	}
	return styled(entries, opts)
}

func plain(entries []Entry) string {
	width := len("Name")
	for _, e := range entries {
		width = max(width, len([]rune(e.Name)))
	}
	var sb strings.Builder
	writeRow := func(name, value string) {
		sb.WriteString(name)
		sb.WriteString(strings.Repeat(" ", width-len([]rune(name))+2))
		sb.WriteString(value)
		sb.WriteString("\n")
	}
	writeRow("Name", "Value")
	writeRow("----", "-----")
	for _, e := range entries {
		writeRow(e.Name, e.Value)
	}
	return sb.String()
}

func styled(entries []Entry, opts Options) string {
	accent := opts.Accent
	if accent == "" {
		accent = DefaultAccent
	}
	header := lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true).PaddingRight(2)
	cell := lipgloss.NewStyle().PaddingRight(2)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Name, e.Value}
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(muted).
		BorderColumn(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderBottom(false).
		Headers("Name", "Value").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Rows(rows...)
	if opts.Width > 0 {
		tbl = tbl.Width(opts.Width)
	}
	return tbl.Render() + "\n"
}

// FormatValue renders a single value. Slices and arrays render as
// "{a, b, c}"; nil renders as the empty string; everything else uses
// fmt.Sprint, so values implementing fmt.Stringer control their own output.
func FormatValue(v any) string {
	if v == nil {
		return ""
	}
	if _, ok := v.(fmt.Stringer); ok {
		return fmt.Sprint(v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return fmt.Sprint(v)
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = FormatValue(rv.Index(i).Interface())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case reflect.Map:
		if rv.Len() == 0 {
			return "{}"
		}
	}
	return fmt.Sprint(v)
}
