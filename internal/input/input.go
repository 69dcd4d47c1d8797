// Package input decodes item sequences for the typex CLI.
package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects a document decoder.
type Format string

const (
	// Auto picks the format from the file extension, and YAML (a superset
	// of most JSON) for stdin.
	Auto Format = ""
	YAML Format = "yaml"
	JSON Format = "json"
	TOML Format = "toml"
)

// ItemsKey is the TOML table key holding the item array.
const ItemsKey = "items"

// ErrUnknownFormat is returned for a Format outside the declared set.
var ErrUnknownFormat = errors.New("input: unknown format")

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	case "toml":
		return TOML, nil
	}
	return Auto, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFor guesses the format of path from its extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML
	case ".json":
		return JSON
	default:
		return YAML
	}
}

// ReadFile decodes the items in path. With Auto the format follows the
// file extension.
func ReadFile(path string, format Format) ([]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if format == Auto {
		format = FormatFor(path)
	}
	items, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Decode reads items from r.
//
// A YAML or JSON document holding a list contributes its elements; any other
// document contributes itself as one item, and a multi-document YAML stream
// yields one entry per document. A TOML document contributes its items
// array, or itself when there is none.
func Decode(r io.Reader, format Format) ([]any, error) {
	switch format {
	case Auto, YAML:
		return decodeYAML(r)
	case JSON:
		return decodeJSON(r)
	case TOML:
		return decodeTOML(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

func decodeYAML(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)
	items := []any{}
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		doc = normalize(doc)
		if list, ok := doc.([]any); ok {
			items = append(items, list...)
			continue
		}
		if doc != nil {
			items = append(items, doc)
		}
	}
}

func decodeJSON(r io.Reader) ([]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	items := []any{}
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		doc = normalize(doc)
		if list, ok := doc.([]any); ok {
			items = append(items, list...)
			continue
		}
		if doc != nil {
			items = append(items, doc)
		}
	}
}

func decodeTOML(r io.Reader) ([]any, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	var doc map[string]any
	if _, err := toml.Decode(buf.String(), &doc); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	if len(doc) == 0 {
		return []any{}, nil
	}
	raw, ok := doc[ItemsKey]
	if !ok {
		return []any{normalize(doc)}, nil
	}
	if list, ok := normalize(raw).([]any); ok {
		return list, nil
	}
	return []any{normalize(raw)}, nil
}

// normalize rewrites decoder output into map[string]any and []any trees so
// dot-notation member access works on every format.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	case int64:
		if int64(int(t)) == t {
			return int(t)
		}
		return t
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return normalize(n)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	}
	return v
}
