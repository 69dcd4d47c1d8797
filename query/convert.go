package query

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-softwarelab/common/pkg/to"
)

// Kind is a conversion target for [ConvertTo].
type Kind int

const (
	// KindString converts with fmt.Sprint.
	KindString Kind = iota + 1
	// KindInt converts to int. Fractions round half to even.
	KindInt
	// KindInt64 converts to int64. Fractions round half to even.
	KindInt64
	// KindFloat converts to float64.
	KindFloat
	// KindBool converts numbers (non-zero is true) and strconv.ParseBool
	// strings to bool.
	KindBool
)

var kindNames = map[Kind]string{
	KindString: "string",
	KindInt:    "int",
	KindInt64:  "int64",
	KindFloat:  "float",
	KindBool:   "bool",
}

var kindAliases = map[string]Kind{
	"string":  KindString,
	"str":     KindString,
	"int":     KindInt,
	"int32":   KindInt,
	"int64":   KindInt64,
	"long":    KindInt64,
	"float":   KindFloat,
	"double":  KindFloat,
	"float64": KindFloat,
	"bool":    KindBool,
	"boolean": KindBool,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is a declared conversion target.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind parses a conversion target name such as "int", "long",
// "double" or "bool" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: unknown conversion target %q", ErrInvalidArgument, s)
}

// Convert converts v to kind k. Failures wrap [ErrConversion].
func Convert(v any, k Kind) (any, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: unknown conversion target %d", ErrInvalidArgument, int(k))
	}
	if isAbsent(v) {
		return nil, fmt.Errorf("%w: nil to %s", ErrConversion, k)
	}

	var (
		out any
		err error
	)
	switch k {
	case KindString:
		out = fmt.Sprint(v)
	case KindInt:
		var n int64
		if n, err = toInt64(v); err == nil {
			out, err = to.IntFromSigned(n)
		}
	case KindInt64:
		out, err = toInt64(v)
	case KindFloat:
		out, err = toFloat(v)
	case KindBool:
		out, err = toBool(v)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v to %s: %w", ErrConversion, v, k, err)
	}
	return out, nil
}

// scalar reduces v to one of int64, uint64, float64, string or bool.
func scalar(v any) (any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("nil %s", rv.Type())
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return strings.TrimSpace(rv.String()), nil
	case reflect.Bool:
		return rv.Bool(), nil
	}
	if s, ok := v.(fmt.Stringer); ok {
		return strings.TrimSpace(s.String()), nil
	}
	return nil, fmt.Errorf("unsupported type %T", v)
}

func toInt64(v any) (int64, error) {
	s, err := scalar(v)
	if err != nil {
		return 0, err
	}
	switch n := s.(type) {
	case int64:
		return n, nil
	case uint64:
		return to.Int64(n)
	case float64:
		return roundToInt64(n)
	case bool:
		return to.Int64FromBool(n), nil
	default:
		str := n.(string)
		i, err := to.Int64FromString(str)
		if err == nil {
			return i, nil
		}
		f, ferr := to.Float64FromString(str)
		if ferr != nil {
			return 0, err
		}
		return roundToInt64(f)
	}
}

func roundToInt64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v %w", f, to.ErrValueOutOfRange)
	}
	r := math.RoundToEven(f)
	if r < math.MinInt64 || r >= math.MaxInt64 {
		return 0, fmt.Errorf("%v %w to int64", f, to.ErrValueOutOfRange)
	}
	return int64(r), nil
}

func toFloat(v any) (float64, error) {
	s, err := scalar(v)
	if err != nil {
		return 0, err
	}
	switch n := s.(type) {
	case int64:
		return to.Float64(n)
	case uint64:
		return to.Float64(n)
	case float64:
		return n, nil
	case bool:
		return to.Float64FromBool(n), nil
	default:
		return to.Float64FromString(n.(string))
	}
}

func toBool(v any) (bool, error) {
	s, err := scalar(v)
	if err != nil {
		return false, err
	}
	switch n := s.(type) {
	case int64:
		return to.BoolFromNumber(n), nil
	case uint64:
		return to.BoolFromNumber(n), nil
	case float64:
		return to.BoolFromNumber(n), nil
	case bool:
		return n, nil
	default:
		return to.BoolFromString(n.(string))
	}
}
