package query

import (
	"fmt"
	"reflect"
)

type opKind uint8

const (
	opNone opKind = iota
	opTransform
	opConvert
	opMember
)

// Operation is what [Project] does to each element. Build one with
// [Transform], [ConvertTo] or [Member]; the zero Operation is invalid.
type Operation struct {
	kind   opKind
	fn     func(any) any
	target Kind
	name   string
	args   []any
}

// Transform applies fn to each element and collects the non-nil results.
func Transform(fn func(any) any) Operation {
	return Operation{kind: opTransform, fn: fn}
}

// ConvertTo converts each element to k. Elements that cannot be converted
// are misses.
func ConvertTo(k Kind) Operation {
	return Operation{kind: opConvert, target: k}
}

// Member resolves the member name on each element.
//
// A method is invoked with args and its result collected unless it is nil
// or false. A data member (map key or exported struct field) is assigned
// when args are given (args[0], or the whole args slice when there is more
// than one) and nothing is collected; without args its value is collected
// unless nil. Names with dots address nested map[string]any values.
func Member(name string, args ...any) Operation {
	cp := make([]any, len(args))
	copy(cp, args)
	return Operation{kind: opMember, name: name, args: cp}
}

func (o Operation) String() string {
	switch o.kind {
	case opTransform:
		return "Transform"
	case opConvert:
		return "ConvertTo(" + o.target.String() + ")"
	case opMember:
		return fmt.Sprintf("Member(%s, %d args)", o.name, len(o.args))
	default:
		return "Operation(none)"
	}
}

func (o Operation) validate() error {
	switch o.kind {
	case opTransform:
		if o.fn == nil {
			return fmt.Errorf("%w: nil transform", ErrNilOperation)
		}
	case opConvert:
		if !o.target.Valid() {
			return fmt.Errorf("%w: unknown conversion target %d", ErrInvalidArgument, int(o.target))
		}
	case opMember:
		if o.name == "" {
			return fmt.Errorf("%w: empty member name", ErrNilOperation)
		}
	default:
		return ErrNilOperation
	}
	return nil
}

// ProjectOption configures [Project].
type ProjectOption func(*projectOptions)

type projectOptions struct {
	strict  bool
	onMiss  func(index int, err error)
	members []*Members
}

// Strict makes [Project] return an [*ElementError] for the first element that
// cannot be projected instead of dropping it.
func Strict() ProjectOption {
	return func(o *projectOptions) { o.strict = true }
}

// OnMiss registers fn to be called with the index and cause of every element
// that cannot be projected. It is called before [Strict] aborts.
func OnMiss(fn func(index int, err error)) ProjectOption {
	return func(o *projectOptions) { o.onMiss = fn }
}

// WithMembers adds custom member tables, consulted in order before
// reflection. Nil tables are ignored.
func WithMembers(tables ...*Members) ProjectOption {
	return func(o *projectOptions) {
		for _, m := range tables {
			if m != nil {
				o.members = append(o.members, m)
			}
		}
	}
}

// Project applies op to every element of items and returns the collected
// results in input order.
//
// Elements whose result is absent are omitted. So are elements that cannot be
// projected (unknown member, failed conversion, failing method, wrong
// arguments); that silent drop is the default contract. Use [OnMiss] to see
// the drops and [Strict] to fail instead.
//
// A Member operation that assigns values mutates the elements themselves
// (maps, or structs reached through pointers); items is never resliced or
// reordered.
func Project[S ~[]T, T any](items S, op Operation, opts ...ProjectOption) ([]any, error) {
	if err := op.validate(); err != nil {
		return nil, err
	}
	var o projectOptions
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]any, 0, len(items))
	for i, item := range items {
		v, keep, err := op.apply(any(item), o.members)
		if err != nil {
			if o.onMiss != nil {
				o.onMiss(i, err)
			}
			if o.strict {
				return nil, &ElementError{Index: i, Err: err}
			}
			continue
		}
		if keep {
			out = append(out, v)
		}
	}
	return out, nil
}

// ProjectFunc is the statically typed form of a Transform projection. fn
// reports false to omit an element.
func ProjectFunc[S ~[]T, T, U any](items S, fn func(T) (U, bool)) ([]U, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil transform", ErrNilOperation)
	}
	out := make([]U, 0, len(items))
	for _, item := range items {
		if v, ok := fn(item); ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (o Operation) apply(item any, tables []*Members) (any, bool, error) {
	switch o.kind {
	case opTransform:
		v := o.fn(item)
		return v, !isAbsent(v), nil
	case opConvert:
		v, err := Convert(item, o.target)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	default:
		return resolveMember(item, o.name, o.args, tables)
	}
}

// isAbsent reports whether v is nil or a typed nil.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// isFalsy is the filter applied to invoked-member results.
func isFalsy(v any) bool {
	if isAbsent(v) {
		return true
	}
	b, ok := v.(bool)
	return ok && !b
}
