package query

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hasbyte1/go-typex/arr"
)

var errorType = reflect.TypeFor[error]()

// resolveMember looks name up on item: custom member tables, the built-in
// string members, data members (map keys, exported struct fields), exported
// methods, and finally Count/Length on slices, arrays and maps. Names match
// exactly first and case-insensitively second.
func resolveMember(item any, name string, args []any, tables []*Members) (any, bool, error) {
	for _, t := range tables {
		if fn, ok := t.lookup(name); ok {
			v, err := fn(item, args...)
			if err != nil {
				return nil, false, err
			}
			return v, !isFalsy(v), nil
		}
	}
	if item == nil {
		return nil, false, fmt.Errorf("%w: %q on nil", ErrMemberNotFound, name)
	}
	if s, ok := item.(string); ok {
		if fn, ok := lookupStringMember(name); ok {
			v, err := fn(s, args...)
			if err != nil {
				return nil, false, err
			}
			return v, !isFalsy(v), nil
		}
	}
	if m, ok := item.(map[string]any); ok {
		return mapMember(m, name, args)
	}

	rv := reflect.ValueOf(item)
	if found, v, keep, err := dataMember(rv, name, args); found {
		return v, keep, err
	}
	if method, ok := findMethod(rv, name); ok {
		return callMethod(method, args)
	}
	if n, ok := intrinsicLength(rv, name, args); ok {
		return n, true, nil
	}
	return nil, false, fmt.Errorf("%w: %q on %T", ErrMemberNotFound, name, item)
}

func mapMember(m map[string]any, name string, args []any) (any, bool, error) {
	key, exists := arr.ResolveKey(m, name)
	// A case-insensitive match is a literal top-level key, even when it
	// contains dots.
	literal := exists && key != name
	if len(args) > 0 {
		if m == nil {
			return nil, false, fmt.Errorf("%w: key %q of nil map", ErrNotSettable, name)
		}
		if literal {
			m[key] = setValue(args)
		} else {
			arr.Set(m, key, setValue(args))
		}
		return nil, false, nil
	}
	if !exists {
		return nil, false, fmt.Errorf("%w: key %q", ErrMemberNotFound, name)
	}
	var v any
	if literal {
		v = m[key]
	} else {
		v = arr.Get(m, key)
	}
	return v, !isAbsent(v), nil
}

// dataMember handles string-keyed maps and structs. found is false when rv
// has no data member of that name, so methods are tried next.
func dataMember(rv reflect.Value, name string, args []any) (found bool, v any, keep bool, err error) {
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return true, nil, false, fmt.Errorf("%w: %q on nil %s", ErrMemberNotFound, name, rv.Type())
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return false, nil, false, nil
		}
		return reflectMapMember(rv, name, args)
	case reflect.Struct:
		sf, ok := fieldByName(rv.Type(), name)
		if !ok {
			return false, nil, false, nil
		}
		fv, ferr := rv.FieldByIndexErr(sf.Index)
		if ferr != nil {
			return true, nil, false, fmt.Errorf("%w: %q: %v", ErrMemberNotFound, name, ferr)
		}
		if len(args) > 0 {
			if !fv.CanSet() {
				return true, nil, false, fmt.Errorf("%w: field %q of %s (pass a pointer)", ErrNotSettable, sf.Name, rv.Type())
			}
			av, aerr := assignable(setValue(args), fv.Type())
			if aerr != nil {
				return true, nil, false, fmt.Errorf("%w: field %q: %v", ErrNotSettable, sf.Name, aerr)
			}
			fv.Set(av)
			return true, nil, false, nil
		}
		val := fv.Interface()
		return true, val, !isAbsent(val), nil
	}
	return false, nil, false, nil
}

func reflectMapMember(rv reflect.Value, name string, args []any) (bool, any, bool, error) {
	keyType := rv.Type().Key()
	key := reflect.ValueOf(name).Convert(keyType)
	val := rv.MapIndex(key)
	if !val.IsValid() {
		iter := rv.MapRange()
		for iter.Next() {
			if strings.EqualFold(iter.Key().String(), name) {
				key, val = iter.Key(), iter.Value()
				break
			}
		}
	}

	if len(args) > 0 {
		if rv.IsNil() {
			return true, nil, false, fmt.Errorf("%w: nil map", ErrNotSettable)
		}
		av, err := assignable(setValue(args), rv.Type().Elem())
		if err != nil {
			return true, nil, false, fmt.Errorf("%w: key %q: %v", ErrNotSettable, name, err)
		}
		rv.SetMapIndex(key, av)
		return true, nil, false, nil
	}
	if !val.IsValid() {
		return false, nil, false, nil
	}
	out := val.Interface()
	return true, out, !isAbsent(out), nil
}

func fieldByName(t reflect.Type, name string) (reflect.StructField, bool) {
	if sf, ok := t.FieldByName(name); ok && sf.IsExported() {
		return sf, true
	}
	for _, sf := range reflect.VisibleFields(t) {
		if sf.IsExported() && strings.EqualFold(sf.Name, name) {
			return sf, true
		}
	}
	return reflect.StructField{}, false
}

// findMethod looks for an exported method on rv. Pointer-receiver methods of
// a non-pointer value are found on a copy.
func findMethod(rv reflect.Value, name string) (reflect.Value, bool) {
	candidates := []reflect.Value{rv}
	if rv.Kind() != reflect.Pointer && rv.Kind() != reflect.Interface {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		candidates = append(candidates, p)
	}
	for _, c := range candidates {
		if m := c.MethodByName(name); m.IsValid() {
			return m, true
		}
	}
	for _, c := range candidates {
		t := c.Type()
		for i := 0; i < t.NumMethod(); i++ {
			if strings.EqualFold(t.Method(i).Name, name) {
				return c.Method(i), true
			}
		}
	}
	return reflect.Value{}, false
}

func callMethod(method reflect.Value, args []any) (v any, keep bool, err error) {
	mt := method.Type()
	n := mt.NumIn()
	if mt.IsVariadic() {
		if len(args) < n-1 {
			return nil, false, fmt.Errorf("%w: want at least %d, got %d", ErrBadArguments, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, false, fmt.Errorf("%w: want %d, got %d", ErrBadArguments, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if mt.IsVariadic() && i >= n-1 {
			pt = mt.In(n - 1).Elem()
		} else {
			pt = mt.In(i)
		}
		av, aerr := assignable(a, pt)
		if aerr != nil {
			return nil, false, fmt.Errorf("%w: argument %d: %v", ErrBadArguments, i, aerr)
		}
		in[i] = av
	}

	defer func() {
		if r := recover(); r != nil {
			v, keep, err = nil, false, fmt.Errorf("query: member panicked: %v", r)
		}
	}()
	outs := method.Call(in)

	if k := len(outs); k > 0 && mt.Out(k-1) == errorType {
		if e := outs[k-1]; !e.IsNil() {
			return nil, false, e.Interface().(error)
		}
		outs = outs[:k-1]
	}
	if len(outs) == 0 {
		return nil, false, nil
	}
	out := outs[0].Interface()
	return out, !isFalsy(out), nil
}

// assignable adapts val to type t. Numeric kinds convert between each other
// and named string types convert from string; nothing else is coerced.
func assignable(val any, t reflect.Type) (reflect.Value, error) {
	if val == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", t)
	}
	v := reflect.ValueOf(val)
	switch {
	case v.Type().AssignableTo(t):
		return v, nil
	case isNumericKind(v.Kind()) && isNumericKind(t.Kind()):
		return v.Convert(t), nil
	case v.Kind() == reflect.String && t.Kind() == reflect.String:
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("%T is not assignable to %s", val, t)
}

func isNumericKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

func intrinsicLength(rv reflect.Value, name string, args []any) (int, bool) {
	if len(args) > 0 || !(strings.EqualFold(name, "Count") || strings.EqualFold(name, "Length")) {
		return 0, false
	}
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return rv.Len(), true
	}
	return 0, false
}

func setValue(args []any) any {
	if len(args) == 1 {
		return args[0]
	}
	return args
}
