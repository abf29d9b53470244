package styles

import (
	"math"
	"reflect"
	"slices"
)

// Flags is the result of FilterAllowedProps: names of enabled flags in
// allow-list order.
type Flags []string

// Has reports whether name is set.
func (f Flags) Has(name string) bool {
	return slices.Contains(f, name)
}

// Map returns flags as name -> true.
func (f Flags) Map() map[string]bool {
	m := make(map[string]bool, len(f))
	for _, name := range f {
		m[name] = true
	}
	return m
}

// FilterAllowedProps keeps only names from allowed which are truthy in props.
// Order follows allowed, keys absent from allowed are ignored.
func FilterAllowedProps(props map[string]any, allowed []string) Flags {
	flags := Flags{}
	for _, name := range allowed {
		if Truthy(props[name]) && !flags.Has(name) {
			flags = append(flags, name)
		}
	}
	return flags
}

// Truthy follows the usual scripting rules: nil, false, zero numbers, NaN and
// empty strings are false. So are nil pointers, maps and slices, while empty
// but allocated ones are true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case Fragment:
		return t != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}
