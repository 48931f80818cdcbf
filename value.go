package shapecheck

import (
	"encoding/json"
	"reflect"
)

// absence is the internal marker type behind Absent.
type absence struct{}

// Absent is the sentinel for a value that does not exist at all, as opposed
// to one that exists and is null. Field lookups yield it for missing
// properties; callers pass it to express "nothing was provided" at the top
// level, since Go has no undefined.
var Absent any = absence{}

func isAbsent(v any) bool {
	_, ok := v.(absence)
	return ok
}

// isNull reports whether v is the explicit empty value: a nil interface or a
// nil pointer, map, slice, func or chan. This mirrors what encoding/json
// renders as JSON null.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// deref unwraps interfaces and pointers so type checks see the underlying
// value. A nil chain yields the invalid reflect.Value, which fails every
// kind test.
func deref(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

var jsonNumberType = reflect.TypeOf(json.Number(""))

// numericValue widens any numeric kind (and json.Number) to float64. There
// is a single number type as far as checking is concerned, so 1 and 1.0 are
// the same value.
func numericValue(v any) (float64, bool) {
	rv := deref(v)
	if !rv.IsValid() {
		return 0, false
	}
	if rv.Type() == jsonNumberType {
		f, err := rv.Interface().(json.Number).Float64()
		return f, err == nil
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// strictEqual is the membership test for allowed-value lists. Numbers of any
// kind compare numerically; everything else requires the same dynamic type
// and a comparable value.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	fa, aok := numericValue(a)
	fb, bok := numericValue(b)
	if aok || bok {
		return aok && bok && fa == fb
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() || !ra.Type().Comparable() {
		return false
	}
	return a == b
}
