package shapecheck

import (
	"reflect"
	"time"
)

// Built-in type names accepted by both grammars.
const (
	TypeBoolean    = "boolean"
	TypeNumber     = "number"
	TypeString     = "string"
	TypeFunction   = "function"
	TypeObject     = "object"
	TypeArray      = "array"
	TypeDate       = "date"
	TypeObservable = "observable"
)

func builtinTypes() map[string]CheckFunc {
	return map[string]CheckFunc{
		TypeBoolean:    checkBoolean,
		TypeNumber:     checkNumber,
		TypeString:     checkString,
		TypeFunction:   checkFunction,
		TypeObject:     checkObject,
		TypeArray:      checkArray,
		TypeDate:       checkDate,
		TypeObservable: checkObservable,
	}
}

func checkBoolean(_ *Checker, v any, path string) error {
	if deref(v).Kind() == reflect.Bool {
		return nil
	}
	return NewInputError(path, "%s should have boolean type!", path)
}

func checkNumber(_ *Checker, v any, path string) error {
	if _, ok := numericValue(v); ok {
		return nil
	}
	return NewInputError(path, "%s should have number type!", path)
}

// checkString accepts string-kinded values except json.Number, which renders
// as a string in Go but carries a number.
func checkString(_ *Checker, v any, path string) error {
	rv := deref(v)
	if rv.Kind() == reflect.String && rv.Type() != jsonNumberType {
		return nil
	}
	return NewInputError(path, "%s should have string type!", path)
}

func checkFunction(_ *Checker, v any, path string) error {
	if deref(v).Kind() == reflect.Func {
		return nil
	}
	return NewInputError(path, "%s should have function type!", path)
}

// checkObject accepts maps and structs. Slices, arrays and funcs do not
// count as objects, and neither do absent or null values, so the field walk
// can rely on this check before descending.
func checkObject(_ *Checker, v any, path string) error {
	if !isAbsent(v) {
		switch deref(v).Kind() {
		case reflect.Map, reflect.Struct:
			return nil
		}
	}
	return NewInputError(path, "%s should have object type!", path)
}

func checkArray(_ *Checker, v any, path string) error {
	switch deref(v).Kind() {
	case reflect.Slice, reflect.Array:
		return nil
	}
	return NewInputError(path, "%s has to be an array!", path)
}

var timeType = reflect.TypeOf(time.Time{})

func checkDate(_ *Checker, v any, path string) error {
	if rv := deref(v); rv.IsValid() && rv.Type() == timeType {
		return nil
	}
	return NewInputError(path, "%s has to be a date object!", path)
}

func checkObservable(c *Checker, v any, path string) error {
	if c.obs == nil {
		return NewConfigError(path, "Observable checking is not possible, please provide an observable library in the config!")
	}
	if c.obs.IsObservable(v) {
		return nil
	}
	return NewInputError(path, "%s has to be an observable!", path)
}
