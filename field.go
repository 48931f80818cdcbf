package shapecheck

import (
	"reflect"
	"strings"
)

// lookupField resolves one path segment against a container. Containers can
// be string-keyed maps (any value type) or structs, matching what the object
// type check admits. A missing property yields Absent, never nil, so the
// caller can tell "not there" from "there but null".
func lookupField(container any, key string) any {
	if m, ok := container.(map[string]any); ok {
		if v, exists := m[key]; exists {
			return v
		}
		return Absent
	}
	rv := deref(container)
	switch rv.Kind() {
	case reflect.Map:
		return lookupMapKey(rv, key)
	case reflect.Struct:
		return lookupStructField(rv, key)
	}
	return Absent
}

func lookupMapKey(rv reflect.Value, key string) any {
	kt := rv.Type().Key()
	var kv reflect.Value
	switch kt.Kind() {
	case reflect.String:
		kv = reflect.ValueOf(key).Convert(kt)
	case reflect.Interface:
		kv = reflect.ValueOf(key)
	default:
		return Absent
	}
	mv := rv.MapIndex(kv)
	if !mv.IsValid() {
		return Absent
	}
	return mv.Interface()
}

// lookupStructField finds key among the struct's own fields first, then one
// embedding level at a time, so shadowing works the way encoding/json
// readers expect.
func lookupStructField(rv reflect.Value, key string) any {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := resolveFieldKey(sf)
		if name == "-" {
			continue
		}
		if name == key {
			return rv.Field(i).Interface()
		}
	}
	// untagged anonymous fields promote their fields
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.Anonymous || !sf.IsExported() || sf.Tag.Get("json") != "" {
			continue
		}
		ev := rv.Field(i)
		for ev.Kind() == reflect.Pointer {
			if ev.IsNil() {
				ev = reflect.Value{}
				break
			}
			ev = ev.Elem()
		}
		if ev.IsValid() && ev.Kind() == reflect.Struct {
			if v := lookupStructField(ev, key); !isAbsent(v) {
				return v
			}
		}
	}
	return Absent
}

// resolveFieldKey returns the external name of a struct field.
// Priority: json tag name > field name; "-" disables the field.
func resolveFieldKey(sf reflect.StructField) string {
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		name := jt
		if i := strings.IndexByte(jt, ','); i >= 0 {
			name = jt[:i]
		}
		if name != "" {
			return name
		}
	}
	return sf.Name
}
