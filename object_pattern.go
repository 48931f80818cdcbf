package shapecheck

import (
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// controls are the reserved keys of the annotation grammar, decoded into a
// typed view. Pointer fields distinguish "key absent" from "key set".
type controls struct {
	Type          *string `mapstructure:"__type"`
	Required      *bool   `mapstructure:"__required"`
	Nullable      *bool   `mapstructure:"__nullable"`
	AllowedValues any     `mapstructure:"__allowedValues"`
	Elements      any     `mapstructure:"__elements"`
	Value         any     `mapstructure:"__value"`
}

// decodeControls extracts the control keys from an object pattern. Matching
// is strict: exact key names, exact value types, so "__required": "no" is a
// broken pattern rather than a silently ignored one.
func decodeControls(pat Object, path string) (*controls, *Error) {
	var ctl controls
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &ctl,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	})
	if err != nil {
		return nil, NewConfigError(path, "Invalid pattern: %v", err)
	}
	if err := dec.Decode(map[string]any(pat)); err != nil {
		return nil, NewConfigError(path, "Invalid pattern: %v", err)
	}
	return &ctl, nil
}

// Control keys excluded from the field walk. __elements and __value are not
// in the set, so an object-typed pattern treats them as field paths.
var skippedKeys = map[string]bool{
	"__type":          true,
	"__required":      true,
	"__nullable":      true,
	"__allowedValues": true,
}

// checkObjectPattern runs the annotation grammar in its fixed order: absence
// against __required, null against __nullable, the __allowedValues
// short-circuit, then the effective type (__type or object) and its
// type-specific continuation.
func (c *Checker) checkObjectPattern(v any, pat Object, path string) error {
	ctl, cerr := decodeControls(pat, path)
	if cerr != nil {
		return cerr
	}
	if isAbsent(v) {
		if ctl.Required != nil && !*ctl.Required {
			return nil
		}
		return NewInputError(path, "%s is mandatory!", path)
	}
	if isNull(v) {
		if ctl.Nullable != nil && *ctl.Nullable {
			return nil
		}
		return NewInputError(path, "%s shouldn't be null!", path)
	}
	if ctl.AllowedValues != nil {
		return c.checkAllowedValues(v, ctl.AllowedValues, path)
	}
	typeName := TypeObject
	if ctl.Type != nil {
		typeName = *ctl.Type
	}
	if err := c.checkType(v, typeName, path); err != nil {
		return err
	}
	switch typeName {
	case TypeArray:
		if ctl.Elements == nil {
			return nil
		}
		elem, cerr := parsePatternAt(ctl.Elements, path)
		if cerr != nil {
			return cerr
		}
		return c.checkElements(v, elem, path)
	case TypeObservable:
		if ctl.Value == nil {
			return nil
		}
		sub, cerr := parsePatternAt(ctl.Value, path)
		if cerr != nil {
			return cerr
		}
		return c.checkContents(v, sub, path)
	case TypeObject:
		return c.checkFields(v, pat, path)
	}
	return nil
}

// checkAllowedValues tests membership of v in the allowed list with strict
// equality. It replaces every other check on the value once the key is
// present.
func (c *Checker) checkAllowedValues(v, allowed any, path string) error {
	rv := deref(allowed)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return NewConfigError(path, "Invalid pattern: __allowedValues has to be an array!")
	}
	for i := 0; i < rv.Len(); i++ {
		if strictEqual(v, rv.Index(i).Interface()) {
			return nil
		}
	}
	return NewInputError(path, "%s is not among the allowed ones!", path)
}

// checkFields walks the non-control keys of an object pattern in sorted
// order, so the first reported violation is deterministic regardless of map
// iteration.
func (c *Checker) checkFields(v any, pat Object, path string) error {
	keys := make([]string, 0, len(pat))
	for k := range pat {
		if skippedKeys[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := c.checkFieldPath(v, key, pat[key], path); err != nil {
			return err
		}
	}
	return nil
}

// checkFieldPath resolves one dotted key against the container and applies
// the sub-pattern to the leaf. Each step past the first re-checks that the
// current value is object-typed before descending, so a broken intermediate
// reports at its own path. Missing properties resolve to Absent and leave
// the decision to the leaf pattern.
func (c *Checker) checkFieldPath(container any, key string, raw any, basePath string) error {
	cur, curPath := container, basePath
	for i, seg := range strings.Split(key, ".") {
		if i > 0 {
			if err := c.checkType(cur, TypeObject, curPath); err != nil {
				return err
			}
		}
		cur = lookupField(cur, seg)
		curPath += "." + seg
	}
	sub, cerr := parsePatternAt(raw, curPath)
	if cerr != nil {
		return cerr
	}
	return c.checkPattern(cur, sub, curPath)
}
