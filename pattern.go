package shapecheck

// Pattern is the sealed union of the two pattern grammars. The only
// implementations are String and Object; dynamically captured patterns
// (decoded JSON/YAML, values of type any) enter through ParsePattern.
type Pattern interface {
	pattern()
}

// String is the compact grammar: zero or more leading modifiers ("optional",
// "nullable") followed by exactly one type name, optionally followed by a
// sub-pattern that applies to array elements or observable contents.
//
//	String("string")
//	String("optional nullable number")
//	String("array optional string")
//	String("observable array number")
type String string

// Object is the annotation grammar: a map whose reserved control keys
// (__type, __required, __nullable, __elements, __allowedValues, __value)
// describe the value itself, and whose remaining keys are dotted field paths
// mapping to sub-patterns of either grammar.
//
//	Object{"__type": "array", "__elements": String("number")}
//	Object{"user.name": String("string"), "user.age": String("optional number")}
type Object map[string]any

func (String) pattern() {}
func (Object) pattern() {}

// ParsePattern normalizes a dynamically typed pattern into the Pattern sum.
// Raw strings become String, raw string-keyed maps become Object, existing
// Pattern values pass through. Anything else is a config error.
func ParsePattern(v any) (Pattern, error) {
	p, err := parsePatternAt(v, "")
	if err != nil {
		return nil, err
	}
	return p, nil
}

func parsePatternAt(v any, path string) (Pattern, *Error) {
	switch p := v.(type) {
	case String:
		return p, nil
	case Object:
		return p, nil
	case string:
		return String(p), nil
	case map[string]any:
		return Object(p), nil
	}
	return nil, NewConfigError(path, "Invalid pattern: %v", v)
}
