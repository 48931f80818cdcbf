package shapecheck

import "strings"

// Modifier tokens recognized at the head of a string pattern.
const (
	modOptional = "optional"
	modNullable = "nullable"
)

// checkStringPattern runs the compact grammar: modifiers first, then one
// type name, then an optional trailing sub-pattern. Modifiers short-circuit
// (optional passes absent values, nullable passes null values) before any
// type handling, so "optional bogus" accepts an absent value without ever
// consulting the registry.
func (c *Checker) checkStringPattern(v any, pattern String, path string) error {
	token, rest := splitToken(string(pattern))
	switch token {
	case modOptional:
		if isAbsent(v) {
			return nil
		}
		return c.checkStringPattern(v, String(rest), path)
	case modNullable:
		if isNull(v) {
			return nil
		}
		return c.checkStringPattern(v, String(rest), path)
	}
	if isAbsent(v) {
		return NewInputError(path, "%s is mandatory!", path)
	}
	if isNull(v) {
		return NewInputError(path, "%s shouldn't be null!", path)
	}
	if err := c.checkType(v, token, path); err != nil {
		return err
	}
	if rest == "" {
		return nil
	}
	// Leftover text is a sub-pattern. Only containers with a single
	// element shape can carry one.
	switch token {
	case TypeArray:
		return c.checkElements(v, String(rest), path)
	case TypeObservable:
		return c.checkContents(v, String(rest), path)
	}
	return NewConfigError(path, "Invalid pattern: %s", pattern)
}

// splitToken cuts the first space-separated token off a pattern string.
func splitToken(s string) (token, rest string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}
