package shapecheck

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// PatternJSON decodes a JSON document into a Pattern: a JSON string becomes
// a String pattern, a JSON object becomes an Object pattern. Malformed JSON
// and any other JSON shape are config errors, since patterns are part of the
// caller's setup.
func PatternJSON(data []byte) (Pattern, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, NewConfigError("", "Invalid pattern: %v", err)
	}
	return ParsePattern(raw)
}

// PatternYAML is PatternJSON for YAML input. Mapping keys are normalized to
// strings first, so patterns authored in YAML behave like their JSON
// equivalents.
func PatternYAML(data []byte) (Pattern, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, NewConfigError("", "Invalid pattern: %v", err)
	}
	return ParsePattern(normalizeYAML(raw))
}

// ValueJSON decodes a JSON document for checking. Decode failures are input
// errors: the pattern may be fine, the data is not.
func ValueJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, NewInputError("", "Invalid document: %v", err)
	}
	return v, nil
}

// ValueYAML decodes a YAML document for checking, normalizing mapping keys
// to strings.
func ValueYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, NewInputError("", "Invalid document: %v", err)
	}
	return normalizeYAML(v), nil
}

// CheckJSON decodes data and checks it against p in one step, for boundary
// code that receives raw request bodies.
func (c *Checker) CheckJSON(data []byte, p Pattern) error {
	v, err := ValueJSON(data)
	if err != nil {
		return err
	}
	return c.Check(v, p)
}

// normalizeYAML converts YAML-decoded trees (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-string mapping keys are
// dropped.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeYAML(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeYAML(t[i])
		}
		return arr
	default:
		return v
	}
}
