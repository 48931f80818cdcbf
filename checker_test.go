package shapecheck_test

import (
	"strings"
	"testing"

	shapecheck "github.com/shapecheck/shapecheck"
	"github.com/shapecheck/shapecheck/observe"
)

func TestCheck_DisplayNames(t *testing.T) {
	// default name
	err := shapecheck.Check(5, shapecheck.String("string"))
	wantError(t, err, shapecheck.CodeInvalidInputPattern, "value should have string type!")

	// caller-chosen name prefixes every path
	err = shapecheck.CheckNamed(map[string]any{"age": "x"}, shapecheck.Object{"age": "number"}, "user")
	wantError(t, err, shapecheck.CodeInvalidInputPattern, "user.age should have number type!")

	// empty name falls back to the default
	err = shapecheck.CheckNamed(5, shapecheck.String("string"), "")
	wantError(t, err, shapecheck.CodeInvalidInputPattern, "value should have string type!")
}

func TestCheck_NilPattern(t *testing.T) {
	err := shapecheck.Check(5, nil)
	if !shapecheck.IsConfigError(err) {
		t.Fatalf("nil pattern should be a config error, got %v", err)
	}
}

// Checking is a pure function of the checker: same value, same pattern, same
// outcome.
func TestCheck_Repeatable(t *testing.T) {
	pattern := shapecheck.Object{"b": "string", "a.x": "number"}
	value := map[string]any{"a": map[string]any{"x": "no"}, "b": "ok"}

	first := shapecheck.Check(value, pattern)
	for i := 0; i < 8; i++ {
		again := shapecheck.Check(value, pattern)
		if (first == nil) != (again == nil) || (first != nil && first.Error() != again.Error()) {
			t.Fatalf("outcome changed between runs: %v vs %v", first, again)
		}
	}
}

func TestWithType_CustomChecker(t *testing.T) {
	email := func(_ *shapecheck.Checker, v any, path string) error {
		s, ok := v.(string)
		if !ok || !strings.Contains(s, "@") {
			return shapecheck.NewInputError(path, "%s should have email type!", path)
		}
		return nil
	}
	c := shapecheck.New(shapecheck.WithType("email", email))

	if err := c.Check("amy@example.com", shapecheck.String("email")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	err := c.Check("nope", shapecheck.String("email"))
	wantError(t, err, shapecheck.CodeInvalidInputPattern, "value should have email type!")

	// custom types compose with the grammars like built-ins
	err = c.Check([]any{"a@b", "c"}, shapecheck.String("array email"))
	wantError(t, err, shapecheck.CodeInvalidInputPattern, "value[1] should have email type!")
	if err := c.Check(shapecheck.Absent, shapecheck.String("optional email")); err != nil {
		t.Fatalf("modifiers apply to custom types too, err=%v", err)
	}

	// other checkers never see the custom type
	err = shapecheck.Check("amy@example.com", shapecheck.String("email"))
	wantError(t, err, shapecheck.CodeInvalidConfig, "Unknown type: email")
}

// Custom checkers receive the running Checker, so compound types can recurse
// through the public API.
func TestWithType_RecursiveChecker(t *testing.T) {
	pair := func(c *shapecheck.Checker, v any, path string) error {
		return c.CheckNamed(v, shapecheck.Object{
			"__type":     "array",
			"__elements": "number",
		}, path)
	}
	c := shapecheck.New(shapecheck.WithType("pair", pair))

	if err := c.Check([]any{1, 2}, shapecheck.String("pair")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	err := c.Check([]any{1, "x"}, shapecheck.String("pair"))
	wantError(t, err, shapecheck.CodeInvalidInputPattern, "value[1] should have number type!")
}

func TestExtend_DerivesChecker(t *testing.T) {
	base := shapecheck.New()
	ext, err := base.Extend(shapecheck.Config{Knockout: observe.Lib{}})
	if err != nil {
		t.Fatalf("extend failed: %v", err)
	}

	cell := observe.NewCell[any](1)
	if err := ext.Check(cell.Observable(), shapecheck.String("observable")); err != nil {
		t.Fatalf("derived checker should recognize observables, err=%v", err)
	}

	// the base stays untouched
	err = base.Check(cell.Observable(), shapecheck.String("observable"))
	if !shapecheck.IsConfigError(err) {
		t.Fatalf("base checker should still lack the library, got %v", err)
	}
}

func TestExtend_AliasAndErrors(t *testing.T) {
	// KO is consulted when Knockout is unset
	ext, err := shapecheck.New().Extend(shapecheck.Config{KO: observe.Lib{}})
	if err != nil {
		t.Fatalf("alias field should work: %v", err)
	}
	cell := observe.NewCell[any](1)
	if err := ext.Check(cell.Observable(), shapecheck.String("observable")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// no instance at all
	_, err = shapecheck.New().Extend(shapecheck.Config{})
	wantError(t, err, shapecheck.CodeInvalidConfig, "The config has to contain a knockout instance!")

	// an instance without the predicate
	_, err = shapecheck.New().Extend(shapecheck.Config{Knockout: struct{}{}})
	wantError(t, err, shapecheck.CodeInvalidConfig, "The knockout instance has to provide an IsObservable predicate!")
}

// Extend keeps construction-time custom types.
func TestExtend_PreservesCustomTypes(t *testing.T) {
	even := func(_ *shapecheck.Checker, v any, path string) error {
		n, ok := v.(int)
		if !ok || n%2 != 0 {
			return shapecheck.NewInputError(path, "%s should have even type!", path)
		}
		return nil
	}
	base := shapecheck.New(shapecheck.WithType("even", even))
	ext, err := base.Extend(shapecheck.Config{Knockout: observe.Lib{}})
	if err != nil {
		t.Fatalf("extend failed: %v", err)
	}
	if err := ext.Check(4, shapecheck.String("even")); err != nil {
		t.Fatalf("custom type lost on extend: %v", err)
	}

	cell := observe.NewCell[any](4)
	if err := ext.Check(cell.Observable(), shapecheck.String("observable even")); err != nil {
		t.Fatalf("observable contents should reach custom types, err=%v", err)
	}
}

func TestWithObservables_ConstructionPath(t *testing.T) {
	c := shapecheck.New(shapecheck.WithObservables(observe.Lib{}))
	cell := observe.NewCell[any]("x")
	if err := c.Check(cell.Observable(), shapecheck.String("observable string")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

// yesLib accepts any value as an observable, leaving the engine's invocation
// guard to decide what can actually be read.
type yesLib struct{}

func (yesLib) IsObservable(any) bool { return true }

// Contents are read by invoking the observable: any function with no
// parameters and at least one result works, not only func() any.
func TestCheck_ObservableInvocation(t *testing.T) {
	c := shapecheck.New(shapecheck.WithObservables(yesLib{}))

	if err := c.Check(func() int { return 7 }, shapecheck.String("observable number")); err != nil {
		t.Fatalf("typed niladic func expected ok, err=%v", err)
	}
	err := c.Check(func() int { return 7 }, shapecheck.String("observable string"))
	wantError(t, err, shapecheck.CodeInvalidInputPattern, "value() should have string type!")

	// a value the library accepts but that cannot be called is a setup
	// problem, not bad data
	err = c.Check(42, shapecheck.String("observable number"))
	se := wantError(t, err, shapecheck.CodeInvalidConfig, "value is an observable that cannot be invoked!")
	if se.Status != 500 {
		t.Fatalf("status = %d, want 500", se.Status)
	}

	// the same guard applies on the __value path of the object grammar
	err = c.Check(func(n int) int { return n }, shapecheck.Object{"__type": "observable", "__value": "number"})
	wantError(t, err, shapecheck.CodeInvalidConfig, "value is an observable that cannot be invoked!")
}
