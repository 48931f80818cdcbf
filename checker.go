package shapecheck

import (
	"reflect"
	"strconv"
)

// DefaultName is the display name used for the checked value when the caller
// does not provide one. It prefixes every path in error messages.
const DefaultName = "value"

// CheckFunc validates a single value against one registered type name. It
// receives the running Checker so compound custom types can recurse through
// CheckNamed. Implementations return nil, or an *Error built with
// NewInputError/NewConfigError.
type CheckFunc func(c *Checker, v any, path string) error

// Checker holds the type-checker table and the optional observable library.
// It is immutable once built; methods never mutate it, so a single Checker
// is safe for concurrent use.
type Checker struct {
	types map[string]CheckFunc
	obs   ObservableLibrary
}

// Option configures a Checker under construction.
type Option func(*Checker)

// WithType registers an additional type checker under name. Registering a
// name that already exists replaces the previous checker.
func WithType(name string, fn CheckFunc) Option {
	return func(c *Checker) { c.types[name] = fn }
}

// WithObservables injects the reactive-value library at construction,
// enabling the observable type without going through Extend.
func WithObservables(lib ObservableLibrary) Option {
	return func(c *Checker) { c.obs = lib }
}

// New builds a Checker with the built-in types (boolean, number, string,
// function, object, array, date, observable) plus whatever the options add.
func New(opts ...Option) *Checker {
	c := &Checker{types: builtinTypes()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check validates v against p, reporting failures under the default display
// name. It returns nil or exactly one *Error, never a collection.
func (c *Checker) Check(v any, p Pattern) error {
	return c.CheckNamed(v, p, DefaultName)
}

// CheckNamed is Check with a caller-chosen display name for the root value.
func (c *Checker) CheckNamed(v any, p Pattern, name string) error {
	if name == "" {
		name = DefaultName
	}
	return c.checkPattern(v, p, name)
}

// checkPattern is the top-level dispatcher: one grammar engine per Pattern
// variant.
func (c *Checker) checkPattern(v any, p Pattern, path string) error {
	switch pat := p.(type) {
	case String:
		return c.checkStringPattern(v, pat, path)
	case Object:
		return c.checkObjectPattern(v, pat, path)
	}
	return NewConfigError(path, "Invalid pattern: %v", p)
}

// checkType resolves name in the registry and runs the checker. The lookup
// itself can only fail with a config error; the checker decides input
// failures.
func (c *Checker) checkType(v any, name, path string) error {
	fn, ok := c.types[name]
	if !ok {
		return NewConfigError(path, "Unknown type: %s", name)
	}
	return fn(c, v, path)
}

// checkElements applies elem to every element of an array value, rebasing
// the path with the element index. The value has already passed the array
// type check.
func (c *Checker) checkElements(v any, elem Pattern, path string) error {
	rv := deref(v)
	for i := 0; i < rv.Len(); i++ {
		p := path + "[" + strconv.Itoa(i) + "]"
		if err := c.checkPattern(rv.Index(i).Interface(), elem, p); err != nil {
			return err
		}
	}
	return nil
}

// checkContents reads an observable's current contents and applies sub to
// them. The value has already passed the observable type check.
func (c *Checker) checkContents(v any, sub Pattern, path string) error {
	contents, err := invokeObservable(v, path)
	if err != nil {
		return err
	}
	return c.checkPattern(contents, sub, path+"()")
}

// invokeObservable reads the contents of an observable by calling it with no
// arguments. A value the library accepted but that cannot be called this way
// is a setup inconsistency, not bad data.
func invokeObservable(v any, path string) (any, *Error) {
	if fn, ok := v.(func() any); ok {
		return fn(), nil
	}
	rv := deref(v)
	if rv.Kind() == reflect.Func && rv.Type().NumIn() == 0 && rv.Type().NumOut() >= 1 {
		return rv.Call(nil)[0].Interface(), nil
	}
	return nil, NewConfigError(path, "%s is an observable that cannot be invoked!", path)
}

// defaultChecker backs the package-level helpers. It has no observable
// library; observable checks through it report the config error until a
// Checker is derived with Extend or built with WithObservables.
var defaultChecker = New()

// Check validates v against p using the default checker.
func Check(v any, p Pattern) error { return defaultChecker.Check(v, p) }

// CheckNamed validates v against p under name using the default checker.
func CheckNamed(v any, p Pattern, name string) error { return defaultChecker.CheckNamed(v, p, name) }
