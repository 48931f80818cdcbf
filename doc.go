package shapecheck

// Package shapecheck validates runtime values against compact shape
// patterns. It provides:
//
// - Two pattern grammars over one engine: terse strings ("optional array number")
//   and annotated objects (Object{"__type": "array", "__elements": "number"})
// - A stable error model via *Error (code, HTTP-style status, path, message);
//   checking is fail-fast and reports exactly one violation
// - A fixed type registry (boolean, number, string, function, object, array,
//   date, observable) extensible at construction via WithType
// - Reactive-value support through any library exposing an IsObservable
//   predicate, injected with WithObservables or Extend
//
// Design policy:
// - The Checker is immutable after New/Extend; there is no package-level
//   mutable state, so concurrent checks need no coordination.
// - Keep the public API in the root package; boundary helpers live under
//   middleware/ and the CLI under cmd/shapecheck.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	err := shapecheck.Check(user, shapecheck.Object{
//		"name": "string",
//		"age":  "optional number",
//	})
//
//	c, err := shapecheck.New().Extend(shapecheck.Config{Knockout: observe.Lib{}})
//	err = c.CheckNamed(vm, shapecheck.String("observable array string"), "viewModel")
