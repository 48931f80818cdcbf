package shapecheck

import "maps"

// ObservableLibrary is the capability a reactive-value library has to expose
// for the observable type to work: a predicate deciding whether a value is
// one of its observables. Reading an observable's contents is done by the
// engine itself, by invoking the value with no arguments.
type ObservableLibrary interface {
	IsObservable(v any) bool
}

// Config carries the observable library handed to Extend. Knockout is the
// primary field; KO is accepted as an alias and consulted only when Knockout
// is unset. Both are untyped so integration code can pass whatever it holds;
// Extend verifies the IsObservable predicate at runtime.
type Config struct {
	Knockout any
	KO       any
}

// Extend derives a new Checker that recognizes the observables of the
// library in cfg. The receiver is left untouched; calling Extend again on
// any base replaces the library in the derived Checker (last write wins).
func (c *Checker) Extend(cfg Config) (*Checker, error) {
	inst := cfg.Knockout
	if inst == nil {
		inst = cfg.KO
	}
	if inst == nil {
		return nil, NewConfigError("", "The config has to contain a knockout instance!")
	}
	lib, ok := inst.(ObservableLibrary)
	if !ok {
		return nil, NewConfigError("", "The knockout instance has to provide an IsObservable predicate!")
	}
	nc := &Checker{
		types: maps.Clone(c.types),
		obs:   lib,
	}
	return nc, nil
}
