// Package scripting evaluates user-supplied JavaScript predicates over
// candidate embedding slots, so conspicuous carriers (say, the first
// coordinate of a path) can be excluded without rebuilding the tool.
// A filter must be a pure function of its arguments: embedder and
// extractor only agree on the carrier sequence if the same script
// keeps the same slots on both sides.
package scripting

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
)

// Filter wraps a compiled JavaScript predicate. It implements
// steg.SlotFilter.
type Filter struct {
	vm *goja.Runtime
	fn goja.Callable
}

// NewFilter compiles a filter script. The script must either evaluate
// to a function or define a global function named "filter"; the
// function receives (tag, attr, literal) and its return value is
// interpreted as a boolean keep/drop decision.
func NewFilter(script string) (*Filter, error) {
	vm := goja.New()
	val, err := vm.RunString(script)
	if err != nil {
		return nil, fmt.Errorf("compile filter script: %w", err)
	}
	fn, ok := goja.AssertFunction(val)
	if !ok {
		fn, ok = goja.AssertFunction(vm.Get("filter"))
	}
	if !ok {
		return nil, errors.New("filter script must evaluate to a function or define filter(tag, attr, literal)")
	}
	return &Filter{vm: vm, fn: fn}, nil
}

// Keep reports whether the slot described by (tag, attr, literal)
// stays in the carrier sequence.
func (f *Filter) Keep(tag, attr, literal string) (bool, error) {
	val, err := f.fn(goja.Undefined(), f.vm.ToValue(tag), f.vm.ToValue(attr), f.vm.ToValue(literal))
	if err != nil {
		return false, fmt.Errorf("filter script: %w", err)
	}
	return val.ToBoolean(), nil
}
