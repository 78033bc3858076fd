package collections

import (
	"sync"

	"github.com/pkg/errors"
)

// MacroFunc is a named operation registered at runtime. It receives the
// collection as an any, so one macro can serve several element types by
// switching on the concrete *Collection[T]. Keys are reachable through All
// or Range, which lets a macro tell index entries from named ones.
type MacroFunc func(collection any, args ...any) (any, error)

// The registry is the only goroutine-safe state in this package.
var macroRegistry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

func init() {
	macroRegistry.macros = make(map[string]MacroFunc)
}

// RegisterMacro adds fn to the registry under name, replacing any macro
// already registered there. A macro that keeps only the named entries of a
// text collection:
//
//	collections.RegisterMacro("named", func(col any, _ ...any) (any, error) {
//	    c, ok := col.(*collections.Collection[string])
//	    if !ok {
//	        return nil, errors.Errorf("named: unsupported %T", col)
//	    }
//	    var indexes []collections.Key
//	    for _, k := range c.All().Keys() {
//	        if k.IsIndex() {
//	            indexes = append(indexes, k)
//	        }
//	    }
//	    return c.Except(indexes...), nil
//	})
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// HasMacro reports whether a macro is registered under name.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// FlushMacros removes every registered macro.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]MacroFunc)
}

// CallMacro runs the macro registered under name on collection.
func CallMacro(name string, collection any, args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrMacroNotFound, "%q", name)
	}
	out, err := fn(collection, args...)
	return out, errors.Wrapf(err, "macro %q", name)
}

// Macro runs the macro registered under name on c.
func (c *Collection[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}
