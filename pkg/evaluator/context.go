package evaluator

import (
	"fmt"

	"github.com/numulang/numu/pkg/functions"
	"github.com/numulang/numu/pkg/types"
)

// EvalContext holds the state of one evaluation session: variable
// bindings and the function registry.
//
// A context is constructed explicitly by the host (there is no ambient
// process-wide context), lives for as long as the host keeps it, and is
// mutated only through SetVariable and RegisterFunction. It is confined
// to one logical session: hosts that want parallel evaluation of
// independent expressions must give each worker its own context, e.g.
// via Clone.
type EvalContext struct {
	variables map[string]float64
	functions map[string]*functions.Definition
}

// NewContext creates an empty evaluation context. Builtin functions and
// constants are not installed implicitly; call [RegisterBuiltins] once
// to seed them.
func NewContext() *EvalContext {
	return &EvalContext{
		variables: make(map[string]float64),
		functions: make(map[string]*functions.Definition),
	}
}

// SetVariable binds name to value, overwriting any previous binding.
func (c *EvalContext) SetVariable(name string, value float64) {
	c.variables[name] = value
}

// GetVariable returns the value bound to name, or an evaluation error if
// the name is unbound.
func (c *EvalContext) GetVariable(name string) (float64, error) {
	value, ok := c.variables[name]
	if !ok {
		return 0, types.NewEvalError(types.ErrUndefinedVariable, fmt.Sprintf("Undefined variable: %s", name))
	}
	return value, nil
}

// HasVariable reports whether name is bound.
func (c *EvalContext) HasVariable(name string) bool {
	_, ok := c.variables[name]
	return ok
}

// RegisterFunction adds a function to the registry. Registration is
// add-only: registering a name that already exists fails, it never
// overwrites. arity is the exact argument count the function accepts,
// or functions.Variadic to disable the count check.
func (c *EvalContext) RegisterFunction(name string, fn functions.Func, arity int) error {
	if _, exists := c.functions[name]; exists {
		return types.NewEvalError(types.ErrFunctionExists, fmt.Sprintf("Function already registered: %s", name))
	}
	c.functions[name] = &functions.Definition{
		Name:  name,
		Arity: arity,
		Fn:    fn,
	}
	return nil
}

// Register adds a function definition to the registry, with the same
// add-only semantics as RegisterFunction.
func (c *EvalContext) Register(def functions.Definition) error {
	return c.RegisterFunction(def.Name, def.Fn, def.Arity)
}

// Function returns the registered definition for name.
func (c *EvalContext) Function(name string) (*functions.Definition, bool) {
	def, ok := c.functions[name]
	return def, ok
}

// Clone creates an independent copy of the context. The copy shares no
// mutable state with the receiver, so it can be handed to another
// goroutine for a parallel session.
func (c *EvalContext) Clone() *EvalContext {
	vars := make(map[string]float64, len(c.variables))
	for k, v := range c.variables {
		vars[k] = v
	}
	fns := make(map[string]*functions.Definition, len(c.functions))
	for k, v := range c.functions {
		fns[k] = v
	}
	return &EvalContext{
		variables: vars,
		functions: fns,
	}
}

// String returns a string representation of the context.
func (c *EvalContext) String() string {
	return fmt.Sprintf("Context{variables=%d, functions=%d}", len(c.variables), len(c.functions))
}
