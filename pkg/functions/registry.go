// Package functions provides types for registering custom numu functions.
//
// Hosts can define their own functions and register them either directly
// on an evaluation context or via [evaluator.WithFunctions], making them
// callable inside numu expressions.
//
// # Example
//
//	env := evaluator.NewContext()
//	err := env.RegisterFunction("double", func(args []float64) (float64, error) {
//	    return args[0] * 2, nil
//	}, 1)
package functions

// Func is the signature for numu callables. args holds the evaluated
// arguments in call order; the function returns a scalar result or an
// error that aborts the evaluation.
type Func func(args []float64) (float64, error)

// Variadic marks a function as accepting any number of arguments;
// no argument-count check is performed at call time.
const Variadic = -1

// Definition describes a function together with its arity.
type Definition struct {
	// Name is the function name as it appears inside expressions.
	Name string
	// Arity is the exact number of arguments the function accepts,
	// or Variadic to skip the argument-count check.
	Arity int
	// Fn is the implementation.
	Fn Func
}
