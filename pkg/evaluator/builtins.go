package evaluator

import (
	"math"

	"github.com/numulang/numu/pkg/functions"
	"github.com/numulang/numu/pkg/types"
)

// RegisterBuiltins seeds an evaluation context with the builtin function
// library and the constants pi, e and inf. It is the documented one-time
// seeding step the host invokes after NewContext; calling it twice on
// the same context fails because registration never overwrites.
func RegisterBuiltins(env *EvalContext) error {
	builtins := []functions.Definition{
		{Name: "sin", Arity: 1, Fn: func(args []float64) (float64, error) {
			return math.Sin(args[0]), nil
		}},
		{Name: "cos", Arity: 1, Fn: func(args []float64) (float64, error) {
			return math.Cos(args[0]), nil
		}},
		{Name: "tan", Arity: 1, Fn: func(args []float64) (float64, error) {
			return math.Tan(args[0]), nil
		}},
		{Name: "exp", Arity: 1, Fn: func(args []float64) (float64, error) {
			return math.Exp(args[0]), nil
		}},
		{Name: "log", Arity: 1, Fn: func(args []float64) (float64, error) {
			return math.Log(args[0]), nil
		}},
		{Name: "sqrt", Arity: 1, Fn: func(args []float64) (float64, error) {
			return math.Sqrt(args[0]), nil
		}},
		{Name: "pow", Arity: 2, Fn: func(args []float64) (float64, error) {
			return math.Pow(args[0], args[1]), nil
		}},
		{Name: "abs", Arity: 1, Fn: func(args []float64) (float64, error) {
			return math.Abs(args[0]), nil
		}},
		{Name: "min", Arity: functions.Variadic, Fn: fnMin},
		{Name: "max", Arity: functions.Variadic, Fn: fnMax},
		{Name: "sum", Arity: functions.Variadic, Fn: fnSum},
		{Name: "avg", Arity: functions.Variadic, Fn: fnAvg},
	}

	for _, def := range builtins {
		if err := env.Register(def); err != nil {
			return err
		}
	}

	env.SetVariable("pi", math.Pi)
	env.SetVariable("e", math.E)
	env.SetVariable("inf", math.Inf(1))

	return nil
}

func fnMin(args []float64) (float64, error) {
	if len(args) == 0 {
		return 0, types.NewEvalError(types.ErrArgumentCount, "Function min expects at least 1 argument, got 0")
	}
	min := args[0]
	for _, v := range args[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

func fnMax(args []float64) (float64, error) {
	if len(args) == 0 {
		return 0, types.NewEvalError(types.ErrArgumentCount, "Function max expects at least 1 argument, got 0")
	}
	max := args[0]
	for _, v := range args[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

func fnSum(args []float64) (float64, error) {
	total := 0.0
	for _, v := range args {
		total += v
	}
	return total, nil
}

// fnAvg divides by the argument count, so an empty call yields NaN.
func fnAvg(args []float64) (float64, error) {
	total := 0.0
	for _, v := range args {
		total += v
	}
	return total / float64(len(args)), nil
}
