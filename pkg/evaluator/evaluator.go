// Package evaluator implements the numu tree-walking evaluator.
//
// The evaluator receives a parsed Abstract Syntax Tree and reduces it to
// a float64 against an [EvalContext] holding variable bindings and the
// function registry. Evaluation is a synchronous call chain: nothing
// suspends, blocks on I/O or yields, and there is no cancellation or
// timeout primitive. The only resource limit is the recursion depth
// guard configured by [WithMaxDepth].
//
// # Example
//
//	env := evaluator.NewContext()
//	if err := evaluator.RegisterBuiltins(env); err != nil {
//	    log.Fatal(err)
//	}
//	ev := evaluator.New()
//	result, err := ev.EvalString("2 + sin(pi)", env)
package evaluator

import (
	"log/slog"

	"github.com/numulang/numu/pkg/cache"
	"github.com/numulang/numu/pkg/functions"
	"github.com/numulang/numu/pkg/parser"
	"github.com/numulang/numu/pkg/types"
)

// Evaluator evaluates numu expressions. The zero-cost way to share one
// across goroutines is to give each goroutine its own EvalContext; the
// Evaluator itself holds no per-session state.
type Evaluator struct {
	opts      EvalOptions
	logger    *slog.Logger
	cache     *cache.Cache                     // non-nil when caching is enabled
	customFns map[string]*functions.Definition // functions supplied via WithFunctions
}

// EvalOptions configures evaluator behavior.
type EvalOptions struct {
	// Caching enables compilation caching for EvalString.
	// When true, compiled expressions are cached by source string.
	// The default cache holds up to 256 entries with LRU eviction.
	Caching bool
	// CacheSize sets the maximum number of cached expressions.
	// Only used when Caching is true and no explicit Cache is provided.
	CacheSize int
	// Cache is a custom expression cache. If non-nil, Caching is
	// implicitly enabled.
	Cache *cache.Cache
	// MaxDepth limits evaluation recursion depth. Defaults to 10000.
	MaxDepth int
	// Debug enables debug logging.
	Debug bool
	// Logger for structured logging.
	Logger *slog.Logger
	// Functions holds host-defined functions available to every
	// evaluation, in addition to those registered on the context.
	Functions []functions.Definition
}

// EvalOption configures an Evaluator.
type EvalOption func(*EvalOptions)

// WithCaching enables or disables compilation caching for EvalString.
func WithCaching(enable bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Caching = enable
	}
}

// WithCacheSize sets the compilation cache capacity.
func WithCacheSize(size int) EvalOption {
	return func(opts *EvalOptions) {
		opts.CacheSize = size
	}
}

// WithCache supplies a custom expression cache, implicitly enabling caching.
func WithCache(c *cache.Cache) EvalOption {
	return func(opts *EvalOptions) {
		opts.Cache = c
	}
}

// WithMaxDepth sets the evaluation recursion depth limit.
func WithMaxDepth(depth int) EvalOption {
	return func(opts *EvalOptions) {
		opts.MaxDepth = depth
	}
}

// WithDebug enables debug logging.
func WithDebug(enable bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Debug = enable
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EvalOption {
	return func(opts *EvalOptions) {
		opts.Logger = logger
	}
}

// WithFunctions makes the given host-defined functions available to
// every evaluation run by this Evaluator. They are consulted after the
// context's own registry.
func WithFunctions(defs ...functions.Definition) EvalOption {
	return func(opts *EvalOptions) {
		opts.Functions = append(opts.Functions, defs...)
	}
}

// New creates a new Evaluator with the given options.
func New(opts ...EvalOption) *Evaluator {
	options := EvalOptions{
		MaxDepth: 10000,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	var c *cache.Cache
	if options.Cache != nil {
		c = options.Cache
	} else if options.Caching {
		size := options.CacheSize
		if size <= 0 {
			size = 256
		}
		c = cache.New(size)
	}

	customFns := make(map[string]*functions.Definition, len(options.Functions))
	for i := range options.Functions {
		def := options.Functions[i]
		customFns[def.Name] = &def
	}

	return &Evaluator{
		opts:      options,
		logger:    options.Logger,
		cache:     c,
		customFns: customFns,
	}
}

// Eval evaluates a compiled expression against an evaluation context and
// returns the numeric result. The context is only mutated by the host's
// explicit SetVariable/RegisterFunction calls, never by evaluation.
func (e *Evaluator) Eval(expr *types.Expression, env *EvalContext) (float64, error) {
	result, err := e.EvalNode(expr.AST(), env)
	if e.opts.Debug {
		if err != nil {
			e.logger.Debug("evaluation failed", "source", expr.Source(), "error", err)
		} else {
			e.logger.Debug("evaluated", "source", expr.Source(), "result", result)
		}
	}
	return result, err
}

// EvalNode evaluates a single AST node against an evaluation context.
func (e *Evaluator) EvalNode(node *types.ASTNode, env *EvalContext) (float64, error) {
	return e.evalNode(node, env, 0)
}

// EvalString compiles source and evaluates it in one step. When caching
// is enabled the compiled expression is reused across calls with the
// same source.
func (e *Evaluator) EvalString(source string, env *EvalContext) (float64, error) {
	var expr *types.Expression
	var err error

	if e.cache != nil {
		expr, err = e.cache.GetOrCompile(source, parser.Parse)
	} else {
		expr, err = parser.Parse(source)
	}
	if err != nil {
		return 0, err
	}

	return e.Eval(expr, env)
}
