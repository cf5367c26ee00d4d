package dfs

import "context"

// Option configures Search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks of a depth-first search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is the pre-order hook, called with the trace order.
	OnVisit func(id string, order int)

	// OnExit is the post-order hook, called once every neighbor of id has
	// been explored. It is not called for nodes still open when the end
	// node is reached.
	OnExit func(id string)

	// MaxDepth, if non-negative, limits recursion to the given depth.
	MaxDepth int
}

// DefaultOptions returns:
//   - context.Background()
//   - no depth limit (MaxDepth = -1)
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(string, int) {},
		OnExit:   func(string) {},
		MaxDepth: -1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit sets the pre-order hook.
func WithOnVisit(fn func(id string, order int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExit sets the post-order hook.
func WithOnExit(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExit = fn
		}
	}
}

// WithMaxDepth limits traversal depth to limit; a negative limit disables it.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}
