// Package rivercrossing defines options, hooks and results for the search.
package rivercrossing

import (
	"context"
	"errors"
)

var (
	// ErrInvalidState indicates a state that does not fit in 4 bits.
	ErrInvalidState = errors.New("rivercrossing: state out of range")

	// ErrDeadEnd indicates an initial or goal state that is itself a dead end.
	ErrDeadEnd = errors.New("rivercrossing: state is a dead end")
)

// SkipReason explains why a candidate crossing was not followed.
type SkipReason int

const (
	// SkipDeadEnd: the crossing would leave the goat in danger.
	SkipDeadEnd SkipReason = iota
	// SkipIllegal: the cargo is on the other bank.
	SkipIllegal
	// SkipVisited: the state is already on the current path.
	SkipVisited
)

// String returns a short lowercase label for r.
func (r SkipReason) String() string {
	switch r {
	case SkipDeadEnd:
		return "dead-end"
	case SkipIllegal:
		return "illegal"
	case SkipVisited:
		return "visited"
	default:
		return "unknown"
	}
}

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds the configurable parameters of the search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when the search enters a state.
	// Returning an error aborts the search with that error.
	OnVisit func(s State, depth int) error

	// OnBacktrack, if non-nil, is invoked when the search returns to s
	// from one of its successors.
	OnBacktrack func(s State, depth int) error

	// OnSkip, if non-nil, is invoked for each candidate crossing from
	// from to to that is not followed.
	OnSkip func(from, to State, reason SkipReason) error

	// MaxDepth, if non-negative, stops expanding states at that depth.
	// Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with a background context, no hooks and
// no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for the search. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the enter hook.
func WithOnVisit(fn func(s State, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack installs fn as the backtrack hook.
func WithOnBacktrack(fn func(s State, depth int) error) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// WithOnSkip installs fn as the skipped-crossing hook.
func WithOnSkip(fn func(from, to State, reason SkipReason) error) Option {
	return func(o *Options) {
		o.OnSkip = fn
	}
}

// WithMaxDepth limits the number of crossings on a path.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// Result captures the outcome of Solve.
type Result struct {
	// Solutions lists every path from the initial to the goal state, in the
	// order they were found. Each path includes both endpoints.
	Solutions [][]State

	// Visits counts how many times a state was entered.
	Visits int

	// Skipped counts candidate crossings that were not followed, by reason.
	Skipped map[SkipReason]int
}

// Shortest returns the first solution with the fewest crossings, or nil.
func (r *Result) Shortest() []State {
	var best []State
	for _, s := range r.Solutions {
		if best == nil || len(s) < len(best) {
			best = s
		}
	}

	return best
}
