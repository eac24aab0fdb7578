package rivercrossing

import (
	"fmt"
)

// walker encapsulates state during the search.
type walker struct {
	goal   State
	opts   Options
	res    *Result
	path   []State
	onPath [NumStates]bool
}

// Solve runs a depth-first search from init and records every simple path
// that reaches goal. Candidate crossings are tried in the order: peasant
// alone, with the wolf, with the goat, with the cabbage.
//
// Returns the collected Result, or an error if a state is invalid, the
// context is cancelled or a hook fails. On error the partial Result is
// still returned.
func Solve(init, goal State, opts ...Option) (*Result, error) {
	// 1. Validate endpoints
	for _, s := range []State{init, goal} {
		if !s.Valid() {
			return nil, fmt.Errorf("rivercrossing: state %d: %w", s, ErrInvalidState)
		}
		if IsDeadEnd(s) {
			return nil, fmt.Errorf("rivercrossing: state %s: %w", s, ErrDeadEnd)
		}
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker{
		goal: goal,
		opts: o,
		res:  &Result{Skipped: make(map[SkipReason]int, 3)},
		path: make([]State, 0, NumStates),
	}

	// 3. Traverse
	if err := w.traverse(init, 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// traverse enters s at the given depth and recurses into every legal
// crossing not already on the path.
func (w *walker) traverse(s State, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Push onto the current path
	w.path = append(w.path, s)
	w.onPath[s] = true
	w.res.Visits++
	defer func() {
		w.path = w.path[:len(w.path)-1]
		w.onPath[s] = false
	}()

	// 3. Enter hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(s, depth); err != nil {
			return fmt.Errorf("rivercrossing: OnVisit hook for %s: %w", s, err)
		}
	}

	// 4. Goal: record a copy of the path and stop this branch
	if s == w.goal {
		w.res.Solutions = append(w.res.Solutions, append([]State(nil), w.path...))

		return nil
	}

	// 5. Depth limit
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	// 6. Try each crossing
	var next State
	for _, cargo := range cargoes {
		next = Cross(s, cargo)

		if !CanTransition(s, next) {
			reason := SkipDeadEnd
			if cargo != 0 && !s.on(cargo) {
				reason = SkipIllegal
			}
			if err := w.skip(s, next, reason); err != nil {
				return err
			}
			continue
		}
		if w.onPath[next] {
			if err := w.skip(s, next, SkipVisited); err != nil {
				return err
			}
			continue
		}

		if err := w.traverse(next, depth+1); err != nil {
			return err
		}

		// 7. Backtrack hook
		if w.opts.OnBacktrack != nil {
			if err := w.opts.OnBacktrack(s, depth); err != nil {
				return fmt.Errorf("rivercrossing: OnBacktrack hook for %s: %w", s, err)
			}
		}
	}

	return nil
}

func (w *walker) skip(from, to State, reason SkipReason) error {
	w.res.Skipped[reason]++
	if w.opts.OnSkip == nil {
		return nil
	}
	if err := w.opts.OnSkip(from, to, reason); err != nil {
		return fmt.Errorf("rivercrossing: OnSkip hook for %s→%s: %w", from, to, err)
	}

	return nil
}
