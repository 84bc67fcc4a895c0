package memo

import (
	"github.com/katalvlaran/knapsack/model"
)

// key identifies a subproblem: items ind..n-1 with room capacity left.
type key struct {
	ind  int
	room int64
}

// pick is one node of an immutable selection list, ascending by ind.
type pick struct {
	ind  int
	next *pick
}

// entry is a solved subproblem.
type entry struct {
	benefit int64
	picks   *pick
}

// search owns the cache for one Solve call.
type search struct {
	items []model.Item
	cache map[key]entry
}

// Solve returns an optimal Solution using memoized depth-first search.
//
// Each call allocates its own cache, so concurrent calls never share state.
//
// Errors: inst.Validate errors, ErrUnknownStrategy.
func Solve(inst model.Instance, opts ...Option) (model.Solution, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := inst.Validate(); err != nil {
		return model.Solution{}, err
	}

	s := &search{items: inst.Items, cache: make(map[key]entry)}
	var root entry
	switch strategyFor(cfg, inst.Len()) {
	case Recursive:
		root = s.recurse(0, inst.Capacity)
	case Stack:
		root = s.iterate(0, inst.Capacity)
	default:
		return model.Solution{}, ErrUnknownStrategy
	}

	var chosen []model.Item
	for p := root.picks; p != nil; p = p.next {
		chosen = append(chosen, inst.Items[p.ind])
	}

	return model.NewSolution(root.benefit, chosen), nil
}

func strategyFor(cfg Options, n int) Strategy {
	if cfg.Strategy != Auto {
		return cfg.Strategy
	}
	if n > cfg.RecursionLimit {
		return Stack
	}

	return Recursive
}

// terminal reports the base case: no items left or no capacity left.
func (s *search) terminal(ind int, room int64) bool {
	return ind >= len(s.items) || room <= 0
}

// lookup returns a solved state: base cases resolve to the zero entry.
func (s *search) lookup(ind int, room int64) (entry, bool) {
	if s.terminal(ind, room) {
		return entry{}, true
	}
	e, ok := s.cache[key{ind, room}]

	return e, ok
}

// choose applies the recurrence once both children are known.
// exclude is best(ind+1, room); include is best(ind+1, room-weight) and only
// meaningful when fits is true.
func (s *search) choose(ind int, exclude, include entry, fits bool) entry {
	if !fits {
		return exclude
	}
	inc := entry{
		benefit: s.items[ind].Benefit + include.benefit,
		picks:   &pick{ind: ind, next: include.picks},
	}
	if inc.benefit >= exclude.benefit {
		return inc
	}

	return exclude
}

// recurse solves (ind, room) on the call stack.
func (s *search) recurse(ind int, room int64) entry {
	if e, ok := s.lookup(ind, room); ok {
		return e
	}

	w := s.items[ind].Weight
	fits := w <= room
	var include entry
	if fits {
		include = s.recurse(ind+1, room-w)
	}
	exclude := s.recurse(ind+1, room)

	e := s.choose(ind, exclude, include, fits)
	s.cache[key{ind, room}] = e

	return e
}

// iterate solves (ind, room) with an explicit stack. A frame stays on the
// stack until both of its children are cached, then it is resolved and popped.
// A state may be pushed more than once; later copies find it cached.
func (s *search) iterate(ind int, room int64) entry {
	if e, ok := s.lookup(ind, room); ok {
		return e
	}

	stack := []key{{ind, room}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if _, ok := s.lookup(top.ind, top.room); ok {
			stack = stack[:len(stack)-1]
			continue
		}

		w := s.items[top.ind].Weight
		fits := w <= top.room
		exclude, exOK := s.lookup(top.ind+1, top.room)
		var (
			include entry
			inOK    = true
		)
		if fits {
			include, inOK = s.lookup(top.ind+1, top.room-w)
		}
		if !exOK || !inOK {
			if !exOK {
				stack = append(stack, key{top.ind + 1, top.room})
			}
			if !inOK {
				stack = append(stack, key{top.ind + 1, top.room - w})
			}
			continue
		}

		s.cache[top] = s.choose(top.ind, exclude, include, fits)
		stack = stack[:len(stack)-1]
	}

	return s.cache[key{ind, room}]
}
