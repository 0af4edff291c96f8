package bfs

import (
	"context"
	"fmt"
)

// settings collects what the options configure.
type settings struct {
	ctx      context.Context
	maxDepth int // 0 = unlimited
	follow   func(from, to string) bool
	avoided  map[string]bool
	err      error
}

// Option tunes a traversal.
type Option func(*settings)

func newSettings(opts []Option) settings {
	s := settings{ctx: context.Background()}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// allowed reports whether the walk may step from→to.
func (s *settings) allowed(from, to string) bool {
	if s.avoided[to] {
		return false
	}

	return s.follow == nil || s.follow(from, to)
}

// WithContext makes the traversal stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithMaxDepth stops expansion at d hops from the start. 0 means no limit;
// a negative d makes the traversal fail with ErrBadDepth.
func WithMaxDepth(d int) Option {
	return func(s *settings) {
		if d < 0 {
			s.err = fmt.Errorf("%w: %d", ErrBadDepth, d)
			return
		}
		s.maxDepth = d
	}
}

// WithEdgeFilter only follows edges for which keep(from, to) is true.
func WithEdgeFilter(keep func(from, to string) bool) Option {
	return func(s *settings) {
		s.follow = keep
	}
}

// Avoid never enters the given vertices, e.g. a closed building.
func Avoid(ids ...string) Option {
	return func(s *settings) {
		if s.avoided == nil {
			s.avoided = make(map[string]bool, len(ids))
		}
		for _, id := range ids {
			s.avoided[id] = true
		}
	}
}
