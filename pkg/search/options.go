package search

import "golang.org/x/sync/errgroup"

// Options configures the search coordinators.
type Options struct {
	Workers int                  // Max concurrent workers per phase (0: one per bucket)
	Logger  func(string, ...any) // Progress callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Workers < 0 {
		opts.Workers = 0
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// group returns a join-all group bounded by Workers. The group has no
// derived context, so one worker failing does not cancel the others.
func (o Options) group() *errgroup.Group {
	g := new(errgroup.Group)
	if o.Workers > 0 {
		g.SetLimit(o.Workers)
	}
	return g
}
