package grouping

import (
	"go.ytsaurus.tech/library/go/core/log"
	"go.ytsaurus.tech/library/go/core/log/nop"
)

// Option configures a Reducer at construction time.
type Option func(*options)

type options struct {
	logger log.Logger
}

func newOptions(opts []Option) *options {
	o := &options{logger: &nop.Logger{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger makes the Reducer emit debug events, one per group created.
// Without it the container stays silent.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
