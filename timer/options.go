package timer

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Option is a controller configuration option.
type Option interface {
	apply(*controllerOptions)
}

type controllerOptions struct {
	logger logrus.FieldLogger
	now    func() time.Time
}

func newDefaultControllerOptions() controllerOptions {
	return controllerOptions{
		logger: logrus.StandardLogger(),
		now:    time.Now,
	}
}

// WithLogger option configures the controller logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return funcOption(func(opts *controllerOptions) {
		if logger != nil {
			opts.logger = logger
		}
	})
}

// WithClock option configures the clock of software chips.
//
// The default is time.Now.
func WithClock(now func() time.Time) Option {
	return funcOption(func(opts *controllerOptions) {
		if now != nil {
			opts.now = now
		}
	})
}

type funcOption func(*controllerOptions)

func (o funcOption) apply(opts *controllerOptions) {
	o(opts)
}
