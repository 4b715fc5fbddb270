// Where: cli/internal/credentials/views/driver.go
// What: Navigation loop over credential views.
// Why: Iterate instead of recursing so long sessions never deepen the call stack.
package views

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Option configures Run.
type Option func(*runOptions)

type runOptions struct {
	observers []func(View)
}

// WithObserver calls fn with every view right before it is opened.
func WithObserver(fn func(View)) Option {
	return func(o *runOptions) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}

// Run opens initial and follows returned steps until Done or an error.
// Errors from Open are returned unmodified. Cancellation of ctx is checked
// before every Open, so no new remote call starts after an interrupt.
func Run(ctx context.Context, c *Context, initial View, opts ...Option) error {
	if err := c.validate(); err != nil {
		return err
	}
	if initial == nil {
		return errors.New("initial view is nil")
	}
	options := runOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	log := c.logger()

	current := initial
	for steps := 1; ; steps++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, observe := range options.observers {
			observe(current)
		}
		log.Debug("open view",
			zap.Stringer("kind", current.Kind()),
			zap.String("experience", current.Experience()),
			zap.Int("step", steps))

		step, err := current.Open(ctx, c)
		if err != nil {
			log.Debug("view failed", zap.Stringer("kind", current.Kind()), zap.Error(err))
			return err
		}

		next, ok := step.Next()
		if !ok {
			log.Debug("navigation done", zap.Int("steps", steps))
			return nil
		}
		if next == nil {
			return fmt.Errorf("%s view continued without a next view", current.Kind())
		}
		if next.Experience() != current.Experience() {
			return fmt.Errorf("%w: %s %q -> %s %q", ErrScopeChanged,
				current.Kind(), current.Experience(), next.Kind(), next.Experience())
		}
		current = next
	}
}
