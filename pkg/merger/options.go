package merger

import (
	"github.com/agentstation/chanmap/pkg/constants"
	"github.com/agentstation/chanmap/pkg/differ"
	"github.com/agentstation/chanmap/pkg/errors"
)

// options configures a merger.
type options struct {
	strategy Strategy
	differ   differ.Differ
	slots    int
	tracking bool
}

func defaultOptions() *options {
	return &options{
		strategy: NewBlankProtectStrategy(),
		differ:   differ.New(),
		slots:    constants.TableSlots,
		tracking: true,
	}
}

// Option is a function that configures a Merger.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns merger options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithStrategy sets the merge strategy.
func WithStrategy(strategy Strategy) Option {
	return func(o *options) error {
		if strategy == nil {
			return &errors.ValidationError{
				Field:   "strategy",
				Message: "cannot be nil",
			}
		}
		o.strategy = strategy
		return nil
	}
}

// WithSlots sets the slot count of a table created when none exists yet.
func WithSlots(n int) Option {
	return func(o *options) error {
		if n < constants.FirstKey || n > constants.MaxKey {
			return errors.NewValidationError("slots", n, "must be between 1 and the highest serial number")
		}
		o.slots = n
		return nil
	}
}

// WithChangeTracking enables or disables per-cell change lists in the result.
func WithChangeTracking(enabled bool) Option {
	return func(o *options) error {
		o.tracking = enabled
		return nil
	}
}

// WithDiffer sets the differ used to compute per-cell changes.
func WithDiffer(d differ.Differ) Option {
	return func(o *options) error {
		if d == nil {
			return &errors.ValidationError{
				Field:   "differ",
				Message: "cannot be nil",
			}
		}
		o.differ = d
		return nil
	}
}
