package chanmap

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/chanmap/pkg/constants"
	"github.com/agentstation/chanmap/pkg/errors"
	"github.com/agentstation/chanmap/pkg/merger"
)

// config holds the settings of a Transformer.
type config struct {
	strategy merger.Strategy
	slots    int
	dryRun   bool
	logger   *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		strategy: merger.NewBlankProtectStrategy(),
		slots:    constants.TableSlots,
	}
}

// Option is a function that configures a Transformer.
type Option func(*config) error

func (t *transformer) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(t.config); err != nil {
			return err
		}
	}
	return nil
}

// WithDryRun computes the merge without writing the output.
func WithDryRun(enabled bool) Option {
	return func(c *config) error {
		c.dryRun = enabled
		return nil
	}
}

// WithStrategy sets the merge strategy.
func WithStrategy(strategy merger.Strategy) Option {
	return func(c *config) error {
		if strategy == nil {
			return errors.NewValidationError("strategy", nil, "cannot be nil")
		}
		c.strategy = strategy
		return nil
	}
}

// WithSlots sets the slot count of a freshly created table.
func WithSlots(n int) Option {
	return func(c *config) error {
		if n < constants.FirstKey || n > constants.MaxKey {
			return errors.NewValidationError("slots", n, "must be between 1 and the highest serial number")
		}
		c.slots = n
		return nil
	}
}

// WithLogger sets the logger used for the run instead of the one in the context.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
