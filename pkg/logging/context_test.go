package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/chanmap/pkg/logging"
)

func TestFromContextDefaults(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	assert.Same(t, logging.Default(), logging.FromContext(nil))
}

func TestContextFields(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	ctx = logging.WithRunID(ctx, "run-1")
	ctx = logging.WithInput(ctx, "input.csv")
	ctx = logging.WithOutput(ctx, "output.csv")
	ctx = logging.WithFields(ctx, map[string]any{"keys": []int{101, 102}})
	ctx = logging.WithError(ctx, errors.New("boom"))
	ctx = logging.WithError(ctx, nil)

	logging.FromContext(ctx).Info().Msg("merged")

	assert.Equal(t, "run-1", logging.RunID(ctx))
	tl.AssertContains(t, `"run_id":"run-1"`)
	tl.AssertContains(t, `"input":"input.csv"`)
	tl.AssertContains(t, `"output":"output.csv"`)
	tl.AssertContains(t, `"keys":[101,102]`)
	tl.AssertContains(t, `"error":"boom"`)
}

func TestRunIDMissing(t *testing.T) {
	assert.Equal(t, "", logging.RunID(context.Background()))
}
