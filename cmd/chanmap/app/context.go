package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/agentstation/chanmap/pkg/logging"
)

// Context derives the command context from parent. It is cancelled on
// SIGINT or SIGTERM, so an interrupted transform stops before writing, and
// it carries a fresh run ID that the transform logs under.
func Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	return logging.WithRunID(ctx, uuid.NewString()), cancel
}
