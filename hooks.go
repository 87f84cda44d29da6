package chanmap

import (
	"sync"

	"github.com/agentstation/chanmap/pkg/channels"
	"github.com/agentstation/chanmap/pkg/differ"
)

// Hook function types for channel events
type (
	// ChannelAddedHook is called when a blank slot receives a channel
	ChannelAddedHook func(channel channels.Record)

	// ChannelUpdatedHook is called when a populated slot changes
	ChannelUpdatedHook func(old, new channels.Record)

	// ChannelClearedHook is called when a populated slot is blanked
	ChannelClearedHook func(channel channels.Record)
)

// hooks manages event callbacks fired after a table is written.
type hooks struct {
	mu               sync.RWMutex
	onChannelAdded   []ChannelAddedHook
	onChannelUpdated []ChannelUpdatedHook
	onChannelCleared []ChannelClearedHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnChannelAdded registers a callback for added channels.
func (t *transformer) OnChannelAdded(fn ChannelAddedHook) {
	t.hooks.mu.Lock()
	defer t.hooks.mu.Unlock()
	t.hooks.onChannelAdded = append(t.hooks.onChannelAdded, fn)
}

// OnChannelUpdated registers a callback for updated channels.
func (t *transformer) OnChannelUpdated(fn ChannelUpdatedHook) {
	t.hooks.mu.Lock()
	defer t.hooks.mu.Unlock()
	t.hooks.onChannelUpdated = append(t.hooks.onChannelUpdated, fn)
}

// OnChannelCleared registers a callback for cleared channels.
func (t *transformer) OnChannelCleared(fn ChannelClearedHook) {
	t.hooks.mu.Lock()
	defer t.hooks.mu.Unlock()
	t.hooks.onChannelCleared = append(t.hooks.onChannelCleared, fn)
}

// trigger fires the registered hooks for every slot in changeset.
func (h *hooks) trigger(changeset *differ.Changeset) {
	if changeset == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, rec := range changeset.Added {
		for _, hook := range h.onChannelAdded {
			hook(rec)
		}
	}
	for _, update := range changeset.Updated {
		for _, hook := range h.onChannelUpdated {
			hook(update.Existing, update.New)
		}
	}
	for _, rec := range changeset.Cleared {
		for _, hook := range h.onChannelCleared {
			hook(rec)
		}
	}
}
