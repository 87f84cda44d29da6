package merger

import (
	"fmt"
	"strings"

	"github.com/agentstation/chanmap/pkg/channels"
	"github.com/agentstation/chanmap/pkg/errors"
)

// StrategyType represents the type of merge strategy.
type StrategyType string

// String returns the string representation of a strategy type.
func (s StrategyType) String() string {
	return string(s)
}

// Name returns the name of the strategy type.
func (s StrategyType) Name() string {
	words := strings.Split(s.String(), "-")
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

const (
	// StrategyTypeBlankProtect keeps populated slots when the incoming row is blank.
	StrategyTypeBlankProtect StrategyType = "blank-protect"
	// StrategyTypeReplace always replaces the slot with the incoming row.
	StrategyTypeReplace StrategyType = "replace"
)

// Decision is a strategy's verdict for one incoming record.
type Decision int

const (
	// DecisionReplace overwrites the whole slot with the incoming record.
	DecisionReplace Decision = iota
	// DecisionSkip leaves the existing slot untouched.
	DecisionSkip
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case DecisionReplace:
		return "replace"
	case DecisionSkip:
		return "skip"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

// Strategy decides how an incoming record meets the slot it is keyed to.
type Strategy interface {
	// Type returns the strategy type
	Type() StrategyType

	// Description returns a human-readable description
	Description() string

	// Resolve decides between the existing slot and the incoming record
	Resolve(existing, incoming channels.Record) Decision
}

// baseStrategy provides common strategy functionality.
type baseStrategy struct {
	typ         StrategyType
	description string
}

// Type returns the strategy type.
func (s *baseStrategy) Type() StrategyType {
	return s.typ
}

// Description returns a human-readable description.
func (s *baseStrategy) Description() string {
	return s.description
}

// BlankProtectStrategy replaces slots whole, except that a blank incoming
// record never erases a populated slot.
type BlankProtectStrategy struct {
	baseStrategy
}

// NewBlankProtectStrategy creates the default strategy.
func NewBlankProtectStrategy() Strategy {
	return &BlankProtectStrategy{
		baseStrategy: baseStrategy{
			typ:         StrategyTypeBlankProtect,
			description: "Replaces channels whole; blank input rows never erase existing channels",
		},
	}
}

// Resolve skips blank records aimed at populated slots.
func (s *BlankProtectStrategy) Resolve(existing, incoming channels.Record) Decision {
	if incoming.IsBlank() && !existing.IsBlank() {
		return DecisionSkip
	}
	return DecisionReplace
}

// ReplaceStrategy always replaces the slot, blank rows included.
type ReplaceStrategy struct {
	baseStrategy
}

// NewReplaceStrategy creates a strategy that always overwrites.
func NewReplaceStrategy() Strategy {
	return &ReplaceStrategy{
		baseStrategy: baseStrategy{
			typ:         StrategyTypeReplace,
			description: "Replaces channels whole, blank input rows included",
		},
	}
}

// Resolve always replaces.
func (s *ReplaceStrategy) Resolve(_, _ channels.Record) Decision {
	return DecisionReplace
}

// ParseStrategy returns the strategy for a name; blank selects the default.
func ParseStrategy(name string) (Strategy, error) {
	switch StrategyType(strings.ToLower(strings.TrimSpace(name))) {
	case "", StrategyTypeBlankProtect:
		return NewBlankProtectStrategy(), nil
	case StrategyTypeReplace:
		return NewReplaceStrategy(), nil
	default:
		return nil, errors.NewValidationError("strategy", name,
			fmt.Sprintf("must be one of: %s, %s", StrategyTypeBlankProtect, StrategyTypeReplace))
	}
}
