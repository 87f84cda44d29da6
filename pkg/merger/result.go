package merger

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentstation/chanmap/pkg/differ"
)

// Outcome describes what happened to one slot during a merge.
type Outcome string

const (
	// OutcomeAdded means a blank slot received a populated record.
	OutcomeAdded Outcome = "added"
	// OutcomeUpdated means a populated slot was replaced with different values.
	OutcomeUpdated Outcome = "updated"
	// OutcomeUnchanged means the incoming record matched the slot exactly.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeSkipped means the strategy kept the existing slot.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeCleared means a populated slot was overwritten with a blank record.
	OutcomeCleared Outcome = "cleared"
)

// Change records the outcome for one incoming record.
type Change struct {
	Key     int                  `json:"key" yaml:"key"`
	Outcome Outcome              `json:"outcome" yaml:"outcome"`
	Fields  []differ.FieldChange `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Result represents the outcome of a merge operation.
type Result struct {
	Changes  []Change       `json:"changes" yaml:"changes"`
	Metadata ResultMetadata `json:"metadata" yaml:"metadata"`
}

// ResultMetadata contains metadata about the merge.
type ResultMetadata struct {
	// StartTime when the merge started
	StartTime time.Time `json:"start_time" yaml:"start_time"`

	// EndTime when the merge completed
	EndTime time.Time `json:"end_time" yaml:"end_time"`

	// Duration of the merge
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Strategy used for the merge
	Strategy StrategyType `json:"strategy" yaml:"strategy"`

	// DryRun indicates the merged table was not written
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// Created indicates no table existed and a fresh one was allocated
	Created bool `json:"created" yaml:"created"`

	// Statistics about the merge
	Stats ResultStatistics `json:"stats" yaml:"stats"`
}

// ResultStatistics counts merge outcomes.
type ResultStatistics struct {
	Processed   int   `json:"processed" yaml:"processed"`
	Added       int   `json:"added" yaml:"added"`
	Updated     int   `json:"updated" yaml:"updated"`
	Unchanged   int   `json:"unchanged" yaml:"unchanged"`
	Skipped     int   `json:"skipped" yaml:"skipped"`
	Cleared     int   `json:"cleared" yaml:"cleared"`
	TotalTimeMs int64 `json:"total_time_ms" yaml:"total_time_ms"`
}

// NewResult creates a new result with defaults.
func NewResult() *Result {
	return &Result{
		Changes: []Change{},
		Metadata: ResultMetadata{
			StartTime: time.Now(),
		},
	}
}

// HasChanges returns true if the merge altered any slot.
func (r *Result) HasChanges() bool {
	s := r.Metadata.Stats
	return s.Added+s.Updated+s.Cleared > 0
}

// Outcome returns the outcome recorded for key, if any. When a key appears
// more than once in the input the last outcome wins.
func (r *Result) Outcome(key int) (Outcome, bool) {
	for i := len(r.Changes) - 1; i >= 0; i-- {
		if r.Changes[i].Key == key {
			return r.Changes[i].Outcome, true
		}
	}
	return "", false
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	s := r.Metadata.Stats
	counts := fmt.Sprintf("%d added, %d updated, %d unchanged, %d skipped",
		s.Added, s.Updated, s.Unchanged, s.Skipped)
	if s.Cleared > 0 {
		counts += fmt.Sprintf(", %d cleared", s.Cleared)
	}

	var b strings.Builder
	if r.Metadata.DryRun {
		b.WriteString("Dry run completed. ")
	} else {
		b.WriteString("Merge completed. ")
	}
	fmt.Fprintf(&b, "%d channels processed: %s", s.Processed, counts)
	return b.String()
}

// Finalize calculates duration and marks completion.
func (r *Result) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
	r.Metadata.Stats.TotalTimeMs = r.Metadata.Duration.Milliseconds()
}

func (r *Result) record(change Change) {
	r.Changes = append(r.Changes, change)
	r.Metadata.Stats.Processed++
	switch change.Outcome {
	case OutcomeAdded:
		r.Metadata.Stats.Added++
	case OutcomeUpdated:
		r.Metadata.Stats.Updated++
	case OutcomeUnchanged:
		r.Metadata.Stats.Unchanged++
	case OutcomeSkipped:
		r.Metadata.Stats.Skipped++
	case OutcomeCleared:
		r.Metadata.Stats.Cleared++
	}
}
