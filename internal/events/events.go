package events

import "reactiontest/internal/targets"

// StateEvent is a snapshot of a run, published after every transition.
type StateEvent struct {
	Seq         uint64             `json:"seq"`
	State       string             `json:"state"`
	Reason      string             `json:"reason,omitempty"`
	Round       int                `json:"round"`
	TotalRounds int                `json:"totalRounds"`
	Target      *targets.Placement `json:"target,omitempty"`
	Decoy       *targets.Placement `json:"decoy,omitempty"`
	SamplesMs   []int              `json:"samples"`
	AverageMs   int                `json:"averageMs,omitempty"`
	Grade       string             `json:"grade,omitempty"`
}

type Bus struct {
	StateChanges chan StateEvent
}

func NewBus() *Bus {
	return &Bus{
		StateChanges: make(chan StateEvent, 10),
	}
}

// Publish enqueues ev without blocking. It reports false when the buffer is
// full and the event was dropped.
func (b *Bus) Publish(ev StateEvent) bool {
	select {
	case b.StateChanges <- ev:
		return true
	default:
		return false
	}
}

// Close ends the stream. The owner must not Publish afterwards.
func (b *Bus) Close() {
	close(b.StateChanges)
}
