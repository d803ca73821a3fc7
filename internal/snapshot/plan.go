package snapshot

import (
	"context"
	"sync"
)

// Move is one line of a placement plan.
type Move struct {
	SlotIndex int `json:"slot_index"`
	X         int `json:"x"`
	Y         int `json:"y"`
}

// PlanWriter is a types.Repositioner that records moves instead of making
// them. Flush writes the plan as JSONL for an OS-specific mover to apply.
type PlanWriter struct {
	mu    sync.Mutex
	moves []Move
}

// SetPosition implements types.Repositioner.
func (p *PlanWriter) SetPosition(ctx context.Context, slotIndex, x, y int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.moves = append(p.moves, Move{SlotIndex: slotIndex, X: x, Y: y})
	return nil
}

// Moves returns the recorded moves in order.
func (p *PlanWriter) Moves() []Move {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Move, len(p.moves))
	copy(out, p.moves)
	return out
}

// Flush writes the recorded moves to path, replacing any previous plan.
func (p *PlanWriter) Flush(path string) error {
	return writeLines(path, p.Moves())
}

// ReadPlan reads a plan written by Flush.
func ReadPlan(path string) ([]Move, error) {
	return readTyped[Move](path)
}
