package store

import (
	"context"
	"fmt"
)

// Run is one captured harness execution.
type Run struct {
	ID       string
	Scenario string
	Pass     bool
}

// Event is one captured check event.
type Event struct {
	RunID string
	Seq   int64
	// Kind is the check type (cc_view, sequence, graph).
	Kind string
	// Name labels the individual check within the run.
	Name string
	Pass bool
	// Detail carries the failure diagnostic; empty on pass.
	Detail string
}

// Graph is one captured graph render.
type Graph struct {
	RunID string
	Name  string
	DOT   string
}

// WriteRun inserts a run record. Duplicate run IDs are silently
// ignored so a re-recorded run stays idempotent.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, scenario, pass)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, run.ID, run.Scenario, boolInt(run.Pass))
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// WriteEvent inserts an event record for an existing run. Duplicate
// (run, seq) pairs are silently ignored.
func (s *Store) WriteEvent(ctx context.Context, ev Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (run_id, seq, kind, name, pass, detail)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, seq) DO NOTHING
	`, ev.RunID, ev.Seq, ev.Kind, ev.Name, boolInt(ev.Pass), ev.Detail)
	if err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

// WriteGraph inserts a rendered graph for an existing run. Duplicate
// (run, name) pairs are silently ignored.
func (s *Store) WriteGraph(ctx context.Context, g Graph) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO graphs (run_id, name, dot)
		VALUES (?, ?, ?)
		ON CONFLICT(run_id, name) DO NOTHING
	`, g.RunID, g.Name, g.DOT)
	if err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
