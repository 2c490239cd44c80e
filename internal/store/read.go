package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrRunNotFound is returned when the requested run does not exist.
var ErrRunNotFound = errors.New("run not found")

// ReadRun returns the run record for id.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	var run Run
	var pass int
	err := s.db.QueryRowContext(ctx, `
		SELECT id, scenario, pass FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &run.Scenario, &pass)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run: %w", err)
	}
	run.Pass = pass != 0
	return run, nil
}

// ReadEvents returns all events for a run in logical order
// (ORDER BY seq ASC). Returns an empty slice when the run has no
// events.
func (s *Store) ReadEvents(ctx context.Context, runID string) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, seq, kind, name, pass, detail
		FROM events
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var ev Event
		var pass int
		if err := rows.Scan(&ev.RunID, &ev.Seq, &ev.Kind, &ev.Name, &pass, &ev.Detail); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Pass = pass != 0
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// ReadGraph returns one captured graph by run and name.
func (s *Store) ReadGraph(ctx context.Context, runID, name string) (Graph, error) {
	var g Graph
	err := s.db.QueryRowContext(ctx, `
		SELECT run_id, name, dot FROM graphs WHERE run_id = ? AND name = ?
	`, runID, name).Scan(&g.RunID, &g.Name, &g.DOT)
	if errors.Is(err, sql.ErrNoRows) {
		return Graph{}, fmt.Errorf("%w: %s/%s", ErrRunNotFound, runID, name)
	}
	if err != nil {
		return Graph{}, fmt.Errorf("read graph: %w", err)
	}
	return g, nil
}

// ListRuns returns the runs recorded for a scenario, most recent
// first. An empty scenario lists every run.
func (s *Store) ListRuns(ctx context.Context, scenario string) ([]Run, error) {
	query := `SELECT id, scenario, pass FROM runs ORDER BY created_at DESC, id DESC`
	args := []any{}
	if scenario != "" {
		query = `SELECT id, scenario, pass FROM runs WHERE scenario = ? ORDER BY created_at DESC, id DESC`
		args = append(args, scenario)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		var pass int
		if err := rows.Scan(&run.ID, &run.Scenario, &pass); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Pass = pass != 0
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
