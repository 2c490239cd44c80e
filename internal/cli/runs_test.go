package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samplerlab/modcheck/internal/store"
)

func seedCaptureDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "capture.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	require.NoError(t, st.WriteRun(ctx, store.Run{ID: "run-a", Scenario: "first", Pass: true}))
	require.NoError(t, st.WriteRun(ctx, store.Run{ID: "run-b", Scenario: "second", Pass: false}))
	require.NoError(t, st.WriteEvent(ctx, store.Event{
		RunID: "run-b", Seq: 1, Kind: "sequence", Name: "drift", Pass: false,
		Detail: "2 != 2.5 (delta 0.5) at index 1",
	}))
	return dbPath
}

func TestRunsList(t *testing.T) {
	dbPath := seedCaptureDB(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRunsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dbPath})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "run-a\tPASS\tfirst")
	assert.Contains(t, out, "run-b\tFAIL\tsecond")
}

func TestRunsListFiltered(t *testing.T) {
	dbPath := seedCaptureDB(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRunsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--scenario", "first", dbPath})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "run-a")
	assert.NotContains(t, out, "run-b")
}

func TestRunsShowSingleRun(t *testing.T) {
	dbPath := seedCaptureDB(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRunsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--run", "run-b", dbPath})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "run-b\tFAIL\tsecond")
	assert.Contains(t, out, "[1] fail\tsequence drift")
	assert.Contains(t, out, "delta 0.5")
}

func TestRunsShowUnknownRun(t *testing.T) {
	dbPath := seedCaptureDB(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRunsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--run", "no-such-run", dbPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitUsage, GetExitCode(err))
}
