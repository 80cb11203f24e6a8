package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPhases(t *testing.T) {
	t.Parallel()

	phases := []Phase{
		{Impl: "Trees.RBTree", Name: "insert", Ops: 1_000_000, Elapsed: 2 * time.Second, Size: 632_000},
		{Impl: "petar/GoLLRB", Name: "at", Status: StatusSkipped},
		{Impl: "google/btree", Name: "remove", Ops: 10, Elapsed: time.Millisecond, Status: StatusFailed},
	}

	var buf bytes.Buffer

	require.NoError(t, RenderPhases(&buf, "Comparison", phases, true))

	out := buf.String()
	assert.Contains(t, out, "Comparison")
	assert.Contains(t, out, "1,000,000")
	assert.Contains(t, out, "632,000")
	assert.Contains(t, out, "2,000")
	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "Total: 3 phases, 1 failed")
	assert.NotContains(t, out, "\x1b[")
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "skipped", StatusSkipped.String())
	assert.Equal(t, "unknown", Status(7).String())
}
