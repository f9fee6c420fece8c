// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selection

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pump-select/pkg/types"
)

func TestRunFileRoundTrip(t *testing.T) {
	criteria := testCriteria()
	cfg := types.SelectionConfig{}.WithDefaults()

	var buf bytes.Buffer
	out, err := Select(criteria, []types.PumpSpecification{testPump("p1", 4500)}, cfg, &buf)
	require.NoError(t, err)
	require.Len(t, out.Results, 1)

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, WriteRunFile(path, criteria, cfg, out))

	rf, err := ReadRunFile(path)
	require.NoError(t, err)

	assert.Equal(t, criteria, rf.Criteria)
	assert.Equal(t, cfg, rf.Config)
	assert.Equal(t, 1, rf.Summary.Feasible)
	assert.False(t, rf.Summary.Timestamp.IsZero())

	require.Len(t, rf.Results, 1)
	got := rf.Results[0]
	want := out.Results[0]
	assert.Equal(t, want.Pump.ID, got.Pump.ID)
	assert.InDelta(t, want.OperatingPoint.Flow, got.OperatingPoint.Flow, 1e-9)
	assert.InDelta(t, want.Score, got.Score, 1e-9)
	assert.Equal(t, want.Breakdown, got.Breakdown)
}

func TestReadRunFileMissing(t *testing.T) {
	_, err := ReadRunFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestReadRunFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("criteria: [not, a, mapping]\n"), 0o644))

	_, err := ReadRunFile(path)
	assert.ErrorContains(t, err, "parsing run file")
}
