package record_test

import (
	"path/filepath"
	"testing"

	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/record"
	"github.com/db47h/nandsim/testbench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *record.Recorder {
	t.Helper()
	r, err := record.Open(filepath.Join(t.TempDir(), "runs.sqlite3"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRecorder_nand(t *testing.T) {
	r := openTemp(t)
	r.SetBatchSize(3) // force a flush in the middle of the run

	res, err := testbench.New(nandsim.NandGate,
		testbench.WithOracle(testbench.NandOracle),
		testbench.WithReporter(r)).Run()
	require.NoError(t, err)

	runs, err := r.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	run := runs[0]
	assert.Equal(t, res.Header.RunID, run.ID)
	assert.Equal(t, "NAND", run.DUT)
	assert.Equal(t, []string{"a", "b"}, run.Inputs)
	assert.Equal(t, []string{"out"}, run.Outputs)
	assert.Equal(t, testbench.DefaultPeriod, run.Period)
	assert.EqualValues(t, 1, run.Hold)
	assert.Equal(t, 4, run.Samples)
	require.NotNil(t, run.Passed)
	assert.True(t, *run.Passed)
	assert.Equal(t, res.Header.Started.UnixNano(), run.Started.UnixNano())

	ss, err := r.Samples(run.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Samples, ss)
}

func TestRecorder_failedRun(t *testing.T) {
	r := openTemp(t)
	wrong := func(in testbench.Vector) testbench.Vector { return testbench.Vector{in[0] && in[1]} }

	_, err := testbench.New(nandsim.NandGate, testbench.WithReporter(r)).Run()
	require.NoError(t, err)
	_, err = testbench.New(nandsim.NandGate, testbench.WithOracle(wrong), testbench.WithReporter(r)).Run()
	require.NoError(t, err)

	runs, err := r.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// most recent first
	require.NotNil(t, runs[0].Passed)
	assert.False(t, *runs[0].Passed)
	require.NotNil(t, runs[1].Passed)
	assert.True(t, *runs[1].Passed)

	ss, err := r.Samples(runs[1].ID)
	require.NoError(t, err)
	require.Len(t, ss, 4)
	for _, s := range ss {
		assert.Nil(t, s.Want)
	}
}

func TestRecorder_incompleteRun(t *testing.T) {
	r := openTemp(t)
	require.NoError(t, r.Begin(testbench.Header{RunID: "x", DUT: "NAND", Period: 10, Hold: 1}))
	runs, err := r.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Nil(t, runs[0].Passed)
	assert.Empty(t, runs[0].Inputs)
}
