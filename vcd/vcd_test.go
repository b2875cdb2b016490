package vcd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/nandsim"
	"github.com/db47h/nandsim/testbench"
	"github.com/db47h/nandsim/vcd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nandDump = `$timescale 1ps $end
$scope module NAND $end
$var wire 1 ! a $end
$var wire 1 " b $end
$var wire 1 # out $end
$upscope $end
$enddefinitions $end
#0
$dumpvars
0!
0"
0#
$end
#625
1#
#10625
1"
#20625
1!
0"
#30625
1"
#31250
0#
#40000
`

func TestWriter_nand(t *testing.T) {
	var buf bytes.Buffer
	w := vcd.New(&buf)
	res, err := testbench.New(nandsim.NandGate, testbench.WithReporter(w)).Run()
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "$date\n"))
	assert.Contains(t, out, "$version\n\tnandsim\n$end\n")
	assert.Contains(t, out, "run "+res.Header.RunID)
	i := strings.Index(out, "$timescale")
	require.True(t, i > 0)
	assert.Equal(t, nandDump, out[i:])
}

func TestWriter_signalMismatch(t *testing.T) {
	w := vcd.New(&bytes.Buffer{})
	require.NoError(t, w.Begin(testbench.Header{Inputs: []string{"a"}, Outputs: []string{"y"}, Period: 10, SPC: 2}))
	assert.EqualError(t, w.Trace(0, testbench.Vector{true}), "got 1 values for 2 signals")
}

func TestCreate(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nand.vcd")
	w, err := vcd.Create(name)
	require.NoError(t, err)
	_, err = testbench.New(nandsim.NandGate, testbench.WithReporter(w)).Run()
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), nandDump))
}
