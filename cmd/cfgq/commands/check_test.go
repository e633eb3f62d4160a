package commands

import (
	"testing"

	"github.com/0xalexb/hjarta-cfg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	good := writeFile(t, "good.cfg", "[a]\nx = 1\n")
	cycle := writeFile(t, "cycle.cfg", "[a : b]\n[b : a]\n")

	out, err := execute(t, "check", "--jobs", "2", sampleFile, good)

	require.NoError(t, err)
	assert.Equal(t, "ok   "+sampleFile+"\nok   "+good+"\n", out)

	out, err = execute(t, "check", good, cycle, sampleFile)

	require.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, err.Error(), "1 of 3 files")
	assert.Contains(t, out, "ok   "+good+"\nFAIL "+cycle+": ")
	assert.Contains(t, out, "\nok   "+sampleFile+"\n")
}

func TestCheck_BadJobs(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "check", "--jobs", "0", sampleFile)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--jobs")
}

func TestCheckFiles(t *testing.T) {
	t.Parallel()

	dup := writeFile(t, "dup.cfg", "[a]\nx = 1\nx = 2\n")
	syntax := writeFile(t, "syntax.cfg", "[a\n")

	results := checkFiles([]string{sampleFile, dup, syntax}, 1)

	require.Len(t, results, 3)
	require.NoError(t, results[0])
	require.ErrorIs(t, results[1], parser.ErrDuplicateKey)
	require.ErrorIs(t, results[2], parser.ErrSyntax)
}
