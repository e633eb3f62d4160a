package commands

import (
	"os"
	"testing"

	"github.com/0xalexb/hjarta-cfg/store"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messy = `# comment
title="demo"   ; trailing comment
[parent]
vec={ 10 ,20 }
[child:parent]( visible )
text = "joined "
       "string"
`

const canonical = `title = "demo"

[parent]
vec = {10, 20}

[child : parent] (visible)
text = "joined string"
`

func TestFmt(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "messy.cfg", messy)

	out, err := execute(t, "fmt", path)

	require.NoError(t, err)
	assert.Equal(t, canonical, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, messy, string(data), "fmt without --write leaves the file alone")
}

func TestFmt_Write(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "messy.cfg", messy)

	out, err := execute(t, "fmt", "--write", path)

	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, canonical, string(data))
}

func TestFmt_PreservesValues(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "fmt", sampleFile)
	require.NoError(t, err)

	before, err := store.New(sampleFile)
	require.NoError(t, err)

	after, err := store.Parse("formatted", []byte(out))
	require.NoError(t, err)

	if diff := cmp.Diff(before.ToMap(), after.ToMap()); diff != "" {
		t.Errorf("formatted file resolves differently (-before +after):\n%s", diff)
	}
}

func TestFmt_InvalidFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "broken.cfg", "[broken\n")

	_, err := execute(t, "fmt", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.cfg")
}
