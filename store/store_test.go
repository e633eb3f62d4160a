package store

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	filefetcher "github.com/0xalexb/hjarta-cfg/config/fetcher/file"
	"github.com/0xalexb/hjarta-cfg/document"
	"github.com/0xalexb/hjarta-cfg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `title = "demo"

[parent]
vec = {10, 20}
scale = 1.5
shared = parent

[name : parent] (visible, "two words")
multistr = "a string that "
           "spans two lines"
array = [1, 2, 3]
shared = child

[leaf : name]
depth = 3
`

func mustParse(t *testing.T, src string) *Store {
	t.Helper()

	s, err := Parse("sample.cfg", []byte(src))
	require.NoError(t, err)

	return s
}

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.cfg")

	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func TestNew(t *testing.T) {
	t.Parallel()

	path := writeFile(t, sample)

	s, err := New(path)

	require.NoError(t, err)
	assert.Equal(t, path, s.Name())
	assert.Equal(t, []string{"", "parent", "name", "leaf"}, s.Sections())
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.cfg"), wantErr: fs.ErrNotExist},
		{name: "directory", path: dir, wantErr: filefetcher.ErrPathIsDirectory},
		{name: "malformed", path: writeFile(t, "[name\n"), wantErr: parser.ErrSyntax},
		{name: "unknown parent", path: writeFile(t, "[a : b]\n"), wantErr: parser.ErrUnknownParent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := New(tt.path)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, s)
		})
	}
}

func TestNew_ErrorNamesFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "ok = 1\n[broken\n")

	_, err := New(path)

	var perr *parser.Error

	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.File)
	assert.Equal(t, 2, perr.Pos.Line)
}

func TestStore_Lookup_Inheritance(t *testing.T) {
	t.Parallel()

	s := mustParse(t, sample)

	tests := []struct {
		name       string
		section    string
		key        string
		want       string
		wantOrigin string
	}{
		{name: "own key", section: "name", key: "multistr", want: "a string that spans two lines", wantOrigin: "name"},
		{name: "inherited", section: "name", key: "scale", want: "1.5", wantOrigin: "parent"},
		{name: "overridden", section: "name", key: "shared", want: "child", wantOrigin: "name"},
		{name: "parent keeps own", section: "parent", key: "shared", want: "parent", wantOrigin: "parent"},
		{name: "two levels up", section: "leaf", key: "scale", want: "1.5", wantOrigin: "parent"},
		{name: "nearest wins", section: "leaf", key: "shared", want: "child", wantOrigin: "name"},
		{name: "root section", section: "", key: "title", want: "demo", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, err := s.Lookup(tt.section, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value.Scalar.Text)

			origin, err := s.Origin(tt.section, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOrigin, origin)
		})
	}
}

func TestStore_Lookup_Errors(t *testing.T) {
	t.Parallel()

	s := mustParse(t, sample)

	_, err := s.Lookup("missing", "vec")
	require.ErrorIs(t, err, ErrSectionNotFound)

	_, err = s.Lookup("parent", "multistr")
	require.ErrorIs(t, err, ErrKeyNotFound, "keys do not flow from child to parent")

	_, err = s.Lookup("", "vec")
	require.ErrorIs(t, err, ErrKeyNotFound, "root section is not a parent")
}

func TestStore_Has(t *testing.T) {
	t.Parallel()

	s := mustParse(t, sample)

	assert.True(t, s.HasSection("leaf"))
	assert.False(t, s.HasSection("missing"))
	assert.True(t, s.Has("leaf", "vec"))
	assert.False(t, s.Has("parent", "depth"))
	assert.False(t, s.Has("missing", "vec"))
}

func TestStore_Keys(t *testing.T) {
	t.Parallel()

	s := mustParse(t, sample)

	keys, err := s.Keys("leaf")
	require.NoError(t, err)
	assert.Equal(t, []string{"depth", "multistr", "array", "shared", "vec", "scale"}, keys)

	_, err = s.Keys("missing")
	require.ErrorIs(t, err, ErrSectionNotFound)
}

func TestStore_Parent(t *testing.T) {
	t.Parallel()

	s := mustParse(t, sample)

	parent, err := s.Parent("name")
	require.NoError(t, err)
	assert.Equal(t, "parent", parent)

	parent, err = s.Parent("parent")
	require.NoError(t, err)
	assert.Empty(t, parent)
}

func TestStore_Attributes(t *testing.T) {
	t.Parallel()

	s := mustParse(t, sample)

	attrs, err := s.Attributes("name")
	require.NoError(t, err)
	assert.Equal(t, []string{"visible", "two words"}, attrs)

	attrs[0] = "changed"

	again, err := s.Attributes("name")
	require.NoError(t, err)
	assert.Equal(t, "visible", again[0], "Attributes must return a copy")

	inherited, err := s.Attributes("leaf")
	require.NoError(t, err)
	assert.Empty(t, inherited, "attributes are not inherited")

	_, err = s.Attributes("missing")
	require.ErrorIs(t, err, ErrSectionNotFound)
}

func TestFromDocument_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     *document.Document
		wantErr error
	}{
		{
			name: "duplicate section",
			doc: &document.Document{Sections: []*document.Section{
				{Name: "a"}, {Name: "a"},
			}},
			wantErr: parser.ErrDuplicateSection,
		},
		{
			name: "duplicate key",
			doc: &document.Document{Sections: []*document.Section{
				{Name: "a", Entries: []*document.Entry{
					{Key: "k", Value: document.NewScalar("1", false)},
					{Key: "k", Value: document.NewScalar("2", false)},
				}},
			}},
			wantErr: parser.ErrDuplicateKey,
		},
		{
			name: "unknown parent",
			doc: &document.Document{Sections: []*document.Section{
				{Name: "a", Parent: "b"},
			}},
			wantErr: parser.ErrUnknownParent,
		},
		{
			name: "cycle",
			doc: &document.Document{Sections: []*document.Section{
				{Name: "a", Parent: "b"}, {Name: "b", Parent: "a"},
			}},
			wantErr: parser.ErrInheritanceCycle,
		},
		{
			name: "self parent",
			doc: &document.Document{Sections: []*document.Section{
				{Name: "a", Parent: "a"},
			}},
			wantErr: parser.ErrInheritanceCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := FromDocument(tt.doc)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, s)
		})
	}
}

func TestFromDocument(t *testing.T) {
	t.Parallel()

	doc := &document.Document{
		Name: "built",
		Sections: []*document.Section{{
			Name: "server",
			Entries: []*document.Entry{
				{Key: "port", Value: document.NewScalar("8080", false)},
			},
		}},
	}

	s, err := FromDocument(doc)
	require.NoError(t, err)
	assert.Same(t, doc, s.Document())
	assert.Equal(t, "built", s.Name())

	port, err := s.Int("server", "port")
	require.NoError(t, err)
	assert.Equal(t, int64(8080), port)
}

func TestHolder(t *testing.T) {
	t.Parallel()

	first := mustParse(t, "v = 1\n")
	second := mustParse(t, "v = 2\n")

	h := NewHolder(first)
	assert.Same(t, first, h.Load())

	prev := h.Swap(second)
	assert.Same(t, first, prev)
	assert.Same(t, second, h.Load())
}
