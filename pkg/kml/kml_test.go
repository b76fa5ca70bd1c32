package kml

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/automark/pkg/errors"
	"github.com/agentstation/automark/pkg/save"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2" xmlns:gx="http://www.google.com/kml/ext/2.2">
<Document>
	<name>Map</name>
	<Style id="s1"><IconStyle><scale>1.1</scale></IconStyle></Style>
	<Folder><name>First</name></Folder>
	<Folder><name>  Second  </name>
		<Placemark><name>p</name><Point><gx:drawOrder>1</gx:drawOrder></Point></Placemark>
	</Folder>
</Document>
</kml>
`

func TestRead(t *testing.T) {
	doc, err := Read(strings.NewReader(sample), "sample.kml")
	require.NoError(t, err)

	assert.Equal(t, "sample.kml", doc.Path())
	require.NotNil(t, doc.Root())
	assert.Equal(t, TagDocument, doc.Root().Tag)

	folders := doc.Folders()
	require.Len(t, folders, 2)
	name, ok := Name(folders[1])
	require.True(t, ok)
	assert.Equal(t, "Second", name)
}

func TestReadBareDocument(t *testing.T) {
	doc, err := Read(strings.NewReader(`<Document><Folder><name>a</name></Folder></Document>`), "bare")
	require.NoError(t, err)
	require.NotNil(t, doc.Root())
	assert.Len(t, doc.Folders(), 1)
}

func TestReadMissingDocument(t *testing.T) {
	doc, err := Read(strings.NewReader(`<kml><Folder/></kml>`), "x")
	require.NoError(t, err)
	assert.Nil(t, doc.Root())
	assert.Empty(t, doc.Folders())
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(strings.NewReader(`<kml><Document></kml>`), "broken.kml")
	require.Error(t, err)

	var parseErr *errors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "kml", parseErr.Format)
	assert.Equal(t, "broken.kml", parseErr.File)
	assert.False(t, errors.IsFormat(err), "a broken document is not a per-record error")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.kml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path())
	assert.Len(t, doc.Folders(), 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.kml"))
	require.Error(t, err)

	var ioErr *errors.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "open", ioErr.Operation)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveToWriter(t *testing.T) {
	doc, err := Read(strings.NewReader(sample), "sample.kml")
	require.NoError(t, err)

	var buf bytes.Buffer
	path, err := doc.Save(save.WithWriter(&buf))
	require.NoError(t, err)
	assert.Empty(t, path)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "<?xml"), "existing declaration is not duplicated")
	assert.Contains(t, out, `<Style id="s1">`)
	assert.Contains(t, out, "<gx:drawOrder>1</gx:drawOrder>")
	assert.Contains(t, out, `xmlns:gx="http://www.google.com/kml/ext/2.2"`)
}

func TestSaveAddsDeclaration(t *testing.T) {
	doc, err := Read(strings.NewReader(`<kml><Document/></kml>`), "x")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = doc.Save(save.WithWriter(&buf), save.WithIndent(0))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), `<?xml version="1.0" encoding="UTF-8"?>`))
}

func TestSaveToPath(t *testing.T) {
	doc, err := Read(strings.NewReader(sample), "sample.kml")
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := doc.Save(save.WithPath(filepath.Join(dir, "nested", "out")))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "out.kml"), path)

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, reloaded.Folders(), 2)

	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file is renamed into place")
}

func TestSaveWithoutPath(t *testing.T) {
	doc := New(etree.NewDocument())
	_, err := doc.Save()
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestWithDefaultExtension(t *testing.T) {
	tests := []struct {
		path, ext, want string
	}{
		{"out", ".kml", "out.kml"},
		{"out", "kml", "out.kml"},
		{"out.kml", ".kml", "out.kml"},
		{"out.xml", ".kml", "out.xml"},
		{"dir.d/out", ".kml", "dir.d/out.kml"},
		{"", ".kml", ""},
		{"out", "", "out"},
	}

	for _, tt := range tests {
		t.Run(tt.path+"+"+tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, WithDefaultExtension(tt.path, tt.ext))
		})
	}
}

func TestName(t *testing.T) {
	el := etree.NewElement(TagFolder)
	_, ok := Name(el)
	assert.False(t, ok)

	el.CreateElement(TagName).SetText("  Pune \n")
	name, ok := Name(el)
	assert.True(t, ok)
	assert.Equal(t, "Pune", name)
}
