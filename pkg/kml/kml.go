// Package kml loads and saves KML placemark documents. The document tree is
// held as an etree document so that everything the merge does not touch
// (styles, schemas, extension elements) is written back unchanged.
package kml

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/agentstation/automark/pkg/constants"
	"github.com/agentstation/automark/pkg/errors"
	"github.com/agentstation/automark/pkg/save"
)

// Element names used by the placemark hierarchy.
const (
	TagDocument  = "Document"
	TagFolder    = "Folder"
	TagPlacemark = "Placemark"
	TagName      = "name"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Document is a parsed KML document.
type Document struct {
	doc  *etree.Document
	path string
}

// New wraps an existing etree document.
func New(doc *etree.Document) *Document {
	return &Document{doc: doc}
}

// Load reads and parses the KML document at path. The file is closed before
// Load returns, on success and on failure.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	return Read(f, path)
}

// Read parses a KML document from r. name is used in error messages.
func Read(r io.Reader, name string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", name, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.WrapParse("kml", name, err)
	}

	return &Document{doc: doc, path: name}, nil
}

// Path returns the path the document was loaded from, if any.
func (d *Document) Path() string {
	return d.path
}

// Tree returns the underlying etree document.
func (d *Document) Tree() *etree.Document {
	return d.doc
}

// Root returns the Document element, or nil when there is none. A bare
// Document root without the kml wrapper is accepted.
func (d *Document) Root() *etree.Element {
	root := d.doc.Root()
	if root == nil {
		return nil
	}
	if root.Tag == TagDocument {
		return root
	}
	return root.SelectElement(TagDocument)
}

// Folders returns the top-level folders of the Document element in order.
func (d *Document) Folders() []*etree.Element {
	root := d.Root()
	if root == nil {
		return nil
	}
	return root.SelectElements(TagFolder)
}

// Save writes the document. With save.WithWriter the document goes to the
// writer and the returned path is empty; otherwise it is written to the
// configured path (default extension appended when missing) through a
// temporary file that is renamed into place.
func (d *Document) Save(opts ...save.Option) (string, error) {
	options := save.Defaults().Apply(opts...)

	if options.Indent() > 0 {
		d.doc.Indent(options.Indent())
	}

	if w := options.Writer(); w != nil {
		return "", errors.WrapIO("write", "", d.writeTo(w))
	}

	path := WithDefaultExtension(options.Path(), options.Extension())
	if path == "" {
		return "", &errors.ConfigError{
			Component: "output",
			Message:   "no output path configured for saving",
		}
	}

	if err := d.writeFile(path); err != nil {
		return "", err
	}
	return path, nil
}

func (d *Document) writeFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".automark-*")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := d.writeTo(tmp); err != nil {
		tmp.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	if err := os.Chmod(tmp.Name(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

func (d *Document) writeTo(w io.Writer) error {
	if !d.hasDeclaration() {
		if _, err := io.WriteString(w, xmlHeader); err != nil {
			return err
		}
	}
	_, err := d.doc.WriteTo(w)
	return err
}

func (d *Document) hasDeclaration() bool {
	for _, tok := range d.doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			return true
		}
	}
	return false
}

// WithDefaultExtension appends ext to path when path has no extension.
func WithDefaultExtension(path, ext string) string {
	if path == "" || ext == "" || filepath.Ext(path) != "" {
		return path
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return path + ext
}

// Name returns the trimmed text of el's name child and whether it exists.
func Name(el *etree.Element) (string, bool) {
	name := el.SelectElement(TagName)
	if name == nil {
		return "", false
	}
	return strings.TrimSpace(name.Text()), true
}
