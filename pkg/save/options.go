// Package save provides options for writing a placemark document.
package save

import (
	"io"

	"github.com/agentstation/automark/pkg/constants"
)

// Options is the configuration for save.
type Options struct {
	path      string
	writer    io.Writer
	indent    int
	extension string
}

// Path returns the path for the save options.
func (s *Options) Path() string {
	return s.path
}

// Writer returns the writer for the save options.
func (s *Options) Writer() io.Writer {
	return s.writer
}

// Indent returns the number of spaces used per nesting level.
func (s *Options) Indent() int {
	return s.indent
}

// Extension returns the extension appended to paths that lack one.
func (s *Options) Extension() string {
	return s.extension
}

// Defaults returns the default save options.
func Defaults() *Options {
	return &Options{
		indent:    constants.DefaultIndent,
		extension: constants.DefaultOutputExtension,
	}
}

// Apply applies the given options to the save options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures save options.
type Option func(*Options)

// WithPath for filesystem saves.
func WithPath(path string) Option {
	return func(s *Options) {
		s.path = path
	}
}

// WithWriter for custom outputs. A writer takes precedence over a path.
func WithWriter(w io.Writer) Option {
	return func(s *Options) {
		s.writer = w
	}
}

// WithIndent sets the indentation width. Zero or less keeps the document's
// whitespace untouched.
func WithIndent(spaces int) Option {
	return func(s *Options) {
		s.indent = spaces
	}
}

// WithExtension overrides the default extension.
func WithExtension(ext string) Option {
	return func(s *Options) {
		s.extension = ext
	}
}
