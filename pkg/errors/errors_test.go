package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/agentstation/automark/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestLookupIsNotFound(t *testing.T) {
	t.Run("container", func(t *testing.T) {
		err := pkgerrors.NewLookupError("pune", "kothrud", "skilling")
		assert.True(t, pkgerrors.IsNotFound(err))
		assert.True(t, pkgerrors.IsLookup(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := errors.Join(errors.New("failed"), pkgerrors.NewCategoryError("alumni"))
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestStructuralError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := pkgerrors.NewStructuralError("pune/kothrud", "folder has no name")
		assert.Equal(t, "document structure error at pune/kothrud: folder has no name", err.Error())
		assert.True(t, pkgerrors.IsStructural(err))
	})

	t.Run("without path", func(t *testing.T) {
		err := &pkgerrors.StructuralError{Message: "no Document element"}
		assert.Equal(t, "document structure error: no Document element", err.Error())
		assert.False(t, pkgerrors.IsFormat(err))
	})
}

func TestFormatError(t *testing.T) {
	base := errors.New("strconv failure")
	err := pkgerrors.NewFormatError("latitude", "41°x'1\"", "minutes is not a number", base)

	assert.Contains(t, err.Error(), "latitude")
	assert.Contains(t, err.Error(), "minutes is not a number")
	assert.True(t, pkgerrors.IsFormat(err))
	assert.Equal(t, base, errors.Unwrap(err))
}

func TestLookupError(t *testing.T) {
	t.Run("container", func(t *testing.T) {
		err := pkgerrors.NewLookupError("pune", "kothrud", "skilling")
		assert.Equal(t, "could not find skilling folder for locale kothrud in lighthouse pune", err.Error())
		assert.True(t, pkgerrors.IsLookup(err))
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("category", func(t *testing.T) {
		err := pkgerrors.NewCategoryError("graduated")
		assert.Equal(t, `unknown category "graduated"`, err.Error())
		assert.True(t, pkgerrors.IsLookup(err))
	})
}

func TestDuplicateKeyWarning(t *testing.T) {
	err := pkgerrors.NewDuplicateKeyWarning("asha", "a/b/c", "a/b/d")
	assert.Contains(t, err.Error(), "asha")
	assert.True(t, errors.Is(err, pkgerrors.ErrDuplicateKey))
}

func TestRecordError(t *testing.T) {
	base := pkgerrors.NewLookupError("g", "s", "c")
	err := pkgerrors.WrapRecord("markers.csv", 7, base)

	assert.Equal(t, "markers.csv:7: "+base.Error(), err.Error())
	assert.True(t, pkgerrors.IsLookup(err))
	assert.Nil(t, pkgerrors.WrapRecord("markers.csv", 1, nil))
}

func TestParseError(t *testing.T) {
	t.Run("csv is a record format error", func(t *testing.T) {
		err := pkgerrors.NewParseError("csv", "markers.csv", "expected 7 fields, got 3", nil)
		assert.True(t, pkgerrors.IsFormat(err))
		assert.Contains(t, err.Error(), "markers.csv")
	})

	t.Run("kml is not", func(t *testing.T) {
		err := pkgerrors.WrapParse("kml", "map.kml", errors.New("XML syntax error"))
		assert.False(t, pkgerrors.IsFormat(err))
		assert.Contains(t, err.Error(), "XML syntax error")
	})
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("output", "path cannot be empty", nil)
	assert.Contains(t, err.Error(), "output")
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestIOError(t *testing.T) {
	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("disk full")
		err := pkgerrors.NewIOError("write", "/data/output.kml", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("permission denied")
		err := pkgerrors.WrapIO("open", "/tmp/map.kml", baseErr)
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "open", ioErr.Operation)
		assert.Equal(t, "/tmp/map.kml", ioErr.Path)
		assert.Nil(t, pkgerrors.WrapIO("open", "x", nil))
	})
}

func TestResourceError(t *testing.T) {
	err := pkgerrors.WrapResource("build", "index", "map.kml", pkgerrors.NewStructuralError("", "missing folder"))
	assert.Contains(t, err.Error(), "failed to build index map.kml")
	assert.True(t, pkgerrors.IsStructural(err))
}
