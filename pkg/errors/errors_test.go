package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaError(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		err := NewSchemaError("roster.csv", "Unique User ID", 3, -1)
		assert.Contains(t, err.Error(), "roster.csv")
		assert.Contains(t, err.Error(), "Unique User ID")
		assert.Contains(t, err.Error(), "missing")
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("misplaced header", func(t *testing.T) {
		err := NewSchemaError("roster.csv", "Student Email", 0, 2)
		assert.Contains(t, err.Error(), "must be column 0")
		assert.Contains(t, err.Error(), "found at column 2")
	})
}

func TestStructuralError(t *testing.T) {
	err := NewStructuralError("grades.csv", 7, 12, 11)
	assert.Contains(t, err.Error(), "row 7")
	assert.Contains(t, err.Error(), "expected 12 columns, got 11")
	assert.True(t, IsValidationError(err))
}

func TestDataIntegrityError(t *testing.T) {
	t.Run("row specific", func(t *testing.T) {
		err := NewDataIntegrityError("roster.csv", 3, "Student Email", "bogus", "invalid email format")
		assert.Contains(t, err.Error(), "row 3")
		assert.Contains(t, err.Error(), "Student Email")
		assert.True(t, errors.Is(err, ErrInvalidInput))
		assert.False(t, errors.Is(err, ErrDuplicateKey))
	})

	t.Run("duplicate key", func(t *testing.T) {
		err := NewDuplicateKeyError("roster.csv", 5, "Student Email", "ab12345@school.org")
		assert.Contains(t, err.Error(), "ab12345@school.org")
		assert.True(t, errors.Is(err, ErrDuplicateKey))
		assert.True(t, errors.Is(err, ErrInvalidInput))
		assert.True(t, IsDuplicateKey(err))
	})
}

func TestClassificationError(t *testing.T) {
	err := NewClassificationError("grades.csv", "codehs", 10, 8)
	assert.Contains(t, err.Error(), "8 entries for 10 assignment columns")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestIOError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewIOError("open", "/tmp/roster.csv", cause)
	assert.Contains(t, err.Error(), "open")
	assert.Contains(t, err.Error(), "/tmp/roster.csv")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestParseError(t *testing.T) {
	cause := errors.New("bare quote in field")
	err := NewParseError("csv", "grades.csv", cause.Error(), cause)
	assert.Contains(t, err.Error(), "csv file grades.csv")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestWrappers(t *testing.T) {
	assert.Nil(t, WrapIO("read", "x", nil))
	assert.Nil(t, WrapParse("csv", "x", nil))
	assert.Nil(t, WrapConfig("platform", nil))

	cause := errors.New("boom")
	var ioErr *IOError
	assert.ErrorAs(t, WrapIO("read", "x", cause), &ioErr)
	var parseErr *ParseError
	assert.ErrorAs(t, WrapParse("csv", "x", cause), &parseErr)
	var cfgErr *ConfigError
	assert.ErrorAs(t, WrapConfig("platform", cause), &cfgErr)
}
