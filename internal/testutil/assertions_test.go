package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mforney/stylemin/internal/domain/style"
)

func TestAssertYAMLEquals_SemanticComparison(t *testing.T) {
	mockT := &testing.T{}
	AssertYAMLEquals(mockT, "a: 1\nb: 2\n", "b: 2\na: 1\n")
	assert.False(t, mockT.Failed())
}

func TestAssertYAMLEquals_Mismatch(t *testing.T) {
	mockT := &testing.T{}
	AssertYAMLEquals(mockT, "a: 1\n", "a: 2\n")
	assert.True(t, mockT.Failed())
}

func TestAssertErrorCode(t *testing.T) {
	err := &style.UserError{Code: style.ErrCodeInputNotFound, Message: "missing"}

	mockT := &testing.T{}
	AssertErrorCode(mockT, err, style.ErrCodeInputNotFound)
	assert.False(t, mockT.Failed())
}

func TestWriteTempFile(t *testing.T) {
	dir := t.TempDir()
	path := WriteTempFile(t, dir, "cfg.yaml", "ColumnLimit: 80\n")

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "ColumnLimit: 80\n", string(data))
}
