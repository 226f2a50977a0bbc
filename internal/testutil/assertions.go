package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mforney/stylemin/internal/domain/style"
)

// AssertYAMLEquals asserts that two YAML strings are semantically equal.
func AssertYAMLEquals(t testing.TB, expected, actual string, msgAndArgs ...interface{}) {
	t.Helper()

	var expectedVal, actualVal interface{}

	err := yaml.Unmarshal([]byte(expected), &expectedVal)
	require.NoError(t, err, "failed to parse expected YAML")

	err = yaml.Unmarshal([]byte(actual), &actualVal)
	require.NoError(t, err, "failed to parse actual YAML")

	assert.Equal(t, expectedVal, actualVal, msgAndArgs...)
}

// AssertErrorCode asserts that err carries a style.UserError with the
// given code somewhere in its chain.
func AssertErrorCode(t testing.TB, err error, code string, msgAndArgs ...interface{}) {
	t.Helper()

	var userErr *style.UserError
	require.ErrorAs(t, err, &userErr, msgAndArgs...)
	assert.Equal(t, code, userErr.Code, msgAndArgs...)
}
