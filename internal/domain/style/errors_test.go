package style

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError_Error(t *testing.T) {
	err := &UserError{
		Code:    ErrCodeInputNotFound,
		Message: "configuration file not found",
		Context: "/tmp/.clang-format",
	}

	assert.Equal(t, "configuration file not found (at /tmp/.clang-format)", err.Error())
}

func TestUserError_ErrorWithoutContext(t *testing.T) {
	err := &UserError{Code: ErrCodeNoPresets, Message: "no presets loaded"}
	assert.Equal(t, "no presets loaded", err.Error())
}

func TestUserError_Unwrap(t *testing.T) {
	underlying := errors.New("exit status 1")
	err := &UserError{
		Code:       ErrCodeTargetDump,
		Message:    "could not dump target configuration",
		Underlying: underlying,
	}

	assert.ErrorIs(t, err, underlying)
	assert.ErrorIs(t, fmt.Errorf("minify: %w", err), underlying)
}

func TestUserError_IsMatchesByCode(t *testing.T) {
	err := &UserError{Code: ErrCodeTargetDump, Message: "a"}
	target := &UserError{Code: ErrCodeTargetDump}
	other := &UserError{Code: ErrCodeNoPresets}

	assert.ErrorIs(t, err, target)
	assert.NotErrorIs(t, err, other)
}
