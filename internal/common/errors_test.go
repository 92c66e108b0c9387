package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserErrorFormatting(t *testing.T) {
	err := NewUserError(ErrNoControls, "nothing to scan on that page")
	assert.Equal(t, "nothing to scan on that page: no form controls found", err.Error())

	bare := NewUserError(nil, "just a message")
	assert.Equal(t, "just a message", bare.Error())
}

func TestUserErrorUnwrapsToSentinel(t *testing.T) {
	err := NewUserError(ErrMissingConfig, "a profile path is required")
	assert.True(t, errors.Is(err, ErrMissingConfig))

	wrapped := fmt.Errorf("loading profile: %w", err)
	var userErr *UserError
	require.True(t, errors.As(wrapped, &userErr))
	assert.Equal(t, "a profile path is required", userErr.UserMessage)
}

func TestValidateContext(t *testing.T) {
	assert.NoError(t, ValidateContext(context.Background()))
	assert.Error(t, ValidateContext(nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, ValidateContext(ctx))
}
