package util

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lolocompany/dtc-replay/pkg"
)

func TestInterrupted(t *testing.T) {
	require.True(t, Interrupted(context.Canceled))
	require.True(t, Interrupted(fmt.Errorf("replay: %w", context.DeadlineExceeded)))
	require.False(t, Interrupted(errors.New("broker down")))

	flush := fmt.Errorf("%w (2 messages) after %v: %w", pkg.ErrFlush, context.Canceled, context.DeadlineExceeded)
	require.False(t, Interrupted(flush))
}
