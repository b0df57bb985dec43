package shutdown

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSignals_CancelledBySignal(t *testing.T) {
	ctx, cancel := WithSignals(context.Background(), syscall.SIGUSR1)
	defer cancel()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGUSR1))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not cancelled")
	}

	var sigErr *SignalError
	require.True(t, errors.As(context.Cause(ctx), &sigErr))
	assert.Equal(t, syscall.SIGUSR1, sigErr.Signal)
}

func TestWithSignals_CancelFunc(t *testing.T) {
	ctx, cancel := WithSignals(context.Background(), syscall.SIGUSR2)
	cancel()

	<-ctx.Done()
	assert.ErrorIs(t, context.Cause(ctx), context.Canceled)
}
