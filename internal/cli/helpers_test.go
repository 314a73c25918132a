package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifyContext_Stop(t *testing.T) {
	ctx, stop := notifyContext(context.Background())
	stop()

	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Nil(t, interruptSignal(ctx), "a plain stop records no signal")
}

func TestInterruptSignal(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	assert.Nil(t, interruptSignal(ctx))

	cancel(interruptedError{sig: syscall.SIGTERM})
	assert.Equal(t, os.Signal(syscall.SIGTERM), interruptSignal(ctx))
	assert.EqualError(t, context.Cause(ctx), "interrupted by terminated")
}

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, handleExecutionError(nil))
	assert.NoError(t, handleExecutionError(context.Canceled))
	assert.NoError(t, handleExecutionError(io.EOF))

	boom := errors.New("boom")
	assert.ErrorIs(t, handleExecutionError(boom), boom)
}
