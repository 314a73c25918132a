package testutils

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/cipherkit/pkg/ports"
	"github.com/stretchr/testify/require"
)

// Epoch is the reference instant used by StepClock.
var Epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// StepClock returns a clock that advances by step on every call, starting
// one step after Epoch. Safe for concurrent use.
func StepClock(step time.Duration) ports.Clock {
	var mu sync.Mutex
	n := 0
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		n++
		return Epoch.Add(time.Duration(n) * step)
	}
}

// WriteFile creates name inside a fresh temp dir and returns its absolute path.
// It fails the test immediately on error.
func WriteFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644), "Failed to write %s", name)
	return path
}
