package history_test

import (
	"testing"
	"time"

	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/aretw0/cipherkit/pkg/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id uint64) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:        id,
		Input:     "in",
		Output:    "out",
		Method:    domain.MethodBase64,
		Mode:      domain.ModeEncode,
		Timestamp: time.Unix(int64(id), 0),
	}
}

func ids(l *history.Log) []uint64 {
	var out []uint64
	for e := range l.All() {
		out = append(out, e.ID)
	}
	return out
}

func TestLog_NewestFirst(t *testing.T) {
	l := history.New()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Entries())

	for i := uint64(1); i <= 3; i++ {
		_, evicted := l.Append(entry(i))
		assert.False(t, evicted)
	}
	assert.Equal(t, []uint64{3, 2, 1}, ids(l))

	// Restartable
	assert.Equal(t, ids(l), ids(l))
}

func TestLog_Eviction(t *testing.T) {
	var l history.Log // zero value is usable

	for i := uint64(1); i <= history.Capacity; i++ {
		_, evicted := l.Append(entry(i))
		require.False(t, evicted)
	}

	old, evicted := l.Append(entry(11))
	require.True(t, evicted)
	assert.Equal(t, uint64(1), old.ID)

	assert.Equal(t, history.Capacity, l.Len())
	front, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), front.ID)

	_, err = l.Get(1)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)

	for i := uint64(12); i <= 25; i++ {
		l.Append(entry(i))
	}
	assert.Equal(t, []uint64{25, 24, 23, 22, 21, 20, 19, 18, 17, 16}, ids(&l))
}

func TestLog_NoDeduplication(t *testing.T) {
	l := history.New()
	e := entry(1)
	l.Append(e)
	l.Append(e)
	assert.Equal(t, 2, l.Len())
}

func TestLog_At(t *testing.T) {
	l := history.New()
	l.Append(entry(1))
	l.Append(entry(2))

	e, err := l.At(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), e.ID)

	_, err = l.At(2)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
	_, err = l.At(-1)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestLog_IterateEarlyStop(t *testing.T) {
	l := history.New()
	for i := uint64(1); i <= 5; i++ {
		l.Append(entry(i))
	}
	var seen []uint64
	for e := range l.All() {
		seen = append(seen, e.ID)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []uint64{5, 4}, seen)
}

func TestLog_Restore(t *testing.T) {
	l := history.New()
	e := domain.HistoryEntry{
		ID:     7,
		Input:  "abc",
		Output: "def",
		Method: domain.MethodCaesar,
		Mode:   domain.ModeEncode,
		Shift:  domain.IntPtr(3),
	}
	l.Append(e)

	p := l.Restore(e)
	assert.Equal(t, domain.MethodCaesar, p.Method)
	assert.Equal(t, domain.ModeEncode, p.Mode)
	assert.Equal(t, "abc", p.Input)
	require.NotNil(t, p.Shift)
	assert.Equal(t, 3, *p.Shift)
	assert.Equal(t, 1, l.Len())
}

func TestLog_EntriesAreIsolated(t *testing.T) {
	l := history.New()
	shift := 5
	l.Append(domain.HistoryEntry{ID: 1, Method: domain.MethodCaesar, Shift: &shift})
	shift = 9

	got := l.Entries()
	require.Len(t, got, 1)
	assert.Equal(t, 5, *got[0].Shift)

	*got[0].Shift = 11
	again, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 5, *again.Shift)
}
