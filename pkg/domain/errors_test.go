package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransformError(t *testing.T) {
	cause := errors.New("bad byte")
	err := domain.NewTransformError(domain.KindInvalidHexToken, cause)

	assert.Equal(t, "invalid hexadecimal format: bad byte", err.Error())
	assert.ErrorIs(t, err, domain.ErrInvalidHexToken)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domain.ErrInvalidJSON)

	wrapped := fmt.Errorf("session: %w", err)
	assert.Equal(t, domain.KindInvalidHexToken, domain.KindOf(wrapped))
	assert.Equal(t, domain.KindNone, domain.KindOf(cause))
	assert.Equal(t, domain.KindNone, domain.KindOf(nil))
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnTransform: func(*domain.TransformEvent) { calls = append(calls, "a") },
	}
	b := domain.LifecycleHooks{
		OnTransform:    func(*domain.TransformEvent) { calls = append(calls, "b") },
		OnHistoryEvict: func(*domain.HistoryEvent) { calls = append(calls, "evict") },
	}

	merged := a.Merge(b)
	merged.OnTransform(&domain.TransformEvent{})
	merged.OnHistoryEvict(&domain.HistoryEvent{})
	assert.Nil(t, merged.OnHistoryAppend)
	assert.Equal(t, []string{"a", "b", "evict"}, calls)
}
