package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func failingCall() error { return errBoom }
func okCall() error      { return nil }

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 3, SuccessThreshold: 1, OpenTimeout: time.Minute})

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, b.Execute(failingCall), errBoom)
	}
	assert.Equal(t, BreakerOpen, b.State())

	// Open breaker fast-fails without invoking fn
	called := false
	err := b.Execute(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrBreakerOpen)
	assert.False(t, called)
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 3, SuccessThreshold: 1, OpenTimeout: time.Minute})

	require.Error(t, b.Execute(failingCall))
	require.Error(t, b.Execute(failingCall))
	require.NoError(t, b.Execute(okCall))
	require.Error(t, b.Execute(failingCall))
	require.Error(t, b.Execute(failingCall))

	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreaker_HalfOpenProbe(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1, SuccessThreshold: 2, OpenTimeout: 10 * time.Millisecond})

	require.Error(t, b.Execute(failingCall))
	require.Equal(t, BreakerOpen, b.State())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, BreakerHalfOpen, b.State())

	// Two probe successes close the breaker again
	require.NoError(t, b.Execute(okCall))
	require.NoError(t, b.Execute(okCall))
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreaker_ProbeFailureReopens(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1, SuccessThreshold: 1, OpenTimeout: 10 * time.Millisecond})

	require.Error(t, b.Execute(failingCall))
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, BreakerHalfOpen, b.State())

	require.Error(t, b.Execute(failingCall))
	assert.Equal(t, BreakerOpen, b.State())
}
