// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultBackoffConfig(t *testing.T) {
	require := require.New(t)

	cfg := DefaultBackoffConfig()
	require.Equal(500*time.Millisecond, cfg.InitialInterval)
	require.InDelta(1.5, cfg.Multiplier, 1e-9)
	require.InDelta(0.5, cfg.RandomizationFactor, 1e-9)
}

func TestNextBackoffDelayWithoutJitter(t *testing.T) {
	cfg := DefaultBackoffConfig()
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{attempt: -1, expected: 500 * time.Millisecond},
		{attempt: 0, expected: 500 * time.Millisecond},
		{attempt: 1, expected: 750 * time.Millisecond},
		{attempt: 2, expected: 1125 * time.Millisecond},
		{attempt: 3, expected: 1687500 * time.Microsecond},
	}
	for _, test := range tests {
		require.Equal(t, test.expected, NextBackoffDelay(cfg, test.attempt, nil))
	}
}

func TestNextBackoffDelayJitterBounds(t *testing.T) {
	require := require.New(t)

	cfg := DefaultBackoffConfig()
	rng := rand.New(rand.NewSource(1)) //#nosec G404
	for attempt := 0; attempt < 8; attempt++ {
		base := NextBackoffDelay(cfg, attempt, nil)
		lower := time.Duration(float64(base) * (1 - cfg.RandomizationFactor))
		upper := time.Duration(float64(base) * (1 + cfg.RandomizationFactor))
		for i := 0; i < 100; i++ {
			delay := NextBackoffDelay(cfg, attempt, rng)
			require.GreaterOrEqual(delay, lower)
			require.LessOrEqual(delay, upper)
		}
	}
}

func TestNextBackoffDelayIsDeterministic(t *testing.T) {
	require := require.New(t)

	cfg := DefaultBackoffConfig()
	a := rand.New(rand.NewSource(42)) //#nosec G404
	b := rand.New(rand.NewSource(42)) //#nosec G404
	for attempt := 0; attempt < 5; attempt++ {
		require.Equal(NextBackoffDelay(cfg, attempt, a), NextBackoffDelay(cfg, attempt, b))
	}
}

func TestNextBackoffDelayDoesNotOverflow(t *testing.T) {
	delay := NextBackoffDelay(DefaultBackoffConfig(), 10_000, nil)
	require.Equal(t, time.Duration(1<<63-1), delay)
}
