// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import (
	"math"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// BackoffConfig describes an exponential backoff curve with jitter. The delay
// is not capped.
type BackoffConfig struct {
	InitialInterval     time.Duration
	Multiplier          float64
	RandomizationFactor float64
}

// DefaultBackoffConfig follows the library-default exponential curve.
func DefaultBackoffConfig() BackoffConfig {
	return BackoffConfig{
		InitialInterval:     backoff.DefaultInitialInterval,
		Multiplier:          backoff.DefaultMultiplier,
		RandomizationFactor: backoff.DefaultRandomizationFactor,
	}
}

// NextBackoffDelay returns the delay to wait after [attempt] failed attempts,
// where attempt 0 is the first retry. A nil [rng] disables jitter.
func NextBackoffDelay(cfg BackoffConfig, attempt int, rng *rand.Rand) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	delay := float64(cfg.InitialInterval) * math.Pow(cfg.Multiplier, float64(attempt))
	if rng != nil && cfg.RandomizationFactor > 0 {
		delta := cfg.RandomizationFactor * delay
		delay = delay - delta + rng.Float64()*2*delta
	}
	if delay >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(delay)
}
