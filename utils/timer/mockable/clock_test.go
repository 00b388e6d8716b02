// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mockable

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClockSet(t *testing.T) {
	require := require.New(t)

	clock := Clock{}
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	clock.Set(start)
	require.Equal(start, clock.Time())

	require.NoError(clock.Sleep(context.Background(), time.Minute))
	require.Equal(start.Add(time.Minute), clock.Time())

	clock.Sync()
	require.WithinDuration(time.Now(), clock.Time(), time.Minute)
}

func TestClockSleepCancelled(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	clock := Clock{}
	require.ErrorIs(clock.Sleep(ctx, time.Hour), context.Canceled)
}
