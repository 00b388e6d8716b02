// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mockable

import (
	"context"
	"sync"
	"time"
)

// Clock acts as a thin wrapper around global time that allows for easy testing
type Clock struct {
	lock  sync.Mutex
	faked bool
	time  time.Time
}

// Set the time on the clock
func (c *Clock) Set(time time.Time) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.faked = true
	c.time = time
}

// Sync this clock with global time
func (c *Clock) Sync() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.faked = false
}

// Time returns the time on this clock
func (c *Clock) Time() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.faked {
		return c.time
	}
	return time.Now()
}

// Sleep blocks for [d] or until [ctx] is done. A faked clock advances by [d]
// and returns immediately.
func (c *Clock) Sleep(ctx context.Context, d time.Duration) error {
	c.lock.Lock()
	if c.faked {
		c.time = c.time.Add(d)
		c.lock.Unlock()
		return ctx.Err()
	}
	c.lock.Unlock()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
