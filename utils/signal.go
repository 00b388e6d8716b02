// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"os"
	"os/signal"
)

// HandleSignals calls f with each received signal among [sigs].
//
// If f is nil or there are no provided signals, then nil will be returned.
// Otherwise, the returned channel can be passed to ClearSignals to stop
// handling the signals.
func HandleSignals(f func(os.Signal), sigs ...os.Signal) chan<- os.Signal {
	if f == nil || len(sigs) == 0 {
		return nil
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, sigs...)

	go func() {
		for sig := range c {
			f(sig)
		}
	}()

	return c
}

// ClearSignals stops the delivery of the signals registered on [c] and closes
// it.
func ClearSignals(c chan<- os.Signal) {
	if c == nil {
		return
	}

	signal.Stop(c)
	close(c)
}
