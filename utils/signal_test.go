// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHandleSignals(t *testing.T) {
	require := require.New(t)

	received := make(chan os.Signal, 1)
	c := HandleSignals(func(sig os.Signal) {
		received <- sig
	}, syscall.SIGUSR1)
	defer ClearSignals(c)

	require.NoError(syscall.Kill(os.Getpid(), syscall.SIGUSR1))

	select {
	case sig := <-received:
		require.Equal(syscall.SIGUSR1, sig)
	case <-time.After(5 * time.Second):
		require.FailNow("signal was not handled")
	}
}

func TestHandleSignalsNoop(t *testing.T) {
	require.Nil(t, HandleSignals(nil, syscall.SIGUSR1))
	require.Nil(t, HandleSignals(func(os.Signal) {}))
	ClearSignals(nil)
}
