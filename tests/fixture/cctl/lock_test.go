// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLock(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), lockFilename)
	lock, err := acquireLock(path)
	require.NoError(err)

	_, err = acquireLock(path)
	require.ErrorIs(err, ErrNetworkLocked)

	require.NoError(releaseLock(lock))

	lock, err = acquireLock(path)
	require.NoError(err)
	require.NoError(releaseLock(lock))
}
