// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build windows

package cctl

import (
	"errors"
	"fmt"
	"os"

	"github.com/cspr-tools/cctlnet/utils/perms"
)

// cctl only runs on unix-like systems. Exclusive creation of the lock file
// stands in for flock so the package still builds elsewhere.
func acquireLock(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR, perms.ReadWrite)
	if errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("%w: %s", ErrNetworkLocked, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create lock file: %w", err)
	}
	return f, nil
}

func releaseLock(f *os.File) error {
	if err := f.Close(); err != nil {
		return err
	}
	return os.Remove(f.Name())
}
