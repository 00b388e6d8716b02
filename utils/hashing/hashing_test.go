// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeBlake2b256Empty(t *testing.T) {
	require.Equal(
		t,
		"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		hex.EncodeToString(ComputeBlake2b256(nil)),
	)
}

func TestComputeHash256Empty(t *testing.T) {
	require.Equal(
		t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		hex.EncodeToString(ComputeHash256(nil)),
	)
}

func TestToHash256(t *testing.T) {
	require := require.New(t)

	_, err := ToHash256(make([]byte, 31))
	require.ErrorIs(err, ErrInvalidHashLen)

	in := ComputeBlake2b256([]byte("cctl"))
	h, err := ToHash256(in)
	require.NoError(err)
	require.Equal(in, h[:])
}
