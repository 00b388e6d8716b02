// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	valid := []string{
		"v1.2.3",
		"1.2.3",
		"1.2.3-rc1",
		"v1.2.3+a1b2c3",
	}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			require := require.New(t)

			v, err := Parse(s)
			require.NoError(err)
			require.Equal(&Semantic{Major: 1, Minor: 2, Patch: 3}, v)
		})
	}

	invalid := []string{
		"",
		"v1",
		"v1.2",
		"v1.2.3.4",
		"vz.2.3",
		"v1.z.3",
		"v1.2.z",
		"1.-2.3",
	}
	for _, s := range invalid {
		t.Run(s, func(t *testing.T) {
			_, err := Parse(s)
			require.ErrorIs(t, err, errInvalidVersion)
		})
	}
}
