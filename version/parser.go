// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errInvalidVersion = errors.New("invalid version")

// Parse parses a version such as "v1.2.3". Casper nodes report their API
// version without the prefix so it is optional. Pre-release and build
// suffixes ("2.0.0-rc1", "1.5.6+a1b2c3") are ignored.
func Parse(s string) (*Semantic, error) {
	core := strings.TrimPrefix(s, "v")
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %q", errInvalidVersion, s)
	}
	var numbers [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", errInvalidVersion, s)
		}
		numbers[i] = n
	}
	return &Semantic{
		Major: numbers[0],
		Minor: numbers[1],
		Patch: numbers[2],
	}, nil
}
