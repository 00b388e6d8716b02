// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

var (
	// Current is the version of the cctlnet tooling.
	Current = &Semantic{
		Major: 0,
		Minor: 1,
		Patch: 0,
	}

	// MinimumNodeAPIVersion is the oldest casper node API the deploy
	// orchestration understands. Contracts are looked up under
	// entity-account keys, which were introduced in 2.0.0.
	MinimumNodeAPIVersion = &Semantic{
		Major: 2,
		Minor: 0,
		Patch: 0,
	}

	// GitCommit is set at build time with
	// -ldflags "-X github.com/cspr-tools/cctlnet/version.GitCommit=$(git rev-parse HEAD)"
	GitCommit string
)

// IsNodeAPISupported reports whether a node reporting [apiVersion] can be
// used to install contracts.
func IsNodeAPISupported(apiVersion string) (bool, error) {
	v, err := Parse(apiVersion)
	if err != nil {
		return false, err
	}
	return v.Compare(MinimumNodeAPIVersion) >= 0, nil
}
