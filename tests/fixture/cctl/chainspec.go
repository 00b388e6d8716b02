// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cctl

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Path of the chainspec written by setup, relative to the assets directory.
var generatedChainspecPath = []string{"genesis", "chainspec.toml"}

type chainspecFile struct {
	Network struct {
		Name string `toml:"name"`
	} `toml:"network"`
}

// ReadChainName returns the [network].name of the chainspec at [path], or the
// empty string when the chainspec does not set one.
func ReadChainName(path string) (string, error) {
	var chainspec chainspecFile
	meta, err := toml.DecodeFile(path, &chainspec)
	if err != nil {
		return "", fmt.Errorf("failed to read chainspec %s: %w", path, err)
	}
	if !meta.IsDefined("network", "name") {
		return "", nil
	}
	return strings.TrimSpace(chainspec.Network.Name), nil
}

// resolveChainName picks the chain name deploys are built for. The chainspec
// given to setup is only a template; the name the network runs with is the
// one in the chainspec setup writes to [assetsDir].
func resolveChainName(configured string, assetsDir string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	path := filepath.Join(append([]string{assetsDir}, generatedChainspecPath...)...)
	name, err := ReadChainName(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return DefaultChainName, nil
	case err != nil:
		return "", err
	case name == "":
		return DefaultChainName, nil
	default:
		return name, nil
	}
}
