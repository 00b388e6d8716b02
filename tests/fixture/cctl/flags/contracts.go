// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package flags

import (
	"strings"

	"github.com/cspr-tools/cctlnet/tests/fixture/cctl"
)

// contractsValue collects the contracts given by a repeatable flag. It
// satisfies both flag.Value and pflag.Value.
type contractsValue struct {
	contracts []cctl.DeployableContract
}

func (v *contractsValue) String() string {
	names := make([]string, len(v.contracts))
	for i, contract := range v.contracts {
		names[i] = contract.String()
	}
	return strings.Join(names, ",")
}

func (v *contractsValue) Set(s string) error {
	contract, err := cctl.ParseDeployableContract(s)
	if err != nil {
		return err
	}
	v.contracts = append(v.contracts, contract)
	return nil
}

func (*contractsValue) Type() string {
	return "contract"
}
