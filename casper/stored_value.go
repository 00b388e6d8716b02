// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package casper

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNoContractVersion     = errors.New("no contract version")
	ErrUnexpectedStoredValue = errors.New("unexpected stored value")
)

// StoredValue is a global state value. Only the variant name is decoded
// eagerly; the payload is decoded on demand.
type StoredValue struct {
	Kind    string
	Payload json.RawMessage
}

func (v *StoredValue) UnmarshalJSON(b []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	if len(obj) != 1 {
		return fmt.Errorf("%w: expected a single variant, got %d", ErrUnexpectedStoredValue, len(obj))
	}
	for kind, payload := range obj {
		v.Kind = kind
		v.Payload = payload
	}
	return nil
}

func (v StoredValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]json.RawMessage{v.Kind: v.Payload})
}

type packageVersion struct {
	EntityAddr            string `json:"entity_addr"`
	AddressableEntityHash string `json:"addressable_entity_hash"`
	ContractHash          string `json:"contract_hash"`
}

func (p packageVersion) address() string {
	switch {
	case p.EntityAddr != "":
		return p.EntityAddr
	case p.AddressableEntityHash != "":
		return p.AddressableEntityHash
	default:
		return p.ContractHash
	}
}

// ContractAddress returns the address of the first version of a Package or
// ContractPackage.
func (v StoredValue) ContractAddress() (Hash, error) {
	switch v.Kind {
	case "Package", "ContractPackage":
	default:
		return EmptyHash, fmt.Errorf("%w: %s", ErrUnexpectedStoredValue, v.Kind)
	}

	var pkg struct {
		Versions []packageVersion `json:"versions"`
	}
	if err := json.Unmarshal(v.Payload, &pkg); err != nil {
		return EmptyHash, fmt.Errorf("failed to decode %s: %w", v.Kind, err)
	}
	if len(pkg.Versions) == 0 {
		return EmptyHash, fmt.Errorf("%w: %s has no versions", ErrNoContractVersion, v.Kind)
	}
	addr := pkg.Versions[0].address()
	if addr == "" {
		return EmptyHash, fmt.Errorf("%w: %s version has no address", ErrNoContractVersion, v.Kind)
	}
	return HashFromFormatted(addr)
}

type QueryGlobalStateResult struct {
	APIVersion  string          `json:"api_version"`
	BlockHeader json.RawMessage `json:"block_header,omitempty"`
	StoredValue StoredValue     `json:"stored_value"`
	MerkleProof string          `json:"merkle_proof"`
}
