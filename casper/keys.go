// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package casper

import (
	"encoding/hex"
	"encoding/json"

	"github.com/cspr-tools/cctlnet/utils/crypto"
)

// PublicKey is a public key together with its algorithm, serialized as the tag
// byte followed by the raw key.
type PublicKey struct {
	Algorithm crypto.Algorithm
	Raw       []byte
}

func NewPublicKey(pk crypto.PublicKey) PublicKey {
	return PublicKey{
		Algorithm: pk.Algorithm(),
		Raw:       pk.Bytes(),
	}
}

func (k PublicKey) Bytes() []byte {
	return crypto.TaggedBytes(k.Algorithm, k.Raw)
}

func (k PublicKey) String() string {
	return hex.EncodeToString(k.Bytes())
}

func (k PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// AccountHash is blake2b(algorithm name || 0x00 || raw key).
func (k PublicKey) AccountHash() Hash {
	name := k.Algorithm.String()
	preimage := make([]byte, 0, len(name)+1+len(k.Raw))
	preimage = append(preimage, name...)
	preimage = append(preimage, 0)
	preimage = append(preimage, k.Raw...)
	return ComputeHash(preimage)
}

// AccountEntityKey is the global state key of the account's addressable
// entity.
func (k PublicKey) AccountEntityKey() string {
	return "entity-account-" + k.AccountHash().String()
}

// Signature is a raw signature together with its algorithm.
type Signature struct {
	Algorithm crypto.Algorithm
	Raw       []byte
}

func (s Signature) Bytes() []byte {
	return crypto.TaggedBytes(s.Algorithm, s.Raw)
}

func (s Signature) String() string {
	return hex.EncodeToString(s.Bytes())
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
