// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package casper

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cspr-tools/cctlnet/utils/hashing"
)

const HashLen = hashing.HashLen

var (
	ErrInvalidHash = errors.New("invalid hash")

	EmptyHash = Hash{}
)

// Hash is a 32 byte blake2b digest. Deploy hashes, block hashes, state root
// hashes and contract addresses all share this representation.
type Hash [HashLen]byte

// HashFromHex decodes 64 hex characters.
func HashFromHex(s string) (Hash, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return EmptyHash, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	h, err := hashing.ToHash256(b)
	if err != nil {
		return EmptyHash, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	return Hash(h), nil
}

// HashFromFormatted decodes a prefixed hash such as "contract-<hex>" or
// "entity-contract-<hex>". Everything up to the last '-' is ignored.
func HashFromFormatted(s string) (Hash, error) {
	if i := strings.LastIndexByte(s, '-'); i >= 0 {
		s = s[i+1:]
	}
	return HashFromHex(s)
}

// String returns the lowercase hex encoding.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	var err error
	*h, err = HashFromHex(s)
	return err
}

// ComputeHash returns the blake2b-256 digest of [b].
func ComputeHash(b []byte) Hash {
	return Hash(hashing.ComputeBlake2b256Array(b))
}
