// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"errors"
	"fmt"
)

// Algorithm identifies the signature scheme of a key. The numeric value is the
// tag byte that prefixes keys and signatures in their serialized form.
type Algorithm byte

const (
	ED25519   Algorithm = 1
	SECP256K1 Algorithm = 2
)

var ErrUnknownAlgorithm = errors.New("unknown key algorithm")

func (a Algorithm) String() string {
	switch a {
	case ED25519:
		return "ed25519"
	case SECP256K1:
		return "secp256k1"
	default:
		return fmt.Sprintf("unknown(%d)", byte(a))
	}
}

type PublicKey interface {
	Algorithm() Algorithm
	Verify(message, signature []byte) bool
	// Bytes returns the raw key without the algorithm tag.
	Bytes() []byte
}

type PrivateKey interface {
	Algorithm() Algorithm
	PublicKey() PublicKey
	// Sign returns the raw signature over [message] without the algorithm
	// tag.
	Sign(message []byte) ([]byte, error)
}

// TaggedBytes prefixes [b] with the tag byte of [a].
func TaggedBytes(a Algorithm, b []byte) []byte {
	out := make([]byte, 0, 1+len(b))
	out = append(out, byte(a))
	return append(out, b...)
}
