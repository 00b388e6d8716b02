// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const HashLen = blake2b.Size256

var ErrInvalidHashLen = errors.New("invalid hash length")

// Hash256 A 256 bit long hash value.
type Hash256 = [HashLen]byte

// ComputeBlake2b256Array computes the 256 bit blake2b digest used for deploy,
// body and account hashes.
func ComputeBlake2b256Array(buf []byte) Hash256 {
	return blake2b.Sum256(buf)
}

// ComputeBlake2b256 is ComputeBlake2b256Array returning a slice.
func ComputeBlake2b256(buf []byte) []byte {
	arr := ComputeBlake2b256Array(buf)
	return arr[:]
}

// ComputeHash256Array computes the sha256 digest of [buf]. secp256k1
// signatures are produced over this digest.
func ComputeHash256Array(buf []byte) Hash256 {
	return sha256.Sum256(buf)
}

func ComputeHash256(buf []byte) []byte {
	arr := ComputeHash256Array(buf)
	return arr[:]
}

func ToHash256(bytes []byte) (Hash256, error) {
	hash := Hash256{}
	if bytesLen := len(bytes); bytesLen != HashLen {
		return hash, fmt.Errorf("%w: expected 32 bytes but got %d", ErrInvalidHashLen, bytesLen)
	}
	copy(hash[:], bytes)
	return hash, nil
}
