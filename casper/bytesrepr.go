// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package casper

import (
	"encoding/binary"
	"math/big"
)

// The helpers below implement the little-endian, length-prefixed encoding used
// to hash deploys.

func appendU8(b []byte, v uint8) []byte {
	return append(b, v)
}

func appendU32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

func appendU64(b []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(b, v)
}

func appendBytes(b []byte, v []byte) []byte {
	b = appendU32(b, uint32(len(v)))
	return append(b, v...)
}

func appendString(b []byte, v string) []byte {
	b = appendU32(b, uint32(len(v)))
	return append(b, v...)
}

// appendBigUint writes the number of significant bytes followed by the
// little-endian magnitude. Zero is a single 0x00.
func appendBigUint(b []byte, v *big.Int) []byte {
	be := v.Bytes()
	b = appendU8(b, uint8(len(be)))
	for i := len(be) - 1; i >= 0; i-- {
		b = append(b, be[i])
	}
	return b
}
