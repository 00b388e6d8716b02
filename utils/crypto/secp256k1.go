// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/cspr-tools/cctlnet/utils/hashing"
)

const (
	// SECP256K1SigLen is the length of an r || s signature.
	SECP256K1SigLen = 64

	// SECP256K1SKLen is the number of bytes in a secp256k1 private key
	SECP256K1SKLen = 32

	// SECP256K1PKLen is the number of bytes in a compressed secp256k1 public
	// key
	SECP256K1PKLen = 33
)

var (
	_ PublicKey  = (*PublicKeySECP256K1)(nil)
	_ PrivateKey = (*PrivateKeySECP256K1)(nil)

	errInvalidSigLen = errors.New("invalid signature length")
)

func NewPrivateKeySECP256K1() (*PrivateKeySECP256K1, error) {
	k, err := secp256k1.GeneratePrivateKey()
	return &PrivateKeySECP256K1{sk: k}, err
}

func ToPrivateKeySECP256K1(b []byte) (*PrivateKeySECP256K1, error) {
	if len(b) != SECP256K1SKLen {
		return nil, errWrongPrivateKeySize
	}
	return &PrivateKeySECP256K1{sk: secp256k1.PrivKeyFromBytes(b)}, nil
}

func ToPublicKeySECP256K1(b []byte) (*PublicKeySECP256K1, error) {
	key, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, err
	}
	return &PublicKeySECP256K1{pk: key}, nil
}

type PublicKeySECP256K1 struct {
	pk *secp256k1.PublicKey
}

func (*PublicKeySECP256K1) Algorithm() Algorithm {
	return SECP256K1
}

// Verify checks an r || s signature over the sha256 digest of [msg].
func (k *PublicKeySECP256K1) Verify(msg, sig []byte) bool {
	if len(sig) != SECP256K1SigLen {
		return false
	}
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig[:32]); overflow {
		return false
	}
	if overflow := s.SetByteSlice(sig[32:]); overflow {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(hashing.ComputeHash256(msg), k.pk)
}

// Bytes returns the compressed public key.
func (k *PublicKeySECP256K1) Bytes() []byte {
	return k.pk.SerializeCompressed()
}

type PrivateKeySECP256K1 struct {
	sk *secp256k1.PrivateKey
	pk *PublicKeySECP256K1
}

func (*PrivateKeySECP256K1) Algorithm() Algorithm {
	return SECP256K1
}

func (k *PrivateKeySECP256K1) PublicKey() PublicKey {
	if k.pk == nil {
		k.pk = &PublicKeySECP256K1{pk: k.sk.PubKey()}
	}
	return k.pk
}

// Sign returns a low-s r || s signature over the sha256 digest of [msg].
func (k *PrivateKeySECP256K1) Sign(msg []byte) ([]byte, error) {
	compact := ecdsa.SignCompact(k.sk, hashing.ComputeHash256(msg), true) // returns [v || r || s]
	if len(compact) != SECP256K1SigLen+1 {
		return nil, errInvalidSigLen
	}
	return compact[1:], nil
}

// Bytes returns the 32 byte private scalar.
func (k *PrivateKeySECP256K1) Bytes() []byte {
	return k.sk.Serialize()
}
