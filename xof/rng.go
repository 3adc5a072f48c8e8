// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package xof

import (
	"io"

	"github.com/bytemare/ed448/hash"
	"github.com/bytemare/ed448/utils"
)

// XOF is the collaborator interface for hashing arbitrary-length input to an
// arbitrary-length output; the root package's HashToScalar hashes through its
// Shake256 implementation. It matches hash.ExtendableHash's shape so
// hash.SHAKE256.Get() satisfies it directly.
type XOF interface {
	io.Writer
	Hash(size int, input ...[]byte) []byte
	Reset()
}

// Rng is the collaborator interface used to source fresh randomness, e.g.
// when generating a random scalar.
type Rng interface {
	io.Reader
}

// Shake256 is the default XOF collaborator, wrapping SHAKE256.
type Shake256 struct {
	*hash.ExtendableHash
}

// NewShake256 returns a fresh Shake256 collaborator.
func NewShake256() Shake256 {
	return Shake256{hash.SHAKE256.Get()}
}

// CryptoRand is the default Rng collaborator, wrapping crypto/rand.Reader via
// utils.RandomBytes.
type CryptoRand struct{}

// Read implements io.Reader by filling p with utils.RandomBytes.
func (CryptoRand) Read(p []byte) (int, error) {
	copy(p, utils.RandomBytes(len(p)))
	return len(p), nil
}
