// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package hash offers an easy to use API for common cryptographic hash
// operations, covering both fixed-length hash functions (SHA2, SHA3) and
// extendable-output functions (SHAKE, BLAKE2X), with HMAC and HKDF helpers.
// The group uses a fixed-length hash (SHA-512) for the expand_message_xmd step
// of its hash-to-curve encodings, and SHAKE256 for HashToScalar.
package hash

import "errors"

// security level in bits, shared by the fixed-length and extendable registries.
const (
	sec128 = 128
	sec256 = 256
)

// output size in bytes.
const (
	size256 = 32
	size512 = 64
)

// block size in bytes.
const (
	blockSHA3256 = 1088 / 8
	blockSHA3512 = 576 / 8
)

var errHmacKeySize = errors.New("hmac key length is larger than hash output size")

// parameters holds the static metadata shared by both registries.
type parameters struct {
	name       string
	blockSize  int
	outputSize int
	security   int
}
