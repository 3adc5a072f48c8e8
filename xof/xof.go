// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package xof implements the RFC 9380 message-expansion functions,
// expand_message_xmd and expand_message_xof, the building blocks the group
// package layers its uniform and non-uniform hash-to-curve encodings on top
// of.
//
// Grounded on group/hash2curve/expand.go and xmd.go (the fixed-length
// variant) and hash2curve/xof.go (the extendable-output variant), adapted to
// call this module's own hash package instead of the external
// github.com/bytemare/cryptotools and github.com/bytemare/hash modules those
// files import, since neither is part of this module's dependency surface.
package xof

import (
	"errors"
	"math"

	"github.com/bytemare/ed448/encoding"
	"github.com/bytemare/ed448/hash"
)

const (
	dstMaxLength  = 255
	dstLongPrefix = "H2C-OVERSIZE-DST-"

	recommendedMinLength = 16
)

var (
	errZeroLenDST     = errors.New("zero-length DST")
	errLengthTooLarge = errors.New("requested length too large")
	errXOFHighOutput  = errors.New("XOF dst hashing is too long")
)

func checkDST(dst []byte) {
	if len(dst) == 0 {
		panic(errZeroLenDST)
	}
	// A DST shorter than the recommended minimum is accepted (some test
	// vectors use short, fixed DSTs), just not recommended.
	_ = recommendedMinLength
}

// ExpandXMD implements expand_message_xmd (RFC 9380 §5.3.1) using a
// fixed-length hash function.
func ExpandXMD(id hash.Hashing, input, dst []byte, length int) []byte {
	checkDST(dst)
	return expandXMD(id, input, dst, length)
}

func expandXMD(id hash.Hashing, input, dst []byte, length int) []byte {
	h := id.Get()
	dst = vetDSTXMD(h, dst)

	b := h.OutputSize()
	blockSize := h.BlockSize()

	ell := int(math.Ceil(float64(length) / float64(b)))
	if ell > 255 {
		panic(errLengthTooLarge)
	}

	zPad := make([]byte, blockSize)
	lengthBytes := encoding.I2OSP2(uint(length))
	zeroByte := []byte{0}
	dstPrime := dstPrime(dst)

	b0 := h.Hash(zPad, input, lengthBytes, zeroByte, dstPrime)
	b1 := h.Hash(b0, []byte{1}, dstPrime)

	if ell < 2 {
		return b1[:length]
	}

	uniformBytes := make([]byte, 0, length)
	uniformBytes = append(uniformBytes, b1...)

	bi := b1
	for i := 2; i <= ell; i++ {
		xored := make([]byte, len(bi))
		for j := range xored {
			xored[j] = bi[j] ^ b0[j]
		}

		bi = h.Hash(xored, []byte{byte(i)}, dstPrime)
		uniformBytes = append(uniformBytes, bi...)
	}

	return uniformBytes[:length]
}

func dstPrime(dst []byte) []byte {
	return append(append([]byte{}, dst...), byte(len(dst)))
}

func vetDSTXMD(h *hash.Hash, dst []byte) []byte {
	if len(dst) <= dstMaxLength {
		return dst
	}

	return h.Hash([]byte(dstLongPrefix), dst)
}

// ExpandXOF implements expand_message_xof (RFC 9380 §5.3.2) using an
// extendable-output function.
func ExpandXOF(id hash.Extendable, input, dst []byte, length int) []byte {
	checkDST(dst)
	return expandXOF(id, input, dst, length)
}

func expandXOF(id hash.Extendable, input, dst []byte, length int) []byte {
	if length > math.MaxUint16 {
		panic(errLengthTooLarge)
	}

	dst = vetDSTXOF(id, dst)
	len2o := encoding.I2OSP2(uint(length))
	dstLen1o := encoding.I2OSP1(uint(len(dst)))

	return id.Get().Hash(length, input, len2o, dst, dstLen1o)
}

func vetDSTXOF(id hash.Extendable, dst []byte) []byte {
	if len(dst) <= dstMaxLength {
		return dst
	}

	k := id.SecurityLevel()
	size := int(math.Ceil(float64(2*k) / 8))

	if size > math.MaxUint8 {
		panic(errXOFHighOutput)
	}

	return id.Get().Hash(size, []byte(dstLongPrefix), dst)
}
