// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ed448 implements a prime-order group over the Ed448-Goldilocks
// curve: field and scalar arithmetic, twisted-Edwards point operations, a
// canonical (Decaf-style) encoding, Elligator-style hash-to-curve with a
// partial inverse, and three scalar-multiplication routines. Point and
// Scalar are concrete value types wrapping the internal/* packages,
// following the corpus's own wrapper-over-internal-package convention
// (group/point.go, group/scalar.go wrapping group/internal).
package ed448

import (
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/bytemare/ed448/internal/scalarfield"
	"github.com/bytemare/ed448/xof"
)

// ScalarSize is the length in bytes of a canonical scalar encoding.
const ScalarSize = scalarfield.Size

// Scalar is an element of Z/qZ, the scalar ring of the prime-order subgroup.
type Scalar struct {
	s scalarfield.Scalar
}

// NewScalar returns a new scalar set to zero.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Random sets s to a uniformly random scalar and returns it. The underlying
// randomness comes from xof.CryptoRand, reduced mod q via a wide decode so
// the result carries no modular bias.
func (s *Scalar) Random() *Scalar {
	var buf [2 * ScalarSize]byte

	rng := xof.CryptoRand{}
	if _, err := rng.Read(buf[:]); err != nil {
		panic(err)
	}

	scalarfield.DecodeWide(&s.s, buf[:])

	return s
}

// Zero sets s to zero and returns it.
func (s *Scalar) Zero() *Scalar {
	s.s = scalarfield.Zero()
	return s
}

// One sets s to one and returns it.
func (s *Scalar) One() *Scalar {
	s.s = scalarfield.One()
	return s
}

// Add returns s + t, leaving both operands unchanged.
func (s *Scalar) Add(t *Scalar) *Scalar {
	var r Scalar
	scalarfield.Add(&r.s, &s.s, &t.s)

	return &r
}

// Sub returns s - t, leaving both operands unchanged.
func (s *Scalar) Sub(t *Scalar) *Scalar {
	var r Scalar
	scalarfield.Sub(&r.s, &s.s, &t.s)

	return &r
}

// Mult returns s * t, leaving both operands unchanged.
func (s *Scalar) Mult(t *Scalar) *Scalar {
	var r Scalar
	scalarfield.Mul(&r.s, &s.s, &t.s)

	return &r
}

// Negate returns -s mod q.
func (s *Scalar) Negate() *Scalar {
	var r Scalar
	scalarfield.Neg(&r.s, &s.s)

	return &r
}

// Invert returns s^-1 mod q, or zero if s is zero.
func (s *Scalar) Invert() *Scalar {
	var r Scalar
	scalarfield.Invert(&r.s, &s.s)

	return &r
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return scalarfield.IsZero(&s.s) == 1
}

// Equal reports whether s and t represent the same residue mod q.
func (s *Scalar) Equal(t *Scalar) bool {
	return scalarfield.Equal(&s.s, &t.s) == 1
}

// Copy returns a copy of s.
func (s *Scalar) Copy() *Scalar {
	r := *s
	return &r
}

// Zeroize overwrites s's internal storage with zeros.
func (s *Scalar) Zeroize() {
	s.s = scalarfield.Scalar{}
}

// DecodeScalar decodes a 56-byte canonical little-endian scalar encoding.
// It returns ErrInvalidScalarEncoding if the length is wrong or the encoded
// integer is not already reduced mod q.
func DecodeScalar(in []byte) (*Scalar, error) {
	if len(in) != ScalarSize {
		return nil, ErrInvalidScalarEncoding
	}

	var t scalarfield.Scalar
	scalarfield.Decode(&t, in)

	var canon [ScalarSize]byte
	scalarfield.Encode(canon[:], &t)

	if subtle.ConstantTimeCompare(canon[:], in) != 1 {
		return nil, ErrInvalidScalarEncoding
	}

	return &Scalar{t}, nil
}

// DecodeScalarWide reduces an arbitrary-length little-endian byte string mod
// q, following §4.2's decode_long contract. Used to turn wide hash output
// into a scalar without rejecting anything.
func DecodeScalarWide(in []byte) *Scalar {
	var t scalarfield.Scalar
	scalarfield.DecodeWide(&t, in)

	return &Scalar{t}
}

// Bytes returns s's canonical 56-byte little-endian encoding.
func (s *Scalar) Bytes() []byte {
	buf := make([]byte, ScalarSize)
	scalarfield.Encode(buf, &s.s)

	return buf
}

// Hex returns s's canonical encoding as a hexadecimal string.
func (s *Scalar) Hex() string {
	return hex.EncodeToString(s.Bytes())
}

// DecodeHex sets s to the decoding of the hex-encoded canonical scalar h.
func (s *Scalar) DecodeHex(h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return fmt.Errorf("scalar DecodeHex: %w", err)
	}

	decoded, err := DecodeScalar(b)
	if err != nil {
		return fmt.Errorf("scalar DecodeHex: %w", err)
	}

	*s = *decoded

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler, returning s's canonical
// 56-byte encoding.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	decoded, err := DecodeScalar(data)
	if err != nil {
		return fmt.Errorf("scalar UnmarshalBinary: %w", err)
	}

	*s = *decoded

	return nil
}

// MarshalJSON implements json.Marshaler, encoding s as a quoted hex string.
func (s *Scalar) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.Hex() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	var h string
	if err := json.Unmarshal(data, &h); err != nil {
		return fmt.Errorf("scalar UnmarshalJSON: %w", err)
	}

	return s.DecodeHex(h)
}

// HashToScalar deterministically derives a scalar from data under the given
// domain-separation tag, e.g. to turn a transcript into a signature
// challenge or an OPRF-style blinding factor. It expands data through
// xof.Shake256 (the package's default XOF collaborator) to twice ScalarSize
// bytes, then reduces mod q via DecodeScalarWide so the result carries no
// modular bias, mirroring Random's own wide-decode contract.
func HashToScalar(data, dst []byte) *Scalar {
	x := xof.NewShake256()
	wide := x.Hash(2*ScalarSize, data, dst)

	return DecodeScalarWide(wide)
}
