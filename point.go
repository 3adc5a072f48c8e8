// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ed448

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/bytemare/ed448/hash"
	"github.com/bytemare/ed448/internal/curve"
	"github.com/bytemare/ed448/internal/elligator"
	"github.com/bytemare/ed448/internal/field"
	"github.com/bytemare/ed448/internal/scalarmul"
	"github.com/bytemare/ed448/xof"
)

// PointSize is the length in bytes of a canonical group element encoding.
const PointSize = field.Size

// Point is an element of the prime-order group, encoded and decoded per the
// canonical (Decaf-style) encoding of §4.4.
type Point struct {
	p curve.Point
}

// NewIdentity returns the group's identity element.
func NewIdentity() *Point {
	return &Point{curve.Identity()}
}

// Base returns the group's conventional generator.
func Base() *Point {
	return &Point{curve.Generator()}
}

// comb is the precomputed fixed-base table for the generator, built once at
// package init as the (n, t, s) = (3, 5, 30) comb described in §4.6 and
// spec.md's own worked example (450 >= 446 bits). Any number of concurrent
// BaseMult calls may share it without locking; it is never mutated after
// init.
var comb scalarmul.Table

func init() {
	gen := curve.Generator()
	comb = scalarmul.BuildTable(&gen, 3, 5, 30)
}

// Add returns p + q, leaving both operands unchanged.
func (p *Point) Add(q *Point) *Point {
	var r Point
	curve.Add(&r.p, &p.p, &q.p)

	return &r
}

// Sub returns p - q, leaving both operands unchanged.
func (p *Point) Sub(q *Point) *Point {
	var neg curve.Point
	curve.Negate(&neg, &q.p)

	var r Point
	curve.Add(&r.p, &p.p, &neg)

	return &r
}

// Double returns p + p.
func (p *Point) Double() *Point {
	var r Point
	curve.Double(&r.p, &p.p)

	return &r
}

// Negate returns -p.
func (p *Point) Negate() *Point {
	var r Point
	curve.Negate(&r.p, &p.p)

	return &r
}

// Mult returns the scalar multiplication scalar*p, via the constant-time
// variable-base ladder of §4.6.
func (p *Point) Mult(scalar *Scalar) *Point {
	return &Point{scalarmul.ScalarMult(&scalar.s, &p.p)}
}

// BaseMult returns scalar*Base(), via the constant-time fixed-base comb of
// §4.6, using the package's precomputed generator table.
func BaseMult(scalar *Scalar) *Point {
	return &Point{scalarmul.ApplyFixedBase(&comb, &scalar.s)}
}

// DoubleBaseMult returns s1*p1 + s2*p2 in variable time, for public
// verification only (base_double_scalarmul_non_secret, §4.6).
func DoubleBaseMult(s1 *Scalar, p1 *Point, s2 *Scalar, p2 *Point) *Point {
	return &Point{scalarmul.DoubleScalarMult(&s1.s, &p1.p, &s2.s, &p2.p)}
}

// Equal reports whether p and q represent the same group element.
func (p *Point) Equal(q *Point) bool {
	return curve.Equal(&p.p, &q.p)
}

// IsIdentity reports whether p is the group's identity element.
func (p *Point) IsIdentity() bool {
	id := curve.Identity()
	return curve.Equal(&p.p, &id)
}

// Copy returns a copy of p.
func (p *Point) Copy() *Point {
	r := *p
	return &r
}

// DecodePoint decodes a 56-byte canonical group element encoding per §4.4.
// Decoding the identity is rejected unless allowIdentity is true.
func DecodePoint(in []byte, allowIdentity bool) (*Point, error) {
	if len(in) != PointSize {
		return nil, ErrInvalidPointEncoding
	}

	var allow uint
	if allowIdentity {
		allow = 1
	}

	var np curve.Point
	if curve.Decode(&np, in, allow) != 1 {
		return nil, ErrInvalidPointEncoding
	}

	return &Point{np}, nil
}

// Bytes returns p's canonical 56-byte encoding.
func (p *Point) Bytes() []byte {
	buf := make([]byte, PointSize)
	curve.Encode(buf, &p.p)

	return buf
}

// FromHashNonuniform implements from_hash_nonuniform (§4.5): maps a 56-byte
// string into a group element, returning a hint byte describing which
// branch of the map was taken.
func FromHashNonuniform(in []byte) (*Point, byte, error) {
	if len(in) != elligator.Size {
		return nil, 0, ErrInvalidPointEncoding
	}

	p, hint := elligator.FromHashNonuniform(in)

	return &Point{p}, hint, nil
}

// FromHashUniform implements from_hash_uniform (§4.5): maps a 112-byte
// string into a group element, indifferentiable from a random oracle.
func FromHashUniform(in []byte) (*Point, byte, error) {
	if len(in) != elligator.UniformSize {
		return nil, 0, ErrInvalidPointEncoding
	}

	p, hint := elligator.FromHashUniform(in)

	return &Point{p}, hint, nil
}

// Hex returns p's canonical encoding as a hexadecimal string.
func (p *Point) Hex() string {
	return hex.EncodeToString(p.Bytes())
}

// DecodeHex sets p to the decoding of the hex-encoded canonical point h.
func (p *Point) DecodeHex(h string) error {
	b, err := hex.DecodeString(h)
	if err != nil {
		return fmt.Errorf("point DecodeHex: %w", err)
	}

	decoded, err := DecodePoint(b, true)
	if err != nil {
		return fmt.Errorf("point DecodeHex: %w", err)
	}

	*p = *decoded

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler, returning p's canonical
// 56-byte encoding.
func (p *Point) MarshalBinary() ([]byte, error) {
	return p.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Point) UnmarshalBinary(data []byte) error {
	decoded, err := DecodePoint(data, true)
	if err != nil {
		return fmt.Errorf("point UnmarshalBinary: %w", err)
	}

	*p = *decoded

	return nil
}

// MarshalJSON implements json.Marshaler, encoding p as a quoted hex string.
// Unlike a raw byte slice, a hex string round-trips through encoding/json
// without requiring the caller to base64-decode it by hand.
func (p *Point) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.Hex() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Point) UnmarshalJSON(data []byte) error {
	var h string
	if err := json.Unmarshal(data, &h); err != nil {
		return fmt.Errorf("point UnmarshalJSON: %w", err)
	}

	return p.DecodeHex(h)
}

// EncodeToGroup implements the RFC 9380 encode_to_curve contract: it expands
// data under the given domain-separation tag with expand_message_xmd/SHA-512
// into the 56 bytes from_hash_nonuniform needs, matching the
// "edwards448_XMD:SHA-512_ELL2_NU_" suite's message-expansion step. Distinct
// calls with the same (data, dst) always map to the same point; unlike
// HashToGroup, the output is not indifferentiable from a random oracle.
func EncodeToGroup(data, dst []byte) (*Point, byte, error) {
	expanded := xof.ExpandXMD(hash.SHA512, data, dst, elligator.Size)
	return FromHashNonuniform(expanded)
}

// HashToGroup implements the RFC 9380 hash_to_curve contract: it expands
// data under the given domain-separation tag with expand_message_xmd/SHA-512
// into the 112 bytes from_hash_uniform needs, matching the
// "edwards448_XMD:SHA-512_ELL2_RO_" suite's message-expansion step. The
// result is indifferentiable from a random oracle, suitable for mapping
// arbitrary application data to a group element without a known discrete
// log.
func HashToGroup(data, dst []byte) (*Point, byte, error) {
	expanded := xof.ExpandXMD(hash.SHA512, data, dst, elligator.UniformSize)
	return FromHashUniform(expanded)
}

// InvertElligatorNonuniform implements invert_elligator_nonuniform (§4.5):
// attempts to recover a 56-byte preimage t such that
// FromHashNonuniform(t) == (p, hint).
func InvertElligatorNonuniform(p *Point, hint byte) ([]byte, error) {
	out, ok := elligator.InvertElligatorNonuniform(&p.p, hint)
	if !ok {
		return nil, ErrHintMismatch
	}

	return out, nil
}
