// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ed448

import "testing"

func TestScalarZeroOne(t *testing.T) {
	zero := NewScalar().Zero()
	if !zero.IsZero() {
		t.Fatal("Zero() is not zero")
	}

	one := NewScalar().One()
	if one.IsZero() {
		t.Fatal("One() reported as zero")
	}
}

func TestScalarAddSubRoundTrip(t *testing.T) {
	a := NewScalar().Random()
	b := NewScalar().Random()

	sum := a.Add(b)
	back := sum.Sub(b)

	if !back.Equal(a) {
		t.Fatal("(a+b)-b != a")
	}
}

func TestScalarNegate(t *testing.T) {
	a := NewScalar().Random()
	sum := a.Add(a.Negate())

	if !sum.IsZero() {
		t.Fatal("a + (-a) != 0")
	}
}

func TestScalarInvert(t *testing.T) {
	a := NewScalar().Random()
	if a.IsZero() {
		t.Skip("unlucky zero draw")
	}

	prod := a.Mult(a.Invert())
	one := NewScalar().One()

	if !prod.Equal(one) {
		t.Fatal("a * a^-1 != 1")
	}
}

func TestScalarEncodeDecodeRoundTrip(t *testing.T) {
	a := NewScalar().Random()

	decoded, err := DecodeScalar(a.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !decoded.Equal(a) {
		t.Fatal("DecodeScalar(a.Bytes()) != a")
	}
}

func TestScalarDecodeRejectsBadLength(t *testing.T) {
	if _, err := DecodeScalar(make([]byte, ScalarSize-1)); err != ErrInvalidScalarEncoding {
		t.Fatal("expected ErrInvalidScalarEncoding for short input")
	}
}

func TestScalarDecodeRejectsNonCanonical(t *testing.T) {
	buf := make([]byte, ScalarSize)
	for i := range buf {
		buf[i] = 0xff
	}

	if _, err := DecodeScalar(buf); err != ErrInvalidScalarEncoding {
		t.Fatal("expected ErrInvalidScalarEncoding for an encoding >= q")
	}
}

func TestHashToScalarIsDeterministic(t *testing.T) {
	data := []byte("transcript")
	dst := []byte("ed448-test-HashToScalar")

	a := HashToScalar(data, dst)
	b := HashToScalar(data, dst)

	if !a.Equal(b) {
		t.Fatal("HashToScalar is not deterministic for the same input")
	}

	c := HashToScalar([]byte("other transcript"), dst)
	if a.Equal(c) {
		t.Fatal("HashToScalar collided on different inputs")
	}
}

func TestScalarCopyIsIndependent(t *testing.T) {
	a := NewScalar().Random()
	b := a.Copy()

	if !a.Equal(b) {
		t.Fatal("copy does not equal original")
	}

	b.Zeroize()
	if !b.IsZero() {
		t.Fatal("Zeroize did not zero the copy")
	}
	if a.IsZero() {
		t.Fatal("Zeroize on the copy should not affect the original")
	}
}
