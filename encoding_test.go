// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ed448

import (
	"testing"

	"github.com/bytemare/ed448/encoding"
)

func TestPointEncodingRoundTrip(t *testing.T) {
	p := Base().Mult(NewScalar().Random())

	for _, enc := range []encoding.Encoding{encoding.JSON, encoding.Gob, encoding.MessagePack} {
		enc := enc
		t.Run(enc.String(), func(t *testing.T) {
			data, err := enc.Encode(p)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}

			var decoded Point
			if _, err := enc.Decode(data, &decoded); err != nil {
				t.Fatalf("decode: %v", err)
			}

			if !decoded.Equal(p) {
				t.Fatal("round trip did not preserve the point")
			}
		})
	}
}

func TestScalarEncodingRoundTrip(t *testing.T) {
	s := NewScalar().Random()

	for _, enc := range []encoding.Encoding{encoding.JSON, encoding.Gob, encoding.MessagePack} {
		enc := enc
		t.Run(enc.String(), func(t *testing.T) {
			data, err := enc.Encode(s)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}

			var decoded Scalar
			if _, err := enc.Decode(data, &decoded); err != nil {
				t.Fatalf("decode: %v", err)
			}

			if !decoded.Equal(s) {
				t.Fatal("round trip did not preserve the scalar")
			}
		})
	}
}

func TestPointHexRoundTrip(t *testing.T) {
	p := Base()

	var decoded Point
	if err := decoded.DecodeHex(p.Hex()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !decoded.Equal(p) {
		t.Fatal("hex round trip did not preserve the point")
	}
}
