// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ed448

import "errors"

var (
	// ErrInvalidScalarEncoding is returned when a byte string does not
	// represent a canonical scalar (length != 56, or value >= q).
	ErrInvalidScalarEncoding = errors.New("ed448: invalid scalar encoding")

	// ErrInvalidPointEncoding is returned when a byte string does not
	// represent a canonical, valid group element encoding.
	ErrInvalidPointEncoding = errors.New("ed448: invalid point encoding")

	// ErrHintMismatch is returned by InvertElligatorNonuniform when no
	// preimage consistent with the given hint exists.
	ErrHintMismatch = errors.New("ed448: no preimage for the given hint")
)
