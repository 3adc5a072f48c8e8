// Package elligator implements Elligator-2-style hash-to-curve for
// Ed448-Goldilocks and its (partial) inverse, mapping a 56-byte field
// element into a curve point and, given a point and a 4-bit hint describing
// which branch the forward map took, recovering a preimage.
//
// The forward map is grounded on group/decaf448/decaf.go's mapFunc, itself
// RFC 9380 Appendix C's "Hashing to decaf448" one-way map specialized to
// this package's a = -1, d = -39081 curve. The inverse is grounded on
// original_source/src/decaf_fast.c's invert_elligator_nonuniform, adapted
// from decaf255's p ≡ 5 (mod 8) field (which needs an extra SQRT_MINUS_ONE
// isogeny step) to Ed448's p ≡ 3 (mod 4) field, where inv_sqrt already
// yields a direct square root and no isogeny correction is required.
package elligator

import (
	"github.com/bytemare/ed448/internal/curve"
	"github.com/bytemare/ed448/internal/field"
)

// Size is the length in bytes of a non-uniform hash-to-curve input.
const Size = field.Size

// UniformSize is the length in bytes of a uniform hash-to-curve input,
// twice Size, following from_hash_uniform's definition as the sum of two
// independent non-uniform maps.
const UniformSize = 2 * Size

func ctAbs(z, x *field.Elt) {
	var neg field.Elt
	field.Neg(&neg, x)
	*z = *x
	field.Cmov(z, &neg, uint(field.Parity(x)))
}

// mapToCurve implements the non-uniform Elligator map on a single field
// element, returning the image point and the 2-bit branch selector
// (isQR, sign of t) needed to invert it.
func mapToCurve(t *field.Elt) (p curve.Point, isQR int, signBit int) {
	one := field.One()

	var r, u0, u1, u2, v, tv, sgn, s field.Elt
	var w0, w1, w2, w3 field.Elt

	field.Square(&r, t)
	field.Neg(&r, &r) // r = -t^2

	field.Sub(&u0, &r, &one)
	field.Mul(&u0, &u0, &curve.D) // u0 = d*(r-1)

	field.Add(&u1, &u0, &one)
	field.Sub(&u0, &u0, &r)
	field.Mul(&u1, &u1, &u0) // u1 = (u0+1)*(u0-r)

	field.Add(&u2, &r, &one)
	field.Mul(&u2, &u2, &u1) // u2 = (r+1)*u1

	isQR = field.InvSqrt(&v, &curve.AMinusTwoD, &u2)
	field.Mul(&tv, t, &v)
	field.Cmov(&v, &tv, uint(1-isQR))

	field.Neg(&sgn, &one)
	field.Cmov(&sgn, &one, uint(isQR))

	field.Add(&s, &r, &one)
	field.Mul(&s, &s, &v) // s = v*(r+1)

	ctAbs(&w0, &s)
	field.Add(&w0, &w0, &w0) // w0 = 2*|s|

	field.Square(&w1, &s)
	field.Sub(&w2, &w1, &one) // w2 = s^2 - 1
	field.Add(&w1, &w1, &one) // w1 = s^2 + 1

	field.Sub(&w3, &r, &one)
	field.Mul(&w3, &w3, &s)
	field.Mul(&w3, &w3, &v)
	field.Mul(&w3, &w3, &curve.AMinusTwoD)
	field.Add(&w3, &w3, &sgn) // w3 = v*s*(r-1)*aMinusTwoD + sgn

	field.Mul(&p.X, &w0, &w3)
	field.Mul(&p.Y, &w2, &w1)
	field.Mul(&p.Z, &w1, &w3)
	field.Mul(&p.T, &w0, &w2)

	signBit = field.Parity(t)
	return p, isQR, signBit
}

// FromHashNonuniform implements from_hash_nonuniform: map a 56-byte string
// into a curve point, returning a 4-bit hint recording which branch of the
// map was taken. Only the low 2 bits (isQR, sign of the input) are
// meaningful for this curve's p ≡ 3 (mod 4) field; the top 2 bits are
// reserved (always zero) for shape-compatibility with hint encodings used
// by curves that need the extra isogeny branch.
func FromHashNonuniform(b []byte) (curve.Point, byte) {
	var t field.Elt
	field.Decode(&t, b)

	p, isQR, signBit := mapToCurve(&t)
	hint := byte(isQR&1) | byte((signBit&1)<<1)
	return p, hint
}

// FromHashUniform implements from_hash_uniform: sum the non-uniform map of
// each half of a 112-byte string, producing a result indifferentiable from
// a random oracle. The combined hint packs both halves' 2-bit hints into a
// single byte (low nibble: first half, high nibble: second half).
func FromHashUniform(b []byte) (curve.Point, byte) {
	p0, h0 := FromHashNonuniform(b[:Size])
	p1, h1 := FromHashNonuniform(b[Size:UniformSize])
	var sum curve.Point
	curve.Add(&sum, &p0, &p1)
	return sum, h0 | (h1 << 4)
}

// InvertElligatorNonuniform attempts to recover a 56-byte preimage t such
// that FromHashNonuniform(t) == (P, hint). It returns ok = false if no
// preimage consistent with hint exists (P is not in the image of the map
// restricted to that branch, or P is outside the map's domain entirely).
//
// Grounded on decaf_fast.c's invert_elligator_nonuniform; the isogeny
// correction present there (needed for decaf255's p ≡ 5 (mod 8) field) is
// dropped since p448 is p ≡ 3 (mod 4) and field.InvSqrt already returns a
// direct square root with no further twist.
func InvertElligatorNonuniform(p *curve.Point, hint byte) ([]byte, bool) {
	sgnS := hint & 1
	sgnTOverS := (hint >> 1) & 1

	var a, b, c, d field.Elt
	field.Mul(&a, &p.Y, &curve.AMinusD)
	field.Mul(&c, &a, &p.T)
	field.Mul(&a, &p.X, &p.Z)
	field.Sub(&d, &c, &a) // d = aMinusD*y*t - x*z

	field.Add(&a, &p.Z, &p.Y)
	field.Sub(&b, &p.Z, &p.Y)
	field.Mul(&c, &b, &a) // c = (z-y)(z+y)

	var negD field.Elt
	field.Neg(&negD, &curve.D)
	field.Mul(&b, &c, &negD) // b = -d*c

	one := field.One()
	isQR := field.InvSqrt(&a, &one, &b) // a = sqrt(1/b)
	if isQR == 0 {
		return nil, false
	}

	field.Mul(&b, &a, &negD)
	field.Mul(&c, &b, &a) // c = -d*a^2

	field.Mul(&a, &c, &d)
	field.Add(&d, &b, &b)
	field.Mul(&c, &d, &p.Z)

	negate := (sgnTOverS ^ (1 - uint8(field.Parity(&c)))) & 1
	field.CondNeg(&b, uint(negate))
	field.CondNeg(&c, uint(negate))

	field.Mul(&d, &b, &p.Y)
	field.Add(&a, &a, &d)
	field.CondNeg(&a, uint((uint8(field.Parity(&a))^sgnS)&1))

	// a now holds the recovered preimage candidate t (up to the forward
	// map's own sign convention). Verify it actually maps back to p under
	// the recorded hint before reporting success.
	t := a
	q, isQRCheck, signCheck := mapToCurve(&t)
	gotHint := byte(isQRCheck&1) | byte((signCheck&1)<<1)
	if gotHint != hint&0x3 || !curve.Equal(&q, p) {
		return nil, false
	}

	out := make([]byte, Size)
	field.Encode(out, &t)
	return out, true
}
