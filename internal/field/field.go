// Package field implements arithmetic in GF(p), p = 2^448 - 2^224 - 1, the
// base field of the Ed448-Goldilocks curve.
//
// Elements are held in radix-2^56, eight-limb form (56 significant bits per
// uint64 word). The representation is not required to stay canonical between
// operations: limbs may carry a few extra bits ("weak" form) until
// StrongReduce is called, the same latitude the original C implementation
// gives itself to avoid a full carry chain after every add or sub.
package field

import (
	"crypto/subtle"
	"encoding/binary"
	"math/bits"
)

// Size is the length in bytes of a canonical field element encoding.
const Size = 56

const limbMask = (uint64(1) << 56) - 1

// Elt is an element of GF(p) held as 8 limbs of 56 bits each, least
// significant limb first.
type Elt [8]uint64

// Zero returns the additive identity.
func Zero() Elt { return Elt{} }

// One returns the multiplicative identity.
func One() Elt { return Elt{1} }

// weakReduce folds the top bits of every limb into the following limb, and
// folds the overflow of the top limb back in twice, once at position 0 and
// once at position 4, reflecting 2^448 = 2^224 + 1 (mod p). Limbs afterwards
// fit in 56 bits plus a couple of guard bits, not necessarily canonical.
func weakReduce(a *Elt) {
	var carry uint64
	for i := 0; i < 8; i++ {
		a[i] += carry
		carry = a[i] >> 56
		a[i] &= limbMask
	}
	a[0] += carry
	a[4] += carry
}

// StrongReduce canonicalizes a in place to the range [0, p).
func StrongReduce(a *Elt) {
	weakReduce(a)

	// a < 2*p at this point. Subtract p, then add it back if that
	// underflowed, using the borrow as a constant-time mask.
	var b Elt
	var borrow uint64
	for i := 0; i < 8; i++ {
		sub := a[i] - b.pLimb(i) - borrow
		borrow = (sub >> 63) & 1
		b[i] = sub & limbMask
	}
	mask := uint64(0) - borrow // all ones if we underflowed

	var back Elt
	var carry uint64
	for i := 0; i < 8; i++ {
		add := b[i] + (back.pLimb(i) & mask) + carry
		carry = add >> 56
		a[i] = add & limbMask
	}
}

// pLimb returns limb i of p = 2^448 - 2^224 - 1 in radix-2^56 form.
// p's limbs are all 2^56-1 except limb 4 (bit 224), which is 2^56-2.
func (Elt) pLimb(i int) uint64 {
	if i == 4 {
		return limbMask - 1
	}
	return limbMask
}

// Add computes z = x + y mod p.
func Add(z, x, y *Elt) {
	for i := 0; i < 8; i++ {
		z[i] = x[i] + y[i]
	}
	weakReduce(z)
}

// Sub computes z = x - y mod p. y may carry extra bits; the double-p bias
// guarantees the subtraction never underflows a limb before reduction.
func Sub(z, x, y *Elt) {
	var bias Elt
	for i := range bias {
		bias[i] = 2 * limbMask
	}
	bias[4] = 2 * (limbMask - 1)
	for i := 0; i < 8; i++ {
		z[i] = x[i] + bias[i] - y[i]
	}
	weakReduce(z)
}

// Neg computes z = -x mod p.
func Neg(z, x *Elt) {
	var zero Elt
	Sub(z, &zero, x)
}

// Cmov sets x = y if n == 1, leaves x unchanged if n == 0.
func Cmov(x, y *Elt, n uint) {
	mask := uint64(0) - uint64(n&1)
	for i := range x {
		x[i] ^= mask & (x[i] ^ y[i])
	}
}

// Cswap exchanges x and y if n == 1.
func Cswap(x, y *Elt, n uint) {
	mask := uint64(0) - uint64(n&1)
	for i := range x {
		t := mask & (x[i] ^ y[i])
		x[i] ^= t
		y[i] ^= t
	}
}

// CondNeg negates x in place if n == 1.
func CondNeg(x *Elt, n uint) {
	var neg Elt
	Neg(&neg, x)
	Cmov(x, &neg, n)
}

// mulLimbs performs a schoolbook 8x8-limb multiply into a 16-limb wide
// product in base 2^56, then folds the high half into the low half
// following 2^448 = 2^224 + 1 (mod p): a wide limb at index k >= 8 is added
// into limb (k-8) and limb (k-4). This is the portable equivalent of the
// Karatsuba-split routine in the original C source; it trades its
// carry-save bookkeeping for plain 64x64->128 bit products via math/bits,
// which is clearer in Go at the cost of a few more multiplications.
func mulLimbs(z *Elt, x, y *Elt) {
	var lo, hi [16]uint64 // column k holds lo[k] + hi[k]*2^64

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			h, l := bits.Mul64(x[i], y[j])
			var carry uint64
			lo[i+j], carry = bits.Add64(lo[i+j], l, 0)
			hi[i+j] += h + carry
		}
	}

	// Normalize each base-2^64 column into a 56-bit limb, propagating the
	// remainder (itself up to ~64 bits) into the next column.
	var wide [18]uint64
	var carryLo, carryHi uint64
	for k := 0; k < 16; k++ {
		s0, c := bits.Add64(lo[k], carryLo, 0)
		s1 := hi[k] + carryHi + c
		wide[k] = s0 & limbMask
		carryLo = (s0 >> 56) | (s1 << 8)
		carryHi = s1 >> 56
	}
	wide[16] = carryLo & limbMask
	wide[17] = (carryLo >> 56) | (carryHi << 8)

	// Fold wide limbs at index k>=8 down via 2^(56k) = 2^(56(k-4)) +
	// 2^(56(k-8)) (mod p), processing from the top so that a fold target
	// which itself still needs folding (k-4 >= 8, for k >= 12) is settled
	// before it is consumed.
	for k := 17; k >= 8; k-- {
		wide[k-8] += wide[k]
		wide[k-4] += wide[k]
	}

	var folded Elt
	copy(folded[:], wide[:8])

	*z = folded
	weakReduce(z)
}

// Mul computes z = x*y mod p.
func Mul(z, x, y *Elt) { mulLimbs(z, x, y) }

// Square computes z = x^2 mod p.
func Square(z, x *Elt) { mulLimbs(z, x, x) }

// Mulw computes z = x*w mod p for a small (< 2^28) constant w, grounded on
// the original C source's p448_mulw helper used for multiplying by curve
// constants such as the twisted-Edwards "a" coefficient.
func Mulw(z, x *Elt, w uint32) {
	var carry uint64
	for i := 0; i < 8; i++ {
		hi, lo := bits.Mul64(x[i], uint64(w))
		var c uint64
		lo, c = bits.Add64(lo, carry, 0)
		hi += c
		z[i] = lo & limbMask
		carry = (lo >> 56) | (hi << 8)
	}
	z[0] += carry
	z[4] += carry
	weakReduce(z)
}

// IsZero returns 1 if x == 0 mod p, else 0.
func IsZero(x *Elt) int {
	c := *x
	StrongReduce(&c)
	var buf [Size]byte
	Encode(buf[:], &c)
	var zero [Size]byte
	return subtle.ConstantTimeCompare(buf[:], zero[:])
}

// Equal returns 1 if x == y mod p, else 0.
func Equal(x, y *Elt) int {
	var d Elt
	Sub(&d, x, y)
	return IsZero(&d)
}

// Parity returns the least significant bit of the canonical representative
// of x, used to pick a sign convention when decoding square roots.
func Parity(x *Elt) int {
	c := *x
	StrongReduce(&c)
	return int(c[0] & 1)
}

// Encode writes the canonical little-endian byte encoding of x into b,
// which must be Size bytes long.
func Encode(b []byte, x *Elt) {
	c := *x
	StrongReduce(&c)
	var out [Size]byte
	acc := uint64(0)
	accBits := uint(0)
	pos := 0
	for i := 0; i < 8; i++ {
		acc |= c[i] << accBits
		accBits += 56
		for accBits >= 8 {
			out[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos++
		}
	}
	copy(b, out[:])
}

// Decode parses a little-endian byte encoding into x. The input need not be
// canonical; callers that require canonicality should StrongReduce and
// compare against Encode's output, per the external byte-format contract.
func Decode(x *Elt, b []byte) {
	var buf [Size]byte
	copy(buf[:], b)
	acc := uint64(0)
	accBits := uint(0)
	pos := 0
	for i := 0; i < 8; i++ {
		for accBits < 56 && pos < Size {
			acc |= uint64(buf[pos]) << accBits
			accBits += 8
			pos++
		}
		x[i] = acc & limbMask
		acc >>= 56
		accBits -= 56
	}
}

// Uint64 reads a little-endian uint64 from b, used by the wide scalar and
// hash-expansion decoders.
func Uint64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

// powPminus3div4 computes z = x^((p-3)/4) mod p via a fixed addition chain.
// The chain shape (5/11/26/53/110/223 squaring runs) mirrors the one used
// for Ed448's field in the examples; it is the workhorse behind InvSqrt and
// Inv below, since (p-3)/4 is the exponent that produces a square root of
// x/y up to a quadratic-residue ambiguity resolved by the caller.
func powPminus3div4(z, x *Elt) {
	var t, x0, x1 Elt
	Square(&t, x)
	Mul(&t, &t, x)
	Square(&x0, &t)
	Mul(&x0, &x0, x)
	Square(&t, &x0)
	for i := 0; i < 2; i++ {
		Square(&t, &t)
	}
	Mul(&t, &t, &x0)
	Square(&x1, &t)
	for i := 0; i < 5; i++ {
		Square(&x1, &x1)
	}
	Mul(&x1, &x1, &t)
	Square(&t, &x1)
	for i := 0; i < 11; i++ {
		Square(&t, &t)
	}
	Mul(&t, &t, &x1)
	for i := 0; i < 3; i++ {
		Square(&t, &t)
	}
	Mul(&t, &t, &x0)
	Square(&x1, &t)
	for i := 0; i < 26; i++ {
		Square(&x1, &x1)
	}
	Mul(&x1, &x1, &t)
	Square(&t, &x1)
	for i := 0; i < 53; i++ {
		Square(&t, &t)
	}
	Mul(&t, &t, &x1)
	for i := 0; i < 3; i++ {
		Square(&t, &t)
	}
	Mul(&t, &t, &x0)
	Square(&x1, &t)
	for i := 0; i < 110; i++ {
		Square(&x1, &x1)
	}
	Mul(&x1, &x1, &t)
	Square(&t, &x1)
	Mul(&t, &t, x)
	for i := 0; i < 223; i++ {
		Square(&t, &t)
	}
	Mul(z, &t, &x1)
}

// InvSqrt computes z = sqrt(x/y) when x/y is a quadratic residue, returning
// isQR = 1. Otherwise z = sqrt(-x/y) and isQR = 0, following the same
// convention as the Decaf encode/decode routines that call it.
func InvSqrt(z, x, y *Elt) (isQR int) {
	var t0, t1 Elt
	Mul(&t0, x, y)
	Square(&t1, y)
	Mul(&t1, &t0, &t1)
	powPminus3div4(z, &t1)
	Mul(z, z, &t0)

	Square(&t0, z)
	Mul(&t0, &t0, y)
	Sub(&t0, &t0, x)
	return IsZero(&t0)
}

// Inverse computes z = 1/x mod p, or z = 0 if x == 0.
func Inverse(z, x *Elt) {
	var t Elt
	powPminus3div4(&t, x)
	Square(&t, &t)
	Square(&t, &t)
	Mul(z, &t, x)
}
