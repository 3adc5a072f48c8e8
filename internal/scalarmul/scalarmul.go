// Package scalarmul implements the three scalar-multiplication routines
// described in §4.6: a constant-time variable-base windowed multiplier, a
// constant-time fixed-base signed-digit comb multiplier (Lim-Lee/Gray-code
// construction), and a variable-time double-scalar wNAF multiplier used
// only for public verification.
//
// The variable-base routine's signed 4-bit-window recoding and odd-multiple
// table shape are grounded on group/twistedEdwards448/curve.go's ScalarMult
// (itself the corpus's port of a CIRCL-style windowed ladder); the comb
// construction is ported from original_source/scalarmul.c's
// precompute_for_combs/edwards_comb, including its literal (n, t, s) =
// (3, 5, 30) pre-add constants, (2^450 - 1) mod q and that value plus q.
package scalarmul

import (
	"crypto/subtle"
	"math/bits"

	"github.com/bytemare/ed448/internal/curve"
	"github.com/bytemare/ed448/internal/field"
	"github.com/bytemare/ed448/internal/scalarfield"
)

// --- variable-base, constant-time windowed multiplication ---

func subYDiv16(x *[7]uint64, y int64) {
	s := uint64(y >> 63)
	x0, b0 := bits.Sub64(x[0], uint64(y), 0)
	x1, b1 := bits.Sub64(x[1], s, b0)
	x2, b2 := bits.Sub64(x[2], s, b1)
	x3, b3 := bits.Sub64(x[3], s, b2)
	x4, b4 := bits.Sub64(x[4], s, b3)
	x5, b5 := bits.Sub64(x[5], s, b4)
	x6, _ := bits.Sub64(x[6], s, b5)
	x[0] = (x0 >> 4) | (x1 << 60)
	x[1] = (x1 >> 4) | (x2 << 60)
	x[2] = (x2 >> 4) | (x3 << 60)
	x[3] = (x3 >> 4) | (x4 << 60)
	x[4] = (x4 >> 4) | (x5 << 60)
	x[5] = (x5 >> 4) | (x6 << 60)
	x[6] = x6 >> 4
}

// recodeWindow4 computes 113 signed digits in [-16, 15] such that
// sum(d[i] * 16^i) == k, consuming k in place. k must be odd, which the
// caller guarantees via the even/order-complement adjustment below.
func recodeWindow4(d *[113]int8, k *[7]uint64) {
	for i := 0; i < 112; i++ {
		d[i] = int8((k[0] & 0x1f) - 16)
		subYDiv16(k, int64(d[i]))
	}
	d[112] = int8(k[0])
}

func limbsIsZero(x *[7]uint64) uint {
	var acc uint64
	for _, l := range x {
		acc |= l
	}
	if acc == 0 {
		return 1
	}
	return 0
}

func cmovLimbs(x, y *[7]uint64, n uint) {
	mask := uint64(0) - uint64(n&1)
	for i := range x {
		x[i] ^= mask & (x[i] ^ y[i])
	}
}

func subLimbs(x, y *[7]uint64) [7]uint64 {
	var r [7]uint64
	var borrow uint64
	for i := 0; i < 7; i++ {
		r[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return r
}

// oddMultiplesPNiels computes P, 3P, 5P, ..., 15P in PNiels form, the table
// consulted by one window of ScalarMult.
func oddMultiplesPNiels(p *curve.Point) [8]curve.PNiels {
	var table [8]curve.PNiels
	var twoP curve.Point
	curve.Double(&twoP, p)
	twoPNiels := twoP.ToPNiels()

	acc := *p
	table[0] = acc.ToPNiels()
	for i := 1; i < 8; i++ {
		curve.AddPNiels(&acc, &twoPNiels)
		table[i] = acc.ToPNiels()
	}
	return table
}

// ScalarMult computes k*P in constant time, using a signed 4-bit windowed
// ladder over a table of 8 precomputed odd multiples of P.
func ScalarMult(k *scalarfield.Scalar, p *curve.Point) curve.Point {
	kLimbs := scalarfield.Limbs(k)
	order := scalarfield.QLimbs()

	isZero := limbsIsZero(&kLimbs)
	cmovLimbs(&kLimbs, &order, isZero)

	isEven := uint(1 - (kLimbs[0] & 1))
	negK := subLimbs(&order, &kLimbs)
	cmovLimbs(&kLimbs, &negK, isEven)

	var d [113]int8
	recodeWindow4(&d, &kLimbs)

	table := oddMultiplesPNiels(p)
	q := curve.Identity()
	for i := 112; i >= 0; i-- {
		curve.Double(&q, &q)
		curve.Double(&q, &q)
		curve.Double(&q, &q)
		curve.Double(&q, &q)

		digit := d[i]
		mask := digit >> 7
		absDigit := (digit ^ mask) - mask
		idx := int32((absDigit - 1) >> 1)
		sign := uint(mask & 1)

		var s curve.PNiels
		for j := range table {
			curve.CmovPNiels(&s, &table[j], uint(subtle.ConstantTimeEq(idx, int32(j))))
		}
		curve.CondNegatePNiels(&s, sign)
		curve.AddPNiels(&q, &s)
	}
	curve.CondNegate(&q, isEven)
	return q
}

// --- fixed-base, constant-time comb multiplication ---

// Table is a precomputed fixed-base comb table, built once against a fixed
// base point (the generator) and reused across every scalarmul_fixed_base
// call against that base.
type Table struct {
	N, T, S int
	Niels   [][]curve.Niels // Niels[comb][index], index in [0, 2^(T-1))
}

// combPrepAdd{Even,Odd} are the pre-add correction constants consumed by
// convertToSignedWindowForm, carried verbatim (little-endian 64-bit limbs)
// from original_source/scalarmul.c's edwards_comb, which ships them
// precomputed for exactly (n, t, s) = (3, 5, 30) (the "450 bits" comment in
// that source). combPrepAddOdd is (2^450 - 1) mod q, which is odd, and
// combPrepAddEven is combPrepAddOdd + q, which is even, so the sum with a
// scalar of the same parity is always even.
var combPrepAddEven = [7]uint64{
	0xebec9967f5d3f5c2, 0x0aa09b49b16c9a02, 0x7f6126aec172cd8e, 0x00000007b027e54d,
	0x0000000000000000, 0x0000000000000000, 0x4000000000000000,
}

var combPrepAddOdd = [7]uint64{
	0xc873d6d54a7bb0cf, 0xe933d8d723a70aad, 0xbb124b65129c96fd, 0x00000008335dc163,
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
}

// convertToSignedWindowForm adds the even/odd correction term to scalar
// (selected in constant time by its parity) and shifts right by one bit,
// carrying the addition's overflow into the vacated top bit. The result is
// always even going in, so the shift loses no information, and edwards_comb
// reads it back out as signed t-bit digits.
func convertToSignedWindowForm(scalar *[7]uint64) [7]uint64 {
	odd := scalar[0] & 1
	oddMask := uint64(0) - odd

	var out [7]uint64
	var carry uint64
	for i := 0; i < 7; i++ {
		add := combPrepAddEven[i] ^ (oddMask & (combPrepAddEven[i] ^ combPrepAddOdd[i]))
		s, c := bits.Add64(scalar[i], add, carry)
		out[i], carry = s, c
	}
	for i := 0; i < 6; i++ {
		out[i] = (out[i] >> 1) | (out[i+1] << 63)
	}
	out[6] = (out[6] >> 1) | (carry << 63)
	return out
}

// BuildTable precomputes the comb table for base, following the Gray-code
// traversal of precompute_for_combs: n combs, t bits per digit, s the
// spacing between bit positions drawn into one digit. Table construction
// runs at init time for the fixed generator, so it normalizes every entry
// eagerly rather than batching the inversions the original C source
// performs with simultaneous_invert_p448.
func BuildTable(base *curve.Point, n, t, s int) Table {
	tbl := Table{N: n, T: t, S: s, Niels: make([][]curve.Niels, n)}
	half := 1 << (t - 1)

	working := *base
	for i := 0; i < n; i++ {
		tbl.Niels[i] = make([]curve.Niels, half)
		var start curve.Point
		var doubles []curve.PNiels
		if t > 1 {
			doubles = make([]curve.PNiels, t-1)
		}

		for j := 0; j < t; j++ {
			if j > 0 {
				workingPNiels := working.ToPNiels()
				curve.AddPNiels(&start, &workingPNiels)
			} else {
				start = working
			}

			if j == t-1 && i == n-1 {
				break
			}

			curve.Double(&working, &working)
			if j < t-1 {
				doubles[j] = working.ToPNiels()
			}
			for k := 0; k < s-1; k++ {
				curve.Double(&working, &working)
			}
		}

		for j := 0; ; j++ {
			gray := j ^ (j >> 1)
			idx := (((i + 1) << (t - 1)) - 1) ^ gray
			localIdx := idx - i*half

			norm := start
			curve.Normalize(&norm)
			tbl.Niels[i][localIdx] = norm.ToNiels()

			if j >= half-1 {
				break
			}
			delta := (j + 1) ^ ((j + 1) >> 1) ^ gray
			k := 0
			for ; delta > 1; k++ {
				delta >>= 1
			}

			if gray&(1<<uint(k)) != 0 {
				curve.AddPNiels(&start, &doubles[k])
			} else {
				neg := doubles[k]
				curve.CondNegatePNiels(&neg, 1)
				curve.AddPNiels(&start, &neg)
			}
		}
	}
	return tbl
}

var inv2 field.Elt

func init() {
	two := field.Elt{2}
	field.Inverse(&inv2, &two)
}

// nielsToPoint converts a Niels-form entry to a standalone affine-normalized
// point, used to seed the accumulator on the very first addition of
// ApplyFixedBase (where "identity + niels" is just the niels point itself):
// x = (YplusX-YminusX)/2, y = (YplusX+YminusX)/2, Z = 1, T = x*y.
func nielsToPoint(n *curve.Niels) curve.Point {
	var p curve.Point
	field.Sub(&p.X, &n.YplusX, &n.YminusX)
	field.Mul(&p.X, &p.X, &inv2)
	field.Add(&p.Y, &n.YplusX, &n.YminusX)
	field.Mul(&p.Y, &p.Y, &inv2)
	p.Z = field.One()
	field.Mul(&p.T, &p.X, &p.Y)
	return p
}

// ApplyFixedBase computes k*table's base point in constant time, following
// edwards_comb: s rounds, each preceded by a doubling except the first
// (s-1 doublings total), with n table lookups and mixed additions per round.
func ApplyFixedBase(table *Table, k *scalarfield.Scalar) curve.Point {
	raw := scalarfield.Limbs(k)
	scalar2 := convertToSignedWindowForm(&raw)

	n, t, s := table.N, table.T, table.S
	half := 1 << (t - 1)

	var working curve.Point
	first := true
	for i := 0; i < s; i++ {
		if i > 0 {
			curve.Double(&working, &working)
		}
		for j := 0; j < n; j++ {
			tab := 0
			for kk := 0; kk < t; kk++ {
				bit := (s - 1 - i) + kk*s + j*(s*t)
				if bit < 7*64 {
					word := scalar2[bit/64]
					b := (word >> uint(bit%64)) & 1
					tab |= int(b) << uint(kk)
				}
			}
			invert := (tab >> uint(t-1)) - 1
			tab ^= invert
			tab &= half - 1

			var entry curve.Niels
			for idx := 0; idx < half; idx++ {
				curve.CmovNiels(&entry, &table.Niels[j][idx], uint(subtle.ConstantTimeEq(int32(tab), int32(idx))))
			}
			curve.CondNegateNiels(&entry, uint(invert&1))

			if first {
				working = nielsToPoint(&entry)
				first = false
			} else {
				curve.AddNiels(&working, &entry)
			}
		}
	}
	return working
}

// --- double-scalar, variable-time multiplication (public verification) ---

// wnafAddSigned adds a small signed value to the little-endian bignum k in
// place, using an extra guard word so the result never wraps: k is always
// non-negative (it is a residue mod q, possibly minus a digit smaller than
// its low bits), so a plain add or sub of the magnitude suffices.
func wnafAddSigned(k *[8]uint64, d int64) {
	if d >= 0 {
		adj := uint64(d)
		var carry uint64
		k[0], carry = bits.Add64(k[0], adj, 0)
		for j := 1; j < 8 && carry != 0; j++ {
			k[j], carry = bits.Add64(k[j], 0, carry)
		}
		return
	}
	adj := uint64(-d)
	var borrow uint64
	k[0], borrow = bits.Sub64(k[0], adj, 0)
	for j := 1; j < 8 && borrow != 0; j++ {
		k[j], borrow = bits.Sub64(k[j], 0, borrow)
	}
}

// wnafShiftRight1 shifts the little-endian bignum k right by one bit.
func wnafShiftRight1(k *[8]uint64) {
	var carry uint64
	for j := 7; j >= 0; j-- {
		newCarry := k[j] & 1
		k[j] = (k[j] >> 1) | (carry << 63)
		carry = newCarry
	}
}

// wnafIsZero reports whether the little-endian bignum k is zero.
func wnafIsZero(k *[8]uint64) bool {
	var acc uint64
	for _, l := range k {
		acc |= l
	}
	return acc == 0
}

// wnaf computes the width-w NAF (non-adjacent form) of a 448-bit scalar's
// canonical limbs: a little-endian stream of signed digits (zero, or odd and
// in (-2^(w-1), 2^(w-1))) such that sum(d[i] * 2^i) == the scalar, with no
// two nonzero digits adjacent. Grounded on the standard binary wNAF
// recoding used by variable-time double-scalar verification in Edwards-curve
// implementations throughout the ecosystem.
func wnaf(limbs [7]uint64, w uint) []int32 {
	var k [8]uint64
	copy(k[:7], limbs[:])

	width := int64(1) << w
	halfWidth := width >> 1

	var digits []int32
	for !wnafIsZero(&k) {
		if k[0]&1 == 1 {
			mod := int64(k[0] & uint64(width-1))
			if mod >= halfWidth {
				mod -= width
			}
			digits = append(digits, int32(mod))
			wnafAddSigned(&k, -mod)
		} else {
			digits = append(digits, 0)
		}
		wnafShiftRight1(&k)
	}
	return digits
}

// oddMultiples computes the n odd multiples P, 3P, ..., (2n-1)P, in
// variable time (acceptable: both scalars and both points are public in
// base_double_scalarmul_non_secret).
func oddMultiples(p *curve.Point, n int) []curve.Point {
	table := make([]curve.Point, n)
	table[0] = *p
	var twoP curve.Point
	curve.Double(&twoP, p)
	for i := 1; i < n; i++ {
		curve.Add(&table[i], &table[i-1], &twoP)
	}
	return table
}

// DoubleScalarMult computes s1*p1 + s2*p2 in variable time, for public
// verification only, using wNAF recoding (width 5 for p1, width 3 for p2),
// per base_double_scalarmul_non_secret.
func DoubleScalarMult(s1 *scalarfield.Scalar, p1 *curve.Point, s2 *scalarfield.Scalar, p2 *curve.Point) curve.Point {
	const w1, w2 = 5, 3
	d1 := wnaf(scalarfield.Limbs(s1), w1)
	d2 := wnaf(scalarfield.Limbs(s2), w2)

	tab1 := oddMultiples(p1, 1<<(w1-2))
	tab2 := oddMultiples(p2, 1<<(w2-2))

	n := len(d1)
	if len(d2) > n {
		n = len(d2)
	}
	for len(d1) < n {
		d1 = append(d1, 0)
	}
	for len(d2) < n {
		d2 = append(d2, 0)
	}

	q := curve.Identity()
	for i := n - 1; i >= 0; i-- {
		curve.Double(&q, &q)
		if d1[i] != 0 {
			idx := d1[i]
			neg := idx < 0
			if neg {
				idx = -idx
			}
			t := tab1[(idx-1)/2]
			if neg {
				curve.Negate(&t, &t)
			}
			curve.Add(&q, &q, &t)
		}
		if d2[i] != 0 {
			idx := d2[i]
			neg := idx < 0
			if neg {
				idx = -idx
			}
			t := tab2[(idx-1)/2]
			if neg {
				curve.Negate(&t, &t)
			}
			curve.Add(&q, &q, &t)
		}
	}
	return q
}
