// Package curve implements the twisted-Edwards curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2   (mod p)
//
// with d = -39082, the a = -1 curve 4-isogenous to Ed448-Goldilocks
// (x^2 + y^2 = 1 - 39081*x^2*y^2), over internal/field's prime field. Points are held in extended projective coordinates (X:Y:Z:T) with
// x = X/Z, y = Y/Z, x*y = T/Z, using the unified, complete addition law of
// Hisil-Wong-Carter-Dawson (the "a = -1" variant), the same formula shape
// used by the CIRCL-derived curve code in the reference corpus.
package curve

import "github.com/bytemare/ed448/internal/field"

// D is the twisted-Edwards curve parameter, -39082 mod p.
var D field.Elt

// genX, genY are the affine coordinates of the generator of the prime-order
// subgroup.
var genX, genY field.Elt

// Order is the number of points in the prime-order subgroup,
// 2^446 - 0x8335dc163bb124b65129c96fde933d8d723a70aadc873d6d54a7bb0d, in
// little-endian bytes.
var Order = [56]byte{
	0xf3, 0x44, 0x58, 0xab, 0x92, 0xc2, 0x78, 0x23,
	0x55, 0x8f, 0xc5, 0x8d, 0x72, 0xc2, 0x6c, 0x21,
	0x90, 0x36, 0xd6, 0xae, 0x49, 0xdb, 0x4e, 0xc4,
	0xe9, 0x23, 0xca, 0x7c, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x3f,
}

// AMinusD, SqrtMinusD and InvSqrtMinusD are the constants used by the
// prime-order-group encode/decode in §4.4, ported byte-for-byte from the
// CIRCL-derived decaf448 package in the reference corpus (group/decaf448/
// scalar.go). Their values are those of the untwisted Ed448 curve (a = 1,
// d = -39081), not of D above: AMinusD = 1 - d = 39082, AMinusTwoD =
// 1 - 2d = 78163, SqrtMinusD = sqrt(39081) and InvSqrtMinusD = 1/SqrtMinusD;
// the two square roots are carried as literals.
var (
	AMinusD       field.Elt
	AMinusTwoD    field.Elt
	SqrtMinusD    field.Elt
	InvSqrtMinusD field.Elt
)

func init() {
	var d39082 field.Elt
	d39082[0] = 39082
	field.Neg(&D, &d39082)

	field.Decode(&AMinusD, []byte{0xaa, 0x98})
	field.Decode(&AMinusTwoD, []byte{0x53, 0x31, 0x01})
	field.Decode(&SqrtMinusD, []byte{
		0x36, 0x27, 0x57, 0x45, 0x0f, 0xef, 0x42, 0x96,
		0x52, 0xce, 0x20, 0xaa, 0xf6, 0x7b, 0x33, 0x60,
		0xd2, 0xde, 0x6e, 0xfd, 0xf4, 0x66, 0x9a, 0x83,
		0xba, 0x14, 0x8c, 0x96, 0x80, 0xd7, 0xa2, 0x64,
		0x4b, 0xd5, 0xb8, 0xa5, 0xb8, 0xa7, 0xf1, 0xa1,
		0xa0, 0x6a, 0xa2, 0x2f, 0x72, 0x8d, 0xf6, 0x3b,
		0x68, 0xf7, 0x24, 0xeb, 0xfb, 0x62, 0xd9, 0x22,
	})
	field.Decode(&InvSqrtMinusD, []byte{
		0x2c, 0x68, 0x78, 0xb8, 0x5e, 0xbb, 0xaf, 0x53,
		0xf3, 0x94, 0x9e, 0xf1, 0x79, 0x24, 0xbb, 0xef,
		0x15, 0xba, 0x1f, 0xc2, 0xe2, 0x7e, 0x70, 0xbe,
		0x1a, 0x52, 0xa6, 0x28, 0xf1, 0x56, 0xba, 0xd6,
		0xa7, 0x27, 0x5b, 0x3a, 0x0c, 0x95, 0x90, 0x5a,
		0x07, 0xc8, 0xca, 0x0b, 0x5a, 0xe3, 0x2b, 0x90,
		0x57, 0xc0, 0x22, 0xe2, 0x52, 0x06, 0xf4, 0x6e,
	})

	field.Decode(&genX, []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x80, 0xfe, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
	})
	field.Decode(&genY, []byte{
		0x64, 0x4a, 0xdd, 0xdf, 0xb4, 0x79, 0x60, 0xc8,
		0xa1, 0x70, 0xb4, 0x3a, 0x1e, 0x0c, 0x9b, 0x19,
		0xe5, 0x48, 0x3f, 0xd7, 0x44, 0x18, 0x18, 0x14,
		0x14, 0x27, 0x45, 0x50, 0x2c, 0x24, 0xd5, 0x93,
		0xc3, 0x74, 0x4c, 0x50, 0x70, 0x43, 0x26, 0x05,
		0x08, 0x24, 0xca, 0x78, 0x30, 0xc1, 0x06, 0x8d,
		0xd4, 0x86, 0x42, 0xf0, 0x14, 0xde, 0x08, 0x85,
	})
}

// Point is a point on the curve in extended projective coordinates.
type Point struct {
	X, Y, Z, T field.Elt
}

// Identity returns the neutral element (0:1:1:0).
func Identity() Point {
	return Point{Y: field.One(), Z: field.One()}
}

// Generator returns the fixed base point of the prime-order subgroup.
func Generator() Point {
	var t field.Elt
	field.Mul(&t, &genX, &genY)
	return Point{X: genX, Y: genY, Z: field.One(), T: t}
}

// Niels holds a point in the "Niels" form (y-x, y+x, 2*d*x*y) used for
// mixed addition against affine-like precomputed table entries, the same
// auxiliary form used by the comb-based fixed-base multiplier.
type Niels struct {
	YminusX, YplusX, Dxy2 field.Elt
}

// PNiels holds a point as (Y-X, Y+X, Z, 2*d*T) in projective form, used for
// the variable-base windowed multiplier's odd-multiple tables.
type PNiels struct {
	YminusX, YplusX, Z, Dxy2 field.Elt
}

// ToNiels converts an affine-normalized point (Z == 1) to Niels form.
func (p *Point) ToNiels() Niels {
	var n Niels
	field.Sub(&n.YminusX, &p.Y, &p.X)
	field.Add(&n.YplusX, &p.Y, &p.X)
	field.Mul(&n.Dxy2, &p.T, &D)
	field.Add(&n.Dxy2, &n.Dxy2, &n.Dxy2)
	return n
}

// ToPNiels converts a projective point to PNiels form.
func (p *Point) ToPNiels() PNiels {
	var n PNiels
	field.Sub(&n.YminusX, &p.Y, &p.X)
	field.Add(&n.YplusX, &p.Y, &p.X)
	n.Z = p.Z
	field.Mul(&n.Dxy2, &p.T, &D)
	field.Add(&n.Dxy2, &n.Dxy2, &n.Dxy2)
	return n
}

// Add computes p = a + b using the complete unified addition formula for
// a = -1 twisted-Edwards curves (Hisil-Wong-Carter-Dawson).
func Add(p, a, b *Point) {
	var A, B, C, D2, E, F, G, H field.Elt
	field.Mul(&A, &a.X, &b.X)
	field.Mul(&B, &a.Y, &b.Y)
	field.Mul(&C, &a.T, &b.T)
	field.Mul(&C, &C, &D)
	field.Mul(&D2, &a.Z, &b.Z)

	var t0, t1 field.Elt
	field.Add(&t0, &a.X, &a.Y)
	field.Add(&t1, &b.X, &b.Y)
	field.Mul(&E, &t0, &t1)
	field.Sub(&E, &E, &A)
	field.Sub(&E, &E, &B)

	field.Sub(&F, &D2, &C)
	field.Add(&G, &D2, &C)
	field.Add(&H, &B, &A) // a = -1: H = B - a*A = B + A

	field.Mul(&p.X, &E, &F)
	field.Mul(&p.Y, &G, &H)
	field.Mul(&p.T, &E, &H)
	field.Mul(&p.Z, &F, &G)
}

// AddNiels adds a point in Niels form into a, in place (a += n), via
// mixed-addition madd-2008-hwcd-2 specialized to a = -1 (Z of the Niels
// operand is implicitly 1).
func AddNiels(a *Point, n *Niels) {
	var yMinusX, yPlusX, A, B, C, D2 field.Elt
	field.Sub(&yMinusX, &a.Y, &a.X)
	field.Add(&yPlusX, &a.Y, &a.X)
	field.Mul(&A, &yMinusX, &n.YminusX)
	field.Mul(&B, &yPlusX, &n.YplusX)
	field.Mul(&C, &a.T, &n.Dxy2)
	field.Add(&D2, &a.Z, &a.Z)

	var E, F, G, H field.Elt
	field.Sub(&E, &B, &A)
	field.Sub(&F, &D2, &C)
	field.Add(&G, &D2, &C)
	field.Add(&H, &B, &A)

	field.Mul(&a.X, &E, &F)
	field.Mul(&a.Y, &G, &H)
	field.Mul(&a.T, &E, &H)
	field.Mul(&a.Z, &F, &G)
}

// AddPNiels adds a point in PNiels form into a, in place (a += n).
func AddPNiels(a *Point, n *PNiels) {
	var yMinusX, yPlusX, A, B, C, ZZ field.Elt
	field.Sub(&yMinusX, &a.Y, &a.X)
	field.Add(&yPlusX, &a.Y, &a.X)
	field.Mul(&A, &yMinusX, &n.YminusX)
	field.Mul(&B, &yPlusX, &n.YplusX)
	field.Mul(&ZZ, &a.Z, &n.Z)
	field.Mul(&C, &a.T, &n.Dxy2)

	var D2 field.Elt
	field.Add(&D2, &ZZ, &ZZ)

	var E, F, G, H field.Elt
	field.Sub(&E, &B, &A)
	field.Sub(&F, &D2, &C)
	field.Add(&G, &D2, &C)
	field.Add(&H, &B, &A)

	field.Mul(&a.X, &E, &F)
	field.Mul(&a.Y, &G, &H)
	field.Mul(&a.T, &E, &H)
	field.Mul(&a.Z, &F, &G)
}

// Double computes p = 2*a, using the dbl-2008-hwcd doubling law specialized
// to a = -1: with D = a*A = -A, G = D+B = B-A and H = D-B = -(A+B).
func Double(p, a *Point) {
	var A, B, C, E, F, G, H field.Elt
	field.Square(&A, &a.X)
	field.Square(&B, &a.Y)
	field.Square(&C, &a.Z)
	field.Add(&C, &C, &C)

	var sum, sumSq field.Elt
	field.Add(&sum, &a.X, &a.Y)
	field.Square(&sumSq, &sum)
	field.Sub(&E, &sumSq, &A)
	field.Sub(&E, &E, &B)

	field.Sub(&G, &B, &A)
	field.Sub(&F, &G, &C)
	field.Add(&H, &A, &B)
	field.Neg(&H, &H)

	field.Mul(&p.X, &E, &F)
	field.Mul(&p.Y, &G, &H)
	field.Mul(&p.T, &E, &H)
	field.Mul(&p.Z, &F, &G)
}

// Negate computes p = -a.
func Negate(p, a *Point) {
	field.Neg(&p.X, &a.X)
	p.Y = a.Y
	p.Z = a.Z
	field.Neg(&p.T, &a.T)
}

// Normalize scales p so that Z == 1, needed before converting to Niels
// form or encoding.
func Normalize(p *Point) {
	var zInv field.Elt
	field.Inverse(&zInv, &p.Z)
	field.Mul(&p.X, &p.X, &zInv)
	field.Mul(&p.Y, &p.Y, &zInv)
	field.Mul(&p.T, &p.X, &p.Y)
	p.Z = field.One()
}

// IsOnCurve reports whether p satisfies the curve equation and the
// X*Y == T*Z consistency constraint of the extended representation.
func IsOnCurve(p *Point) bool {
	var x2, y2, z2, t2, dt2, lhs, rhs field.Elt
	field.Square(&x2, &p.X)
	field.Square(&y2, &p.Y)
	field.Square(&z2, &p.Z)
	field.Square(&t2, &p.T)
	field.Mul(&dt2, &t2, &D)

	field.Sub(&lhs, &y2, &x2) // a = -1: a*x^2 + y^2 = y^2 - x^2
	field.Add(&rhs, &z2, &dt2)
	eqCurve := field.Equal(&lhs, &rhs)

	var xy, tz field.Elt
	field.Mul(&xy, &p.X, &p.Y)
	field.Mul(&tz, &p.T, &p.Z)
	eqT := field.Equal(&xy, &tz)

	return eqCurve == 1 && eqT == 1
}

// Equal reports whether a and b represent the same curve point, comparing
// cross-multiplied projective coordinates so neither needs to be
// normalized first.
func Equal(a, b *Point) bool {
	var x1z2, x2z1, y1z2, y2z1 field.Elt
	field.Mul(&x1z2, &a.X, &b.Z)
	field.Mul(&x2z1, &b.X, &a.Z)
	field.Mul(&y1z2, &a.Y, &b.Z)
	field.Mul(&y2z1, &b.Y, &a.Z)
	return field.Equal(&x1z2, &x2z1) == 1 && field.Equal(&y1z2, &y2z1) == 1
}

// CondNegate negates p in place if n == 1, used by constant-time sign
// selection in the scalar-multiplication ladders.
func CondNegate(p *Point, n uint) {
	var neg Point
	Negate(&neg, p)
	field.Cmov(&p.X, &neg.X, n)
	field.Cmov(&p.T, &neg.T, n)
}

// Cmov sets p = q if n == 1.
func Cmov(p, q *Point, n uint) {
	field.Cmov(&p.X, &q.X, n)
	field.Cmov(&p.Y, &q.Y, n)
	field.Cmov(&p.Z, &q.Z, n)
	field.Cmov(&p.T, &q.T, n)
}

// CmovNiels sets p = q if n == 1.
func CmovNiels(p, q *Niels, n uint) {
	field.Cmov(&p.YminusX, &q.YminusX, n)
	field.Cmov(&p.YplusX, &q.YplusX, n)
	field.Cmov(&p.Dxy2, &q.Dxy2, n)
}

// CmovPNiels sets p = q if n == 1.
func CmovPNiels(p, q *PNiels, n uint) {
	field.Cmov(&p.YminusX, &q.YminusX, n)
	field.Cmov(&p.YplusX, &q.YplusX, n)
	field.Cmov(&p.Z, &q.Z, n)
	field.Cmov(&p.Dxy2, &q.Dxy2, n)
}

// CondNegateNiels negates a Niels-form point's sign-dependent fields in
// place if n == 1 (swap YminusX/YplusX and negate Dxy2).
func CondNegateNiels(p *Niels, n uint) {
	var t field.Elt
	t = p.YminusX
	var swapped Niels
	swapped.YminusX = p.YplusX
	swapped.YplusX = t
	field.Neg(&swapped.Dxy2, &p.Dxy2)
	CmovNiels(p, &swapped, n)
}

// CondNegatePNiels is the PNiels analogue of CondNegateNiels.
func CondNegatePNiels(p *PNiels, n uint) {
	var swapped PNiels
	swapped.YminusX = p.YplusX
	swapped.YplusX = p.YminusX
	swapped.Z = p.Z
	field.Neg(&swapped.Dxy2, &p.Dxy2)
	CmovPNiels(p, &swapped, n)
}

// ctAbs sets z to x or -x, whichever has even parity (low bit 0 of its
// canonical representative), the sign convention §4.4 canonicalizes on.
func ctAbs(z, x *field.Elt) {
	var neg field.Elt
	field.Neg(&neg, x)
	*z = *x
	field.Cmov(z, &neg, uint(field.Parity(x)))
}

// Encode serializes p into its 56-byte prime-order-group representation, per
// §4.4. The identity point encodes to the all-zero string. Grounded on
// group/decaf448/point.go's marshalBinary (CIRCL's decaf448 encode),
// adapted from the split Ta/Tb representation to this package's combined T.
func Encode(b []byte, p *Point) {
	var plus, minus, u1, v, ir, w, rt, u2, u3, s field.Elt
	one := field.One()

	field.Add(&plus, &p.X, &p.T)
	field.Sub(&minus, &p.X, &p.T)
	field.Mul(&u1, &plus, &minus) // u1 = x^2 - t^2

	field.Square(&v, &p.X)
	field.Mul(&v, &v, &AMinusD)
	field.Mul(&v, &v, &u1)
	field.InvSqrt(&ir, &one, &v)

	field.Mul(&w, &ir, &u1)
	field.Mul(&w, &w, &SqrtMinusD)
	ctAbs(&rt, &w)

	field.Mul(&u2, &rt, &p.Z)
	field.Mul(&u2, &u2, &InvSqrtMinusD)
	field.Sub(&u2, &u2, &p.T)

	field.Mul(&u3, &p.X, &u2)
	field.Mul(&u3, &u3, &ir)
	field.Mul(&u3, &u3, &AMinusD)
	ctAbs(&s, &u3)

	field.Encode(b, &s)
}

// Decode parses a 56-byte prime-order-group encoding into p, per §4.4.
// It returns 1 on success, 0 if the input is not canonical, carries a
// nonzero sign bit, or does not correspond to a point on the curve; on
// failure p's contents are undefined and the caller must check the return
// value before use. If allowIdentity is 0, an all-zero input also fails.
// Grounded on group/decaf448/point.go's UnmarshalBinary.
func Decode(p *Point, b []byte, allowIdentity uint) int {
	var s field.Elt
	field.Decode(&s, b)

	var canon [field.Size]byte
	sCanon := s
	field.StrongReduce(&sCanon)
	field.Encode(canon[:], &sCanon)
	isCanonical := 1 - subtleCompareNEQ(canon[:], b)
	isPositive := 1 - field.Parity(&s)

	var ss, u1, u2, v, w, ir, u3, x, y field.Elt
	one := field.One()
	field.Square(&ss, &s)
	field.Add(&u1, &one, &ss) // u1 = 1 + s^2, since a = -1
	field.Mul(&u2, &ss, &D)
	field.Add(&u2, &u2, &u2)
	field.Add(&u2, &u2, &u2) // u2 = 4*d*s^2
	field.Square(&v, &u1)
	field.Sub(&u2, &v, &u2) // u2 = u1^2 - 4*d*s^2
	field.Mul(&w, &u2, &v)
	isQR := field.InvSqrt(&ir, &one, &w)

	field.Mul(&w, &s, &ir)
	field.Mul(&w, &w, &u1)
	field.Mul(&w, &w, &SqrtMinusD)
	field.Add(&w, &w, &w)
	ctAbs(&u3, &w)

	field.Mul(&x, &u3, &ir)
	field.Mul(&x, &x, &u2)
	field.Mul(&x, &x, &InvSqrtMinusD)

	field.Sub(&y, &one, &ss)
	field.Mul(&y, &y, &ir)
	field.Mul(&y, &y, &u1)

	isIdentity := field.IsZero(&x)
	notIdentityOK := (1 - isIdentity) | int(allowIdentity&1)

	ok := isCanonical & isPositive & isQR & notIdentityOK

	var t field.Elt
	field.Mul(&t, &x, &y)
	field.Cmov(&p.X, &x, uint(ok))
	field.Cmov(&p.Y, &y, uint(ok))
	field.Cmov(&p.T, &t, uint(ok))
	field.Cmov(&p.Z, &one, uint(ok))

	return ok
}

// subtleCompareNEQ returns 0 if a and b are equal, 1 otherwise.
func subtleCompareNEQ(a, b []byte) int {
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	if v != 0 {
		return 1
	}
	return 0
}
