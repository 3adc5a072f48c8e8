package scalarfield

import (
	"math/rand"
	"testing"
)

func randScalar(r *rand.Rand) Scalar {
	var raw Scalar
	for i := 0; i < nlimbs; i++ {
		raw[i] = r.Uint64()
	}
	reduceIfGE(&raw)
	var s Scalar
	toMontgomery(&s, &raw)
	return s
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		s := randScalar(r)

		var buf [Size]byte
		Encode(buf[:], &s)

		var back Scalar
		Decode(&back, buf[:])

		if Equal(&s, &back) != 1 {
			t.Fatalf("round %d: decode(encode(s)) != s", i)
		}
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		a := randScalar(r)
		b := randScalar(r)

		var sum, back Scalar
		Add(&sum, &a, &b)
		Sub(&back, &sum, &b)

		if Equal(&back, &a) != 1 {
			t.Fatalf("round %d: (a+b)-b != a", i)
		}
	}
}

func TestNegIsAdditiveInverse(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		a := randScalar(r)

		var neg, sum Scalar
		Neg(&neg, &a)
		Add(&sum, &a, &neg)

		if IsZero(&sum) != 1 {
			t.Fatalf("round %d: a + (-a) != 0", i)
		}
	}
}

func TestMulInverse(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		a := randScalar(r)
		if IsZero(&a) == 1 {
			continue
		}

		var inv, prod Scalar
		Invert(&inv, &a)
		Mul(&prod, &a, &inv)

		one := One()
		if Equal(&prod, &one) != 1 {
			t.Fatalf("round %d: a * a^-1 != 1", i)
		}
	}
}

func TestInvertZeroIsZero(t *testing.T) {
	zero := Zero()
	var inv Scalar
	Invert(&inv, &zero)

	if IsZero(&inv) != 1 {
		t.Fatal("1/0 should be defined as 0")
	}
}

func TestHalveDoubledIsIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		a := randScalar(r)

		var half, doubled Scalar
		Halve(&half, &a)
		Add(&doubled, &half, &half)

		if Equal(&doubled, &a) != 1 {
			t.Fatalf("round %d: 2*(a/2) != a", i)
		}
	}
}

func TestDecodeWideReducesLargeInput(t *testing.T) {
	wide := make([]byte, 2*Size)
	for i := range wide {
		wide[i] = 0xff
	}

	var s Scalar
	DecodeWide(&s, wide)

	var buf [Size]byte
	Encode(buf[:], &s)

	q := QLimbs()
	var qBuf [Size]byte
	for i, limb := range q {
		for b := 0; b < 8; b++ {
			qBuf[i*8+b] = byte(limb >> (8 * b))
		}
	}

	// the decoded scalar must be strictly less than q.
	less := false
	for i := Size - 1; i >= 0; i-- {
		if buf[i] != qBuf[i] {
			less = buf[i] < qBuf[i]
			break
		}
	}
	if !less {
		t.Fatal("DecodeWide did not reduce below q")
	}
}

func TestLimbsFromLimbsRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 50; i++ {
		a := randScalar(r)

		limbs := Limbs(&a)
		back := FromLimbs(limbs)

		if Equal(&a, &back) != 1 {
			t.Fatalf("round %d: FromLimbs(Limbs(a)) != a", i)
		}
	}
}
