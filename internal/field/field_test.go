package field

import (
	"math/rand"
	"testing"
)

func randElt(r *rand.Rand) Elt {
	var e Elt
	for i := range e {
		e[i] = r.Uint64() & limbMask
	}
	StrongReduce(&e)
	return e
}

func TestAddSubRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		a := randElt(r)
		b := randElt(r)

		var sum, back Elt
		Add(&sum, &a, &b)
		Sub(&back, &sum, &b)

		if Equal(&back, &a) != 1 {
			t.Fatalf("round %d: (a+b)-b != a", i)
		}
	}
}

func TestNegIsAdditiveInverse(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		a := randElt(r)

		var neg, sum Elt
		Neg(&neg, &a)
		Add(&sum, &a, &neg)

		if IsZero(&sum) != 1 {
			t.Fatalf("round %d: a + (-a) != 0", i)
		}
	}
}

func TestMulInverse(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		a := randElt(r)
		if IsZero(&a) == 1 {
			continue
		}

		var inv, prod Elt
		Inverse(&inv, &a)
		Mul(&prod, &a, &inv)

		one := One()
		if Equal(&prod, &one) != 1 {
			t.Fatalf("round %d: a * a^-1 != 1", i)
		}
	}
}

func TestInverseOfZeroIsZero(t *testing.T) {
	zero := Zero()
	var inv Elt
	Inverse(&inv, &zero)

	if IsZero(&inv) != 1 {
		t.Fatal("1/0 should be defined as 0")
	}
}

func TestSquareMatchesMul(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		a := randElt(r)

		var sq, mul Elt
		Square(&sq, &a)
		Mul(&mul, &a, &a)

		if Equal(&sq, &mul) != 1 {
			t.Fatalf("round %d: a^2 != a*a", i)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		a := randElt(r)

		var buf [Size]byte
		Encode(buf[:], &a)

		var b Elt
		Decode(&b, buf[:])

		if Equal(&a, &b) != 1 {
			t.Fatalf("round %d: decode(encode(a)) != a", i)
		}
	}
}

func TestInvSqrtOfSquareIsQR(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 50; i++ {
		x := randElt(r)
		if IsZero(&x) == 1 {
			continue
		}

		var sq Elt
		Square(&sq, &x)

		one := One()
		var root Elt
		isQR := InvSqrt(&root, &sq, &one)

		if isQR != 1 {
			t.Fatalf("round %d: square not detected as quadratic residue", i)
		}

		var check Elt
		Square(&check, &root)
		if Equal(&check, &sq) != 1 {
			t.Fatalf("round %d: sqrt(x^2)^2 != x^2", i)
		}
	}
}

func TestCmovCswap(t *testing.T) {
	a := One()
	b := Zero()

	aCopy, bCopy := a, b
	Cmov(&aCopy, &bCopy, 0)
	if Equal(&aCopy, &a) != 1 {
		t.Fatal("Cmov with n=0 should not move")
	}

	Cmov(&aCopy, &bCopy, 1)
	if Equal(&aCopy, &b) != 1 {
		t.Fatal("Cmov with n=1 should move")
	}

	x, y := a, b
	Cswap(&x, &y, 1)
	if Equal(&x, &b) != 1 || Equal(&y, &a) != 1 {
		t.Fatal("Cswap with n=1 should swap")
	}
}

func TestParityMatchesLSB(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		a := randElt(r)
		var buf [Size]byte
		Encode(buf[:], &a)

		if Parity(&a) != int(buf[0]&1) {
			t.Fatalf("round %d: parity mismatch", i)
		}
	}
}
