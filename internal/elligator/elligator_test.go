package elligator

import (
	"math/rand"
	"testing"

	"github.com/bytemare/ed448/internal/curve"
	"github.com/bytemare/ed448/internal/field"
)

func randBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	r.Read(b)
	return b
}

func TestFromHashNonuniformProducesCurvePoint(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		in := randBytes(r, Size)

		p, _ := FromHashNonuniform(in)
		if !curve.IsOnCurve(&p) {
			t.Fatalf("round %d: mapped point is not on curve", i)
		}
	}
}

func TestFromHashUniformProducesCurvePoint(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		in := randBytes(r, UniformSize)

		p, _ := FromHashUniform(in)
		if !curve.IsOnCurve(&p) {
			t.Fatalf("round %d: mapped point is not on curve", i)
		}
	}
}

func TestFromHashNonuniformIsDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	in := randBytes(r, Size)

	p1, h1 := FromHashNonuniform(in)
	p2, h2 := FromHashNonuniform(in)

	if h1 != h2 || !curve.Equal(&p1, &p2) {
		t.Fatal("FromHashNonuniform is not deterministic")
	}
}

func TestInvertElligatorNonuniformRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	found := 0
	for i := 0; i < 200 && found < 20; i++ {
		in := randBytes(r, Size)

		p, hint := FromHashNonuniform(in)

		out, ok := InvertElligatorNonuniform(&p, hint)
		if !ok {
			// not every point has a preimage under this particular hint;
			// that is expected, not every t is in this branch's image.
			continue
		}
		found++

		var t2 field.Elt
		field.Decode(&t2, out)

		p2, hint2 := FromHashNonuniform(out)
		if hint2 != hint || !curve.Equal(&p, &p2) {
			t.Fatalf("round %d: recovered preimage does not map back to p", i)
		}
	}
	if found == 0 {
		t.Fatal("never found an invertible sample in 200 tries")
	}
}

func TestInvertElligatorNonuniformWrongHintDoesNotPanic(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	in := randBytes(r, Size)

	p, hint := FromHashNonuniform(in)
	wrongHint := hint ^ 0x3

	if _, ok := InvertElligatorNonuniform(&p, wrongHint); ok {
		// a mismatched hint may coincidentally still verify for some points,
		// but across a single point the common case is rejection, not panic.
		_ = ok
	}
}
