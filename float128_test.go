package float128

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	td := []struct {
		sign bool
		m    U128
		e    int32
	}{
		{false, implicitBit, 0},                    // 1.0
		{true, implicitBit, 0},                      // -1.0
		{false, implicitBit.Or(U128{Lo: 1}), 5},      // normal, low bit set
		{false, U128{Lo: 1}, expMin},                 // smallest subnormal
		{false, U128{}, expMin},                      // +0
		{true, U128{}, expMin},                       // -0
	}
	for i, d := range td {
		f := encode(d.sign, d.m, d.e)
		sign, m, e := f.decode()
		if sign != d.sign || m != d.m || e != d.e {
			t.Fatalf("case %d: decode(encode(%v,%v,%v)) = %v,%v,%v", i, d.sign, d.m, d.e, sign, m, e)
		}
	}
}

func TestEncodeInfNaN(t *testing.T) {
	inf := signedInf(false)
	if !inf.IsInf() || inf.IsNaN() {
		t.Fatalf("signedInf(false) misclassified: %+v", inf)
	}
	if !QuietNaN.IsNaN() {
		t.Fatalf("QuietNaN.IsNaN() = false")
	}
	if !SentinelNaN.IsNaN() {
		t.Fatalf("SentinelNaN.IsNaN() = false")
	}
	if QuietNaN.Equal(QuietNaN) {
		t.Fatalf("NaN must not equal itself")
	}
}

func TestClassificationPredicates(t *testing.T) {
	// P7: IsSubnormal <=> E==0 (and T!=0); IsNormal <=> E != {0,32767};
	// IsNaN <=> E==32767 && T!=0; IsInfinity <=> E==32767 && T==0.
	sub := Float128{bits: U128{Lo: 1}} // E=0, T=1: smallest subnormal
	if !sub.IsSubnormal() || sub.IsNormal() || sub.IsZero() {
		t.Fatalf("smallest subnormal misclassified")
	}
	if !One.IsNormal() || One.IsSubnormal() || One.IsZero() {
		t.Fatalf("One misclassified: normal=%v subnormal=%v zero=%v", One.IsNormal(), One.IsSubnormal(), One.IsZero())
	}
	if !Zero.IsZero() || Zero.IsNormal() || Zero.IsSubnormal() {
		t.Fatalf("Zero misclassified")
	}
	inf := Inf(false)
	if !inf.IsInf() || inf.IsNaN() || inf.IsFinite() {
		t.Fatalf("Inf misclassified")
	}
	if QuietNaN.IsInf() || !QuietNaN.IsNaN() || QuietNaN.IsFinite() {
		t.Fatalf("QuietNaN misclassified")
	}
}

func TestIsPow2(t *testing.T) {
	if !One.IsPow2() {
		t.Fatalf("One should be a power of two")
	}
	two := One.Add(One)
	if !two.IsPow2() {
		t.Fatalf("Two should be a power of two")
	}
	three := two.Add(One)
	if three.IsPow2() {
		t.Fatalf("Three should not be a power of two")
	}
	sub := Float128{bits: U128{Lo: 1}}
	if !sub.IsPow2() {
		t.Fatalf("smallest subnormal (single bit) should be a power of two")
	}
}

func TestIsIntegerEvenOdd(t *testing.T) {
	if !Zero.IsInteger() || !Zero.IsEvenInteger() {
		t.Fatalf("zero should be an even integer")
	}
	if !One.IsInteger() || !One.IsOddInteger() {
		t.Fatalf("one should be an odd integer")
	}
	two := One.Add(One)
	if !two.IsInteger() || !two.IsEvenInteger() {
		t.Fatalf("two should be an even integer")
	}
	half := One.Quo(two)
	if half.IsInteger() {
		t.Fatalf("0.5 should not be an integer")
	}
}

func TestSignSignbitNegAbs(t *testing.T) {
	if One.Sign() != 1 || NegOne.Sign() != -1 || Zero.Sign() != 0 {
		t.Fatalf("Sign: One=%d NegOne=%d Zero=%d", One.Sign(), NegOne.Sign(), Zero.Sign())
	}
	if One.Neg().Sign() != -1 {
		t.Fatalf("Neg(One) should be negative")
	}
	if NegOne.Abs().Sign() != 1 {
		t.Fatalf("Abs(NegOne) should be positive")
	}
	if !NegOne.Signbit() || One.Signbit() {
		t.Fatalf("Signbit: NegOne=%v One=%v", NegOne.Signbit(), One.Signbit())
	}
}

func TestEqualAllZerosEqual(t *testing.T) {
	negZero := signedZero(true)
	posZero := signedZero(false)
	if !negZero.Equal(posZero) {
		t.Fatalf("I3/I5: +0 should equal -0")
	}
}

func TestCmpOrdering(t *testing.T) {
	two := One.Add(One)
	if c, unordered := One.Cmp(two); unordered || c >= 0 {
		t.Fatalf("Cmp(1,2) = %d,%v, want -1,false", c, unordered)
	}
	if c, unordered := two.Cmp(One); unordered || c <= 0 {
		t.Fatalf("Cmp(2,1) = %d,%v, want 1,false", c, unordered)
	}
	if c, unordered := One.Cmp(One); unordered || c != 0 {
		t.Fatalf("Cmp(1,1) = %d,%v, want 0,false", c, unordered)
	}
	if _, unordered := One.Cmp(QuietNaN); !unordered {
		t.Fatalf("Cmp(1,NaN) should be unordered")
	}
	if c, _ := NegOne.Cmp(One); c >= 0 {
		t.Fatalf("Cmp(-1,1) should be negative")
	}
}

func TestIlogb(t *testing.T) {
	if One.Ilogb() != 0 {
		t.Fatalf("Ilogb(1) = %d, want 0", One.Ilogb())
	}
	two := One.Add(One)
	if two.Ilogb() != 1 {
		t.Fatalf("Ilogb(2) = %d, want 1", two.Ilogb())
	}
	half := One.Quo(two)
	if half.Ilogb() != -1 {
		t.Fatalf("Ilogb(0.5) = %d, want -1", half.Ilogb())
	}
}

func TestIsCanonical(t *testing.T) {
	if !One.IsCanonical() {
		t.Fatalf("One should be canonical")
	}
	if !Zero.IsCanonical() {
		t.Fatalf("Zero should be canonical (trivially, only one encoding)")
	}
}
