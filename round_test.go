package float128

import "testing"

func TestRoundToNearestEven(t *testing.T) {
	td := []struct {
		in, want string
	}{
		{"2.5", "2"},  // tie, rounds to even (2)
		{"3.5", "4"},  // tie, rounds to even (4)
		{"2.4", "2"},
		{"2.6", "3"},
		{"-2.5", "-2"},
		{"0.5", "0"},
		{"-0.5", "0"}, // sign of result is the tie-to-even direction's sign
	}
	for i, d := range td {
		in := mustParse(t, d.in)
		want := mustParse(t, d.want)
		got := in.Round()
		if !got.Equal(want) {
			t.Fatalf("case %d: Round(%s) = %s, want %s", i, d.in, got, want)
		}
	}
}

func TestRoundNaNInfZero(t *testing.T) {
	if !QuietNaN.Round().IsNaN() {
		t.Fatalf("Round(NaN) should be NaN")
	}
	if !Inf(false).Round().IsInf() {
		t.Fatalf("Round(Inf) should be Inf")
	}
	if !Zero.Round().IsZero() {
		t.Fatalf("Round(0) should be 0")
	}
}

func TestFloorCeiling(t *testing.T) {
	td := []struct {
		in          string
		floor, ceil string
	}{
		{"2.5", "2", "3"},
		{"-2.5", "-3", "-2"},
		{"3", "3", "3"},
		{"-3", "-3", "-3"},
	}
	for i, d := range td {
		in := mustParse(t, d.in)
		f := in.Floor()
		c := in.Ceiling()
		wf := mustParse(t, d.floor)
		wc := mustParse(t, d.ceil)
		if !f.Equal(wf) {
			t.Fatalf("case %d: Floor(%s) = %s, want %s", i, d.in, f, wf)
		}
		if !c.Equal(wc) {
			t.Fatalf("case %d: Ceiling(%s) = %s, want %s", i, d.in, c, wc)
		}
	}
}

func TestRoundDigits(t *testing.T) {
	x := mustParse(t, "3.14159")
	got, err := x.RoundDigits(2)
	if err != nil {
		t.Fatalf("RoundDigits(2) error: %v", err)
	}
	want := mustParse(t, "3.14")
	if !got.Equal(want) {
		t.Fatalf("RoundDigits(3.14159, 2) = %s, want 3.14", got)
	}
}

func TestRoundDigitsNegativeIsArgumentError(t *testing.T) {
	x := mustParse(t, "1.5")
	_, err := x.RoundDigits(-1)
	if err == nil {
		t.Fatalf("RoundDigits(-1) should return an error")
	}
	var argErr *ArgumentError
	if _, ok := err.(*ArgumentError); !ok {
		_ = argErr
		t.Fatalf("RoundDigits(-1) error should be *ArgumentError, got %T", err)
	}
}

func TestRoundDigitsBeyondMax(t *testing.T) {
	x := mustParse(t, "1.5")
	got, err := x.RoundDigits(100)
	if err != nil {
		t.Fatalf("RoundDigits(100) error: %v", err)
	}
	if !got.Equal(x) {
		t.Fatalf("RoundDigits beyond maxRoundDigits should be identity, got %s", got)
	}
}

func TestIsIntegerViaRoundAgreesWithRound(t *testing.T) {
	x := mustParse(t, "5")
	if !x.IsInteger() {
		t.Fatalf("5 should be an integer")
	}
	y := mustParse(t, "5.3")
	if y.IsInteger() {
		t.Fatalf("5.3 should not be an integer")
	}
}
