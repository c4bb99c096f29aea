package determinism

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseFactor(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"1", false},
		{"0.3048", false},
		{"1e-24", false},
		{"-40", false},
		{"", true},
		{"twelve", true},
		{"1.2.3", true},
	}

	for _, tt := range tests {
		_, err := ParseFactor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFactor(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestInvRoundTrips(t *testing.T) {
	for _, s := range []string{"0.3048", "5280", "1e-24", "1609.344", "3"} {
		d := MustFactor(s)
		back := Inv(Inv(d))
		if !ApproxEqual(back, d, RelativeTolerance) {
			t.Errorf("Inv(Inv(%s)) = %s, want %s", s, back, d)
		}
	}
}

func TestPowInt(t *testing.T) {
	tests := []struct {
		base string
		exp  int
		want string
	}{
		{"2", 10, "1024"},
		{"10", 0, "1"},
		{"0.3048", 2, "0.09290304"},
		{"10", -3, "0.001"},
	}

	for _, tt := range tests {
		got := PowInt(MustFactor(tt.base), tt.exp)
		if !ApproxEqual(got, MustFactor(tt.want), RelativeTolerance) {
			t.Errorf("PowInt(%s, %d) = %s, want %s", tt.base, tt.exp, got, tt.want)
		}
	}
}

func TestPowOfTenAndTwoAreExact(t *testing.T) {
	if got := PowOfTen(-24); !got.Equal(MustFactor("1e-24")) {
		t.Errorf("PowOfTen(-24) = %s", got)
	}
	if got := PowOfTwo(80); !got.Equal(MustFactor("1208925819614629174706176")) {
		t.Errorf("PowOfTwo(80) = %s", got)
	}
}

func TestApproxEqualZero(t *testing.T) {
	tiny := decimal.New(1, -79)
	if ApproxEqual(tiny, decimal.Zero, RelativeTolerance) {
		t.Error("nonzero value compared equal to zero")
	}
	if !ApproxEqual(decimal.Zero, decimal.Zero, RelativeTolerance) {
		t.Error("zero not equal to zero")
	}
}

func TestContentHashIsStable(t *testing.T) {
	a := ComputeHash([]byte("meter -> foot"))
	b := ComputeHash([]byte("meter -> foot"))
	if a != b {
		t.Error("same input hashed differently")
	}
	if a == ComputeHash([]byte("meter -> yard")) {
		t.Error("different inputs collided")
	}
	if len(a.Hex()) != 64 {
		t.Errorf("hex length = %d, want 64", len(a.Hex()))
	}
}
