package arith

import (
	"bytes"
	"math/big"
	"testing"
)

func TestRandomOddPositive_Properties(t *testing.T) {
	for _, k := range []int{1, 2, 8, 33} {
		for i := 0; i < 200; i++ {
			v, err := RandomOddPositive(k, nil)
			if err != nil {
				t.Fatalf("RandomOddPositive(%d): %v", k, err)
			}
			if v.Sign() <= 0 {
				t.Fatalf("RandomOddPositive(%d) = %s, want positive", k, v)
			}
			if v.Bit(0) != 1 {
				t.Fatalf("RandomOddPositive(%d) = %s, want odd", k, v)
			}
			if v.BitLen() > 8*k {
				t.Fatalf("RandomOddPositive(%d) = %s, does not fit %d bytes", k, v, k)
			}
		}
	}
}

func TestRandomOddPositive_BitForcing(t *testing.T) {
	// 0xff 0xfe becomes 0x7f 0xff: the high bit cleared, the low bit set.
	v, err := RandomOddPositive(2, bytes.NewReader([]byte{0xff, 0xfe}))
	if err != nil {
		t.Fatal(err)
	}
	if want := big.NewInt(0x7fff); v.Cmp(want) != 0 {
		t.Fatalf("got %s, want %s", v, want)
	}
}

func TestRandomOddPositive_InvalidLength(t *testing.T) {
	for _, k := range []int{0, -1, -100} {
		if _, err := RandomOddPositive(k, nil); err == nil {
			t.Fatalf("RandomOddPositive(%d) succeeded, want error", k)
		}
	}
}

func TestRandomOddPositive_ShortRead(t *testing.T) {
	if _, err := RandomOddPositive(4, bytes.NewReader([]byte{1})); err == nil {
		t.Fatal("short source succeeded, want error")
	}
}
