package span

import "testing"

func TestDitherNudgeNoOpWhenNoBitsLost(t *testing.T) {
	if got := ditherNudge(123, 0, 5, 5); got != 123 {
		t.Fatalf("ditherNudge with bitsLost=0 = %d, want unchanged 123", got)
	}
}

func TestDitherNudgeNeverOverflowsByte(t *testing.T) {
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			got := ditherNudge(255, 3, x, y)
			if got > 255 {
				t.Fatalf("ditherNudge(255, 3, %d, %d) = %d, overflowed a byte", x, y, got)
			}
		}
	}
}

func TestDitherNudgeStepsByQuantizationUnit(t *testing.T) {
	// At (x, y) = (0, 0) the matrix threshold is 0, so any nonzero low bits
	// always clear the (lowBits >= threshold) test and round up.
	got := ditherNudge(1, 3, 0, 0)
	if got != 1+8 {
		t.Fatalf("ditherNudge(1, 3, 0, 0) = %d, want %d", got, 1+8)
	}
}

func TestDitherByteCoversFullRange(t *testing.T) {
	seen := map[uint8]bool{}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			seen[ditherByte(x, y)] = true
		}
	}
	if len(seen) != 64 {
		t.Fatalf("ditherByte produced %d distinct values over the 8x8 matrix, want 64", len(seen))
	}
}
