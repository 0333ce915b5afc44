package image

import (
	"testing"

	"github.com/mrjoshuak/fog/pixel"
)

func TestCreateRejectsNonPositiveSize(t *testing.T) {
	if _, err := Create(0, 4, pixel.MustFormat(pixel.ARGB32)); err != ErrInvalidSize {
		t.Fatalf("want ErrInvalidSize, got %v", err)
	}
	if _, err := Create(4, -1, pixel.MustFormat(pixel.ARGB32)); err != ErrInvalidSize {
		t.Fatalf("want ErrInvalidSize, got %v", err)
	}
}

func TestCreateStrideIsWordAligned(t *testing.T) {
	b, err := Create(3, 2, pixel.MustFormat(pixel.RGB24))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.Stride()%8 != 0 {
		t.Fatalf("stride %d is not 8-byte aligned", b.Stride())
	}
	if b.Stride() < 9 {
		t.Fatalf("stride %d too small for 3 RGB24 pixels", b.Stride())
	}
}

func TestCloneSharesStorageUntilDetach(t *testing.T) {
	b, err := Create(4, 4, pixel.MustFormat(pixel.ARGB32))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	row := b.MutableRow(0)
	row[0] = 0xAB

	clone := b.Clone()
	clone.Detach()

	clone.MutableRow(0)[0] = 0xFF
	if b.Row(0)[0] != 0xAB {
		t.Fatalf("mutating detached clone affected original: got %#x", b.Row(0)[0])
	}
}

func TestIndexedFormatGetsPalette(t *testing.T) {
	b, err := Create(4, 4, pixel.MustFormat(pixel.I8))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	pal, ok := b.Palette()
	if !ok || pal == nil {
		t.Fatalf("indexed buffer should expose a palette")
	}
}

func TestNonIndexedFormatHasNoPalette(t *testing.T) {
	b, err := Create(4, 4, pixel.MustFormat(pixel.ARGB32))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, ok := b.Palette(); ok {
		t.Fatalf("non-indexed buffer should not expose a palette")
	}
}

func TestReleaseClearsBuffer(t *testing.T) {
	b, err := Create(2, 2, pixel.MustFormat(pixel.A8))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b.Release()
	if b.IsValid() {
		t.Fatalf("buffer should be invalid after Release")
	}
}
