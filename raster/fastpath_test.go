package raster

import (
	"bytes"
	"testing"

	"github.com/mrjoshuak/fog/span"
)

func TestArgb32FromRGB565ExpandsHighBitsAndForcesOpaque(t *testing.T) {
	// 0xF81F is magenta at 565 precision (R=0x1F, G=0, B=0x1F), stored
	// little-endian, and should expand to opaque 8-bit color with each
	// channel shifted into the high bits of its byte and the low bits zero.
	src := []byte{0x1F, 0xF8}
	dst := make([]byte, 4)
	argb32FromRGB565(dst, src, 1, &span.Closure{})
	want := []byte{0xF8, 0x00, 0xF8, 0xFF}
	if !bytes.Equal(dst, want) {
		t.Fatalf("argb32FromRGB565(0xF81F) = %v, want %v", dst, want)
	}
}

func TestArgb32FromRGB565BlackStaysBlack(t *testing.T) {
	src := []byte{0x00, 0x00}
	dst := make([]byte, 4)
	argb32FromRGB565(dst, src, 1, &span.Closure{})
	want := []byte{0x00, 0x00, 0x00, 0xFF}
	if !bytes.Equal(dst, want) {
		t.Fatalf("argb32FromRGB565(0x0000) = %v, want %v", dst, want)
	}
}

func TestArgb32FromRGB565AllOnesLeavesLowBitsClear(t *testing.T) {
	src := []byte{0xFF, 0xFF}
	dst := make([]byte, 4)
	argb32FromRGB565(dst, src, 1, &span.Closure{})
	want := []byte{0xF8, 0xFC, 0xF8, 0xFF}
	if !bytes.Equal(dst, want) {
		t.Fatalf("argb32FromRGB565(0xFFFF) = %v, want %v", dst, want)
	}
}

func TestArgb32FromRGB565MultiplePixels(t *testing.T) {
	src := []byte{0x1F, 0xF8, 0x00, 0x00}
	dst := make([]byte, 8)
	argb32FromRGB565(dst, src, 2, &span.Closure{})
	want := []byte{0xF8, 0x00, 0xF8, 0xFF, 0x00, 0x00, 0x00, 0xFF}
	if !bytes.Equal(dst, want) {
		t.Fatalf("argb32FromRGB565 over 2 pixels = %v, want %v", dst, want)
	}
}
