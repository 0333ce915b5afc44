package raster

import (
	"bytes"
	"testing"

	"github.com/mrjoshuak/fog/span"
)

func TestSrcOverPRGB32OpaqueSourceReplaces(t *testing.T) {
	// src is fully opaque (A=255), so SrcOver's (1-srcA) term is zero and
	// dst should come out identical to src regardless of what it held.
	src := []byte{0x00, 0x00, 0xFF, 0xFF}
	dst := []byte{10, 20, 30, 40}
	srcOverPRGB32(dst, src, 1, &span.Closure{})
	if !bytes.Equal(dst, src) {
		t.Fatalf("srcOverPRGB32 with opaque src = %v, want %v", dst, src)
	}
}

func TestSrcOverPRGB32TransparentSourceLeavesDst(t *testing.T) {
	// A fully transparent premultiplied pixel carries zero color as well as
	// zero alpha, so SrcOver adds nothing and scales dst by 1.
	src := []byte{0, 0, 0, 0}
	want := []byte{10, 20, 30, 40}
	dst := append([]byte(nil), want...)
	srcOverPRGB32(dst, src, 1, &span.Closure{})
	if !bytes.Equal(dst, want) {
		t.Fatalf("srcOverPRGB32 with transparent src = %v, want unchanged %v", dst, want)
	}
}

func TestDstOverPRGB32OpaqueDstUnchanged(t *testing.T) {
	// dst is fully opaque (A=255), so DstOver's (1-dstA) term is zero and
	// dst should be left exactly as it was.
	want := []byte{1, 2, 3, 255}
	dst := append([]byte(nil), want...)
	src := []byte{9, 9, 9, 9}
	dstOverPRGB32(dst, src, 1, &span.Closure{})
	if !bytes.Equal(dst, want) {
		t.Fatalf("dstOverPRGB32 with opaque dst = %v, want unchanged %v", dst, want)
	}
}

func TestDstOverPRGB32TransparentDstTakesSource(t *testing.T) {
	dst := []byte{0, 0, 0, 0}
	src := []byte{5, 6, 7, 8}
	dstOverPRGB32(dst, src, 1, &span.Closure{})
	if !bytes.Equal(dst, src) {
		t.Fatalf("dstOverPRGB32 with transparent dst = %v, want %v", dst, src)
	}
}

func TestSrcOverPRGB64OpaqueSourceReplaces(t *testing.T) {
	src := []byte{0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}
	dst := []byte{1, 0, 2, 0, 3, 0, 4, 0}
	srcOverPRGB64(dst, src, 1, &span.Closure{})
	if !bytes.Equal(dst, src) {
		t.Fatalf("srcOverPRGB64 with opaque src = %v, want %v", dst, src)
	}
}

func TestClearBytesZeroesDst(t *testing.T) {
	dst := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	clearBytes(4)(dst, nil, 2, &span.Closure{})
	for i, b := range dst {
		if b != 0 {
			t.Fatalf("dst[%d] = %d, want 0 after clearBytes", i, b)
		}
	}
}
