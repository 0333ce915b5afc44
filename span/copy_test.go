package span

import (
	"bytes"
	"testing"
)

func TestMemCopySmallAndUnrolled(t *testing.T) {
	for _, width := range []int{1, 3, 7, 8, 31, 32, 33, 100} {
		bpp := 4
		src := make([]byte, width*bpp)
		for i := range src {
			src[i] = byte(i * 7)
		}
		dst := make([]byte, width*bpp)
		fn := MemCopy(bpp)
		fn(dst, src, width, nil)
		if !bytes.Equal(dst, src) {
			t.Fatalf("width=%d: MemCopy produced wrong bytes", width)
		}
	}
}

func TestByteSwap32(t *testing.T) {
	src := []byte{0x11, 0x22, 0x33, 0x44, 0xAA, 0xBB, 0xCC, 0xDD}
	dst := make([]byte, len(src))
	ByteSwap(4)(dst, src, 2, nil)
	want := []byte{0x44, 0x33, 0x22, 0x11, 0xDD, 0xCC, 0xBB, 0xAA}
	if !bytes.Equal(dst, want) {
		t.Fatalf("ByteSwap(4) = % x, want % x", dst, want)
	}
}

func TestByteSwap24(t *testing.T) {
	src := []byte{0x01, 0x02, 0x03}
	dst := make([]byte, 3)
	ByteSwap(3)(dst, src, 1, nil)
	want := []byte{0x03, 0x02, 0x01}
	if !bytes.Equal(dst, want) {
		t.Fatalf("ByteSwap(3) = % x, want % x", dst, want)
	}
}

func TestLoadStoreLERoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	storeLE(buf, 0x1122334455667788, 8)
	got := loadLE(buf, 8)
	if got != 0x1122334455667788 {
		t.Fatalf("loadLE(storeLE(v)) = %#x, want %#x", got, uint64(0x1122334455667788))
	}
}
