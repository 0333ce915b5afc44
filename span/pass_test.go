package span

import "testing"

// identityScale is round(255*65537/255): the Scale value that makes an
// extracted 8-bit channel pass through unchanged, since
// (v*65537)>>16 == v for every v below 65536.
const identityScale = 65537

func TestGenericIdentitySingleChannel(t *testing.T) {
	pass := &ConvertPass{
		A:      PassChannel{SrcMask: 0xFF, SrcShift: 0, Scale: identityScale, DstShift: 0},
		SrcBPP: 1, DstBPP: 1,
	}
	c := &Closure{Data: pass}
	for _, v := range []byte{0, 1, 64, 128, 200, 255} {
		dst := make([]byte, 1)
		Generic(dst, []byte{v}, 1, c)
		if dst[0] != v {
			t.Errorf("Generic single-channel identity: in=%d out=%d", v, dst[0])
		}
	}
}

func TestGenericPacksFourChannelsIntoARGB32Layout(t *testing.T) {
	// Source: four separate one-byte channels laid out consecutively as
	// B, G, R, A (an imaginary planar-ish 4-byte custom format used only to
	// exercise independent extraction).
	pass := &ConvertPass{
		A: PassChannel{SrcMask: 0xFF000000, SrcShift: 24, Scale: identityScale, DstShift: 24},
		R: PassChannel{SrcMask: 0x00FF0000, SrcShift: 16, Scale: identityScale, DstShift: 16},
		G: PassChannel{SrcMask: 0x0000FF00, SrcShift: 8, Scale: identityScale, DstShift: 8},
		B: PassChannel{SrcMask: 0x000000FF, SrcShift: 0, Scale: identityScale, DstShift: 0},
		SrcBPP: 4, DstBPP: 4,
	}
	c := &Closure{Data: pass}
	src := make([]byte, 4)
	storeLE(src, 0xAABBCCDD, 4) // A=AA R=BB G=CC B=DD in source word
	dst := make([]byte, 4)
	Generic(dst, src, 1, c)
	got := loadLE(dst, 4)
	if got != 0xAABBCCDD {
		t.Fatalf("Generic round-trip through matching masks = %#x, want %#x", got, uint64(0xAABBCCDD))
	}
}

func TestGenericAppliesFillMask(t *testing.T) {
	pass := &ConvertPass{
		Fill:   0xFF000000, // force opaque alpha, as when the destination is XRGB32
		R:      PassChannel{SrcMask: 0x00FF0000, SrcShift: 16, Scale: identityScale, DstShift: 16},
		G:      PassChannel{SrcMask: 0x0000FF00, SrcShift: 8, Scale: identityScale, DstShift: 8},
		B:      PassChannel{SrcMask: 0x000000FF, SrcShift: 0, Scale: identityScale, DstShift: 0},
		SrcBPP: 4, DstBPP: 4,
	}
	c := &Closure{Data: pass}
	src := make([]byte, 4)
	storeLE(src, 0x00112233, 4)
	dst := make([]byte, 4)
	Generic(dst, src, 1, c)
	got := loadLE(dst, 4)
	if got != 0xFF112233 {
		t.Fatalf("Generic with Fill = %#x, want %#x", got, uint64(0xFF112233))
	}
}

func TestGenericDitherRoundsUpAtOrigin(t *testing.T) {
	// Reducing an 8-bit channel to 5 bits (bitsLost=3) at dither origin
	// (0,0), whose threshold is 0, rounds any value with nonzero low bits
	// up before scaling.
	pass := &ConvertPass{
		R:      PassChannel{SrcMask: 0xFF, SrcShift: 0, Scale: identityScale, DstShift: 0, DitherBits: 3},
		SrcBPP: 1, DstBPP: 1,
	}
	c := &Closure{Data: pass, DitherX: 0, DitherY: 0}
	dst := make([]byte, 1)
	GenericDither(dst, []byte{1}, 1, c)
	if dst[0] != 9 {
		t.Fatalf("GenericDither at origin with bitsLost=3: got %d, want 9", dst[0])
	}
}
