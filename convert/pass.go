package convert

import (
	"github.com/mrjoshuak/fog/pixel"
	"github.com/mrjoshuak/fog/span"
)

// pivot32 and pivot64 are the two intermediate formats every non-fast-path
// conversion passes through, reusing the canonical ARGB32/ARGB64 channel
// layouts directly so the unpack/pack math never has to hardcode a shift.
var (
	pivot32 = pixel.MustFormat(pixel.ARGB32)
	pivot64 = pixel.MustFormat(pixel.ARGB64)
)

func needsWide(d pixel.Descriptor) bool {
	return d.A.Size > 8 || d.R.Size > 8 || d.G.Size > 8 || d.B.Size > 8
}

func maxForSize(size uint8) uint64 {
	if size == 0 {
		return 0
	}
	return uint64(1)<<size - 1
}

// scaleFactor computes round(dstMax*65537/srcMax), the constant
// span.PassChannel.Scale applies to rescale one channel from srcMax's range
// to dstMax's range.
func scaleFactor(dstMax, srcMax uint64) uint32 {
	if srcMax == 0 {
		return 0
	}
	return uint32((dstMax*65537 + srcMax/2) / srcMax)
}

// buildUnpack builds the ConvertPass that reads src's native layout and
// writes pivot's layout (the "unpack" half of a two-pass conversion).
// A channel src doesn't carry gets a fixed value: color channels absent
// from src contribute zero, and a missing alpha channel fills the pivot's
// alpha to fully opaque.
func buildUnpack(src, pivot pixel.Descriptor) *span.ConvertPass {
	pass := &span.ConvertPass{SrcBPP: src.BytesPerPixel(), DstBPP: pivot.BytesPerPixel()}
	pass.A = unpackChannel(src.A, pivot.A, true)
	pass.R = unpackChannel(src.R, pivot.R, false)
	pass.G = unpackChannel(src.G, pivot.G, false)
	pass.B = unpackChannel(src.B, pivot.B, false)
	if src.A.Size == 0 {
		pass.Fill |= pivot.A.Mask
	}
	return pass
}

func unpackChannel(srcCh, pivotCh pixel.Channel, isAlpha bool) span.PassChannel {
	if srcCh.Size == 0 {
		return span.PassChannel{}
	}
	return span.PassChannel{
		SrcMask:  srcCh.Mask,
		SrcShift: srcCh.Shift,
		Scale:    scaleFactor(maxForSize(pivotCh.Size), maxForSize(srcCh.Size)),
		DstShift: pivotCh.Shift,
	}
}

// buildPack builds the ConvertPass that reads pivot's layout and writes
// dst's native layout (the "pack" half of a two-pass conversion). A channel
// dst doesn't carry is simply dropped; FillUnusedBits asks for the bits no
// channel claims to be set, matching the canonical XRGB32 convention.
func buildPack(pivot, dst pixel.Descriptor) *span.ConvertPass {
	pass := &span.ConvertPass{SrcBPP: pivot.BytesPerPixel(), DstBPP: dst.BytesPerPixel()}
	pass.A = packChannel(pivot.A, dst.A)
	pass.R = packChannel(pivot.R, dst.R)
	pass.G = packChannel(pivot.G, dst.G)
	pass.B = packChannel(pivot.B, dst.B)
	if dst.FillUnusedBits {
		used := dst.A.Mask | dst.R.Mask | dst.G.Mask | dst.B.Mask
		limit := maxForSize(dst.Depth)
		if dst.Depth == 64 {
			limit = ^uint64(0)
		}
		pass.Fill |= limit &^ used
	}
	return pass
}

func packChannel(pivotCh, dstCh pixel.Channel) span.PassChannel {
	if dstCh.Size == 0 {
		return span.PassChannel{}
	}
	return span.PassChannel{
		SrcMask:  pivotCh.Mask,
		SrcShift: pivotCh.Shift,
		Scale:    scaleFactor(maxForSize(dstCh.Size), maxForSize(pivotCh.Size)),
		DstShift: dstCh.Shift,
	}
}

// needsDither reports whether packing from pivot to dst throws away any
// color-channel precision, which calls for GenericDither instead of
// Generic on the dithered paths into RGB16_565/555 and ARGB16_4444.
func needsDither(pivot, dst pixel.Descriptor) bool {
	return channelLosesBits(pivot.R, dst.R) || channelLosesBits(pivot.G, dst.G) || channelLosesBits(pivot.B, dst.B)
}

func channelLosesBits(pivotCh, dstCh pixel.Channel) bool {
	return dstCh.Size > 0 && dstCh.Size < pivotCh.Size
}

// applyDitherBits fills in DitherBits on the R/G/B legs of a pack pass built
// by buildPack, for use alongside needsDither.
func applyDitherBits(pass *span.ConvertPass, pivot, dst pixel.Descriptor) {
	if dst.R.Size > 0 && dst.R.Size < pivot.R.Size {
		pass.R.DitherBits = pivot.R.Size - dst.R.Size
	}
	if dst.G.Size > 0 && dst.G.Size < pivot.G.Size {
		pass.G.DitherBits = pivot.G.Size - dst.G.Size
	}
	if dst.B.Size > 0 && dst.B.Size < pivot.B.Size {
		pass.B.DitherBits = pivot.B.Size - dst.B.Size
	}
}
