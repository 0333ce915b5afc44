package image

import (
	"errors"

	"github.com/mrjoshuak/fog/convert"
	"github.com/mrjoshuak/fog/region"
	"github.com/mrjoshuak/fog/span"
)

// ErrOutOfBounds is returned by Blit/BlitRegion when the requested rows or
// columns fall outside either buffer.
var ErrOutOfBounds = errors.New("image: blit rectangle out of bounds")

// Blit converts width pixels for each of height rows, reading from src at
// (srcX, srcY) and writing to dst at (dstX, dstY), using plan to convert
// each row: the caller invokes plan.Convert(dstRow, srcRow, widthPx,
// closure) once per row. Blit writes each row through dst.MutableRow, so a
// dst that still shares its storage is detached on the first row written;
// once dst is exclusive, repeated calls against it copy nothing.
func Blit(dst *Buffer, dstX, dstY int, plan convert.Plan, src Buffer, srcX, srcY, width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if srcX < 0 || srcY < 0 || srcX+width > src.Width() || srcY+height > src.Height() {
		return ErrOutOfBounds
	}
	if dstX < 0 || dstY < 0 || dstX+width > dst.Width() || dstY+height > dst.Height() {
		return ErrOutOfBounds
	}

	srcBPP := plan.Src().BytesPerPixel()
	if plan.Src().Indexed {
		srcBPP = 1
	}
	dstBPP := plan.Dst().BytesPerPixel()

	var pal *[256]uint32
	if p, ok := src.Palette(); ok {
		pal = p
	}

	for row := 0; row < height; row++ {
		srcRow := src.Row(srcY + row)
		dstRow := dst.MutableRow(dstY + row)
		srcOff := srcX * srcBPP
		dstOff := dstX * dstBPP
		c := &span.Closure{Palette: pal, DitherX: srcX, DitherY: srcY + row}
		plan.Convert(dstRow[dstOff:dstOff+width*dstBPP], srcRow[srcOff:srcOff+width*srcBPP], width, c)
	}
	return nil
}

// BlitRegion applies Blit once per box of clip, whose coordinates are
// interpreted in destination space; the matching source rectangle is
// offset by (dx, dy) = (srcOriginX-dstOriginX, srcOriginY-dstOriginY).
// clip's boxes are already Y-monotone (Region's own invariant), so this
// walks them in order and calls Blit once per clipped rectangle.
func BlitRegion(dst *Buffer, plan convert.Plan, src Buffer, dx, dy int, clip region.Region) error {
	for _, b := range clip.Boxes() {
		w := int(b.X2 - b.X1)
		h := int(b.Y2 - b.Y1)
		if err := Blit(dst, int(b.X1), int(b.Y1), plan, src, int(b.X1)+dx, int(b.Y1)+dy, w, h); err != nil {
			return err
		}
	}
	return nil
}
