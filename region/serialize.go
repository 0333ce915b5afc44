package region

import (
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/mrjoshuak/fog/internal/xdr"
)

// ErrTruncated is returned by Unmarshal/UnmarshalCompressed when the input
// ends before a complete count or box record. It is returned in place of
// xdr.ErrShortBuffer and does not wrap it.
var ErrTruncated = errors.New("region: truncated data")

// Marshal encodes r as a 4-byte little-endian box count followed by that
// many Box records, each four little-endian int32s (X1, Y1, X2, Y2) —
// a sequence of boxes preceded by a count — written with a growing
// xdr.BufferWriter.
func (r Region) Marshal() []byte {
	boxes := r.Boxes()
	w := xdr.NewBufferWriter(4 + len(boxes)*16)
	w.WriteUint32(uint32(len(boxes)))
	for _, b := range boxes {
		w.WriteInt32(b.X1)
		w.WriteInt32(b.Y1)
		w.WriteInt32(b.X2)
		w.WriteInt32(b.Y2)
	}
	return w.Bytes()
}

// Unmarshal is the inverse of Marshal.
func Unmarshal(data []byte) (Region, error) {
	r := xdr.NewReader(data)
	count, err := r.ReadUint32()
	if err != nil {
		return Region{}, ErrTruncated
	}

	boxes := make([]Box, count)
	var extent Box
	for i := range boxes {
		x1, err1 := r.ReadInt32()
		y1, err2 := r.ReadInt32()
		x2, err3 := r.ReadInt32()
		y2, err4 := r.ReadInt32()
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return Region{}, ErrTruncated
		}
		b := Box{X1: x1, Y1: y1, X2: x2, Y2: y2}
		boxes[i] = b
		extent = extent.BoundingBox(b)
	}
	return fromBoxes(boxes, extent), nil
}

// MarshalCompressed is Marshal with its output zlib-compressed at the
// given level, via zlib.NewWriterLevel (UnmarshalCompressed reads it back
// with zlib.NewReader). Box lists compress well — wide
// runs of bands sharing the same width — so this shrinks a serialized clip
// region before it hits a writer.
func (r Region) MarshalCompressed(level int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(r.Marshal()); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalCompressed is the inverse of MarshalCompressed.
func UnmarshalCompressed(data []byte) (Region, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return Region{}, err
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return Region{}, err
	}
	return Unmarshal(raw)
}
