package convert

import (
	"sync"
	"sync/atomic"
)

// TilePixels is the number of pixels processed per scratch-buffer pass when
// a conversion needs to pivot through the ARGB32/ARGB64 intermediate format.
// Grounded on original_source's Converter.cpp Conv_Multi, which tiles its
// two-pass loop through a 2048-byte stack buffer at 512 pixels; the same
// tile count here backs a 2048-byte buffer for the 8-bit-per-channel pivot
// (ARGB32) and a 4096-byte buffer for the 16-bit-per-channel pivot (ARGB64).
const TilePixels = 512

// scratchPool hands out fixed-size intermediate buffers for the two pivot
// widths a Plan can need. Sized discretely rather than by exact request,
// the same way exr/pool.go's BufferPool buckets allocations, but trimmed to
// the two sizes this package ever asks for.
type scratchPool struct {
	pool32 sync.Pool // TilePixels * 4 bytes (ARGB32 pivot)
	pool64 sync.Pool // TilePixels * 8 bytes (ARGB64 pivot)
	hits   int64
	misses int64
}

var globalScratch = newScratchPool()

func newScratchPool() *scratchPool {
	p := &scratchPool{}
	p.pool32.New = func() any { return make([]byte, TilePixels*4) }
	p.pool64.New = func() any { return make([]byte, TilePixels*8) }
	return p
}

// get returns a scratch buffer sized for bpp bytes per pixel (4 or 8),
// TilePixels pixels long.
func (p *scratchPool) get(bpp int) []byte {
	var buf []byte
	switch bpp {
	case 4:
		buf = p.pool32.Get().([]byte)
	case 8:
		buf = p.pool64.Get().([]byte)
	default:
		atomic.AddInt64(&p.misses, 1)
		return make([]byte, TilePixels*bpp)
	}
	atomic.AddInt64(&p.hits, 1)
	return buf
}

func (p *scratchPool) put(buf []byte, bpp int) {
	switch bpp {
	case 4:
		p.pool32.Put(buf) //nolint:staticcheck // fixed-size buffer, safe to recycle
	case 8:
		p.pool64.Put(buf)
	}
}

// Stats reports scratch-pool hit/miss counts, mirroring exr/pool.go's
// instrumentation habit.
func Stats() (hits, misses int64) {
	return atomic.LoadInt64(&globalScratch.hits), atomic.LoadInt64(&globalScratch.misses)
}
