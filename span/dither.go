package span

// bayer8 is the classic 8x8 ordered dither matrix, values 0..63, indexed
// [y&7][x&7]. Grounded on original_source's Converter.cpp dither tables for
// Conv_RGB16_5650_From_XRGB32_dither and its siblings, which index a single
// precomputed byte per (x, y) and read a variable number of its high bits
// depending on how many low bits a given channel is about to lose.
var bayer8 = [8][8]uint8{
	{0, 32, 8, 40, 2, 34, 10, 42},
	{48, 16, 56, 24, 50, 18, 58, 26},
	{12, 44, 4, 36, 14, 46, 6, 38},
	{60, 28, 52, 20, 62, 30, 54, 22},
	{3, 35, 11, 43, 1, 33, 9, 41},
	{51, 19, 59, 27, 49, 17, 57, 25},
	{15, 47, 7, 39, 13, 45, 5, 37},
	{63, 31, 55, 23, 61, 29, 53, 21},
}

// ditherByte returns the 8-bit ordered-dither value for pixel (x, y),
// scaling the 0..63 matrix entry up to occupy the full byte range.
func ditherByte(x, y int) uint8 {
	return bayer8[y&7][x&7]<<2 | bayer8[y&7][x&7]>>4
}

// ditherNudge rounds value (an 8-bit channel sample) up by one quantization
// step of bitsLost bits when the ordered-dither threshold for (x, y) says to
// and doing so would not overflow the 8-bit channel. bitsLost is the number
// of low bits the destination format is about to discard; 0 means no
// reduction is happening and the value passes through unchanged.
func ditherNudge(value uint32, bitsLost uint8, x, y int) uint32 {
	if bitsLost == 0 {
		return value
	}
	threshold := uint32(ditherByte(x, y)) >> (8 - bitsLost)
	lowBits := value & (1<<bitsLost - 1)
	step := uint32(1) << bitsLost
	saturated := value > 255-step
	if lowBits >= threshold && !saturated {
		value += step
	}
	return value
}
