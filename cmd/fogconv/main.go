// fogconv converts a raw pixel dump from one format to another, optionally
// clipping to a rectangle first.
//
// Usage:
//
//	fogconv -from <format> -to <format> -w <width> -h <height> [-clip x1,y1,x2,y2] <infile> <outfile>
//
// Options:
//
//	-from FORMAT   Source pixel format name (required).
//	-to FORMAT     Destination pixel format name (required).
//	-w N           Source image width in pixels (required).
//	-h N           Source image height in pixels (required).
//	-clip BOX      Clip to x1,y1,x2,y2 before converting (optional).
//	--help         Show this help message.
//
// Recognized format names: ARGB32, PRGB32, XRGB32, ARGB64, PRGB64, A8, I8,
// RGB24, BGR24, RGB16_555, RGB16_565, ARGB16_4444.
//
// Exit codes:
//
//	0: Conversion succeeded
//	2: Usage error (missing, unknown or non-integer option, unknown format name)
//	3: Conversion failed (I/O error, invalid size or -clip value, unsupported conversion)
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mrjoshuak/fog/convert"
	"github.com/mrjoshuak/fog/image"
	"github.com/mrjoshuak/fog/pixel"
	"github.com/mrjoshuak/fog/region"
)

var formatNames = map[string]pixel.FormatID{
	"ARGB32":      pixel.ARGB32,
	"PRGB32":      pixel.PRGB32,
	"XRGB32":      pixel.XRGB32,
	"ARGB64":      pixel.ARGB64,
	"PRGB64":      pixel.PRGB64,
	"A8":          pixel.A8,
	"I8":          pixel.I8,
	"RGB24":       pixel.RGB24,
	"BGR24":       pixel.BGR24,
	"RGB16_555":   pixel.RGB16_555,
	"RGB16_565":   pixel.RGB16_565,
	"ARGB16_4444": pixel.ARGB16_4444,
}

func main() {
	var from, to, clipArg string
	var width, height int
	var haveWidth, haveHeight bool
	var files []string

	for i := 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		switch arg {
		case "-from":
			i++
			from = argAt(i, "-from")
		case "-to":
			i++
			to = argAt(i, "-to")
		case "-w":
			i++
			width = intArgAt(i, "-w")
			haveWidth = true
		case "-h":
			i++
			height = intArgAt(i, "-h")
			haveHeight = true
		case "-clip":
			i++
			clipArg = argAt(i, "-clip")
		case "--help":
			printUsage()
			os.Exit(0)
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "Unknown option: %s\n", arg)
				printUsage()
				os.Exit(2)
			}
			files = append(files, arg)
		}
	}

	if from == "" || to == "" || !haveWidth || !haveHeight || len(files) != 2 {
		fmt.Fprintln(os.Stderr, "Error: -from, -to, -w, -h and both <infile> <outfile> are required")
		printUsage()
		os.Exit(2)
	}

	srcDesc, ok := pixel.FromFormatID(formatNames[strings.ToUpper(from)])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown source format %q\n", from)
		os.Exit(2)
	}
	dstDesc, ok := pixel.FromFormatID(formatNames[strings.ToUpper(to)])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown destination format %q\n", to)
		os.Exit(2)
	}

	if err := run(srcDesc, dstDesc, width, height, clipArg, files[0], files[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(3)
	}
}

func run(srcDesc, dstDesc pixel.Descriptor, width, height int, clipArg, infile, outfile string) error {
	raw, err := os.ReadFile(infile)
	if err != nil {
		return err
	}

	src, err := image.Create(width, height, srcDesc)
	if err != nil {
		return err
	}
	srcBPP := srcDesc.BytesPerPixel()
	rowBytes := width * srcBPP
	if len(raw) < rowBytes*height {
		return fmt.Errorf("input file too small: got %d bytes, need %d", len(raw), rowBytes*height)
	}
	for y := 0; y < height; y++ {
		copy(src.MutableRow(y)[:rowBytes], raw[y*rowBytes:(y+1)*rowBytes])
	}

	clip := region.FromBox(region.NewBox(0, 0, int32(width), int32(height)))
	if clipArg != "" {
		b, err := parseBox(clipArg)
		if err != nil {
			return err
		}
		clip = clip.Intersect(region.FromBox(b))
	}

	dst, err := image.Create(width, height, dstDesc)
	if err != nil {
		return err
	}

	plan, err := convert.Setup(dstDesc, srcDesc)
	if err != nil {
		return err
	}
	if err := image.BlitRegion(&dst, plan, src, 0, 0, clip); err != nil {
		return err
	}

	out, err := os.Create(outfile)
	if err != nil {
		return err
	}
	defer out.Close()

	dstRowBytes := width * dstDesc.BytesPerPixel()
	for y := 0; y < height; y++ {
		if _, err := out.Write(dst.Row(y)[:dstRowBytes]); err != nil {
			return err
		}
	}
	return nil
}

func parseBox(s string) (region.Box, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return region.Box{}, fmt.Errorf("invalid -clip value %q, want x1,y1,x2,y2", s)
	}
	var v [4]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return region.Box{}, fmt.Errorf("invalid -clip value %q: %w", s, err)
		}
		v[i] = n
	}
	return region.NewBox(int32(v[0]), int32(v[1]), int32(v[2]), int32(v[3])), nil
}

func argAt(i int, flag string) string {
	if i >= len(os.Args) {
		fmt.Fprintf(os.Stderr, "Error: %s requires a value\n", flag)
		os.Exit(2)
	}
	return os.Args[i]
}

func intArgAt(i int, flag string) int {
	s := argAt(i, flag)
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s requires an integer, got %q\n", flag, s)
		os.Exit(2)
	}
	return n
}

func printUsage() {
	fmt.Println(`Usage: fogconv -from FORMAT -to FORMAT -w N -h N [-clip x1,y1,x2,y2] <infile> <outfile>

Convert a raw pixel dump from one format to another, optionally clipping
to a rectangle first.

Options:
  -from FORMAT   Source pixel format name (required).
  -to FORMAT     Destination pixel format name (required).
  -w N           Source image width in pixels (required).
  -h N           Source image height in pixels (required).
  -clip BOX      Clip to x1,y1,x2,y2 before converting (optional).
  --help         Show this help message.

Recognized formats: ARGB32, PRGB32, XRGB32, ARGB64, PRGB64, A8, I8, RGB24,
BGR24, RGB16_555, RGB16_565, ARGB16_4444.

Examples:
  fogconv -from RGB16_565 -to XRGB32 -w 64 -h 64 in.raw out.raw
  fogconv -from ARGB32 -to PRGB32 -w 256 -h 256 -clip 0,0,128,128 in.raw out.raw`)
}
