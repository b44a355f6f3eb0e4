package raytracer

import (
	"bufio"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format selects an image encoding for Encode and Save.
type Format uint8

const (
	FormatPPM  Format = iota // binary portable pixmap (P6)
	FormatPNG                // lossless PNG
	FormatJPEG               // baseline JPEG
	FormatBMP                // uncompressed Windows bitmap
	FormatTIFF               // TIFF with deflate compression
)

// jpegQuality is used for FormatJPEG output.
const jpegQuality = 95

func (f Format) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat maps a file extension, with or without the leading dot and
// in any case, to a Format.
func ParseFormat(ext string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), ".")) {
	case "ppm":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return 0, fmt.Errorf("extension %q: %w", ext, ErrUnknownFormat)
}

// Encode writes c to w in the given format.
func Encode(w io.Writer, c *Canvas, f Format) error {
	switch f {
	case FormatPPM:
		return encodePPM(w, c)
	case FormatPNG:
		return png.Encode(w, c)
	case FormatJPEG:
		return jpeg.Encode(w, c, &jpeg.Options{Quality: jpegQuality})
	case FormatBMP:
		return bmp.Encode(w, c)
	case FormatTIFF:
		return tiff.Encode(w, c, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("encode: %v: %w", f, ErrUnknownFormat)
}

// Save encodes c to path, choosing the format from the file extension.
// Missing parent directories are created.
func Save(path string, c *Canvas) error {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return writeFile(path, c, f)
}

// writeFile encodes a canvas to a file at the given path.
func writeFile(path string, c *Canvas, f Format) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(out, c, f); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}

// encodePPM writes the binary P6 variant: a text header followed by the
// raw RGB bytes, row-major and top-down.
func encodePPM(w io.Writer, c *Canvas) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", c.width, c.height); err != nil {
		return err
	}
	for _, p := range c.pix {
		if _, err := bw.Write(p[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// OutputPath joins a base name and an extension into a file name, the way
// the command line tool names its output. Runes outside [A-Za-z0-9._/-]
// become underscores, so a base may still name a directory. An empty base
// falls back to "out".
func OutputPath(base, ext string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "out"
	}
	return strings.Map(fileNameRune, base) + "." + strings.TrimPrefix(ext, ".")
}

func fileNameRune(r rune) rune {
	if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("-._/", r)) {
		return r
	}
	return '_'
}
