package raytracer

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		base, ext, want string
	}{
		{"arch", "ppm", "arch.ppm"},
		{"clock-face", ".png", "clock-face.png"},
		{"frame.01", "bmp", "frame.01.bmp"},
		{"has spaces", "ppm", "has_spaces.ppm"},
		{"renders/arch 1", ".png", "renders/arch_1.png"},
		{"back\\slash", "ppm", "back_slash.ppm"},
		{"special!@#$%", "ppm", "special_____.ppm"},
		{"naïve", "ppm", "na_ve.ppm"},
		{"", "ppm", "out.ppm"},
		{"   ", "tiff", "out.tiff"},
		{"MixedCase123", "jpg", "MixedCase123.jpg"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.base, tt.ext); got != tt.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.base, tt.ext, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"ppm", FormatPPM},
		{".PPM", FormatPPM},
		{"png", FormatPNG},
		{"jpg", FormatJPEG},
		{".jpeg", FormatJPEG},
		{"bmp", FormatBMP},
		{"tif", FormatTIFF},
		{"TIFF", FormatTIFF},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "gif", "pp m"} {
		if _, err := ParseFormat(bad); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseFormat(%q) err = %v, want ErrUnknownFormat", bad, err)
		}
	}
}

func testCanvas() *Canvas {
	c := NewCanvas(2, 1)
	c.SetPixel(0, 0, Pixel{255, 0, 0})
	c.SetPixel(1, 0, Pixel{0, 0, 255})
	return c
}

func TestEncodePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testCanvas(), FormatPPM); err != nil {
		t.Fatal(err)
	}
	want := append([]byte("P6\n2 1\n255\n"), 255, 0, 0, 0, 0, 255)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("ppm = %q, want %q", buf.Bytes(), want)
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testCanvas(), FormatPNG); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	r, g, b, a := img.At(1, 0).RGBA()
	if r != 0 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("At(1, 0) = (%d, %d, %d, %d), want opaque blue", r, g, b, a)
	}
}

func TestEncodeBMPAndTIFFDecode(t *testing.T) {
	for _, f := range []Format{FormatBMP, FormatTIFF} {
		var buf bytes.Buffer
		if err := Encode(&buf, testCanvas(), f); err != nil {
			t.Fatalf("%v: %v", f, err)
		}
		decode := bmp.Decode
		if f == FormatTIFF {
			decode = tiff.Decode
		}
		img, err := decode(&buf)
		if err != nil {
			t.Fatalf("%v decode: %v", f, err)
		}
		r, _, _, _ := img.At(0, 0).RGBA()
		if r != 0xffff {
			t.Errorf("%v: red channel = %d, want 0xffff", f, r)
		}
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testCanvas(), Format(99)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestSaveCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{"ppm", "png", "jpg", "bmp", "tiff"} {
		path := filepath.Join(dir, "nested", "arch."+ext)
		if err := Save(path, testCanvas()); err != nil {
			t.Fatalf("Save(%s): %v", path, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}

func TestSaveUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arch.gif")
	if err := Save(path, testCanvas()); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file created for unknown extension")
	}
}
