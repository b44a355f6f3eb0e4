package raytracer

import (
	"image"
	"math"
	"reflect"
	"testing"
)

func TestNewCanvasIsBlack(t *testing.T) {
	c := NewCanvas(10, 20)
	if c.Width() != 10 || c.Height() != 20 {
		t.Fatalf("size = %dx%d, want 10x20", c.Width(), c.Height())
	}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if p := c.PixelAt(x, y); p != (Pixel{}) {
				t.Fatalf("pixel (%d, %d) = %v, want black", x, y, p)
			}
		}
	}
	if len(c.Bytes()) != 10*20*3 {
		t.Errorf("Bytes len = %d, want %d", len(c.Bytes()), 10*20*3)
	}
}

func TestCanvasInBounds(t *testing.T) {
	c := NewCanvas(10, 5)
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"origin", 0, 0, true},
		{"last pixel", 9, 4, true},
		{"x at width", 10, 0, false},
		{"y at height", 0, 5, false},
		{"negative x", -1, 2, false},
		{"negative y", 2, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.InBounds(tt.x, tt.y); got != tt.want {
				t.Errorf("InBounds(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSetPixel(t *testing.T) {
	c := NewCanvas(10, 20)
	red := NewColor(1, 0, 0).Pixel()
	if !c.SetPixel(2, 3, red) {
		t.Fatal("in-bounds write reported clipped")
	}
	if got := c.PixelAt(2, 3); got != red {
		t.Errorf("PixelAt(2, 3) = %v, want %v", got, red)
	}
	b := c.Bytes()
	i := (3*10 + 2) * 3
	if b[i] != 255 || b[i+1] != 0 || b[i+2] != 0 {
		t.Errorf("Bytes at (2, 3) = %v", b[i:i+3])
	}
}

func TestSetPixelOutOfBoundsIsNoop(t *testing.T) {
	c := NewCanvas(4, 4)
	before := c.Bytes()
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		if c.SetPixel(pt[0], pt[1], Pixel{255, 255, 255}) {
			t.Errorf("SetPixel(%d, %d) reported a write", pt[0], pt[1])
		}
	}
	if !reflect.DeepEqual(before, c.Bytes()) {
		t.Error("out-of-bounds writes changed the buffer")
	}
	if got := c.PixelAt(-1, -1); got != (Pixel{}) {
		t.Errorf("PixelAt out of bounds = %v, want black", got)
	}
}

func TestZeroAreaCanvas(t *testing.T) {
	for _, c := range []*Canvas{NewCanvas(0, 0), NewCanvas(0, 10), NewCanvas(-5, 3)} {
		if c.Width()*c.Height() != 0 {
			t.Fatalf("size = %dx%d, want zero area", c.Width(), c.Height())
		}
		if c.SetPixel(0, 0, Pixel{1, 2, 3}) {
			t.Error("write to zero-area canvas landed")
		}
		if n := c.Paint(0, 0, 3, Pixel{1, 2, 3}); n != 0 {
			t.Errorf("Paint wrote %d pixels", n)
		}
		if len(c.Bytes()) != 0 {
			t.Errorf("Bytes len = %d, want 0", len(c.Bytes()))
		}
	}
}

func TestToRaster(t *testing.T) {
	tests := []struct {
		x, y         float64
		height       int
		wantX, wantY int
	}{
		{0, 0, 10, 0, 10},
		{0, 1, 10, 0, 9},
		{3.4, 2.6, 10, 3, 7},
		{5, 10, 10, 5, 0},
		{-0.6, 12, 10, -1, -2},
		{math.Inf(1), math.Inf(-1), 10, 1 << 30, 10 + 1<<30},
		{1e300, -1e300, 10, 1 << 30, 10 + 1<<30},
		{math.NaN(), math.NaN(), 10, -1 << 30, 10 + 1<<30},
		{-1e19, 1e19, 10, -1 << 30, 10 - 1<<30},
	}
	for _, tt := range tests {
		x, y := ToRaster(tt.x, tt.y, tt.height)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("ToRaster(%v, %v, %d) = (%d, %d), want (%d, %d)", tt.x, tt.y, tt.height, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestProject(t *testing.T) {
	c := NewCanvas(10, 10)
	x, y, ok := c.Project(NewPoint(3, 2, 99))
	if !ok || x != 3 || y != 8 {
		t.Errorf("Project = (%d, %d, %v), want (3, 8, true)", x, y, ok)
	}
	if _, _, ok := c.Project(NewPoint(3, 0, 0)); ok {
		t.Error("y = 0 maps to row height and should be off canvas")
	}
	if _, _, ok := c.Project(NewPoint(1e300, 5, 0)); ok {
		t.Error("huge x reported on canvas")
	}
	if _, _, ok := c.Project(NewPoint(math.NaN(), 5, 0)); ok {
		t.Error("NaN x reported on canvas")
	}
}

func TestNeighborsCenter(t *testing.T) {
	c := NewCanvas(10, 10)
	got := c.Neighbors(5, 5, 2)
	want := []image.Point{
		{4, 4}, {5, 4}, {6, 4},
		{4, 5}, {5, 5}, {6, 5},
		{4, 6}, {5, 6}, {6, 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(5, 5, 2) = %v, want %v", got, want)
	}
	for i := 0; i < 3; i++ {
		if again := c.Neighbors(5, 5, 2); !reflect.DeepEqual(again, got) {
			t.Fatalf("Neighbors not deterministic: %v vs %v", again, got)
		}
	}
}

func TestNeighborsClipToEdges(t *testing.T) {
	c := NewCanvas(10, 10)
	tests := []struct {
		name      string
		x, y, r   int
		wantCount int
	}{
		{"top-left corner", 0, 0, 2, 4},
		{"bottom-right corner", 9, 9, 3, 9},
		{"left edge", 0, 5, 2, 6},
		{"outside", -10, -10, 2, 0},
		{"radius one is the center", 3, 3, 1, 1},
		{"radius zero", 3, 3, 0, 0},
		{"negative radius", 3, 3, -2, 0},
		{"covers canvas", 5, 5, 20, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Neighbors(tt.x, tt.y, tt.r)
			if len(got) != tt.wantCount {
				t.Errorf("len = %d, want %d (%v)", len(got), tt.wantCount, got)
			}
			for _, p := range got {
				if !c.InBounds(p.X, p.Y) {
					t.Errorf("out-of-bounds neighbor %v", p)
				}
			}
		})
	}
}

func TestPaint(t *testing.T) {
	c := NewCanvas(10, 10)
	px := Pixel{10, 20, 30}
	if n := c.Paint(0, 0, 2, px); n != 4 {
		t.Errorf("Paint wrote %d pixels, want 4", n)
	}
	if c.PixelAt(1, 1) != px || c.PixelAt(2, 2) == px {
		t.Error("Paint covered the wrong pixels")
	}
}

func TestFillAndClone(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Fill(Pixel{1, 2, 3})
	d := c.Clone()
	d.SetPixel(0, 0, Pixel{9, 9, 9})
	if c.PixelAt(0, 0) != (Pixel{1, 2, 3}) {
		t.Error("Clone shares its buffer with the original")
	}
	if d.PixelAt(2, 1) != (Pixel{1, 2, 3}) {
		t.Error("Clone lost the original pixels")
	}
}

func TestCanvasImage(t *testing.T) {
	c := NewCanvas(4, 3)
	c.SetPixel(1, 2, Pixel{139, 51, 26})
	var img image.Image = c
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds = %v", img.Bounds())
	}
	r, g, b, a := img.At(1, 2).RGBA()
	if r>>8 != 139 || g>>8 != 51 || b>>8 != 26 || a>>8 != 255 {
		t.Errorf("At(1, 2) = %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestCopyRGBA(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetPixel(0, 0, Pixel{10, 20, 30})
	c.SetPixel(1, 0, Pixel{255, 0, 128})

	tests := []struct {
		name  string
		size  int
		wantN int
		want  []byte
	}{
		{"exact", 8, 2, []byte{10, 20, 30, 255, 255, 0, 128, 255}},
		{"short", 6, 1, []byte{10, 20, 30, 255, 0, 0}},
		{"oversized", 10, 2, []byte{10, 20, 30, 255, 255, 0, 128, 255, 0, 0}},
		{"empty", 0, 0, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.size)
			if n := c.CopyRGBA(dst); n != tt.wantN {
				t.Errorf("n = %d, want %d", n, tt.wantN)
			}
			if !reflect.DeepEqual(dst, tt.want) {
				t.Errorf("dst = %v, want %v", dst, tt.want)
			}
		})
	}
}

func TestCopyRGBADoesNotAllocate(t *testing.T) {
	c := NewCanvas(64, 64)
	dst := make([]byte, 4*64*64)
	if n := testing.AllocsPerRun(10, func() { c.CopyRGBA(dst) }); n != 0 {
		t.Errorf("allocs = %v, want 0", n)
	}
}
