package main

import (
	"testing"

	"github.com/phanxgames/raytracer"
)

func TestHourMarks(t *testing.T) {
	c := raytracer.NewCanvas(100, 100)
	marks := hourMarks(c, 30)
	if len(marks) != 12 {
		t.Fatalf("len = %d, want 12", len(marks))
	}

	tests := []struct {
		hour int
		want raytracer.Point
	}{
		{0, raytracer.NewPoint(50, 80, 0)},
		{3, raytracer.NewPoint(80, 50, 0)},
		{6, raytracer.NewPoint(50, 20, 0)},
		{9, raytracer.NewPoint(20, 50, 0)},
	}
	for _, tt := range tests {
		if got := marks[tt.hour]; !got.Equal(tt.want) {
			t.Errorf("hour %d = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestRunClockPaintsTwelveMarks(t *testing.T) {
	c := raytracer.NewCanvas(100, 100)
	if err := runCommand(t, "clock", c, "-radius", "1"); err != nil {
		t.Fatal(err)
	}
	white := raytracer.White.Pixel()
	n := 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.PixelAt(x, y) == white {
				n++
			}
		}
	}
	if n != 12 {
		t.Errorf("painted = %d, want 12", n)
	}
}
