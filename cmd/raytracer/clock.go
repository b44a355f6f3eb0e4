package main

import (
	"flag"
	"log/slog"
	"math"

	"github.com/phanxgames/raytracer"
)

// hourMarks returns the twelve hour positions of a clock face centered on
// the canvas, starting at twelve o'clock and running clockwise.
func hourMarks(c *raytracer.Canvas, radius float64) []raytracer.Point {
	cx, cy := float64(c.Width())/2, float64(c.Height())/2
	twelve := raytracer.NewPoint(0, 1, 0)

	marks := make([]raytracer.Point, 0, 12)
	for hour := 0; hour < 12; hour++ {
		m := raytracer.Chain(
			raytracer.RotationZ(-float64(hour)*math.Pi/6),
			raytracer.Scaling(radius, radius, 1),
			raytracer.Translation(cx, cy, 0),
		)
		marks = append(marks, m.MulPoint(twelve))
	}
	return marks
}

func clockCommand(fs *flag.FlagSet) func(c *raytracer.Canvas) error {
	var (
		brush int
		scale float64
	)
	fs.IntVar(&brush, "radius", 4, "Brush half-width in pixels")
	fs.Float64Var(&scale, "scale", 3.0/8, "Clock radius as a fraction of the smaller canvas side")

	return func(c *raytracer.Canvas) error {
		radius := scale * float64(min(c.Width(), c.Height()))
		px := raytracer.White.Pixel()
		painted := 0
		for _, p := range hourMarks(c, radius) {
			if x, y, ok := c.Project(p); ok {
				painted += c.Paint(x, y, brush, px)
			}
		}
		slog.Info("clock plotted", "radius", radius, "painted", painted)
		return nil
	}
}
