package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/phanxgames/raytracer"
	"github.com/phanxgames/raytracer/preview"
)

func archCommand(fs *flag.FlagSet) func(c *raytracer.Canvas) error {
	sim := raytracer.DefaultSimConfig()

	var (
		x, y        float64
		dragX       float64
		dragY       float64
		showPreview bool
	)
	fs.Float64Var(&x, "x", sim.Launch.Direction.X, "The X component of the initial velocity")
	fs.Float64Var(&y, "y", sim.Launch.Direction.Y, "The Y component of the initial velocity")
	fs.Float64Var(&sim.Launch.Speed, "m", sim.Launch.Speed, "The magnitude of the initial velocity")
	fs.Float64Var(&dragX, "drag-x", sim.Drag.X, "Drag added to the X velocity every step")
	fs.Float64Var(&dragY, "drag-y", sim.Drag.Y, "Drag added to the Y velocity every step")
	fs.IntVar(&sim.BrushRadius, "radius", sim.BrushRadius, "Brush half-width in pixels")
	fs.IntVar(&sim.MaxSteps, "max-steps", 0, "Stop after this many steps (0 = no limit)")
	fs.BoolVar(&sim.ContinueOffCanvas, "continue-off-canvas", false, "Keep simulating after the path leaves the canvas")
	fs.BoolVar(&showPreview, "preview", false, "Replay the trajectory in a window before saving")

	return func(c *raytracer.Canvas) error {
		sim.Launch.Direction = raytracer.NewVector(x, y, 0)
		sim.Drag = raytracer.NewVector(dragX, dragY, 0)

		res, err := raytracer.Simulate(c, sim)
		if err != nil {
			return fmt.Errorf("arch: %w", err)
		}
		slog.Info("trajectory simulated",
			"outcome", res.Outcome,
			"steps", res.Steps,
			"painted", res.Painted,
			"final", res.Final.Position)

		if showPreview {
			return preview.Run(c, res.Path, &preview.Options{
				Title:       "raytracer arch",
				Color:       sim.Color,
				BrushRadius: sim.BrushRadius,
				ShowStats:   true,
			})
		}
		return nil
	}
}
