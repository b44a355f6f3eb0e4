// Package animation replays simulated paths over time. Tweens come from
// gween, so any of its easing functions can shape a replay.
package animation

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/raytracer"
)

// Replay reveals a simulated path onto a canvas over time. A tween drives
// the number of revealed path points from zero to the full path, so the
// easing function controls how the arc is drawn out.
//
// Replay has no window dependency; call Update(dt) from any loop.
type Replay struct {
	canvas   *raytracer.Canvas
	path     []raytracer.Point
	pixel    raytracer.Pixel
	radius   int
	tween    *gween.Tween
	revealed int
	Done     bool
}

// NewReplay prepares a replay of path onto a black canvas of the given
// size, painting each point with the brush radius and color.
func NewReplay(width, height int, path []raytracer.Point, c raytracer.Color, radius int, duration float32, fn ease.TweenFunc) *Replay {
	if fn == nil {
		fn = ease.Linear
	}
	if duration <= 0 {
		duration = 1
	}
	return &Replay{
		canvas: raytracer.NewCanvas(width, height),
		path:   path,
		pixel:  c.Pixel(),
		radius: radius,
		tween:  gween.New(0, float32(len(path)), duration, fn),
		Done:   len(path) == 0,
	}
}

// Update advances the replay by dt seconds and paints any newly revealed
// points. It returns the number of points revealed so far.
func (r *Replay) Update(dt float32) int {
	if r.Done {
		return r.revealed
	}
	val, finished := r.tween.Update(dt)
	target := int(math.Floor(float64(val)))
	if finished {
		target = len(r.path)
	}
	target = min(max(target, 0), len(r.path))

	for ; r.revealed < target; r.revealed++ {
		pos := r.path[r.revealed]
		if x, y, ok := r.canvas.Project(pos); ok {
			r.canvas.Paint(x, y, r.radius, r.pixel)
		}
	}
	r.Done = finished
	return r.revealed
}

// Revealed returns the number of path points painted so far.
func (r *Replay) Revealed() int {
	return r.revealed
}

// Canvas returns the canvas the replay paints onto.
func (r *Replay) Canvas() *raytracer.Canvas {
	return r.canvas
}

// Reset clears the canvas and starts the replay from the beginning.
func (r *Replay) Reset() {
	r.canvas.Fill(raytracer.Pixel{})
	r.tween.Reset()
	r.revealed = 0
	r.Done = len(r.path) == 0
}
