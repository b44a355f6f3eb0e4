// Package preview opens a desktop window that replays a simulated
// trajectory onto its canvas. It is an optional viewer for the output of
// raytracer.Simulate; the kernel itself never opens a window.
package preview

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/raytracer"
	"github.com/phanxgames/raytracer/animation"
)

// Options configures the preview window.
type Options struct {
	// Title is the window title.
	Title string
	// Duration is the replay length in seconds (default 3).
	Duration float32
	// Ease shapes the replay speed (default ease.OutQuad).
	Ease ease.TweenFunc
	// Color and BrushRadius match the values used by the simulation.
	Color       raytracer.Color
	BrushRadius int
	// ShowStats draws a status line with the replay progress.
	ShowStats bool
}

func (o *Options) normalize() Options {
	if o == nil {
		return Options{Title: "raytracer", Duration: 3, Ease: ease.OutQuad, Color: raytracer.White, BrushRadius: 2}
	}
	out := *o
	if out.Title == "" {
		out.Title = "raytracer"
	}
	if out.Duration <= 0 {
		out.Duration = 3
	}
	if out.Ease == nil {
		out.Ease = ease.OutQuad
	}
	return out
}

// Run opens a window the size of c and replays path onto it. Space
// restarts the replay; Escape closes the window. It blocks until the
// window closes.
func Run(c *raytracer.Canvas, path []raytracer.Point, opts *Options) error {
	o := opts.normalize()
	w, h := c.Width(), c.Height()
	if w == 0 || h == 0 {
		return fmt.Errorf("preview: empty canvas %dx%d", w, h)
	}

	g := &game{
		replay:    animation.NewReplay(w, h, path, o.Color, o.BrushRadius, o.Duration, o.Ease),
		total:     len(path),
		showStats: o.ShowStats,
		width:     w,
		height:    h,
	}

	ebiten.SetWindowTitle(o.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// game adapts an animation.Replay to ebiten's game loop.
type game struct {
	replay    *animation.Replay
	total     int
	showStats bool
	width     int
	height    int

	img     *ebiten.Image
	scratch []byte
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.replay.Reset()
	}
	g.replay.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.width, g.height)
		g.scratch = make([]byte, 4*g.width*g.height)
	}
	g.replay.Canvas().CopyRGBA(g.scratch)
	g.img.WritePixels(g.scratch)
	screen.DrawImage(g.img, nil)

	if g.showStats {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("steps: %d/%d", g.replay.Revealed(), g.total))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
