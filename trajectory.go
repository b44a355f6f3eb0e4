package raytracer

import "fmt"

// Launch describes how a projectile leaves the ground: where it starts and
// the direction and speed of its initial velocity.
type Launch struct {
	// Start is the initial position in simulation space (y grows upward).
	Start Point
	// Direction is normalized before use; only its direction matters.
	Direction Vector
	// Speed is the magnitude of the initial velocity.
	Speed float64
}

// Velocity returns the normalized direction scaled by Speed. A zero
// direction cannot be normalized.
func (l Launch) Velocity() (Vector, error) {
	dir, err := l.Direction.Normalize()
	if err != nil {
		return Vector{}, fmt.Errorf("launch velocity: %w", err)
	}
	return dir.Scale(l.Speed), nil
}

// State is the flight state of a projectile.
type State uint8

const (
	Flying State = iota // at or above the ground (y >= 0)
	Landed              // below the ground (y < 0); terminal
)

func (s State) String() string {
	switch s {
	case Flying:
		return "flying"
	case Landed:
		return "landed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Projectile is a point mass moving through a constant drag field.
type Projectile struct {
	Position Point
	Velocity Vector
}

// Tick advances p by one unit time step: the drag is added to the
// velocity first, then the new velocity moves the position.
func (p Projectile) Tick(drag Vector) Projectile {
	v := p.Velocity.Add(drag)
	return Projectile{Position: p.Position.Add(v), Velocity: v}
}

// State reports whether p is still flying or has landed.
func (p Projectile) State() State {
	if p.Position.Y < 0 {
		return Landed
	}
	return Flying
}

// Outcome records why a simulation stopped.
type Outcome uint8

const (
	OutcomeLanded    Outcome = iota // the projectile fell below y = 0
	OutcomeOffCanvas                // the projectile left the canvas while still flying
	OutcomeStepLimit                // SimConfig.MaxSteps was reached
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLanded:
		return "landed"
	case OutcomeOffCanvas:
		return "off-canvas"
	case OutcomeStepLimit:
		return "step-limit"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// SimConfig controls a trajectory simulation.
type SimConfig struct {
	// Launch sets the initial position and velocity.
	Launch Launch
	// Drag is added to the velocity every step. Gravity and wind are both
	// expressed through it; a negative Y pulls the projectile down.
	Drag Vector
	// Color is painted along the path.
	Color Color
	// BrushRadius is the half-width of the open square painted around each
	// position. See Canvas.Neighbors.
	BrushRadius int
	// MaxSteps stops the simulation after this many steps. Zero means no
	// limit; the simulation must then end on its own.
	MaxSteps int
	// ContinueOffCanvas keeps stepping while the projectile is outside the
	// canvas, clipping its path, until it lands. By default the walk stops
	// at the first off-canvas position.
	ContinueOffCanvas bool
}

// DefaultSimConfig returns the arc used by the command line tool: launched
// from (0, 1, 0) along (5, 15, 0) at speed 14.5 through gravity plus a
// light headwind.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Launch: Launch{
			Start:     NewPoint(0, 1, 0),
			Direction: NewVector(5, 15, 0),
			Speed:     14.5,
		},
		Drag:        NewVector(-0.01, -0.1, 0),
		Color:       NewColor(1, 0.8, 0.6),
		BrushRadius: 2,
	}
}

// Result summarizes a finished simulation.
type Result struct {
	Outcome Outcome
	// Steps is the number of ticks taken.
	Steps int
	// Painted counts pixel writes that landed on the canvas.
	Painted int
	// Path holds the position after every tick, including the final one.
	Path []Point
	// Final is the projectile state when the simulation stopped.
	Final Projectile
}

// Simulate integrates a projectile under cfg and paints its path onto c.
//
// Each step ticks the projectile, stops with OutcomeLanded once y < 0,
// projects the position to raster space, stops with OutcomeOffCanvas on
// the first position outside the canvas (unless ContinueOffCanvas is set),
// and otherwise paints the brush around the projected pixel.
//
// Simulate fails when the launch direction is zero, or with ErrUnbounded
// when nothing could ever stop the loop. Without MaxSteps, a tick that
// leaves the projectile bit-identical also fails with ErrUnbounded; the
// partial Result painted so far is returned alongside the error.
func Simulate(c *Canvas, cfg SimConfig) (Result, error) {
	v, err := cfg.Launch.Velocity()
	if err != nil {
		return Result{}, fmt.Errorf("simulate: %w", err)
	}
	if !terminates(c, cfg, v) {
		return Result{}, fmt.Errorf("simulate: drag %v never lands velocity %v: %w", cfg.Drag, v, ErrUnbounded)
	}

	p := Projectile{Position: cfg.Launch.Start, Velocity: v}
	px := cfg.Color.Pixel()
	res := Result{Outcome: OutcomeStepLimit}

	for cfg.MaxSteps <= 0 || res.Steps < cfg.MaxSteps {
		next := p.Tick(cfg.Drag)
		if cfg.MaxSteps <= 0 && next == p {
			// Both additions rounded away: every later tick is identical.
			res.Final = p
			return res, fmt.Errorf("simulate: stalled at %v after %d steps: %w", p.Position, res.Steps, ErrUnbounded)
		}
		p = next
		res.Steps++
		res.Path = append(res.Path, p.Position)

		if p.State() == Landed {
			res.Outcome = OutcomeLanded
			break
		}

		x, y, ok := c.Project(p.Position)
		if !ok {
			if cfg.ContinueOffCanvas {
				continue
			}
			res.Outcome = OutcomeOffCanvas
			break
		}
		res.Painted += c.Paint(x, y, cfg.BrushRadius, px)
	}

	res.Final = p
	return res, nil
}

// terminates reports whether a simulation started with velocity v must
// eventually stop.
func terminates(c *Canvas, cfg SimConfig, v Vector) bool {
	drag := effectiveDrag(v, cfg.Drag)
	switch {
	case cfg.MaxSteps > 0:
		return true
	case drag.Y < 0:
		// Velocity.Y eventually goes negative and stays there.
		return true
	case drag.Y == 0 && v.Y < 0:
		return true
	case cfg.ContinueOffCanvas:
		return false
	case c.width == 0 || c.height == 0:
		return true
	}
	// Without a landing guarantee, the walk still ends once the projectile
	// leaves the (finite) canvas, which requires motion in the x/y plane.
	return drag.X != 0 || drag.Y != 0 || v.X != 0 || v.Y != 0
}

// effectiveDrag returns the change drag actually makes to v in float64.
// A component far smaller than the matching velocity rounds to zero.
func effectiveDrag(v, drag Vector) Vector {
	return v.Add(drag).Sub(v)
}
