package kintsugi

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// scatterDamping is the per-second exponential decay applied to fragment
	// velocity and spin after the break.
	scatterDamping = 2.2

	// scatterBoundsFactor clamps scattered fragments to a ring around the
	// vessel so pieces never drift out of the scene.
	scatterBoundsFactor = 1.8

	scatterRestitution = 0.35

	mendFrequency = 4.5
	mendDamping   = 0.8
	mendSnapDist  = 0.5
	mendSnapVel   = 1.0
)

// Scatter integrates fragment motion after the break: damped outward drift
// with spin, clamped to a boundary ring. Fragments ignore each other; this is
// a settle animation, not a rigid-body simulation.
type Scatter struct {
	Vessel Vessel
}

// Step advances every fragment by dt seconds. Fragments crossing the boundary
// ring are projected back onto it and their radial velocity is reflected with
// restitution below 1, so they settle against the ring instead of bouncing
// indefinitely.
func (s Scatter) Step(frags []Fragment, dt float64) {
	maxR := s.Vessel.Radius * scatterBoundsFactor
	decay := math.Exp(-scatterDamping * dt)
	for i := range frags {
		fr := &frags[i]
		fr.Pos = fr.Pos.Translate(fr.Vel.Mul(dt))
		fr.Rot += fr.Spin * dt
		fr.Vel = fr.Vel.Mul(decay)
		fr.Spin *= decay

		d := fr.Pos.Sub(s.Vessel.Center)
		if r := d.Hypot(); r > maxR {
			n := d.Div(r)
			fr.Pos = s.Vessel.Center.Translate(n.Mul(maxR))
			if vn := fr.Vel.Dot(n); vn > 0 {
				fr.Vel = fr.Vel.Sub(n.Mul((1 + scatterRestitution) * vn))
			}
		}
	}
}

// Mend pulls fragments back to their home positions and unwinds their
// rotation with a spring-damper.
type Mend struct {
	spring harmonica.Spring
}

// NewMend returns a mend tuned for the host's tick rate.
func NewMend(fps int) Mend {
	return Mend{
		spring: harmonica.NewSpring(harmonica.FPS(fps), mendFrequency, mendDamping),
	}
}

// Step advances every fragment one tick toward home and reports whether all
// of them have settled. A settled fragment is snapped exactly onto Home with
// zero velocity, so a finished mend leaves the vessel whole to the last
// float.
func (m Mend) Step(frags []Fragment) bool {
	done := true
	for i := range frags {
		fr := &frags[i]
		x, vx := m.spring.Update(fr.Pos.X, fr.Vel.X, fr.Home.X)
		y, vy := m.spring.Update(fr.Pos.Y, fr.Vel.Y, fr.Home.Y)
		rot, rv := m.spring.Update(fr.Rot, fr.Spin, 0)
		fr.Pos, fr.Vel = Pt(x, y), Vec(vx, vy)
		fr.Rot, fr.Spin = rot, rv

		if fr.Pos.Distance(fr.Home) > mendSnapDist ||
			fr.Vel.Hypot() > mendSnapVel ||
			math.Abs(fr.Rot) > 0.02 {
			done = false
			continue
		}
		fr.Pos, fr.Vel = fr.Home, Vec2{}
		fr.Rot, fr.Spin = 0, 0
	}
	return done
}
