package spirits

import (
	"math"

	"charon/pkg/vec"
)

// Move integrates every agent by dt seconds: seek toward the committed cell,
// separate from close neighbours, add the cosmetic drift and advance.
func (e *Engine) Move(dt float64) {
	p := e.params
	for i := range e.agents {
		a := &e.agents[i]
		delta := a.NextPos.Sub(a.Pos)
		speed := math.Min(p.Speed, delta.LengthSquared())
		a.Vel = a.Vel.Lerp(delta.NormalizeOrZero().Scale(speed), p.Smoothing)
	}

	e.separate()

	e.elapsed += dt
	drift := math.Sin(e.elapsed*p.OndulationFreq) * p.OndulationAmp
	for i := range e.agents {
		a := &e.agents[i]
		v := a.Vel.Add(a.Vel.Perp().Scale(drift))
		a.Pos = a.Pos.Add(v.Scale(dt))
	}
}

func (e *Engine) separate() {
	if len(e.agents) < 2 || e.params.SeparationRadius <= 0 {
		return
	}
	e.hash.rebuild(e.agents)
	speed := e.params.Speed
	e.hash.pairs(e.agents, func(i, j int, dist float64) {
		a, b := &e.agents[i], &e.agents[j]
		dir := b.Pos.Sub(a.Pos).NormalizeOrZero()
		if dir == (vec.Vec2{}) {
			ang := e.rng.Range(0, 2*math.Pi)
			dir = vec.Vec2{X: math.Cos(ang), Y: math.Sin(ang)}
		}
		dir = dir.Add(dir.Perp().Scale(e.rng.Range(-1, 1))).NormalizeOrZero()
		t := 3 / math.Max(dist, 3)
		a.Vel = a.Vel.Lerp(dir.Scale(-speed), t)
		b.Vel = b.Vel.Lerp(dir.Scale(speed), t)
	})
}
