package session

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DelayGate is a one-shot timer advanced by the host's frame clock. Arming
// it again while running restarts the interval.
type DelayGate struct {
	Interval time.Duration
	tween    *gween.Tween
	fire     func()
}

func NewDelayGate(interval time.Duration, fire func()) *DelayGate {
	return &DelayGate{Interval: interval, fire: fire}
}

func (g *DelayGate) Arm() {
	g.tween = gween.New(0, 1, float32(g.Interval.Seconds()), ease.Linear)
}

func (g *DelayGate) Cancel() {
	g.tween = nil
}

func (g *DelayGate) Armed() bool {
	return g.tween != nil
}

// Advance moves the gate dt forward and reports whether it fired.
func (g *DelayGate) Advance(dt time.Duration) bool {
	if g.tween == nil {
		return false
	}
	_, finished := g.tween.Update(float32(dt.Seconds()))
	if !finished {
		return false
	}
	// disarm first, fire may re-arm
	g.tween = nil
	if g.fire != nil {
		g.fire()
	}
	return true
}
