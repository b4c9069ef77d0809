package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Action is what runs when a tween of Game.Tweens completes.
type Action struct {
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// after schedules f once seconds of game time have passed.
func (g *Game) after(seconds float32, f func()) {
	action := Action{}
	action.addOnFinish(f)
	g.Tweens[gween.New(0, 1, seconds, ease.Linear)] = action
}

func (g *Game) updateTweens(dt float32) {
	for t, a := range g.Tweens {
		_, finished := t.Update(dt)
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			delete(g.Tweens, t)
		}
	}
}
