package flappy

import (
	"time"

	"github.com/vovakirdan/flappyx/internal/config"
	"github.com/vovakirdan/flappyx/internal/core"
)

// PowerUpKind identifies a power-up. The set is closed.
type PowerUpKind int

const (
	PowerUpShield     PowerUpKind = iota // Invulnerable while active
	PowerUpSlowMotion                    // Halves gravity and scrolling
	PowerUpJetBoost                      // Strong upward kick on pickup
	powerUpKindCount                     // Sentinel for random draws
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpSlowMotion:
		return "slow motion"
	case PowerUpJetBoost:
		return "jet boost"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpShield:
		return 'S'
	case PowerUpSlowMotion:
		return '@'
	case PowerUpJetBoost:
		return '^'
	default:
		return '?'
	}
}

// Color returns the render color of a power-up kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpShield:
		return core.ColorSky
	case PowerUpSlowMotion:
		return core.ColorMagenta
	case PowerUpJetBoost:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// duration returns the configured effect length of a kind.
func (k PowerUpKind) duration(cfg config.PowerUps) time.Duration {
	switch k {
	case PowerUpShield:
		return config.Millis(cfg.ShieldMS)
	case PowerUpSlowMotion:
		return config.Millis(cfg.SlowMotionMS)
	case PowerUpJetBoost:
		return config.Millis(cfg.JetBoostMS)
	default:
		return 0
	}
}

// Effects is the power-up effect controller. It owns the lifecycle of
// World.Effects and the multipliers they drive.
type Effects struct{}

// Activate starts the effect of a collected power-up at the current world clock.
// Same-kind effects stack: each keeps its own timer.
func (Effects) Activate(w *World, p PowerUp) {
	w.Effects = append(w.Effects, ActiveEffect{
		Kind:     p.Kind,
		Start:    w.Clock,
		Duration: p.Duration,
	})
	onActivate(w, p.Kind)
}

// Tick drops every effect that has run out at now.
func (Effects) Tick(w *World, now time.Duration) {
	kept := w.Effects[:0]
	for _, e := range w.Effects {
		if e.Expired(now) {
			onExpire(w, e.Kind)
			continue
		}
		kept = append(kept, e)
	}
	w.Effects = kept
}

// Active reports whether an unexpired effect of kind exists.
// It reads the timers directly, so it does not depend on when Tick ran.
func (Effects) Active(w *World, kind PowerUpKind) bool {
	for _, e := range w.Effects {
		if e.Kind == kind && !e.Expired(w.Clock) {
			return true
		}
	}
	return false
}

func onActivate(w *World, kind PowerUpKind) {
	switch kind {
	case PowerUpShield:
		// Checked by the collision engine each tick.
	case PowerUpSlowMotion:
		w.Multiplier = w.Cfg.Physics.SlowMotionFactor
	case PowerUpJetBoost:
		w.Bird.Velocity = w.Cfg.Physics.JetBoostImpulse
	}
}

func onExpire(w *World, kind PowerUpKind) {
	switch kind {
	case PowerUpShield:
	case PowerUpSlowMotion:
		w.Multiplier = 1
	case PowerUpJetBoost:
	}
}
