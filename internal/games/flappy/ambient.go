package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flappyx/internal/config"
)

// Ambient drives weather and day/night. It runs on wall time in every phase.
type Ambient struct {
	rng     *rand.Rand
	spawner *Spawner
}

// NewAmbient creates the ambient controller.
func NewAmbient(rng *rand.Rand, spawner *Spawner) *Ambient {
	return &Ambient{rng: rng, spawner: spawner}
}

// Update advances the ambient timers by elapsed wall time. The weather kind
// is re-rolled every weather interval and the particle pool regenerated when
// it changes; day and night swap every day/night interval.
func (a *Ambient) Update(w *World, elapsed time.Duration) {
	w.AmbientClock += elapsed

	if interval := config.Millis(w.Cfg.Ambient.WeatherIntervalMS); interval > 0 {
		w.WeatherTimer += elapsed
		for w.WeatherTimer >= interval {
			w.WeatherTimer -= interval
			a.setWeather(w, Weather(a.rng.Intn(3)))
		}
	}

	if interval := config.Millis(w.Cfg.Ambient.DayNightIntervalMS); interval > 0 {
		w.DayNightTimer += elapsed
		for w.DayNightTimer >= interval {
			w.DayNightTimer -= interval
			if w.TimeOfDay == Day {
				w.TimeOfDay = Night
			} else {
				w.TimeOfDay = Day
			}
		}
	}
}

func (a *Ambient) setWeather(w *World, kind Weather) {
	if kind == w.Weather {
		return
	}
	w.Weather = kind
	a.Regenerate(w)
}

// Regenerate rebuilds the weather particle pool for the current kind.
func (a *Ambient) Regenerate(w *World) {
	w.Drops = a.spawner.WeatherPool(w.Cfg, w.Weather)
}
