package flappy

import (
	"errors"

	"github.com/vovakirdan/flappyx/internal/core"
)

// Skin is a cosmetic bird appearance, unlocked by reaching a best score.
type Skin struct {
	Name     string
	Color    core.Color
	UnlockAt int // Best score required; 0 means always available
}

// Skins is the fixed skin catalog. Index 0 is always unlocked.
var Skins = []Skin{
	{Name: "Classic", Color: core.ColorGold},
	{Name: "Robotic", Color: core.ColorGray, UnlockAt: 10},
	{Name: "Neon", Color: core.ColorPink, UnlockAt: 25},
	{Name: "Stealthy", Color: core.ColorDarkGray, UnlockAt: 50},
}

var (
	// ErrUnknownSkin is returned for an index outside the catalog.
	ErrUnknownSkin = errors.New("unknown skin")
	// ErrSkinLocked is returned when the best score is below the unlock threshold.
	ErrSkinLocked = errors.New("skin locked")
)

// Unlocked reports whether the skin is available for a best score.
func (s Skin) Unlocked(best int) bool {
	return best >= s.UnlockAt
}

// skinAt returns the skin at index, falling back to Classic.
func skinAt(index int) Skin {
	if index < 0 || index >= len(Skins) {
		return Skins[0]
	}
	return Skins[index]
}

// nextUnlocked cycles from index by step (+1 or -1), skipping locked skins.
func nextUnlocked(index, step, best int) int {
	n := len(Skins)
	for i := 1; i <= n; i++ {
		candidate := ((index+step*i)%n + n) % n
		if Skins[candidate].Unlocked(best) {
			return candidate
		}
	}
	return index
}
