package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionFlap                // Space, Up, W, mouse click - flap while playing
	ActionStart               // Enter, R - start from menu or restart after game over
	ActionPause               // P - pause/unpause
	ActionToggleDark          // T - display-mode toggle
	ActionToggleDebug         // D - practice/debug mode toggle
	ActionGodMode             // G - practice cheat: timed shield
	ActionSpawnPowerUp        // X - practice cheat: drop a power-up near the bird
	ActionSkinPrev            // Left - previous bird skin (menu only)
	ActionSkinNext            // Right - next bird skin (menu only)
	ActionQuit                // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionToggleDark:
		return "ToggleDark"
	case ActionToggleDebug:
		return "ToggleDebug"
	case ActionGodMode:
		return "GodMode"
	case ActionSpawnPowerUp:
		return "SpawnPowerUp"
	case ActionSkinPrev:
		return "SkinPrev"
	case ActionSkinNext:
		return "SkinNext"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions queued by the host between two
// simulation ticks. The game consumes it at the start of the next tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Empty reports whether no action is queued.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}
