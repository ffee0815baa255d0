package state

// GameState is the run state of the playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateReplayFinished
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplayFinished:
		return "ReplayFinished"
	default:
		return "Unknown"
	}
}

// Simulating returns true when the scene should advance the simulation
func (s GameState) Simulating() bool {
	return s == StatePlaying
}

// TogglePause flips between playing and paused; other states are kept
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}
