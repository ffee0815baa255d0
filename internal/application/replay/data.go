// Package replay records and plays back the raw input of a session.
//
// A replay stores the held state of each logical action per tick.
// Edge detection is recomputed on playback, so the same file replays
// identically under the edge mode it was recorded with.
package replay

// FormatVersion is written into every saved replay
const FormatVersion = "1.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	EdgeMode  string       `json:"edgeMode"`
	TPS       int          `json:"tps"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
