package main

import (
	"fmt"
	"io"
	"log"
	"math"

	"github.com/younwookim/jumper/internal/application/replay"
	"github.com/younwookim/jumper/internal/application/session"
	"github.com/younwookim/jumper/internal/infrastructure/config"
)

// ReplaySummary is the outcome of a headless replay
type ReplaySummary struct {
	Frames      int
	Jumps       int
	Landings    int
	Apexes      int
	MaxHeight   float64
	MaxSpeedX   float64
	Skipped     int
	Final       session.Snapshot
	EdgeMode    string
	RecordedTPS int
}

// applyReplaySettings makes cfg match the settings the replay was recorded with
func applyReplaySettings(cfg *config.GameConfig, data *replay.ReplayData) {
	if data.EdgeMode != "" {
		cfg.Input.EdgeMode = data.EdgeMode
	}
	if data.TPS > 0 {
		cfg.Display.TPS = data.TPS
	}
}

// runReplay simulates every recorded frame without a window
func runReplay(cfg *config.GameConfig, data replay.ReplayData, debug bool) (ReplaySummary, error) {
	s, err := session.New(cfg)
	if err != nil {
		return ReplaySummary{}, err
	}
	s.SetDebug(debug)

	summary := ReplaySummary{
		EdgeMode:    s.EdgeMode(),
		RecordedTPS: data.TPS,
	}

	replayer := replay.NewReplayer(data)
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}

		r := s.Step(input)
		summary.Jumps += len(r.Jumped)
		summary.Landings += len(r.Landed)
		summary.Apexes += len(r.ApexReached)
		summary.Skipped += len(r.Skipped)

		if snap, ok := s.Player(); ok {
			summary.MaxHeight = max(summary.MaxHeight, snap.Position.Y-cfg.Character.Spawn.Y)
			summary.MaxSpeedX = max(summary.MaxSpeedX, math.Abs(snap.Velocity.X))
		}
	}

	summary.Frames = replayer.CurrentFrame()
	summary.Final, _ = s.Player()
	log.Printf("Replay finished: %d frames, %d jumps, %d landings", summary.Frames, summary.Jumps, summary.Landings)
	return summary, nil
}

// Print writes a human readable summary
func (r ReplaySummary) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "frames:      %d (edge mode %s)\n", r.Frames, r.EdgeMode)
	_, _ = fmt.Fprintf(w, "jumps:       %d\n", r.Jumps)
	_, _ = fmt.Fprintf(w, "landings:    %d\n", r.Landings)
	_, _ = fmt.Fprintf(w, "apexes:      %d\n", r.Apexes)
	_, _ = fmt.Fprintf(w, "max height:  %.3f\n", r.MaxHeight)
	_, _ = fmt.Fprintf(w, "max speed x: %.3f\n", r.MaxSpeedX)
	_, _ = fmt.Fprintf(w, "final:       pos=(%.3f, %.3f) vel=(%.3f, %.3f) %s facing %s\n",
		r.Final.Position.X, r.Final.Position.Y, r.Final.Velocity.X, r.Final.Velocity.Y,
		r.Final.Flight.Mode, r.Final.Direction)
	if r.Skipped > 0 {
		_, _ = fmt.Fprintf(w, "skipped:     %d\n", r.Skipped)
	}
}
