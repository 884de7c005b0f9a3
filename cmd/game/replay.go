package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/younwookim/gladiator/internal/application/replay"
	"github.com/younwookim/gladiator/internal/application/scene/playing"
	"github.com/younwookim/gladiator/internal/application/state"
	"github.com/younwookim/gladiator/internal/infrastructure/config"
	"github.com/younwookim/gladiator/internal/infrastructure/world"
)

// ErrReplayDiverged is returned when playback ends away from the recorded final state
var ErrReplayDiverged = errors.New("replay diverged")

// verifyReplay plays data without a window and returns the final snapshot.
// Recordings without a final snapshot are played but not checked.
func verifyReplay(cfg *config.GameConfig, arena *world.World, data *replay.ReplayData, log *slog.Logger) (replay.Snapshot, error) {
	if data.FixedRate != 0 && data.FixedRate != cfg.Ticks.FixedRate {
		log.Warn("fixed rate differs from recording", "recorded", data.FixedRate, "configured", cfg.Ticks.FixedRate)
	}

	p, err := playing.New(cfg, arena, playing.Options{Replay: data, Logger: log})
	if err != nil {
		return replay.Snapshot{}, err
	}
	for p.State() == state.StateReplaying {
		if _, err := p.Update(0); err != nil {
			return replay.Snapshot{}, err
		}
	}

	got := p.Snapshot()
	if data.Final == nil || p.Verify() {
		return got, nil
	}
	return got, fmt.Errorf("%w: want %+v, got %+v", ErrReplayDiverged, *data.Final, got)
}
