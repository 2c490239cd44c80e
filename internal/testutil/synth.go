// Package testutil provides deterministic helpers for modcheck tests:
// a stub synth with directly settable voice state and a monotonic
// sequence clock for reproducible event traces.
package testutil

import (
	"github.com/samplerlab/modcheck/internal/model"
)

// StubSynth implements model.Synth over a fixed voice pool. Tests set
// voice state directly instead of driving note events through an
// engine.
type StubSynth struct {
	pool []*model.Voice
}

// NewStubSynth creates a stub with numVoices free voices.
func NewStubSynth(numVoices int) *StubSynth {
	pool := make([]*model.Voice, numVoices)
	for i := range pool {
		pool[i] = &model.Voice{}
	}
	return &StubSynth{pool: pool}
}

// Voices implements model.Synth.
func (s *StubSynth) Voices() []*model.Voice { return s.pool }

// Trigger puts the first free voice into the playing state with the
// given note, velocity and sample. Returns false when no voice is
// free.
func (s *StubSynth) Trigger(note int, velocity float32, sample string) bool {
	for _, v := range s.pool {
		if v.Free() {
			*v = model.Voice{State: model.VoicePlaying, Note: note, Velocity: velocity, Sample: sample}
			return true
		}
	}
	return false
}

// Release moves every playing voice with the given note into its
// release stage.
func (s *StubSynth) Release(note int) {
	for _, v := range s.pool {
		if v.Playing() && v.Note == note {
			v.State = model.VoiceReleased
		}
	}
}

// Reap frees every released voice, as an engine would once the release
// stage finishes.
func (s *StubSynth) Reap() {
	for _, v := range s.pool {
		if v.State == model.VoiceReleased {
			*v = model.Voice{}
		}
	}
}
