package check

import (
	"github.com/samplerlab/modcheck/internal/model"
)

// Voice-state projections: one-line filters over the engine's exposed
// voice collection. "Playing" means triggered and not yet released;
// "active" means not free, regardless of release state.

// ActiveVoices returns the voices that are not free.
func ActiveVoices(synth model.Synth) []*model.Voice {
	return filterVoices(synth, (*model.Voice).Active)
}

// PlayingVoices returns the voices that are triggered and unreleased.
func PlayingVoices(synth model.Synth) []*model.Voice {
	return filterVoices(synth, (*model.Voice).Playing)
}

// NumActiveVoices counts the voices that are not free.
func NumActiveVoices(synth model.Synth) int {
	return len(ActiveVoices(synth))
}

// NumPlayingVoices counts the triggered, unreleased voices.
func NumPlayingVoices(synth model.Synth) int {
	return len(PlayingVoices(synth))
}

// PlayingSamples returns the sample names of the playing voices.
func PlayingSamples(synth model.Synth) []string {
	return voiceSamples(PlayingVoices(synth))
}

// PlayingVelocities returns the triggering velocities of the playing
// voices.
func PlayingVelocities(synth model.Synth) []float32 {
	return voiceVelocities(PlayingVoices(synth))
}

// PlayingNotes returns the triggering notes of the playing voices.
func PlayingNotes(synth model.Synth) []int {
	return voiceNotes(PlayingVoices(synth))
}

// ActiveSamples returns the sample names of the active voices.
func ActiveSamples(synth model.Synth) []string {
	return voiceSamples(ActiveVoices(synth))
}

// ActiveVelocities returns the triggering velocities of the active
// voices.
func ActiveVelocities(synth model.Synth) []float32 {
	return voiceVelocities(ActiveVoices(synth))
}

// ActiveNotes returns the triggering notes of the active voices.
func ActiveNotes(synth model.Synth) []int {
	return voiceNotes(ActiveVoices(synth))
}

func filterVoices(synth model.Synth, keep func(*model.Voice) bool) []*model.Voice {
	var out []*model.Voice
	for _, v := range synth.Voices() {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func voiceSamples(voices []*model.Voice) []string {
	out := make([]string, 0, len(voices))
	for _, v := range voices {
		out = append(out, v.Sample)
	}
	return out
}

func voiceVelocities(voices []*model.Voice) []float32 {
	out := make([]float32, 0, len(voices))
	for _, v := range voices {
		out = append(out, v.Velocity)
	}
	return out
}

func voiceNotes(voices []*model.Voice) []int {
	out := make([]int, 0, len(voices))
	for _, v := range voices {
		out = append(out, v.Note)
	}
	return out
}
