package model

// VoiceState tracks where a voice is in its lifecycle.
type VoiceState int

const (
	// VoiceFree means the voice is available for allocation.
	VoiceFree VoiceState = iota
	// VoicePlaying means the voice was triggered and not yet released.
	VoicePlaying
	// VoiceReleased means the voice received its off event and is in
	// its release stage. Released voices are no longer "playing" but
	// still count as active until they go free.
	VoiceReleased
)

// Voice is a single playback instance triggered by a note event.
type Voice struct {
	State VoiceState
	// Note is the triggering note number.
	Note int
	// Velocity is the triggering velocity, normalized to [0, 1].
	Velocity float32
	// Sample identifies the sample the voice plays.
	Sample string
}

// Free reports whether the voice is available for allocation.
func (v *Voice) Free() bool { return v.State == VoiceFree }

// Playing reports whether the voice was triggered and not yet released.
func (v *Voice) Playing() bool { return v.State == VoicePlaying }

// Active reports whether the voice is in use, regardless of release
// state.
func (v *Voice) Active() bool { return v.State != VoiceFree }

// Synth is the engine surface the toolkit reads voice state from.
//
// Callers must only enumerate voices while the engine is not
// concurrently mutating them; the toolkit provides no synchronization
// of its own.
type Synth interface {
	Voices() []*Voice
}
