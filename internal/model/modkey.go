package model

import "fmt"

// ModTarget identifies the kind of parameter a modulation connection
// drives.
type ModTarget int

const (
	TargetAmplitude ModTarget = iota
	TargetPan
	TargetPitch
	TargetVolume
	TargetFilterCutoff
	TargetFilterResonance
	TargetAmplitudeEG
	TargetPitchEG
	TargetFilterEG
)

// targetNames maps targets to their fixture/graph labels.
var targetNames = map[ModTarget]string{
	TargetAmplitude:       "amplitude",
	TargetPan:             "pan",
	TargetPitch:           "pitch",
	TargetVolume:          "volume",
	TargetFilterCutoff:    "filter_cutoff",
	TargetFilterResonance: "filter_resonance",
	TargetAmplitudeEG:     "amplitude_eg",
	TargetPitchEG:         "pitch_eg",
	TargetFilterEG:        "filter_eg",
}

// String returns the fixture label for the target, or "unknown(n)" for
// values outside the enumeration.
func (t ModTarget) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// ParseModTarget resolves a fixture label back to a ModTarget.
func ParseModTarget(name string) (ModTarget, error) {
	for t, n := range targetNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown modulation target %q", name)
}

// ModKey identifies a modulation destination: a parameter kind plus the
// sub-addressing needed to disambiguate multiple instances of that
// parameter within a voice (which region, and which filter/EG when a
// region carries more than one).
//
// ModKey is a comparable value type. Two keys are equal iff all
// components match exactly; there is no partial or hierarchical
// matching.
type ModKey struct {
	Target ModTarget
	Region int
	// Index disambiguates repeated instances of the target within a
	// region, e.g. the second filter's cutoff.
	Index int
}

// String renders the key in the form used by graph labels, e.g.
// "filter_cutoff {region=0, index=1}".
func (k ModKey) String() string {
	if k.Index == 0 {
		return fmt.Sprintf("%s {region=%d}", k.Target, k.Region)
	}
	return fmt.Sprintf("%s {region=%d, index=%d}", k.Target, k.Region, k.Index)
}

// ModParams are the shaping parameters a connection applies to its
// source signal before it reaches the target.
type ModParams struct {
	// Curve selects the mapping curve applied to the controller value.
	Curve int
	// Smooth is the smoothing time in milliseconds.
	Smooth float32
	// Step quantizes the controller value; zero disables quantization.
	Step float32
	// Depth is the signed modulation depth.
	Depth float32
}
