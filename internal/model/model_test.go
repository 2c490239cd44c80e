package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModKey_Equality(t *testing.T) {
	a := ModKey{Target: TargetFilterCutoff, Region: 1, Index: 2}
	b := ModKey{Target: TargetFilterCutoff, Region: 1, Index: 2}
	assert.True(t, a == b)

	// Any component difference breaks equality; no partial matching.
	assert.False(t, a == ModKey{Target: TargetFilterCutoff, Region: 1})
	assert.False(t, a == ModKey{Target: TargetFilterCutoff, Region: 0, Index: 2})
	assert.False(t, a == ModKey{Target: TargetFilterResonance, Region: 1, Index: 2})
}

func TestModKey_String(t *testing.T) {
	assert.Equal(t, "amplitude {region=0}",
		ModKey{Target: TargetAmplitude}.String())
	assert.Equal(t, "filter_cutoff {region=2, index=1}",
		ModKey{Target: TargetFilterCutoff, Region: 2, Index: 1}.String())
}

func TestParseModTarget_RoundTrip(t *testing.T) {
	for target, name := range targetNames {
		parsed, err := ParseModTarget(name)
		require.NoError(t, err)
		assert.Equal(t, target, parsed)
	}

	_, err := ParseModTarget("no_such_target")
	assert.Error(t, err)
}

func TestModTarget_UnknownString(t *testing.T) {
	assert.Equal(t, "unknown(99)", ModTarget(99).String())
}

func TestRegion_CopyIsDeep(t *testing.T) {
	r := Region{
		Name:   "r",
		Sample: "kick.wav",
		Connections: []Connection{
			{CC: 1, Target: ModKey{Target: TargetAmplitude}, Params: ModParams{Depth: 0.5}},
		},
	}

	dup := r.Copy()
	dup.Connections[0].Params.Depth = 0.9

	assert.InDelta(t, 0.5, r.Connections[0].Params.Depth, 1e-6)
	assert.Equal(t, "kick.wav", dup.Sample)
}

func TestVoice_StatePredicates(t *testing.T) {
	free := &Voice{}
	playing := &Voice{State: VoicePlaying}
	released := &Voice{State: VoiceReleased}

	assert.True(t, free.Free())
	assert.False(t, free.Active())

	assert.True(t, playing.Playing())
	assert.True(t, playing.Active())

	assert.False(t, released.Playing())
	assert.True(t, released.Active())
}
