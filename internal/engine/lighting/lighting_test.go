package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/drone-scene/pkg/math"
)

func TestDefaultRig(t *testing.T) {
	sources := Default().Sources()
	require.Len(t, sources, MaxSources)

	assert.Nil(t, sources[0].Position, "key light has no uploaded position")
	for i, s := range sources {
		assert.Equal(t, i, s.Index)
	}
	assert.Equal(t, math.Vec3{X: -4, Y: 3, Z: -4}, *sources[1].Position)
	assert.Equal(t, math.Vec3{Y: 10}, *sources[2].Position)
	assert.Equal(t, math.Vec3{Y: -2}, *sources[3].Position)
	assert.Equal(t, float32(48), sources[0].FocalStrength)
}

func TestNewRigRejectsBadIndices(t *testing.T) {
	_, err := NewRig(Source{Index: MaxSources})
	assert.Error(t, err)

	_, err = NewRig(Source{Index: -1})
	assert.Error(t, err)

	_, err = NewRig(Source{Index: 1}, Source{Index: 1})
	assert.Error(t, err)

	rig, err := NewRig(Source{Index: 2})
	require.NoError(t, err)
	assert.Len(t, rig.Sources(), 1, "sized by actual registrations")
}
