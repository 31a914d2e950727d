package graphics

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestStage(t *testing.T) {
	for _, stage := range stages {
		err := fail(errFakeDriver, stage.err, "step")
		assert.Equal(t, stage.name, Stage(err))
		assert.Equal(t, stage.name, Stage(errors.Wrap(err, "outer")))
	}

	assert.Equal(t, "Unknown", Stage(errFakeDriver))
	assert.Equal(t, "Unknown", Stage(nil))
}

func TestFail_KeepsCause(t *testing.T) {
	err := fail(errFakeDriver, ErrDeviceCreationFailed, "create logical device on %s", "gpu")

	assert.True(t, errors.Is(err, ErrDeviceCreationFailed))
	assert.True(t, errors.Is(err, errFakeDriver))
	assert.Equal(t, "create logical device on gpu: fake driver failure", err.Error())
}

func TestFail_WithoutCause(t *testing.T) {
	err := fail(nil, ErrNoValidGPU, "driver reported no physical devices")

	assert.True(t, errors.Is(err, ErrNoValidGPU))
	assert.Equal(t, "driver reported no physical devices: no valid GPU", err.Error())
}
