package graphics

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, testConfig().Validate())

	cfg := testConfig()
	cfg.WindowSize = Extent2D{Width: 0, Height: 400}
	assert.EqualError(t, cfg.Validate(), "window size must be positive, got 0x400")

	cfg = testConfig()
	cfg.DeviceExtensions = nil
	assert.Error(t, cfg.Validate())

	err := DefaultConfig().Validate()
	if assert.Error(t, err) {
		assert.Equal(t, "no vertex shader: shader read failed", err.Error())
		assert.Contains(t, fmt.Sprintf("%+v", err), "no fragment shader")
		assert.True(t, errors.Is(err, ErrShaderReadFailed))
	}

	cfg = testConfig()
	cfg.FragmentShader = nil
	cfg.WindowSize = Extent2D{}
	err = cfg.Validate()
	assert.Equal(t, "ShaderReadFailed", Stage(err))
	assert.Contains(t, fmt.Sprintf("%+v", err), "window size must be positive")
}

func TestVersion(t *testing.T) {
	v := CreateVersion(1, 2, 3)
	assert.Equal(t, uint32(1), v.Major())
	assert.Equal(t, uint32(2), v.Minor())
	assert.Equal(t, uint32(3), v.Patch())
	assert.Equal(t, uint32(1), Vulkan1_0.Major())
	assert.Equal(t, uint32(0), Vulkan1_0.Minor())
}

func TestParsePresentMode(t *testing.T) {
	mode, err := ParsePresentMode("Mailbox")
	assert.NoError(t, err)
	assert.Equal(t, PresentModeMailbox, mode)

	mode, err = ParsePresentMode("fifo_relaxed")
	assert.NoError(t, err)
	assert.Equal(t, PresentModeFIFORelaxed, mode)
	assert.Equal(t, "fifo_relaxed", mode.String())

	_, err = ParsePresentMode("vsync")
	assert.Error(t, err)
}
