package window

import (
	"math"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/vkngwrapper/hellotriangle/graphics"
)

func TestCheckSize(t *testing.T) {
	tests := []struct {
		name string
		size graphics.Extent2D
		ok   bool
	}{
		{"default", graphics.Extent2D{Width: 400, Height: 400}, true},
		{"largest", graphics.Extent2D{Width: math.MaxInt32, Height: 1}, true},
		{"zero width", graphics.Extent2D{Width: 0, Height: 400}, false},
		{"negative height", graphics.Extent2D{Width: 400, Height: -1}, false},
		{"wraps int32", graphics.Extent2D{Width: math.MaxInt32 + 1, Height: 400}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSize(tt.size)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNew_RejectsSizeBeforeSDL(t *testing.T) {
	log, _ := logtest.NewNullLogger()

	win, err := New("triangle", graphics.Extent2D{Width: math.MaxInt32 + 1, Height: 400}, log)
	assert.Nil(t, win)
	assert.EqualError(t, err, "window size 2147483648x400 out of range")
}
