package vkng

import (
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/vkngwrapper/core/v3/core1_0"

	"github.com/vkngwrapper/hellotriangle/graphics"
)

// queueDeviceDriver answers GetQueue only; any other call panics.
type queueDeviceDriver struct {
	core1_0.CoreDeviceDriver
	calls []queueKey
}

func (q *queueDeviceDriver) GetQueue(queueFamilyIndex int, queueIndex int) core1_0.Queue {
	q.calls = append(q.calls, queueKey{family: queueFamilyIndex, index: queueIndex})
	var queue core1_0.Queue
	return queue
}

func TestGetQueue_SameFamilySameHandle(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	d := newDriver(nil, nil, log)

	deviceDriver := &queueDeviceDriver{}
	device := d.devices.add(&deviceState{
		driver: deviceDriver,
		queues: map[queueKey]graphics.Queue{},
	})

	graphicsQueue := d.GetQueue(device, 0, 0)
	presentQueue := d.GetQueue(device, 0, 0)
	otherQueue := d.GetQueue(device, 1, 0)

	assert.Equal(t, graphicsQueue, presentQueue)
	assert.NotEqual(t, graphicsQueue, otherQueue)
	assert.Equal(t, []queueKey{{family: 0, index: 0}, {family: 1, index: 0}}, deviceDriver.calls)
	assert.Equal(t, 2, d.queues.len())
}
