package window

import (
	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"
)

type Event int

const (
	EventNone Event = iota
	EventCloseRequested
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventCloseRequested:
		return "close requested"
	}
	return "unknown"
}

// Source yields pending window events. ok is false once the queue is empty.
type Source interface {
	Poll() (event Event, ok bool)
}

// Run polls src continuously until a close is requested. Once per pass,
// after the queue has been drained, onIdle is called when it is not nil.
func Run(src Source, log logrus.FieldLogger, onIdle func()) {
	start := hrtime.Now()
	var passes uint64

	for {
		for event, ok := src.Poll(); ok; event, ok = src.Poll() {
			if event == EventCloseRequested {
				log.WithFields(logrus.Fields{
					"passes":  passes,
					"elapsed": hrtime.Since(start),
				}).Info("Close button was pressed")
				return
			}
		}

		passes++
		if onIdle != nil {
			onIdle()
		}
	}
}
