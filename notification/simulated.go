// file: notification/simulated.go

package notification

import (
	"context"
	"harvesthub/logger"
	"time"

	"github.com/benbjohnson/clock"
)

// SimulatedTransport stands in for a real SMS gateway: it waits a fixed delay on its
// clock and then reports success.
type SimulatedTransport struct {
	clock clock.Clock
	delay time.Duration
}

// NewSimulatedTransport creates a SimulatedTransport. A nil clock uses the system clock.
func NewSimulatedTransport(c clock.Clock, delay time.Duration) *SimulatedTransport {
	if c == nil {
		c = clock.New()
	}
	return &SimulatedTransport{clock: c, delay: delay}
}

func (t *SimulatedTransport) Send(ctx context.Context, msg Message) error {
	if t.delay > 0 {
		select {
		case <-t.clock.After(t.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	logger.Log.WithField("message_id", msg.ID).Debug("Simulated SMS gateway accepted message")
	return nil
}
