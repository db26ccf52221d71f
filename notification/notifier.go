// file: notification/notifier.go

package notification

import (
	"context"
	"fmt"
	"harvesthub/logger"
	"harvesthub/metrics"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Message is a single outbound SMS.
type Message struct {
	ID   string `json:"id"`
	To   string `json:"to"`
	From string `json:"from"`
	Body string `json:"message"`
}

// Transport delivers a Message to an SMS gateway.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// Notifier sends registration confirmation messages. It never returns an error to
// its callers: failures are logged and reported as false.
type Notifier struct {
	transport Transport
	sender    string
	metrics   *metrics.Metrics
}

// NewNotifier creates a Notifier sending through transport. m may be nil.
func NewNotifier(transport Transport, sender string, m *metrics.Metrics) *Notifier {
	return &Notifier{transport: transport, sender: sender, metrics: m}
}

// ConfirmationText is the body of the confirmation SMS sent to a new farmer.
func ConfirmationText(fullName string) string {
	return fmt.Sprintf("Welcome to HarvestHub, %s! Your farmer account has been created.", fullName)
}

// SendConfirmation sends the confirmation message and reports whether the transport accepted it.
func (n *Notifier) SendConfirmation(ctx context.Context, mobile, fullName string) (ok bool) {
	msg := Message{
		ID:   uuid.NewString(),
		To:   mobile,
		From: n.sender,
		Body: ConfirmationText(fullName),
	}
	log := logger.Log.WithFields(logrus.Fields{
		"message_id": msg.ID,
		"mobile":     logger.MaskMobile(mobile),
	})

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("[SMS Service] Failed to send confirmation SMS")
			ok = false
		}
		n.metrics.ObserveNotification(start, ok)
	}()

	if err := n.transport.Send(ctx, msg); err != nil {
		log.WithError(err).Error("[SMS Service] Failed to send confirmation SMS")
		return false
	}

	log.Info("Confirmation SMS sent")
	return true
}

// SendConfirmationAsync runs SendConfirmation in the background. The returned channel
// receives exactly one result and is then closed; callers that do not care may drop it.
func (n *Notifier) SendConfirmationAsync(ctx context.Context, mobile, fullName string) <-chan bool {
	result := make(chan bool, 1)
	go func() {
		defer close(result)
		result <- n.SendConfirmation(ctx, mobile, fullName)
	}()
	return result
}
