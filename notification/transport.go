// file: notification/transport.go

package notification

import (
	"errors"
	"fmt"
	"harvesthub/config"

	"github.com/benbjohnson/clock"
)

var ErrGatewayURLRequired = errors.New("notification.gateway_url is required for the http transport")

// NewTransport builds the transport named in cfg. c drives the simulated delay of the stub
// transport; nil uses the system clock.
func NewTransport(cfg config.NotificationConfig, c clock.Clock) (Transport, error) {
	switch cfg.Transport {
	case "", "stub":
		return NewSimulatedTransport(c, cfg.SimulatedDelay), nil
	case "http":
		if cfg.GatewayURL == "" {
			return nil, ErrGatewayURLRequired
		}
		return NewHTTPTransport(cfg.GatewayURL, cfg.GatewayToken, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown notification transport %q", cfg.Transport)
	}
}
