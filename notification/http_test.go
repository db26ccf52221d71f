// file: notification/http_test.go

package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransport_Send(t *testing.T) {
	var received Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "msg-1", r.Header.Get("Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.URL, "secret-token", time.Second)
	msg := Message{ID: "msg-1", To: "9876543210", From: "HarvestHub", Body: "hello"}

	err := transport.Send(context.Background(), msg)

	assert.NoError(t, err)
	assert.Equal(t, msg, received)
}

func TestHTTPTransport_GatewayRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid number", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.URL, "", time.Second)

	err := transport.Send(context.Background(), Message{ID: "msg-2"})

	assert.ErrorIs(t, err, ErrGatewayRejected)
	assert.Contains(t, err.Error(), "invalid number")
}

func TestHTTPTransport_NotifierReportsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	n := NewNotifier(NewHTTPTransport(server.URL, "", time.Second), "HarvestHub", nil)

	assert.False(t, n.SendConfirmation(context.Background(), "9876543210", "Jane Doe"))
}
