// handler/main_test.go
package handler

import (
	"bytes"
	"context"
	"database/sql"
	"harvesthub/logger"
	"harvesthub/notification"
	"harvesthub/repository"
	"harvesthub/service"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// TestMain sets up logging for the handler package.
func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// captureTransport records every message handed to it.
type captureTransport struct {
	sent chan notification.Message
}

func (c *captureTransport) Send(_ context.Context, msg notification.Message) error {
	c.sent <- msg
	return nil
}

type handlerFixture struct {
	db        *sql.DB
	dbMock    sqlmock.Sqlmock
	auth      *service.AuthService
	transport *captureTransport
	farmers   *FarmerHandler
	authH     *AuthHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	database, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	repo := repository.NewFarmerRepository(database)
	auth := service.NewAuthService(repo, "handler-test-secret", time.Hour)
	transport := &captureTransport{sent: make(chan notification.Message, 4)}
	farmerService := service.NewFarmerService(service.FarmerServiceDeps{
		Repo:     repo,
		Auth:     auth,
		Notifier: notification.NewNotifier(transport, "HarvestHub", nil),
	})

	return &handlerFixture{
		db:        database,
		dbMock:    dbMock,
		auth:      auth,
		transport: transport,
		farmers:   NewFarmerHandler(farmerService),
		authH:     NewAuthHandler(auth),
	}
}

// multipartPhoto builds a multipart body with a single "photo" part.
func multipartPhoto(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="photo"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func newMultipartRequest(t *testing.T, method, target, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	body, formType := multipartPhoto(t, filename, contentType, data)
	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", formType)
	return req
}
