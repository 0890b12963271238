package deploy

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizvistar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWebhookPublisher_PublishDeployEvent(t *testing.T) {
	var gotRequestID string
	var gotEvent service.DeployEvent

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotRequestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotEvent))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewWebhookPublisher(server.URL, newDiscardLogger())
	defer publisher.Close()

	err := publisher.PublishDeployEvent(context.Background(), &service.DeployEvent{
		RequestID: "req-123",
		WebsiteID: "11111111-1111-1111-1111-111111111111",
		Slug:      "chai-corner",
	})
	require.NoError(t, err)

	assert.Equal(t, "req-123", gotRequestID)
	assert.Equal(t, "chai-corner", gotEvent.Slug)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", gotEvent.WebsiteID)
}

func TestWebhookPublisher_PublishDeployEvent_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewWebhookPublisher(server.URL, newDiscardLogger())
	defer publisher.Close()

	err := publisher.PublishDeployEvent(context.Background(), &service.DeployEvent{
		WebsiteID: "11111111-1111-1111-1111-111111111111",
		Slug:      "chai-corner",
	})
	assert.ErrorContains(t, err, "502")
}
