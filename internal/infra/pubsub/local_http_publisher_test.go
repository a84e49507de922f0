package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "sharefit/internal/delivery/context"
	"sharefit/internal/domain/entity"
	"sharefit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_Publish_RoundTrip(t *testing.T) {
	var received PubSubPushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	userID := uuid.New()
	req := &service.PushRequest{
		UserID:       userID,
		Title:        "응원 도착!",
		Body:         "minsu: 오늘도 화이팅!",
		Kind:         entity.EventKindCheer,
		Data:         map[string]string{"workout_id": uuid.NewString()},
		HighPriority: true,
	}

	ctx := deliverycontext.WithRequestID(context.Background(), "req-roundtrip")
	require.NoError(t, publisher.Publish(ctx, req))

	// The worker must be able to reconstruct the exact request from the envelope
	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.PushRequest
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, req.UserID, decoded.UserID)
	assert.Equal(t, req.Title, decoded.Title)
	assert.Equal(t, req.Body, decoded.Body)
	assert.Equal(t, req.Kind, decoded.Kind)
	assert.Equal(t, req.Data, decoded.Data)
	assert.True(t, decoded.HighPriority)

	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, string(entity.EventKindCheer), received.Message.Attributes["kind"])
	assert.Equal(t, userID.String(), received.Message.Attributes["user_id"])
	assert.Equal(t, "req-roundtrip", received.Message.Attributes["request_id"])
}

func TestLocalHTTPPublisher_Publish_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())

	err := publisher.Publish(context.Background(), &service.PushRequest{
		UserID: uuid.New(),
		Title:  "좋아요",
		Kind:   entity.EventKindFeedLike,
	})
	assert.Error(t, err)
}

func TestLocalHTTPPublisher_Close(t *testing.T) {
	publisher := NewLocalHTTPPublisher("http://127.0.0.1:0", slog.Default())
	assert.NoError(t, publisher.Close())
}
