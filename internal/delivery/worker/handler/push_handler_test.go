package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sharefit/config"
	"sharefit/internal/domain/entity"
	"sharefit/internal/domain/service"
	mocksservice "sharefit/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushEnvelope(t *testing.T, req *service.PushRequest) []byte {
	t.Helper()

	data, err := json.Marshal(req)
	require.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":        base64.StdEncoding.EncodeToString(data),
			"messageId":   uuid.NewString(),
			"publishTime": time.Now().UTC().Format(time.RFC3339),
			"attributes": map[string]string{
				"kind":       string(req.Kind),
				"user_id":    req.UserID.String(),
				"request_id": "req-123",
			},
		},
		"subscription": "projects/local/subscriptions/push-fallback-sub",
	}

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return body
}

func newPushTestHandler(t *testing.T) (*PushHandler, *mocksservice.MockPushDeliverer) {
	t.Helper()

	deliverer := mocksservice.NewMockPushDeliverer(t)
	h := NewPushHandler(PushHandlerParams{
		Config:    &config.Config{},
		Logger:    slog.Default(),
		Deliverer: deliverer,
	})

	return h, deliverer
}

func postPush(h *PushHandler, body []byte) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.HandlePush(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func TestPushHandler_HandlePush_DeliversRequest(t *testing.T) {
	h, deliverer := newPushTestHandler(t)

	userID := uuid.New()
	pushReq := &service.PushRequest{
		UserID:       userID,
		Title:        "응원 도착!",
		Body:         "minsu: 화이팅!",
		Kind:         entity.EventKindCheer,
		HighPriority: true,
	}

	var delivered *service.PushRequest
	deliverer.EXPECT().
		Deliver(mock.Anything, mock.AnythingOfType("*service.PushRequest")).
		Run(func(_ context.Context, req *service.PushRequest) {
			delivered = req
		}).
		Return()

	rec := postPush(h, newPushEnvelope(t, pushReq))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, delivered)
	assert.Equal(t, userID, delivered.UserID)
	assert.Equal(t, "응원 도착!", delivered.Title)
	assert.Equal(t, entity.EventKindCheer, delivered.Kind)
	assert.True(t, delivered.HighPriority)
}

func TestPushHandler_HandlePush_MalformedEnvelope(t *testing.T) {
	h, _ := newPushTestHandler(t)

	rec := postPush(h, []byte(`{"message": {"data": "not-base64!!"}}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_UnparsablePayload(t *testing.T) {
	h, _ := newPushTestHandler(t)

	envelope := map[string]any{
		"message": map[string]any{
			"data":      base64.StdEncoding.EncodeToString([]byte("not json")),
			"messageId": uuid.NewString(),
		},
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	rec := postPush(h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_TargetlessRequestIsAcked(t *testing.T) {
	h, _ := newPushTestHandler(t)

	// A request with no user and no token is acked so Pub/Sub stops redelivering it
	rec := postPush(h, newPushEnvelope(t, &service.PushRequest{
		Title: "좋아요",
		Kind:  entity.EventKindFeedLike,
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RejectsUnauthenticatedGooglePush(t *testing.T) {
	deliverer := mocksservice.NewMockPushDeliverer(t)

	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: "google"},
	}
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Logger:    slog.Default(),
		Deliverer: deliverer,
	})

	rec := postPush(h, newPushEnvelope(t, &service.PushRequest{
		UserID: uuid.New(),
		Title:  "새 팔로워",
		Kind:   entity.EventKindFollow,
	}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
