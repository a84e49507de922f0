package service

import (
	"context"

	"sharefit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUnregisteredToken marks a device token the push provider reports as
// permanently invalid. Callers must prune the stored token on this error.
var ErrUnregisteredToken = errors.New("push token invalid or unregistered")

// PushRequest is the serialized form of a NotificationEvent carried across
// the fallback bridge: everything needed to deliver one push notification.
type PushRequest struct {
	UserID       uuid.UUID         `json:"user_id"`
	DeviceToken  string            `json:"device_token,omitempty"` // Empty means resolve from the user record downstream.
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	Kind         entity.EventKind  `json:"kind"`
	Data         map[string]string `json:"data,omitempty"`
	HighPriority bool              `json:"high_priority"`
}

// PushGateway wraps the external push provider. Implementations translate a
// title/body/data notification into the provider's message format and report
// permanently invalid tokens via ErrUnregisteredToken.
type PushGateway interface {
	// Send delivers one push notification to a device token.
	Send(ctx context.Context, token, title, body string, data map[string]string, highPriority bool) error

	// SendEach delivers the same notification to multiple tokens in one batch
	// call, reporting per-item outcomes and the tokens found invalid.
	SendEach(ctx context.Context, tokens []string, title, body string, data map[string]string, highPriority bool) (successCount, failureCount int, invalidTokens []string, err error)
}

// PushDeliverer is the push gateway client: it resolves device tokens, calls
// the gateway, and prunes stored tokens the provider reports as dead. Errors
// never escape; a failed push is logged and lost.
type PushDeliverer interface {
	// Deliver sends one push request, resolving the device token from the
	// user record when the request carries none.
	Deliver(ctx context.Context, req *PushRequest)

	// DeliverBatch sends several requests as one provider batch call.
	DeliverBatch(ctx context.Context, reqs []*PushRequest)
}

// PushFallback is the fallback bridge capability: it accepts a push request
// from any process instance and gets it delivered, either via a message bus
// consumed by a worker or directly in process. Selected at startup; absent
// deployments get a no-op.
type PushFallback interface {
	// Publish hands a push request to the bridge. Fire-and-forget; a failed
	// publish degrades silently to "no push delivered".
	Publish(ctx context.Context, req *PushRequest) error

	// Close releases any resources held by the bridge.
	Close() error
}
