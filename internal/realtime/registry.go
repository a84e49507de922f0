// Package realtime manages the live streaming connections of the process and
// fans events out to them. It is the in-memory side of event delivery; the
// push fallback covers users with no open connection here.
package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"sharefit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MaxConnectionAge is the ceiling on a single streaming connection's
// lifetime. Clients are expected to reconnect when the server ends the
// stream.
const MaxConnectionAge = 60 * time.Minute

// Acknowledgement frames sent right after a stream opens, so clients know the
// subscription is live before any real event arrives.
const (
	connectEvent   = "connect"
	subscribeEvent = "subscribe"
	connectAck     = "SSE Connected"
)

// StreamWriter is the transport half of a connection. The delivery layer
// implements it over an SSE response; the registry never sees HTTP.
type StreamWriter interface {
	// WriteEvent writes one named event frame. Implementations must flush
	// before returning so slow consumers surface as write errors.
	WriteEvent(event string, data []byte) error
}

// Connection is one open stream bound to a scope for its whole lifetime.
type Connection struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Scope     service.StreamScope
	CreatedAt time.Time

	writer StreamWriter

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// Done is closed when the connection is removed from the registry, either by
// a failed write or an explicit Close.
func (c *Connection) Done() <-chan struct{} {
	return c.done
}

// write serializes writes per connection. Concurrent senders never interleave
// frames on the same stream.
func (c *Connection) write(event string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.New("connection closed")
	}

	return c.writer.WriteEvent(event, data)
}

func (c *Connection) markClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	c.closed = true
	close(c.done)

	return true
}

// Registry owns every open streaming connection of this process instance,
// indexed by scope key for fan-out.
type Registry struct {
	mu      sync.RWMutex
	conns   map[uuid.UUID]*Connection
	byScope map[string]map[uuid.UUID]*Connection

	logger *slog.Logger
}

// NewRegistry creates an empty connection registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		conns:   make(map[uuid.UUID]*Connection),
		byScope: make(map[string]map[uuid.UUID]*Connection),
		logger:  logger,
	}
}

// Open registers a new connection under its scope and sends the
// acknowledgement frame. If the ack cannot be written the connection is
// discarded and an error returned, so dead streams never enter the index.
func (r *Registry) Open(userID uuid.UUID, scope service.StreamScope, writer StreamWriter) (*Connection, error) {
	conn := &Connection{
		ID:        uuid.New(),
		UserID:    userID,
		Scope:     scope,
		CreatedAt: time.Now(),
		writer:    writer,
		done:      make(chan struct{}),
	}

	key := scope.Key()

	r.mu.Lock()
	r.conns[conn.ID] = conn
	scoped, ok := r.byScope[key]
	if !ok {
		scoped = make(map[uuid.UUID]*Connection)
		r.byScope[key] = scoped
	}
	scoped[conn.ID] = conn
	r.mu.Unlock()

	// Ack the subscription. Personal streams get "connect", everything else
	// gets "subscribe" carrying the scope key.
	ackEvent := subscribeEvent
	ackData := []byte(key)
	if scope.Kind == service.ScopeKindUser {
		ackEvent = connectEvent
		ackData = []byte(connectAck)
	}

	if err := conn.write(ackEvent, ackData); err != nil {
		r.Close(conn)

		return nil, errors.Wrap(err, "failed to write stream ack")
	}

	r.logger.Debug("stream opened",
		slog.String("connection_id", conn.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("scope", key),
	)

	return conn, nil
}

// Close removes a connection from the registry. Safe to call more than once
// and from any goroutine.
func (r *Registry) Close(conn *Connection) {
	if conn == nil || !conn.markClosed() {
		return
	}

	key := conn.Scope.Key()

	r.mu.Lock()
	delete(r.conns, conn.ID)
	if scoped, ok := r.byScope[key]; ok {
		delete(scoped, conn.ID)
		if len(scoped) == 0 {
			delete(r.byScope, key)
		}
	}
	r.mu.Unlock()

	r.logger.Debug("stream closed",
		slog.String("connection_id", conn.ID.String()),
		slog.String("scope", key),
	)
}

// Len returns the number of open connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conns)
}

// SendToUser writes one event to the target user's open personal streams.
// It returns true only if at least one write succeeded.
func (r *Registry) SendToUser(userID uuid.UUID, event string, payload any) bool {
	data, err := r.marshal(event, payload)
	if err != nil {
		return false
	}

	delivered := 0
	for _, conn := range r.snapshot(service.UserScope(userID).Key()) {
		if err := conn.write(event, data); err != nil {
			r.logger.Warn("stream write failed, dropping connection",
				slog.String("connection_id", conn.ID.String()),
				slog.String("event", event),
				slog.Any("error", err),
			)
			r.Close(conn)

			continue
		}
		delivered++
	}

	return delivered > 0
}

// SendToScope fans an event out to every connection bound to the scope.
// Failed writes close the offending connection but do not abort the fan-out.
func (r *Registry) SendToScope(scope service.StreamScope, event string, payload any) {
	data, err := r.marshal(event, payload)
	if err != nil {
		return
	}

	for _, conn := range r.snapshot(scope.Key()) {
		if err := conn.write(event, data); err != nil {
			r.logger.Warn("stream write failed, dropping connection",
				slog.String("connection_id", conn.ID.String()),
				slog.String("event", event),
				slog.Any("error", err),
			)
			r.Close(conn)
		}
	}
}

// SendToBroadcast fans an event out to every connection on a broadcast channel.
func (r *Registry) SendToBroadcast(channel, event string, payload any) {
	r.SendToScope(service.BroadcastScope(channel), event, payload)
}

// snapshot copies the scope's connection set so writes happen outside the
// registry lock.
func (r *Registry) snapshot(key string) []*Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scoped := r.byScope[key]
	if len(scoped) == 0 {
		return nil
	}

	conns := make([]*Connection, 0, len(scoped))
	for _, conn := range scoped {
		conns = append(conns, conn)
	}

	return conns
}

func (r *Registry) marshal(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		r.logger.Error("failed to marshal stream payload",
			slog.String("event", event),
			slog.Any("error", err),
		)

		return nil, err
	}

	return data, nil
}

// Interface guard.
var _ service.StreamRegistry = (*Registry)(nil)
