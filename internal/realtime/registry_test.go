package realtime

import (
	"log/slog"
	"sync"
	"testing"

	"sharefit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingWriter captures written frames and can be flipped to fail.
type recordingWriter struct {
	mu     sync.Mutex
	events []string
	datas  []string
	fail   bool
}

func (w *recordingWriter) WriteEvent(event string, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fail {
		return errors.New("write failed")
	}
	w.events = append(w.events, event)
	w.datas = append(w.datas, string(data))

	return nil
}

func (w *recordingWriter) setFail(fail bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.fail = fail
}

func (w *recordingWriter) recorded() ([]string, []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]string(nil), w.events...), append([]string(nil), w.datas...)
}

func newTestRegistry() *Registry {
	return NewRegistry(slog.Default())
}

func TestRegistry_OpenSendsConnectAck(t *testing.T) {
	registry := newTestRegistry()
	userID := uuid.New()
	writer := &recordingWriter{}

	conn, err := registry.Open(userID, service.UserScope(userID), writer)
	require.NoError(t, err)
	require.NotNil(t, conn)

	events, datas := writer.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, "connect", events[0])
	assert.Equal(t, "SSE Connected", datas[0])
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_OpenSendsSubscribeAckForResourceScope(t *testing.T) {
	registry := newTestRegistry()
	userID := uuid.New()
	workoutID := uuid.New()
	writer := &recordingWriter{}

	scope := service.ResourceScope(service.ResourceWorkout, workoutID)
	_, err := registry.Open(userID, scope, writer)
	require.NoError(t, err)

	events, datas := writer.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, "subscribe", events[0])
	assert.Equal(t, scope.Key(), datas[0])
}

func TestRegistry_OpenFailedAckDiscardsConnection(t *testing.T) {
	registry := newTestRegistry()
	userID := uuid.New()
	writer := &recordingWriter{fail: true}

	conn, err := registry.Open(userID, service.UserScope(userID), writer)
	assert.Error(t, err)
	assert.Nil(t, conn)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_SendToUser(t *testing.T) {
	registry := newTestRegistry()
	userID := uuid.New()
	writer := &recordingWriter{}

	_, err := registry.Open(userID, service.UserScope(userID), writer)
	require.NoError(t, err)

	delivered := registry.SendToUser(userID, "cheer", map[string]string{"message": "go!"})
	assert.True(t, delivered)

	events, datas := writer.recorded()
	require.Len(t, events, 2)
	assert.Equal(t, "cheer", events[1])
	assert.Contains(t, datas[1], "go!")
}

func TestRegistry_SendToUserNoConnection(t *testing.T) {
	registry := newTestRegistry()

	delivered := registry.SendToUser(uuid.New(), "cheer", nil)
	assert.False(t, delivered)
}

func TestRegistry_SendToUserFailedWriteClosesConnection(t *testing.T) {
	registry := newTestRegistry()
	userID := uuid.New()
	writer := &recordingWriter{}

	conn, err := registry.Open(userID, service.UserScope(userID), writer)
	require.NoError(t, err)

	writer.setFail(true)

	delivered := registry.SendToUser(userID, "cheer", nil)
	assert.False(t, delivered)
	assert.Equal(t, 0, registry.Len())

	select {
	case <-conn.Done():
	default:
		t.Fatal("expected connection to be closed")
	}

	// A subsequent send finds no connection at all.
	assert.False(t, registry.SendToUser(userID, "cheer", nil))
}

func TestRegistry_SendToScopeFanOut(t *testing.T) {
	registry := newTestRegistry()
	workoutID := uuid.New()
	scope := service.ResourceScope(service.ResourceWorkout, workoutID)

	good := &recordingWriter{}
	bad := &recordingWriter{}

	_, err := registry.Open(uuid.New(), scope, good)
	require.NoError(t, err)
	_, err = registry.Open(uuid.New(), scope, bad)
	require.NoError(t, err)

	bad.setFail(true)

	registry.SendToScope(scope, "workout:update", map[string]any{"total_sets": 3})

	events, _ := good.recorded()
	require.Len(t, events, 2)
	assert.Equal(t, "workout:update", events[1])

	// The failed connection was dropped, the healthy one survives.
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_SendToBroadcast(t *testing.T) {
	registry := newTestRegistry()
	writer := &recordingWriter{}

	_, err := registry.Open(uuid.New(), service.BroadcastScope("feed"), writer)
	require.NoError(t, err)

	registry.SendToBroadcast("feed", "feed:new", map[string]string{"content": "new post"})

	events, datas := writer.recorded()
	require.Len(t, events, 2)
	assert.Equal(t, "feed:new", events[1])
	assert.Contains(t, datas[1], "new post")
}

func TestRegistry_CloseIsIdempotent(t *testing.T) {
	registry := newTestRegistry()
	userID := uuid.New()
	writer := &recordingWriter{}

	conn, err := registry.Open(userID, service.UserScope(userID), writer)
	require.NoError(t, err)

	registry.Close(conn)
	registry.Close(conn)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_ConcurrentSendAndClose(t *testing.T) {
	registry := newTestRegistry()
	userID := uuid.New()

	conns := make([]*Connection, 0, 8)
	for range 8 {
		conn, err := registry.Open(userID, service.UserScope(userID), &recordingWriter{})
		require.NoError(t, err)
		conns = append(conns, conn)
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.SendToUser(userID, "cheer", map[string]string{"message": "go!"})
		}()
	}
	for _, conn := range conns[:4] {
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.Close(conn)
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, registry.Len())
}
