// Package service defines the interfaces for infrastructure-backed domain services.
package service

import (
	"fmt"

	"github.com/google/uuid"
)

// StreamScopeKind is the addressing class a live connection is bound to.
type StreamScopeKind string

const (
	// ScopeKindUser addresses a single user's personal stream.
	ScopeKindUser StreamScopeKind = "user"
	// ScopeKindResource addresses subscribers of one resource (workout, group).
	ScopeKindResource StreamScopeKind = "resource"
	// ScopeKindBroadcast addresses the global feed audience.
	ScopeKindBroadcast StreamScopeKind = "broadcast"
)

// Resource types used in stream scopes.
const (
	ResourceWorkout = "workout"
	ResourceGroup   = "group"
)

// StreamScope is the addressing key a connection is bound to for its lifetime.
type StreamScope struct {
	Kind         StreamScopeKind
	UserID       uuid.UUID // Set for ScopeKindUser.
	ResourceType string    // Set for ScopeKindResource.
	ResourceID   uuid.UUID // Set for ScopeKindResource.
	Channel      string    // Set for ScopeKindBroadcast, e.g. "feed".
}

// UserScope addresses a single user's personal stream.
func UserScope(userID uuid.UUID) StreamScope {
	return StreamScope{Kind: ScopeKindUser, UserID: userID}
}

// ResourceScope addresses subscribers of one resource.
func ResourceScope(resourceType string, resourceID uuid.UUID) StreamScope {
	return StreamScope{Kind: ScopeKindResource, ResourceType: resourceType, ResourceID: resourceID}
}

// BroadcastScope addresses a global broadcast channel.
func BroadcastScope(channel string) StreamScope {
	return StreamScope{Kind: ScopeKindBroadcast, Channel: channel}
}

// Key returns the index key for this scope. Keys are unique across kinds.
func (s StreamScope) Key() string {
	switch s.Kind {
	case ScopeKindUser:
		return "user:" + s.UserID.String()
	case ScopeKindResource:
		return fmt.Sprintf("%s:%s", s.ResourceType, s.ResourceID)
	case ScopeKindBroadcast:
		return "broadcast:" + s.Channel
	}

	return ""
}

// StreamRegistry is the live-connection side of event delivery. The concrete
// registry owns all open streaming connections; senders only see delivery
// outcomes, never connection handles.
type StreamRegistry interface {
	// SendToUser writes one event to the target user's open personal streams.
	// It returns true only if at least one write succeeded; a false return is
	// the signal to fall back to a push notification.
	SendToUser(userID uuid.UUID, event string, payload any) bool

	// SendToScope fans an event out to every connection bound to the scope.
	// Failed writes close the offending connection but do not abort the fan-out.
	SendToScope(scope StreamScope, event string, payload any)

	// SendToBroadcast fans an event out to every broadcast connection.
	SendToBroadcast(channel, event string, payload any)
}
