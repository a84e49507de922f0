// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// EventKind is the closed set of notification kinds the system produces.
// The values travel to client apps inside push payloads, so they are stable.
type EventKind string

const (
	EventKindWorkoutStart    EventKind = "WORKOUT_START"
	EventKindWorkoutUpdate   EventKind = "WORKOUT_UPDATE"
	EventKindWorkoutComplete EventKind = "WORKOUT_COMPLETE"
	EventKindCheer           EventKind = "CHEER"
	EventKindFeedNew         EventKind = "FEED_NEW"
	EventKindFeedLike        EventKind = "FEED_LIKE"
	EventKindFeedComment     EventKind = "FEED_COMMENT"
	EventKindFollow          EventKind = "FOLLOW"
	EventKindGroupJoin       EventKind = "GROUP_JOIN"
	EventKindGroupPost       EventKind = "GROUP_POST"
)

// NotificationEvent is an immutable value describing one domain event to be
// delivered. The structured Payload goes out on live streams; Title and Body
// are used only when delivery falls back to a push notification.
type NotificationEvent struct {
	Kind            EventKind         `json:"kind"`
	StreamEvent     string            `json:"stream_event"`      // Wire event name clients dispatch on, e.g. "feed:like".
	ActorID         uuid.UUID         `json:"actor_id"`          // The user whose action produced the event.
	TargetUserID    uuid.UUID         `json:"target_user_id"`    // Single-user target; uuid.Nil when not user-targeted.
	ResourceType    string            `json:"resource_type"`     // "workout" or "group" for resource-scoped events.
	ResourceID      uuid.UUID         `json:"resource_id"`       // Resource identity for resource-scoped events.
	Broadcast       bool              `json:"broadcast"`         // True for global feed broadcast events.
	FanOutFollowers bool              `json:"fan_out_followers"` // True when the event is also routed to each follower of the actor.
	Title           string            `json:"title"`             // Push fallback title; empty means stream-only, never push.
	Body            string            `json:"body"`              // Push fallback body.
	Payload         any               `json:"payload"`           // Structured live-stream message.
	Data            map[string]string `json:"data,omitempty"`    // String extras for client-side routing.
	HighPriority    bool              `json:"high_priority"`     // Latency-sensitive kinds request high-priority push.
}
