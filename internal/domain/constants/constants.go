// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	// PubSubProviderGoogle publishes fallback pushes through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
	// PubSubProviderLocal POSTs Pub/Sub-shaped envelopes to a local worker endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderDirect sends pushes in-process without a broker.
	PubSubProviderDirect = "direct"
)

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
