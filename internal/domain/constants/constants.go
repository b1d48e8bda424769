// Package constants defines shared constant values used across the project.
package constants

// Pub/Sub provider types
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Lifecycle actions published when an admin changes a user's standing.
const (
	ActionApprove   = "approve"
	ActionReject    = "reject"
	ActionSuspend   = "suspend"
	ActionReinstate = "reinstate"
	ActionBan       = "ban"
)
