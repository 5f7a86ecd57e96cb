// Package constants holds provider names shared by configuration and wiring.
package constants

// Pub/Sub providers for email event publishing.
const (
	PubSubProviderInline = "inline"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Mail providers.
const (
	MailProviderSES = "ses"
	MailProviderLog = "log"
)
