// Package messaging defines interfaces for real-time communication.
package messaging

// Broadcaster defines the interface for managing live presence clients
// and feeding the counters they display.
type Broadcaster interface {
	Register(client *PresenceClient)
	Unregister(client *PresenceClient)
	RecordCaptionGenerated()
	ClientCount() int
}
