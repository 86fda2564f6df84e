// Package queue defines message payloads exchanged over the message broker
// and the consumer that drains them.
package queue

// ChatReceivedEvent is published after POST /api/chat answers.  It carries
// the rendered request fields and the reply so downstream consumers can log
// or analyse conversations without calling the API.
type ChatReceivedEvent struct {
	ID         string `json:"id"`
	Message    string `json:"message"`
	Language   string `json:"language"`
	Reply      string `json:"reply"`
	ReceivedAt string `json:"received_at"` // RFC 3339, UTC
}
