package services

import "fmt"

// Broadcaster fans a domain event out to everyone watching a logical
// room. Services never talk to a transport directly; the websocket hub
// implements this and delivery is best-effort.
type Broadcaster interface {
	Broadcast(room string, event any)
}

// FormRoom is the room id all events about one form are published to.
func FormRoom(formID uint) string {
	return fmt.Sprintf("form:%d", formID)
}

type FormEvent struct {
	Event         string `json:"event"`
	FormID        uint   `json:"form_id"`
	Status        string `json:"status,omitempty"`
	ApprovalFlags int    `json:"approval_flags"`
	Payload       any    `json:"payload,omitempty"`
}

type NoopBroadcaster struct{}

func (NoopBroadcaster) Broadcast(room string, event any) {}
