package events

// EventType identifies a domain event.
type EventType string

const (
	EventProcessCreated      EventType = "process.created"
	EventTaskAssigned        EventType = "task.assigned"
	EventAudienceScheduled   EventType = "audience.scheduled"
	EventDeadlineApproaching EventType = "deadline.approaching"
)

// Event carries a domain occurrence to subscribers.
type Event struct {
	Type      EventType
	ProcessID string
	Payload   map[string]any
}
