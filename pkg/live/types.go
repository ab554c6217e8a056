package live

// MessageType is the first byte of every frame
type MessageType uint8

const (
	// Frame types
	FrameHTML    MessageType = 0x00
	FrameEvent   MessageType = 0x01
	FrameControl MessageType = 0x02
)

// EventType identifies a client-side action
type EventType uint8

const (
	EventFilterCategory EventType = 0x01
	EventFilterQuery    EventType = 0x02
	EventFilterReset    EventType = 0x03
	EventSubmit         EventType = 0x04
	EventReset          EventType = 0x05
)

var eventNames = map[EventType]string{
	EventFilterCategory: "filter-category",
	EventFilterQuery:    "filter-query",
	EventFilterReset:    "filter-reset",
	EventSubmit:         "submit",
	EventReset:          "reset",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseEventType maps the names used in data-live-event attributes back to
// event types.
func ParseEventType(name string) (EventType, bool) {
	for t, n := range eventNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// Event is a client action addressed to one view
type Event struct {
	Type   EventType
	View   string
	Fields map[string]string
}

// Field returns the named field or ""
func (e Event) Field(name string) string {
	return e.Fields[name]
}

// Update carries the freshly rendered markup of a view
type Update struct {
	Seq  uint64
	View string
	HTML string
}

// Control messages
const (
	ControlHello = "HELLO"
	ControlPing  = "PING"
	ControlPong  = "PONG"
	ControlError = "ERROR"
)

// Control is a connection-level message. Text and Seq are optional.
type Control struct {
	Name string
	Text string
	Seq  uint64
}
