package game

type EventType int

const (
	EventWallBounce EventType = iota
	EventPaddleHit
	EventScore
	EventMatchStart
	EventGameOver
)

// Side identifies a player. Scores are indexed by Side.
type Side int

const (
	SideAI Side = iota
	SidePlayer
)

type Event struct {
	Type EventType
	X, Y float64
	Col  RGB
	Side Side // scorer or winner; unused for bounces
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// Emit calls handlers synchronously in subscription order.
func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
