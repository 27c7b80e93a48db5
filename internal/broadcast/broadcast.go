package broadcast

import (
	"log"
	"sync"

	"reactiontest/internal/events"
)

// StateEvent is the SSE event name carrying run snapshots.
const StateEvent = "state"

type HxEventMessage struct {
	Event string
	Msg   string
}

// Encoder renders a state event for the wire.
type Encoder func(events.StateEvent) (string, error)

// Sink receives every encoded state event alongside the SSE subscribers.
type Sink interface {
	Broadcast(data []byte)
}

type Broadcaster struct {
	Mu      sync.Mutex
	Clients map[chan HxEventMessage]bool
	done    chan struct{}
}

// NewBroadcaster forwards every event on bus to subscribers and sinks until
// the bus is closed, then closes all subscriber channels.
func NewBroadcaster(bus *events.Bus, encode Encoder, sinks ...Sink) *Broadcaster {
	b := &Broadcaster{
		Clients: make(map[chan HxEventMessage]bool),
		done:    make(chan struct{}),
	}
	go func() {
		defer b.closeAll()
		for ev := range bus.StateChanges {
			msg, err := encode(ev)
			if err != nil {
				log.Printf("[Broadcast] encoding state %d: %v\n", ev.Seq, err)
				continue
			}
			b.BroadcastOOB(StateEvent, msg)
			for _, s := range sinks {
				s.Broadcast([]byte(msg))
			}
		}
	}()
	return b
}

// Done is closed once the bus has been drained and closed.
func (b *Broadcaster) Done() <-chan struct{} {
	return b.done
}

// Subscribe returns a channel of messages. After the broadcaster is done
// the returned channel is already closed.
func (b *Broadcaster) Subscribe() chan HxEventMessage {
	ch := make(chan HxEventMessage, 10)
	b.Mu.Lock()
	defer b.Mu.Unlock()
	select {
	case <-b.done:
		close(ch)
	default:
		b.Clients[ch] = true
	}
	return ch
}

func (b *Broadcaster) Unsubscribe(ch chan HxEventMessage) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	if b.Clients[ch] {
		delete(b.Clients, ch)
		close(ch)
	}
}

func (b *Broadcaster) BroadcastOOB(event string, message string) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	for ch := range b.Clients {
		select {
		case ch <- HxEventMessage{Event: event, Msg: message}:
		default:
			// skip clients with full data channels
		}
	}
}

func (b *Broadcaster) closeAll() {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	for ch := range b.Clients {
		delete(b.Clients, ch)
		close(ch)
	}
	close(b.done)
}
