package broadcast

import (
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"reactiontest/internal/events"
)

func encodeState(ev events.StateEvent) (string, error) {
	return ev.State + ":" + strconv.Itoa(ev.Round), nil
}

type recordingSink struct {
	mu   sync.Mutex
	msgs []string
}

func (s *recordingSink) Broadcast(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, string(data))
}

func (s *recordingSink) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.msgs)
}

func TestNewBroadcaster(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus, encodeState)
	if b == nil {
		t.Fatal("NewBroadcaster() returned nil")
	}
}

func TestBroadcaster_SubscribeUnsubscribe(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus, encodeState)

	ch := b.Subscribe()
	if ch == nil {
		t.Fatal("Subscribe() returned nil")
	}

	b.Mu.Lock()
	if len(b.Clients) != 1 {
		t.Errorf("clients count = %d, want 1", len(b.Clients))
	}
	b.Mu.Unlock()

	b.Unsubscribe(ch)

	b.Mu.Lock()
	if len(b.Clients) != 0 {
		t.Errorf("clients count after unsubscribe = %d, want 0", len(b.Clients))
	}
	b.Mu.Unlock()

	// Second unsubscribe must not panic
	b.Unsubscribe(ch)
}

func TestBroadcaster_BroadcastOOB(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus, encodeState)

	ch1 := b.Subscribe()
	ch2 := b.Subscribe()

	b.BroadcastOOB("test-event", "hello")

	for _, ch := range []chan HxEventMessage{ch1, ch2} {
		select {
		case msg := <-ch:
			if msg.Event != "test-event" || msg.Msg != "hello" {
				t.Errorf("got %+v, want event=test-event, msg=hello", msg)
			}
		case <-time.After(1 * time.Second):
			t.Fatal("timed out")
		}
	}

	b.Unsubscribe(ch1)
	b.Unsubscribe(ch2)
}

func TestBroadcaster_SkipsFullChannels(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus, encodeState)

	ch := b.Subscribe()

	// Fill the channel buffer (capacity 10)
	for i := 0; i < 10; i++ {
		b.BroadcastOOB("fill", "data")
	}

	// This should not block even though channel is full
	done := make(chan bool)
	go func() {
		b.BroadcastOOB("overflow", "data")
		done <- true
	}()

	select {
	case <-done:
		// Success - didn't block
	case <-time.After(1 * time.Second):
		t.Fatal("BroadcastOOB blocked on full channel")
	}

	b.Unsubscribe(ch)
}

func TestBroadcaster_StateForwarding(t *testing.T) {
	bus := events.NewBus()
	sink := &recordingSink{}
	b := NewBroadcaster(bus, encodeState, sink)

	ch := b.Subscribe()

	bus.Publish(events.StateEvent{State: "waiting", Round: 2})

	select {
	case msg := <-ch:
		if msg.Event != StateEvent || msg.Msg != "waiting:2" {
			t.Errorf("got %+v, want event=state, msg=waiting:2", msg)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for state broadcast")
	}

	deadline := time.Now().Add(time.Second)
	for sink.len() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if sink.len() != 1 || sink.msgs[0] != "waiting:2" {
		t.Errorf("sink got %v, want [waiting:2]", sink.msgs)
	}

	b.Unsubscribe(ch)
}

func TestBroadcaster_SkipsEncodeErrors(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus, func(ev events.StateEvent) (string, error) {
		if ev.Seq == 1 {
			return "", errors.New("boom")
		}
		return encodeState(ev)
	})
	ch := b.Subscribe()

	bus.Publish(events.StateEvent{Seq: 1, State: "waiting"})
	bus.Publish(events.StateEvent{Seq: 2, State: "playing", Round: 1})

	select {
	case msg := <-ch:
		if msg.Msg != "playing:1" {
			t.Errorf("got %+v, want the event after the failed one", msg)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timed out")
	}
}

func TestBroadcaster_BusCloseEndsSubscribers(t *testing.T) {
	bus := events.NewBus()
	b := NewBroadcaster(bus, encodeState)
	ch := b.Subscribe()

	bus.Close()

	select {
	case <-b.Done():
	case <-time.After(1 * time.Second):
		t.Fatal("broadcaster did not finish after bus close")
	}
	if _, ok := <-ch; ok {
		t.Error("subscriber channel should be closed")
	}
	late := b.Subscribe()
	if _, ok := <-late; ok {
		t.Error("subscribing after done should return a closed channel")
	}
	b.Unsubscribe(ch)
}
