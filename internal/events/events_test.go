package events

import (
	"testing"
	"time"
)

func TestNewBus(t *testing.T) {
	bus := NewBus()
	if bus == nil {
		t.Fatal("NewBus() returned nil")
	}
	if bus.StateChanges == nil {
		t.Fatal("StateChanges channel is nil")
	}
}

func TestBus_PublishReceive(t *testing.T) {
	bus := NewBus()

	if !bus.Publish(StateEvent{State: "waiting", Round: 1}) {
		t.Fatal("Publish() dropped an event on an empty bus")
	}

	select {
	case received := <-bus.StateChanges:
		if received.State != "waiting" || received.Round != 1 {
			t.Errorf("received %+v, want state=waiting round=1", received)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBus_PublishDropsWhenFull(t *testing.T) {
	bus := NewBus()

	// Should be able to publish up to 10 without blocking
	for i := 0; i < 10; i++ {
		if !bus.Publish(StateEvent{Seq: uint64(i)}) {
			t.Fatalf("Publish() #%d dropped", i)
		}
	}
	if bus.Publish(StateEvent{Seq: 10}) {
		t.Error("Publish() on a full bus should report a drop")
	}

	first := <-bus.StateChanges
	if first.Seq != 0 {
		t.Errorf("first Seq = %d, want 0", first.Seq)
	}
}

func TestBus_Close(t *testing.T) {
	bus := NewBus()
	bus.Publish(StateEvent{Seq: 1})
	bus.Close()

	if ev, ok := <-bus.StateChanges; !ok || ev.Seq != 1 {
		t.Errorf("buffered event lost on Close: %+v, %v", ev, ok)
	}
	if _, ok := <-bus.StateChanges; ok {
		t.Error("StateChanges should be closed")
	}
}
