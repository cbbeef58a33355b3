package input

import (
	"testing"

	"github.com/lixenwraith/party-arcade/status"
)

func TestDispatchByKind(t *testing.T) {
	b := NewBus()
	downs, clicks := 0, 0
	b.Subscribe(KindKeyDown, func(Event) { downs++ })
	b.Subscribe(KindClick, func(Event) { clicks++ })

	if n := b.Dispatch(Press(KeyLeft)); n != 1 {
		t.Errorf("Dispatch called %d handlers, want 1", n)
	}
	b.Dispatch(Click(3, 4))
	b.Dispatch(Event{Kind: KindKeyUp, Key: KeyLeft})

	if downs != 1 || clicks != 1 {
		t.Errorf("downs=%d clicks=%d, want 1/1", downs, clicks)
	}
}

func TestUnsubscribeExactHandle(t *testing.T) {
	b := NewBus()
	hits := 0
	sub := b.Subscribe(KindKeyDown, func(Event) { hits++ })

	// A different handle for the same kind must not detach the original
	other := b.Subscribe(KindKeyDown, func(Event) {})
	if !b.Unsubscribe(other) {
		t.Fatal("Expected other subscription to be removed")
	}
	if b.Unsubscribe(Subscription{}) {
		t.Error("Zero subscription should not match")
	}

	b.Dispatch(Press(KeySpace))
	if hits != 1 {
		t.Fatalf("Original handler detached by foreign handle, hits=%d", hits)
	}

	if !b.Unsubscribe(sub) {
		t.Fatal("Expected original subscription to be removed")
	}
	if b.Unsubscribe(sub) {
		t.Error("Second unsubscribe should report false")
	}
	b.Dispatch(Press(KeySpace))
	if hits != 1 || b.Len() != 0 {
		t.Errorf("Handler still live after unsubscribe: hits=%d len=%d", hits, b.Len())
	}
}

func TestUnsubscribeDuringDispatchSkipsLaterHandler(t *testing.T) {
	b := NewBus()
	var second Subscription
	secondHits := 0
	b.Subscribe(KindKeyDown, func(Event) { b.Unsubscribe(second) })
	second = b.Subscribe(KindKeyDown, func(Event) { secondHits++ })

	if n := b.Dispatch(Press(KeyUp)); n != 1 {
		t.Errorf("Dispatch called %d handlers, want 1", n)
	}
	if secondHits != 0 {
		t.Error("Removed handler was still invoked")
	}
}

func TestSubscribeDuringDispatchWaitsForNextEvent(t *testing.T) {
	b := NewBus()
	late := 0
	b.Subscribe(KindKeyDown, func(Event) {
		b.Subscribe(KindKeyDown, func(Event) { late++ })
	})

	b.Dispatch(Press(KeyUp))
	if late != 0 {
		t.Error("Handler added mid-dispatch received the same event")
	}
}

func TestInstrumentTracksSubscribers(t *testing.T) {
	b := NewBus()
	reg := status.NewRegistry()
	b.Instrument(reg)

	sub := b.Subscribe(KindClick, func(Event) {})
	if got := reg.Ints.Get("input.subscribers").Load(); got != 1 {
		t.Errorf("input.subscribers = %d, want 1", got)
	}
	b.Unsubscribe(sub)
	if got := reg.Ints.Get("input.subscribers").Load(); got != 0 {
		t.Errorf("input.subscribers = %d, want 0", got)
	}
}

func TestEventHelpers(t *testing.T) {
	if d, ok := RuneDown('7').Digit(); !ok || d != 7 {
		t.Errorf("Digit() = %d, %v", d, ok)
	}
	if _, ok := RuneDown('x').Digit(); ok {
		t.Error("Non-digit rune reported as digit")
	}
	if RuneDown(' ').Key != KeySpace {
		t.Error("Space rune should map to KeySpace")
	}
	if dx, dy, ok := Press(KeyLeft).Direction(); !ok || dx != -1 || dy != 0 {
		t.Errorf("Direction() = %d,%d,%v", dx, dy, ok)
	}
	if _, _, ok := Press(KeyEnter).Direction(); ok {
		t.Error("Enter is not a direction")
	}
}
