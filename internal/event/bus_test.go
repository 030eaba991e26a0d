package event

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestBusFIFO(t *testing.T) {
	bus := NewBus()

	sent := []Event{Tick{}, Render{}, Paste{Text: "a"}, Resize{Width: 80, Height: 24}}
	for _, ev := range sent {
		if err := bus.Send(ev); err != nil {
			t.Fatalf("Send failed: %v", err)
		}
	}

	for i, want := range sent {
		got, ok := bus.TryRecv()
		if !ok {
			t.Fatalf("TryRecv %d: bus empty, want %T", i, want)
		}
		if fmt.Sprintf("%#v", got) != fmt.Sprintf("%#v", want) {
			t.Errorf("TryRecv %d: got %#v, want %#v", i, got, want)
		}
	}

	if _, ok := bus.TryRecv(); ok {
		t.Error("Expected empty bus after draining")
	}
}

func TestBusEmptyRecvIsNotAnError(t *testing.T) {
	bus := NewBus()
	if ev, ok := bus.TryRecv(); ok {
		t.Errorf("TryRecv on empty bus returned %#v", ev)
	}
	if bus.Len() != 0 {
		t.Errorf("Len = %d, want 0", bus.Len())
	}
}

func TestBusSendAfterClose(t *testing.T) {
	bus := NewBus()
	if err := bus.Send(Tick{}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	bus.Close()

	if err := bus.Send(Render{}); !errors.Is(err, ErrBusClosed) {
		t.Errorf("Send after Close: got %v, want ErrBusClosed", err)
	}

	// Events already in flight stay readable
	if _, ok := bus.TryRecv(); !ok {
		t.Error("Pending event lost on Close")
	}
}

func TestBusConcurrentProducers(t *testing.T) {
	bus := NewBus()

	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				if err := bus.Send(Tick{}); err != nil {
					t.Errorf("Send failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if bus.Len() != producers*perProducer {
		t.Errorf("Len = %d, want %d", bus.Len(), producers*perProducer)
	}
}

func TestNoisy(t *testing.T) {
	if !Noisy(Tick{}) || !Noisy(Render{}) {
		t.Error("Tick and Render should be noisy")
	}
	if Noisy(Quit{}) || Noisy(Key{}) {
		t.Error("Quit and Key should not be noisy")
	}
}
