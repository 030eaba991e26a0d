package tui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arcade/internal/event"
)

const (
	// stopSoftBound is how long Stop waits for the source loop to observe
	// cancellation before forcing teardown.
	stopSoftBound = 100 * time.Millisecond
	// stopHardBound is the total wait before Stop gives up entirely.
	stopHardBound = 200 * time.Millisecond

	stopPollInterval = 5 * time.Millisecond
)

// ErrStopTimeout is returned by Stop when the source loop is still running
// past the hard bound even after forced teardown.
var ErrStopTimeout = errors.New("could not stop terminal event source task")

var errSourceRunning = errors.New("event source still running")

// Source turns the terminal's input and timing into one ordered stream of
// events. It runs a single goroutine that races a cancellation signal, a
// tick ticker, a frame ticker and the next raw tcell event; each loop
// iteration emits at most one event, so tick and render cadence never block
// on input and vice versa.
type Source struct {
	screen    tcell.Screen
	tickRate  time.Duration
	frameRate time.Duration
	events    chan event.Event

	cancel   context.CancelFunc
	quit     chan struct{} // closing it tears down the raw-event pump
	done     chan struct{} // closed when the loop goroutine returns
	pumpDown bool
}

// NewSource builds a source over screen emitting ticks and render pulses at
// the given rates.
func NewSource(screen tcell.Screen, tickRate, frameRate time.Duration) *Source {
	return &Source{
		screen:    screen,
		tickRate:  tickRate,
		frameRate: frameRate,
		events:    make(chan event.Event, 64),
	}
}

// Events is the stream the application driver consumes, belonging to the
// most recent Start. It is closed when that source loop exits, so a closed
// channel means the source is gone and the consumer must shut down.
func (s *Source) Events() <-chan event.Event {
	return s.events
}

// Start launches the raw-event pump and the source loop. Restarting after
// Stop replaces the cancellation context, so a stale cancel from a previous
// run cannot kill the new loop, and allocates a fresh event stream, since
// the previous loop closed its own on exit.
func (s *Source) Start() {
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.quit = make(chan struct{})
	s.done = make(chan struct{})
	s.pumpDown = false
	s.events = make(chan event.Event, 64)

	raw := make(chan tcell.Event, 16)
	go s.screen.ChannelEvents(raw, s.quit)
	go s.run(ctx, raw, s.events, s.done)
}

// Stop shuts the source down in two phases: cooperative cancellation with a
// soft bound, then forced teardown of the raw-event pump with a hard bound.
// The pump is torn down on the cooperative path too; otherwise it would
// outlive the stop and steal raw input from any later Start. Stop returns
// ErrStopTimeout only if the loop is still alive past the hard bound; it
// never hangs.
func (s *Source) Stop() error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	if s.awaitDone(stopSoftBound) == nil {
		s.stopPump()
		return nil
	}
	log.Printf("event source did not stop within %v; forcing teardown", stopSoftBound)
	s.stopPump()
	if s.awaitDone(stopHardBound-stopSoftBound) == nil {
		return nil
	}
	return ErrStopTimeout
}

// stopPump closes the quit channel feeding screen.ChannelEvents, ending the
// pump goroutine. Idempotent across repeated Stop calls.
func (s *Source) stopPump() {
	if !s.pumpDown {
		s.pumpDown = true
		close(s.quit)
	}
}

// awaitDone polls for loop exit at a constant interval, giving up after
// bound elapses.
func (s *Source) awaitDone(bound time.Duration) error {
	check := func() (struct{}, error) {
		select {
		case <-s.done:
			return struct{}{}, nil
		default:
			return struct{}{}, errSourceRunning
		}
	}
	_, err := backoff.Retry(context.Background(), check,
		backoff.WithBackOff(backoff.NewConstantBackOff(stopPollInterval)),
		backoff.WithMaxElapsedTime(bound))
	return err
}

// run owns the events and done channels it was started with, so a stale
// loop from before a restart can never close its successor's channels.
func (s *Source) run(ctx context.Context, raw <-chan tcell.Event, events chan<- event.Event, done chan<- struct{}) {
	defer close(done)
	defer close(events)

	tick := time.NewTicker(s.tickRate)
	defer tick.Stop()
	frame := time.NewTicker(s.frameRate)
	defer frame.Stop()

	// Handshake: consumed by the driver as a liveness signal only.
	if !send(ctx, events, event.Hello{}) {
		return
	}

	var pasting bool
	var pasteBuf strings.Builder

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if !send(ctx, events, event.Tick{}) {
				return
			}
		case <-frame.C:
			if !send(ctx, events, event.Render{}) {
				return
			}
		case rawEv, ok := <-raw:
			if !ok {
				// Platform-level EOF on the event stream. Recoverable
				// termination: closing events tells the consumer.
				log.Println("terminal event stream closed")
				return
			}
			if ev, ok := translate(rawEv, &pasting, &pasteBuf); ok {
				if !send(ctx, events, ev) {
					return
				}
			}
		}
	}
}

// send forwards one event, giving up if cancellation wins first.
func send(ctx context.Context, events chan<- event.Event, ev event.Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// translate maps one raw tcell event to its event variant. Bracketed
// pastes arrive as a start marker, a run of key events, and an end marker;
// they are assembled into a single Paste. The boolean result is false for
// events that produce nothing (paste fragments, unknown kinds).
func translate(raw tcell.Event, pasting *bool, pasteBuf *strings.Builder) (event.Event, bool) {
	switch ev := raw.(type) {
	case *tcell.EventKey:
		if *pasting {
			switch ev.Key() {
			case tcell.KeyRune:
				pasteBuf.WriteRune(ev.Rune())
			case tcell.KeyEnter:
				pasteBuf.WriteByte('\n')
			case tcell.KeyTab:
				pasteBuf.WriteByte('\t')
			}
			return nil, false
		}
		return event.Key{Key: ev}, true
	case *tcell.EventMouse:
		return event.Mouse{Mouse: ev}, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return event.Resize{Width: w, Height: h}, true
	case *tcell.EventPaste:
		if ev.Start() {
			*pasting = true
			pasteBuf.Reset()
			return nil, false
		}
		*pasting = false
		return event.Paste{Text: pasteBuf.String()}, true
	case *tcell.EventFocus:
		return event.FocusChanged{Gained: ev.Focused}, true
	case *tcell.EventError:
		// A read error on the raw stream is recoverable: report it and
		// keep the loop alive.
		return event.ErrorOccurred{Message: ev.Error()}, true
	default:
		return nil, false
	}
}
