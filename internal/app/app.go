package app

import (
	"context"
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/arcade/internal/config"
	"github.com/samdwyer/arcade/internal/event"
	"github.com/samdwyer/arcade/internal/screen"
	"github.com/samdwyer/arcade/internal/telemetry"
	"github.com/samdwyer/arcade/internal/tui"
)

// App drives the launcher: it owns the terminal, the event source, the
// event bus, the screen stack and the per-tick input buffer. Exactly one
// goroutine runs the loop; the event source is the only other task.
type App struct {
	cfg     config.Config
	term    *tui.Terminal
	source  *tui.Source
	bus     *event.Bus
	screens *screen.Stack
	state   RunState

	// inputs accumulates raw input events between two ticks; it is
	// flushed into a single UserInputs event at each tick, never split.
	inputs []event.Event
}

// New wires an app over a terminal that has not been entered yet.
func New(cfg config.Config, term *tui.Terminal) *App {
	bus := event.NewBus()
	return &App{
		cfg:     cfg,
		term:    term,
		source:  tui.NewSource(term.Screen(), cfg.TickInterval(), cfg.FrameInterval()),
		bus:     bus,
		screens: screen.NewStack(bus),
		state:   Pending,
	}
}

// RunState returns the app's lifecycle phase.
func (a *App) RunState() RunState {
	return a.state
}

// Bus exposes the event bus, the only way external code talks to the app.
func (a *App) Bus() event.Sender {
	return a.bus
}

// Run enters the terminal, pushes root, and drives the loop until the app
// finishes. The terminal is restored on every exit path, including a
// panic: the deferred exit runs before the panic propagates.
func (a *App) Run(ctx context.Context, root screen.Screen) (err error) {
	tracer := telemetry.Tracer("app")
	ctx, span := tracer.Start(ctx, "app.run")
	defer span.End()

	if err := a.term.Enter(); err != nil {
		return err
	}
	defer a.term.Exit()

	a.state = Running
	a.source.Start()
	defer func() {
		a.bus.Close()
		if stopErr := a.source.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	a.screens.Push(root)
	span.AddEvent("entered terminal")

	for a.state != Finished {
		if err := a.relaySourceEvent(ctx); err != nil {
			return err
		}
		if err := a.drainBus(); err != nil {
			return err
		}
		if _, err := a.screens.Update(); err != nil {
			return err
		}
		if a.screens.RunState() == screen.Finished {
			a.state = Finished
		}
	}

	span.SetAttributes(attribute.String("app.final_state", a.state.String()))
	log.Printf("app loop finished in state %s", a.state)
	return nil
}

// relaySourceEvent waits for the next terminal-source event and either
// buffers it (raw input) or re-emits it on the bus (timing, errors). The
// loop suspends only here; ticks keep it moving even when input is idle.
func (a *App) relaySourceEvent(ctx context.Context) error {
	select {
	case <-ctx.Done():
		a.screens.Quit()
		a.state = Finished
		return nil
	case ev, ok := <-a.source.Events():
		if !ok {
			// The source exited (stream EOF or cancellation). Shut down
			// gracefully rather than spinning on a closed channel.
			log.Println("event source closed; quitting")
			a.screens.Quit()
			a.state = Finished
			return nil
		}
		return a.handleSourceEvent(ev)
	}
}

func (a *App) handleSourceEvent(ev event.Event) error {
	switch e := ev.(type) {
	case event.Hello:
		log.Println("event source handshake received")
		return nil
	case event.Tick:
		return a.bus.Send(event.Tick{})
	case event.Render:
		return a.bus.Send(event.Render{})
	case event.ErrorOccurred:
		return a.bus.Send(e)
	case event.Resize:
		a.term.Resize()
		a.inputs = append(a.inputs, e)
		return a.bus.Send(event.Render{})
	case event.Key:
		// The one global binding: ctrl-c forces an immediate quit no
		// matter which screen is active.
		if e.Key.Key() == tcell.KeyCtrlC {
			return a.bus.Send(event.Quit{})
		}
		a.inputs = append(a.inputs, e)
		return nil
	case event.Mouse, event.Paste, event.FocusChanged:
		a.inputs = append(a.inputs, ev)
		return nil
	default:
		log.Printf("unexpected source event %T", ev)
		return nil
	}
}

// drainBus empties the bus, handling application-origin events locally and
// routing everything else to the active screen. An empty bus is the normal
// stop condition, not an error.
func (a *App) drainBus() error {
	for {
		ev, ok := a.bus.TryRecv()
		if !ok {
			return nil
		}
		if err := a.dispatch(ev); err != nil {
			return err
		}
	}
}

func (a *App) dispatch(ev event.Event) error {
	switch e := ev.(type) {
	case event.Tick:
		// Flush the input buffer atomically: one UserInputs per tick.
		inputs := a.inputs
		a.inputs = nil
		return a.bus.Send(event.UserInputs{Inputs: inputs})
	case event.Render:
		a.term.Draw(func(f *tui.Frame) {
			a.screens.Render(f)
		})
		return nil
	case event.Close:
		if a.state == Running {
			log.Println("close requested")
			a.state = Closing
			a.screens.Close()
		}
		return nil
	case event.Quit:
		if a.state != Quitting && a.state != Finished {
			log.Println("quit requested; dropping all screens")
			a.state = Quitting
			a.screens.Quit()
		}
		return nil
	case event.ErrorOccurred:
		log.Printf("error reported: %s", e.Message)
		if a.screens.Len() > 0 {
			a.screens.Push(screen.NewErrorPopup(e.Message))
		}
		return nil
	case event.CreateChild:
		child, ok := e.Screen.(screen.Screen)
		if !ok {
			return errors.New("CreateChild event does not carry a screen")
		}
		a.screens.Push(child)
		return nil
	default:
		return a.route(ev)
	}
}

// route hands one event to the active screen. Routing with no screens left
// is a consistency error while running; during teardown it just means the
// stack emptied with events still in flight.
func (a *App) route(ev event.Event) error {
	err := a.screens.RouteEvent(ev)
	if errors.Is(err, screen.ErrNoScreens) && a.state != Running {
		return nil
	}
	return err
}
