package screen

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arcade/internal/config"
	"github.com/samdwyer/arcade/internal/event"
	"github.com/samdwyer/arcade/internal/games"
	"github.com/samdwyer/arcade/internal/tui"
)

// stubScreen records what the stack delegates to it.
type stubScreen struct {
	Base
	title   string
	popup   bool
	mark    rune // drawn at (0,0) when rendered
	events  []event.Event
	updates int
	renders int
}

func (s *stubScreen) InitialState() State {
	return State{Title: s.title, Popup: s.popup}
}

func (s *stubScreen) HandleEvent(st *State, send event.Sender, ev event.Event) error {
	s.events = append(s.events, ev)
	return nil
}

func (s *stubScreen) Update(st *State, send event.Sender) error {
	s.updates++
	return nil
}

func (s *stubScreen) Render(st *State, f *tui.Frame) {
	s.renders++
	if s.mark != 0 {
		f.Fill(s.mark, tcell.StyleDefault)
	}
}

func TestPushPopActive(t *testing.T) {
	stack := NewStack(event.NewBus())

	if stack.Active() != nil {
		t.Error("Empty stack should have no active screen")
	}

	a := stack.Push(&stubScreen{title: "a"})
	b := stack.Push(&stubScreen{title: "b"})

	if got := stack.Active(); got != b {
		t.Errorf("Active = %v, want %v", got, b)
	}
	if stack.Len() != 2 {
		t.Errorf("Len = %d, want 2", stack.Len())
	}

	if got := stack.Pop(); got != b {
		t.Errorf("Pop = %v, want %v", got, b)
	}
	if got := stack.Active(); got != a {
		t.Errorf("Active after pop = %v, want %v", got, a)
	}
}

func TestPopOnFinish(t *testing.T) {
	stack := NewStack(event.NewBus())
	stack.Push(&stubScreen{title: "bottom"})
	top := stack.Push(&stubScreen{title: "top"})

	if err := top.HandleEvent(event.Finish{}); err != nil {
		t.Fatalf("Finish event failed: %v", err)
	}
	if top.RunState() != Finished {
		t.Fatalf("RunState = %v, want finished", top.RunState())
	}

	closed, err := stack.Update()
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if closed != top {
		t.Errorf("Update returned %v, want the finished screen", closed)
	}
	if stack.Len() != 1 {
		t.Errorf("Len = %d, want 1", stack.Len())
	}
}

func TestAtMostOnePopPerUpdate(t *testing.T) {
	stack := NewStack(event.NewBus())
	a := stack.Push(&stubScreen{title: "a"})
	b := stack.Push(&stubScreen{title: "b"})
	a.state.Run = Finished
	b.state.Run = Finished

	if closed, _ := stack.Update(); closed != b {
		t.Errorf("First update popped %v, want b", closed)
	}
	if stack.Len() != 1 {
		t.Fatalf("Len = %d after one update, want 1", stack.Len())
	}
	if closed, _ := stack.Update(); closed != a {
		t.Errorf("Second update popped %v, want a", closed)
	}
	if stack.RunState() != Finished {
		t.Error("Stack should be finished once emptied")
	}
}

func TestPendingChildOverwrites(t *testing.T) {
	stack := NewStack(event.NewBus())
	parent := stack.Push(&stubScreen{title: "parent"})

	parent.state.SpawnChild(&stubScreen{title: "first"})
	parent.state.SpawnChild(&stubScreen{title: "second"})

	if _, err := stack.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if stack.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (slot must not queue)", stack.Len())
	}
	if got := stack.Active().Title(); got != "second" {
		t.Errorf("Active = %q, want the most recent child", got)
	}

	// The slot was consumed: another update must not spawn again
	if _, err := stack.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if stack.Len() != 2 {
		t.Errorf("Len = %d after second update, want 2", stack.Len())
	}
}

func TestWelcomePlaySpawnsGameSelect(t *testing.T) {
	bus := event.NewBus()
	stack := NewStack(bus)
	stack.Push(NewWelcome(games.MustLoadRegistry(), config.Default()))

	err := stack.RouteEvent(event.UserInputs{Inputs: []event.Event{
		event.Key{Key: tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)},
	}})
	if err != nil {
		t.Fatalf("RouteEvent failed: %v", err)
	}

	if _, err := stack.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if stack.Len() != 2 {
		t.Fatalf("Len = %d, want 2 after spawning", stack.Len())
	}
	if got := stack.Active().Title(); got != "Game Select" {
		t.Errorf("Active = %q, want Game Select", got)
	}
}

func TestWelcomeControlsRequestsChildOnBus(t *testing.T) {
	bus := event.NewBus()
	stack := NewStack(bus)
	stack.Push(NewWelcome(games.MustLoadRegistry(), config.Default()))

	err := stack.RouteEvent(event.UserInputs{Inputs: []event.Event{
		event.Key{Key: tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone)},
	}})
	if err != nil {
		t.Fatalf("RouteEvent failed: %v", err)
	}

	ev, ok := bus.TryRecv()
	if !ok {
		t.Fatal("Expected a CreateChild on the bus")
	}
	cc, ok := ev.(event.CreateChild)
	if !ok {
		t.Fatalf("Got %T, want CreateChild", ev)
	}
	if _, ok := cc.Screen.(*MessagePopup); !ok {
		t.Errorf("Child = %T, want the controls popup", cc.Screen)
	}
}

func TestQuitDropsEverything(t *testing.T) {
	stack := NewStack(event.NewBus())
	sc := &stubScreen{title: "w"}
	stack.Push(sc)

	stack.Quit()
	if stack.Len() != 0 {
		t.Errorf("Len = %d after Quit, want 0", stack.Len())
	}
	if stack.RunState() != Finished {
		t.Errorf("RunState = %v, want finished", stack.RunState())
	}
	// Quit skips the closing ceremony entirely
	if len(sc.events) != 0 {
		t.Errorf("Screen received %d events during Quit, want 0", len(sc.events))
	}
}

func TestCloseRoundTrip(t *testing.T) {
	bus := event.NewBus()
	stack := NewStack(bus)
	stack.Push(&stubScreen{title: "only"})

	stack.Close()

	// Walk the async round-trip the way the driver would: update emits
	// CloseActiveScreen, routing it begins the close, the default Close
	// hook requests Finish, and the next update pops.
	for i := 0; i < 10 && stack.RunState() != Finished; i++ {
		if _, err := stack.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		for {
			ev, ok := bus.TryRecv()
			if !ok {
				break
			}
			if err := stack.RouteEvent(ev); err != nil {
				t.Fatalf("RouteEvent(%T) failed: %v", ev, err)
			}
		}
	}

	if stack.RunState() != Finished {
		t.Error("Close round-trip never finished the stack")
	}
	if stack.Len() != 0 {
		t.Errorf("Len = %d, want 0", stack.Len())
	}
}

func TestRouteEventOnEmptyStack(t *testing.T) {
	stack := NewStack(event.NewBus())
	if err := stack.RouteEvent(event.Tick{}); !errors.Is(err, ErrNoScreens) {
		t.Errorf("RouteEvent on empty stack: got %v, want ErrNoScreens", err)
	}
}

func TestIllegalTransition(t *testing.T) {
	st := State{Run: Finished}
	if err := st.transition(Running); err == nil {
		t.Error("Expected error leaving Finished")
	}
	if err := st.transition(Finished); err != nil {
		t.Errorf("Finished -> Finished should be allowed, got %v", err)
	}
}

func TestRenderComposition(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	sim.SetSize(20, 5)
	defer sim.Fini()
	term := tui.AttachTerminal(sim, false)

	stack := NewStack(event.NewBus())
	hidden := &stubScreen{title: "hidden", mark: 'H'}
	base := &stubScreen{title: "base", mark: 'B'}
	popup := &stubScreen{title: "popup", popup: true}
	stack.Push(hidden)
	stack.Push(base)
	stack.Push(popup)

	term.Draw(func(f *tui.Frame) {
		stack.Render(f)
	})

	if hidden.renders != 0 {
		t.Error("Only the nearest non-popup base may render")
	}
	if base.renders != 1 || popup.renders != 1 {
		t.Errorf("renders: base=%d popup=%d, want 1 and 1", base.renders, popup.renders)
	}

	// The base's cells must have been dimmed under the popup
	mainc, _, style, _ := sim.GetContent(0, 0)
	if mainc != 'B' {
		t.Fatalf("Cell (0,0) = %q, want B", mainc)
	}
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrDim == 0 {
		t.Error("Base screen should be dimmed under a popup")
	}
}
