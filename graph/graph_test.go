package graph

import (
	"testing"

	"github.com/gmofishsauce/gatesim/signal"
)

func notUpdater(pins []PinState) {
	pins[1] = OutputState(signal.Not(pins[0].Signal()))
}

// TestNotChain wires N not-gates in series and confirms the resolved
// signal alternates correctly and the run settles in finitely many ticks.
func TestNotChain(t *testing.T) {
	g := New()
	in := g.NewOutput("in", signal.Low)

	prev := in
	const n = 5
	for i := 0; i < n; i++ {
		pins := g.NewPart("not", []PinState{InputState(signal.Off), OutputState(signal.Off)}, notUpdater)
		g.Connect(prev, pins[0])
		prev = pins[1]
	}

	stats := g.Run()
	if stats.Ticks == 0 {
		t.Fatalf("expected at least one tick")
	}
	want := signal.Low
	for i := 0; i < n; i++ {
		want = signal.Not(want)
	}
	if got := g.GetSignal(prev); got != want {
		t.Errorf("chain output = %v, want %v", got, want)
	}
}

// TestTwoDriverConflict confirms that two Output pins on the same node
// resolve to Error, as seen by an Input pin on that node: a node may have
// at most one live driver.
func TestTwoDriverConflict(t *testing.T) {
	g := New()
	a := g.NewOutput("a", signal.High)
	b := g.NewOutput("b", signal.Low)
	in := g.NewInput("in")
	g.Connect(a, b)
	g.Connect(a, in)
	g.Tick()

	if got := g.GetSignal(in); got != signal.Error {
		t.Errorf("conflicted node signal = %v, want Error", got)
	}
}

// TestErrorAbsorbs confirms a single Error driver, with no other driver on
// the node, forces the node's Input members to Error.
func TestErrorAbsorbs(t *testing.T) {
	g := New()
	a := g.NewOutput("a", signal.Error)
	b := g.NewInput("b")
	g.Connect(a, b)
	g.Tick()

	if got := g.GetSignal(b); got != signal.Error {
		t.Errorf("node with an Error driver = %v, want Error", got)
	}
}

// TestDoubleConnectPanics confirms reconnecting two pins already in the
// same node is treated as a fatal invariant violation.
func TestDoubleConnectPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on double connect")
		}
	}()
	g := New()
	a := g.NewOutput("a", signal.Off)
	b := g.NewInput("b")
	g.Connect(a, b)
	g.Connect(a, b)
}

// TestSetOutputOnNonOutputPanics confirms SetOutput on an Input or HiZ pin
// is a fatal invariant violation rather than a silent no-op.
func TestSetOutputOnNonOutputPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on SetOutput of a non-Output pin")
		}
	}()
	g := New()
	in := g.NewInput("in")
	g.SetOutput(in, signal.High)
}

// TestNodeMergeIsTransitive confirms connecting a-b then b-c puts all
// three pins in one node regardless of connection order.
func TestNodeMergeIsTransitive(t *testing.T) {
	g := New()
	a := g.NewOutput("a", signal.High)
	b := g.NewInput("b")
	c := g.NewInput("c")
	g.Connect(a, b)
	g.Connect(b, c)

	if g.NodeOf(a) != g.NodeOf(c) {
		t.Errorf("a and c should share a node after transitive connect")
	}
	g.Tick()
	if got := g.GetSignal(c); got != signal.High {
		t.Errorf("c = %v, want High", got)
	}
}

func oscillatorUpdater(pins []PinState) {
	pins[0] = OutputState(signal.Not(pins[0].Signal()))
}

// TestOscillatorDetected confirms Run() detects a free-running loop (a
// part that inverts its own output every tick) via cycle fingerprinting
// instead of looping forever. The state repeats every 2 ticks, which Run
// reports as Cycle == 1 (repeat distance minus one).
func TestOscillatorDetected(t *testing.T) {
	g := New()
	pins := g.NewPart("osc", []PinState{OutputState(signal.Low)}, oscillatorUpdater)
	_ = pins

	stats := g.RunWithConfig(RunConfig{MaxTicks: 1000})
	if stats.Cycle == 0 {
		t.Fatalf("expected a detected cycle, got stats=%+v", stats)
	}
	if stats.Cycle != 1 {
		t.Errorf("oscillator Cycle = %d, want 1", stats.Cycle)
	}
}

// TestPulseOutput confirms PulseOutput flips, settles, flips back, and
// settles again, summing both runs' stats.
func TestPulseOutput(t *testing.T) {
	g := New()
	clk := g.NewOutput("clk", signal.Low)
	pins := g.NewPart("not", []PinState{InputState(signal.Off), OutputState(signal.Off)}, notUpdater)
	g.Connect(clk, pins[0])

	stats := g.PulseOutput(clk)
	if stats.Ticks == 0 {
		t.Fatalf("expected ticks from PulseOutput")
	}
	if got := g.GetSignal(clk); got != signal.Low {
		t.Errorf("clk after full pulse = %v, want Low (back to start)", got)
	}
}

// TestFlashOutput confirms FlashOutput behaves like PulseOutput: a full
// flip-settle-flip-settle cycle that returns the pin to its starting value.
func TestFlashOutput(t *testing.T) {
	g := New()
	clk := g.NewOutput("clk", signal.High)
	pins := g.NewPart("not", []PinState{InputState(signal.Off), OutputState(signal.Off)}, notUpdater)
	g.Connect(clk, pins[0])

	stats := g.FlashOutput(clk)
	if stats.Ticks == 0 {
		t.Fatalf("expected ticks from FlashOutput")
	}
	if got := g.GetSignal(clk); got != signal.High {
		t.Errorf("clk after full flash = %v, want High (back to start)", got)
	}
}

// TestOrphanNodes confirms a pin nobody ever connects is reported as an
// orphan (a singleton node).
func TestOrphanNodes(t *testing.T) {
	g := New()
	a := g.NewOutput("a", signal.High)
	b := g.NewInput("b")
	g.Connect(a, b)
	g.NewInput("lonely")

	orphans := g.OrphanNodes()
	if len(orphans) != 1 {
		t.Fatalf("OrphanNodes() = %v, want exactly one orphan", orphans)
	}
	names := g.NodePinNames(orphans[0])
	if len(names) != 1 || names[0] != "lonely" {
		t.Errorf("orphan pin names = %v, want [lonely]", names)
	}
}

// TestPrivateStatePinPersists confirms a part can keep private state in a
// pin it never Connects to anything else: node resolution must not
// clobber such a pin back to a default value, since it was never driven
// by any Output member. This is the mechanism sequential parts (e.g. a
// T flip-flop's edge-detection latch) rely on.
func TestPrivateStatePinPersists(t *testing.T) {
	g := New()
	calls := 0
	pins := g.NewPart("latch", []PinState{InputState(signal.Off)}, func(pins []PinState) {
		calls++
		if calls == 1 {
			pins[0] = InputState(signal.High)
		}
	})
	g.Tick()
	g.Tick()
	if got := g.GetSignal(pins[0]); got != signal.High {
		t.Errorf("private pin after two ticks = %v, want High (self-write preserved)", got)
	}
}

// TestHiZContributesNothing confirms a HiZ pin on a node with exactly one
// driver doesn't cause a conflict: HiZ never counts as a driver.
func TestHiZContributesNothing(t *testing.T) {
	g := New()
	a := g.NewOutput("a", signal.High)
	z := g.NewPin("z", HiZState)
	b := g.NewInput("b")
	g.Connect(a, z)
	g.Connect(a, b)
	g.Tick()

	if got := g.GetSignal(b); got != signal.High {
		t.Errorf("node with one driver + HiZ = %v, want High", got)
	}
}
