package parts

import (
	"testing"

	"github.com/gmofishsauce/gatesim/graph"
	"github.com/gmofishsauce/gatesim/signal"
)

func chk(t *testing.T, name string, got, want signal.Signal) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestNotGate(t *testing.T) {
	g := graph.New()
	a := g.NewOutput("a", signal.High)
	not1 := Not(g, "not1")
	not2 := Not(g, "not2")
	g.Connect(a, not1.A)
	g.Connect(not1.Q, not2.A)

	g.Run()
	chk(t, "not1.Q", g.GetSignal(not1.Q), signal.Low)
	chk(t, "not2.Q", g.GetSignal(not2.Q), signal.High)
}

func TestAndGate(t *testing.T) {
	g := graph.New()
	high := g.NewOutput("high", signal.High)
	low := g.NewOutput("low", signal.Low)
	high2 := g.NewOutput("high2", signal.High)

	highAndLow := And(g, "and1")
	highAndHigh := And(g, "and2")
	g.ConnectAll([]graph.Pin{high, highAndLow.A, highAndHigh.A})
	g.Connect(low, highAndLow.B)
	g.Connect(high2, highAndHigh.B)

	g.Run()
	chk(t, "high&low", g.GetSignal(highAndLow.Q), signal.Low)
	chk(t, "high&high", g.GetSignal(highAndHigh.Q), signal.High)
}

func TestNandGate(t *testing.T) {
	g := graph.New()
	high := g.NewOutput("high", signal.High)
	low := g.NewOutput("low", signal.Low)
	high2 := g.NewOutput("high2", signal.High)

	highNandLow := Nand(g, "nand1")
	highNandHigh := Nand(g, "nand2")
	g.ConnectAll([]graph.Pin{high, highNandLow.A, highNandHigh.A})
	g.Connect(low, highNandLow.B)
	g.Connect(high2, highNandHigh.B)

	g.Run()
	chk(t, "nand(high,low)", g.GetSignal(highNandLow.Q), signal.High)
	chk(t, "nand(high,high)", g.GetSignal(highNandHigh.Q), signal.Low)
}

func TestAndNary(t *testing.T) {
	g := graph.New()
	a1 := g.NewOutput("a1", signal.High)
	a2 := g.NewOutput("a2", signal.High)
	a3 := g.NewOutput("a3", signal.High)
	a4 := g.NewOutput("a4", signal.High)

	andy := AndNary(g, "andy", 4)
	g.Connect(a1, andy.Input(0))
	g.Connect(a2, andy.Input(1))
	g.Connect(a3, andy.Input(2))
	g.Connect(a4, andy.Input(3))

	g.Run()
	chk(t, "andy", g.GetSignal(andy.Q), signal.High)

	g.SetOutput(a4, signal.Low)
	g.Run()
	chk(t, "andy after a4=Low", g.GetSignal(andy.Q), signal.Low)
}

func TestNandNary(t *testing.T) {
	g := graph.New()
	a1 := g.NewOutput("a1", signal.High)
	a2 := g.NewOutput("a2", signal.High)
	a3 := g.NewOutput("a3", signal.High)
	a4 := g.NewOutput("a4", signal.Low)

	nandy := NandNary(g, "nandy", 4)
	g.Connect(a1, nandy.Input(0))
	g.Connect(a2, nandy.Input(1))
	g.Connect(a3, nandy.Input(2))
	g.Connect(a4, nandy.Input(3))

	g.Run()
	chk(t, "nandy", g.GetSignal(nandy.Q), signal.High)

	g.SetOutput(a4, signal.High)
	g.Run()
	chk(t, "nandy after a4=High", g.GetSignal(nandy.Q), signal.Low)
}

func TestXorGate(t *testing.T) {
	g := graph.New()
	high := g.NewOutput("high", signal.High)
	low := g.NewOutput("low", signal.Low)
	x := Xor(g, "xor1")
	g.Connect(high, x.A)
	g.Connect(low, x.B)

	g.Run()
	chk(t, "high^low", g.GetSignal(x.Q), signal.High)
}

// TestNaryErrorDoesNotShortCircuit confirms an Error on an early input
// still poisons the result even when a later input would otherwise be Off
// — the fold must not short-circuit.
func TestNaryErrorDoesNotShortCircuit(t *testing.T) {
	g := graph.New()
	a1 := g.NewOutput("a1", signal.Error)
	a2 := g.NewOutput("a2", signal.Off)
	a3 := g.NewOutput("a3", signal.Off)

	andy := AndNary(g, "andy", 3)
	g.Connect(a1, andy.Input(0))
	g.Connect(a2, andy.Input(1))
	g.Connect(a3, andy.Input(2))

	g.Run()
	chk(t, "andy with Error input", g.GetSignal(andy.Q), signal.Error)
}
