package testutil

import (
	"fmt"
	"math/rand"
)

// OpKind enumerates vector operations.
type OpKind int

const (
	OpPush OpKind = iota
	OpPop
	OpErase
	OpResize
	OpClear
)

func (k OpKind) String() string {
	switch k {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpErase:
		return "erase"
	case OpResize:
		return "resize"
	case OpClear:
		return "clear"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

// Op is one vector operation. Arg is the pushed value, the erase index
// (taken modulo the current length) or the resize target.
type Op struct {
	Kind OpKind
	Arg  int
}

func (o Op) String() string {
	return fmt.Sprintf("%s(%d)", o.Kind, o.Arg)
}

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Ops generates n operations for a vector of the given capacity. Pushes are
// weighted so the vector regularly reaches capacity; resize targets range
// up to capacity+2 so out-of-range resizes occur.
func (r *RNG) Ops(n, capacity int) []Op {
	ops := make([]Op, n)
	for i := range ops {
		switch p := r.rand.Intn(100); {
		case p < 55:
			ops[i] = Op{Kind: OpPush, Arg: r.rand.Intn(1000)}
		case p < 70:
			ops[i] = Op{Kind: OpPop}
		case p < 88:
			ops[i] = Op{Kind: OpErase, Arg: r.rand.Intn(capacity + 1)}
		case p < 97:
			ops[i] = Op{Kind: OpResize, Arg: r.rand.Intn(capacity+3) - 1}
		default:
			ops[i] = Op{Kind: OpClear}
		}
	}
	return ops
}

// Model is a reference fixed-capacity vector over a plain slice. Dead slots
// keep their stale values like the real vector does.
type Model struct {
	slots []int
	n     int
}

// NewModel creates an empty model of the given capacity.
func NewModel(capacity int) *Model {
	return &Model{slots: make([]int, capacity)}
}

// Apply executes op.
func (m *Model) Apply(op Op) {
	switch op.Kind {
	case OpPush:
		if m.n < len(m.slots) {
			m.slots[m.n] = op.Arg
			m.n++
		}
	case OpPop:
		if m.n > 0 {
			m.n--
		}
	case OpErase:
		if m.n == 0 {
			return
		}
		i := op.Arg % m.n
		last := m.slots[m.n-1]
		m.n--
		m.slots[i] = last
	case OpResize:
		if op.Arg >= 0 && op.Arg <= len(m.slots) {
			m.n = op.Arg
		}
	case OpClear:
		m.n = 0
	}
}

// Items returns a copy of the live elements.
func (m *Model) Items() []int {
	return append([]int(nil), m.slots[:m.n]...)
}

// Len returns the number of live elements.
func (m *Model) Len() int { return m.n }
