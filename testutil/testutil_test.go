package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42).Ops(100, 8)
	b := NewRNG(42).Ops(100, 8)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(42), NewRNG(42).Seed())
}

func TestModel(t *testing.T) {
	m := NewModel(3)
	for _, op := range []Op{
		{Kind: OpPush, Arg: 1},
		{Kind: OpPush, Arg: 2},
		{Kind: OpPush, Arg: 3},
		{Kind: OpPush, Arg: 4},
	} {
		m.Apply(op)
	}
	assert.Equal(t, []int{1, 2, 3}, m.Items())

	m.Apply(Op{Kind: OpErase, Arg: 0})
	assert.Equal(t, []int{3, 2}, m.Items())

	m.Apply(Op{Kind: OpResize, Arg: 3})
	assert.Equal(t, []int{3, 2, 3}, m.Items(), "resize exposes the stale slot")

	m.Apply(Op{Kind: OpResize, Arg: 4})
	assert.Equal(t, 3, m.Len())

	m.Apply(Op{Kind: OpClear})
	m.Apply(Op{Kind: OpPop})
	m.Apply(Op{Kind: OpErase, Arg: 1})
	assert.Equal(t, 0, m.Len())
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "push(7)", Op{Kind: OpPush, Arg: 7}.String())
	assert.Equal(t, "op(9)", OpKind(9).String())
}
