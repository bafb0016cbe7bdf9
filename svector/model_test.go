package svector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/utl/testutil"
)

// apply executes op on v with the same index mapping the model uses.
func apply[S Storage[int]](v *Vector[int, S], op testutil.Op) {
	switch op.Kind {
	case testutil.OpPush:
		v.Push(op.Arg)
	case testutil.OpPop:
		v.Pop()
	case testutil.OpErase:
		if v.Len() > 0 {
			v.Erase(v.Ref(op.Arg % v.Len()))
		}
	case testutil.OpResize:
		v.Resize(op.Arg)
	case testutil.OpClear:
		v.Clear()
	}
}

func TestVector_MatchesModel(t *testing.T) {
	for _, capacity := range []int{0, 1, 4, 17} {
		for seed := int64(1); seed <= 5; seed++ {
			ops := testutil.NewRNG(seed).Ops(500, capacity)

			value, err := Make[int](capacity)
			require.NoError(t, err)
			raw, err := MakeRaw[int](capacity)
			require.NoError(t, err)
			model := testutil.NewModel(capacity)

			for step, op := range ops {
				model.Apply(op)
				apply(value, op)
				apply(raw, op)

				require.Equal(t, model.Items(), append([]int(nil), value.Slice()...), "value cap=%d seed=%d step=%d op=%v", capacity, seed, step, op)
				require.Equal(t, model.Items(), append([]int(nil), raw.Slice()...), "raw cap=%d seed=%d step=%d op=%v", capacity, seed, step, op)
				require.LessOrEqual(t, value.Len(), value.Cap())
			}
		}
	}
}
