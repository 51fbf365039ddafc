package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/togglewalk/internal/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_Finished(t *testing.T) {
	res, err := runtime.Detect(context.Background(), 0, runtime.Unit(func(x int) int { return x + 1 }),
		func(x int) bool { return x == 10 })
	require.NoError(t, err)
	assert.Equal(t, runtime.Finished, res.Kind)
	assert.Equal(t, uint64(10), res.Steps)
	assert.Equal(t, 10, res.Final)
}

func TestDetect_StartIsDone(t *testing.T) {
	res, err := runtime.Detect(context.Background(), 3, runtime.Unit(func(x int) int { return x }),
		func(x int) bool { return true })
	require.NoError(t, err)
	assert.Equal(t, runtime.Finished, res.Kind)
	assert.Zero(t, res.Steps)
}

func TestDetect_Repeated(t *testing.T) {
	tests := []struct {
		name      string
		next      func(int) int
		wantSteps uint64
	}{
		// 0 -> 0: tortoise 0, first move lands on it.
		{name: "Fixed point", next: func(x int) int { return x }, wantSteps: 1},
		// 0 -> 1 -> 0: checkpoint after step 1 parks at 1, step 3 returns to 1.
		{name: "Two cycle", next: func(x int) int { return 1 - x }, wantSteps: 3},
		// tail 0,1,2 then loop 3,4,5,6: checkpoints park at 1 then 3; state 3 is back at step 7.
		{name: "Rho", next: func(x int) int {
			if x < 6 {
				return x + 1
			}
			return 3
		}, wantSteps: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := runtime.Detect(context.Background(), 0, runtime.Unit(tt.next),
				func(int) bool { return false })
			require.NoError(t, err)
			assert.Equal(t, runtime.Repeated, res.Kind)
			assert.Equal(t, tt.wantSteps, res.Steps)
		})
	}
}

func TestDetect_WeightedMoves(t *testing.T) {
	// Each move weighs 5; the checkpoint threshold is passed, not hit exactly.
	step := func(_ context.Context, x int) (runtime.Move[int], error) {
		return runtime.Move[int]{Next: (x + 1) % 4, Steps: 5}, nil
	}
	res, err := runtime.Detect(context.Background(), 0, step, func(int) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, runtime.Repeated, res.Kind)
	// checkpoints park at paths 5, 10 and 15 (state 3); state 3 comes back at 35.
	assert.Equal(t, uint64(35), res.Steps)
	assert.Equal(t, 3, res.Final)
}

func TestDetect_LoopedMove(t *testing.T) {
	step := func(_ context.Context, x int) (runtime.Move[int], error) {
		if x == 2 {
			return runtime.Move[int]{Next: 99, Steps: 7, Looped: true}, nil
		}
		return runtime.Move[int]{Next: x + 1, Steps: 3}, nil
	}
	res, err := runtime.Detect(context.Background(), 0, step, func(int) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, runtime.Repeated, res.Kind)
	assert.Equal(t, uint64(3+3+7), res.Steps)
}

func TestDetect_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runtime.Detect(ctx, 0, runtime.Unit(func(x int) int { return x + 1 }),
		func(int) bool { return false })
	assert.ErrorIs(t, err, context.Canceled)
}
