package exhaustive_test

import (
	"testing"

	"github.com/katalvlaran/knapsack/exhaustive"
	"github.com/katalvlaran/knapsack/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_Textbook checks the classic capacity-50 instance.
func TestSolve_Textbook(t *testing.T) {
	inst := model.MustInstance(50, [][2]int64{{10, 60}, {20, 100}, {30, 120}})
	sol, err := exhaustive.Solve(inst)
	require.NoError(t, err)
	assert.Equal(t, int64(220), sol.Benefit)
	assert.Equal(t, []int{2, 3}, sol.Indices())
	assert.Equal(t, int64(50), sol.Weight)
	require.NoError(t, model.Check(inst, sol))
}

// TestSolve_InfeasibleItem excludes an item heavier than the knapsack.
func TestSolve_InfeasibleItem(t *testing.T) {
	inst := model.MustInstance(10, [][2]int64{{11, 100}})
	sol, err := exhaustive.Solve(inst)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sol.Benefit)
	assert.True(t, sol.Empty())
	assert.Equal(t, int64(0), sol.Weight)
}

// TestSolve_Boundaries covers zero capacity and zero items.
func TestSolve_Boundaries(t *testing.T) {
	sol, err := exhaustive.Solve(model.MustInstance(0, [][2]int64{{1, 5}, {2, 7}}))
	require.NoError(t, err)
	assert.Equal(t, model.NewSolution(0, nil), sol)

	sol, err = exhaustive.Solve(model.MustInstance(100, nil))
	require.NoError(t, err)
	assert.Equal(t, model.NewSolution(0, nil), sol)
}

// TestSolve_FirstMaximumWins pins the counter-order tie-break: the last item
// is the lowest bit, so it is tried alone before the first item is.
func TestSolve_FirstMaximumWins(t *testing.T) {
	inst := model.MustInstance(5, [][2]int64{{5, 10}, {5, 10}})
	sol, err := exhaustive.Solve(inst)
	require.NoError(t, err)
	assert.Equal(t, int64(10), sol.Benefit)
	assert.Equal(t, []int{2}, sol.Indices())
}

// TestSolve_TooManyItems enforces the configured guard.
func TestSolve_TooManyItems(t *testing.T) {
	raw := make([][2]int64, 5)
	for i := range raw {
		raw[i] = [2]int64{1, 1}
	}
	inst := model.MustInstance(3, raw)

	_, err := exhaustive.Solve(inst, exhaustive.WithMaxItems(4))
	require.ErrorIs(t, err, exhaustive.ErrTooManyItems)

	sol, err := exhaustive.Solve(inst, exhaustive.WithMaxItems(5))
	require.NoError(t, err)
	assert.Equal(t, int64(3), sol.Benefit)
}

// TestSolve_InvalidInstance rejects instances before enumerating.
func TestSolve_InvalidInstance(t *testing.T) {
	_, err := exhaustive.Solve(model.Instance{Capacity: -1})
	require.ErrorIs(t, err, model.ErrNegativeCapacity)
}

// TestWithMaxItems_Clamp never lets the guard exceed the counter width.
func TestWithMaxItems_Clamp(t *testing.T) {
	o := exhaustive.DefaultOptions()
	exhaustive.WithMaxItems(1000)(&o)
	assert.Equal(t, exhaustive.HardMaxItems, o.MaxItems)
}
