package tabulation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/tabulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textbook() model.Instance {
	return model.MustInstance(50, [][2]int64{{10, 60}, {20, 100}, {30, 120}})
}

// randomInstance builds a reproducible instance with n items.
func randomInstance(rng *rand.Rand, n int) model.Instance {
	raw := make([][2]int64, n)
	for i := range raw {
		raw[i] = [2]int64{int64(rng.Intn(15) + 1), int64(rng.Intn(40))}
	}
	return model.MustInstance(int64(rng.Intn(40)), raw)
}

// TestBuild_TextbookCells spot-checks cells of the classic instance.
func TestBuild_TextbookCells(t *testing.T) {
	tbl, err := tabulation.Build(textbook())
	require.NoError(t, err)
	require.Equal(t, 4, tbl.Rows())
	require.Equal(t, 51, tbl.Cols())

	assert.Equal(t, int64(0), tbl.At(0, 50))
	assert.Equal(t, int64(0), tbl.At(1, 9))
	assert.Equal(t, int64(60), tbl.At(1, 10))
	assert.Equal(t, int64(160), tbl.At(2, 30))
	assert.Equal(t, int64(180), tbl.At(3, 40))
	assert.Equal(t, int64(220), tbl.At(3, 50))
	assert.Equal(t, int64(220), tbl.Benefit())

	row := tbl.Row(1)
	require.Len(t, row, 51)
	row[10] = -1
	assert.Equal(t, int64(60), tbl.At(1, 10), "Row must return a copy")
}

// TestBuild_AtOutOfRangePanics mirrors slice indexing semantics.
func TestBuild_AtOutOfRangePanics(t *testing.T) {
	tbl, err := tabulation.Build(textbook())
	require.NoError(t, err)
	assert.Panics(t, func() { tbl.At(4, 0) })
	assert.Panics(t, func() { tbl.At(0, 51) })
}

// TestSolve_Textbook checks benefit, items and weight.
func TestSolve_Textbook(t *testing.T) {
	inst := textbook()
	sol, err := tabulation.Solve(inst)
	require.NoError(t, err)
	assert.Equal(t, int64(220), sol.Benefit)
	assert.Equal(t, []int{2, 3}, sol.Indices())
	assert.Equal(t, int64(50), sol.Weight)
	require.NoError(t, model.Check(inst, sol))
}

// TestSolve_Boundaries covers zero capacity, no items and an unfit item.
func TestSolve_Boundaries(t *testing.T) {
	zero := model.MustInstance(0, [][2]int64{{1, 5}, {2, 7}})
	sol, err := tabulation.Solve(zero)
	require.NoError(t, err)
	assert.Equal(t, model.NewSolution(0, nil), sol)
	tbl, err := tabulation.Build(zero)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Cols())

	sol, err = tabulation.Solve(model.MustInstance(7, nil))
	require.NoError(t, err)
	assert.Equal(t, model.NewSolution(0, nil), sol)

	sol, err = tabulation.Solve(model.MustInstance(10, [][2]int64{{11, 100}}))
	require.NoError(t, err)
	assert.Equal(t, model.NewSolution(0, nil), sol)
}

// TestBacktrack_TieExcludes pins the exclusion tie-break: with two identical
// items only the first can differ from the row above.
func TestBacktrack_TieExcludes(t *testing.T) {
	inst := model.MustInstance(5, [][2]int64{{5, 10}, {5, 10}})
	sol, err := tabulation.Solve(inst)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, sol.Indices())
}

// TestBacktrack_ShapeMismatch rejects foreign item lists.
func TestBacktrack_ShapeMismatch(t *testing.T) {
	tbl, err := tabulation.Build(textbook())
	require.NoError(t, err)

	_, _, err = tabulation.Backtrack(tbl, textbook().Items[:2])
	require.ErrorIs(t, err, tabulation.ErrShapeMismatch)

	_, _, err = tabulation.Backtrack(nil, nil)
	require.ErrorIs(t, err, tabulation.ErrShapeMismatch)
}

// TestBacktrack_LeavesTableIntact verifies the walk is read-only.
func TestBacktrack_LeavesTableIntact(t *testing.T) {
	inst := textbook()
	tbl, err := tabulation.Build(inst)
	require.NoError(t, err)
	before := make([][]int64, tbl.Rows())
	for i := range before {
		before[i] = tbl.Row(i)
	}

	first, w1, err := tabulation.Backtrack(tbl, inst.Items)
	require.NoError(t, err)
	second, w2, err := tabulation.Backtrack(tbl, inst.Items)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(50), w1)
	assert.Equal(t, w1, w2)
	for i := range before {
		assert.Equal(t, before[i], tbl.Row(i))
	}
}

// TestTable_Monotone checks row/column monotonicity on random instances.
func TestTable_Monotone(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		inst := randomInstance(rng, 1+rng.Intn(10))
		tbl, err := tabulation.Build(inst)
		require.NoError(t, err)
		require.NoError(t, tbl.CheckMonotone(), "trial %d", trial)

		sol, err := tabulation.Solve(inst)
		require.NoError(t, err)
		require.NoError(t, model.Check(inst, sol), "trial %d", trial)
	}
}

// TestBenefit_TwoRowsMatchesFull compares both memory modes.
func TestBenefit_TwoRowsMatchesFull(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		inst := randomInstance(rng, rng.Intn(12))
		full, err := tabulation.Benefit(inst)
		require.NoError(t, err)
		rolling, err := tabulation.Benefit(inst, tabulation.WithMemoryMode(tabulation.TwoRows))
		require.NoError(t, err)
		assert.Equal(t, full, rolling, "trial %d", trial)
	}
}

// TestSolve_Guards covers the option-driven failures.
func TestSolve_Guards(t *testing.T) {
	_, err := tabulation.Solve(textbook(), tabulation.WithMemoryMode(tabulation.TwoRows))
	require.ErrorIs(t, err, tabulation.ErrBacktrackNeedsTable)

	_, err = tabulation.Solve(textbook(), tabulation.WithMaxCells(100))
	require.ErrorIs(t, err, tabulation.ErrTableTooLarge)

	_, err = tabulation.Benefit(textbook(), tabulation.WithMemoryMode(tabulation.TwoRows), tabulation.WithMaxCells(102))
	require.NoError(t, err, "two rows of 51 cells fit in 102")

	_, err = tabulation.Solve(textbook(), tabulation.WithMaxCells(0))
	require.ErrorIs(t, err, tabulation.ErrBadMaxCells)

	_, err = tabulation.Solve(model.Instance{Capacity: -3})
	require.ErrorIs(t, err, model.ErrNegativeCapacity)
}
