package solver_test

import (
	"testing"

	"github.com/katalvlaran/knapsack/exhaustive"
	"github.com/katalvlaran/knapsack/generator"
	"github.com/katalvlaran/knapsack/memo"
	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/solver"
	"github.com/katalvlaran/knapsack/tabulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_TextbookAllAlgorithms expects 220 via items 2 and 3 everywhere.
func TestSolve_TextbookAllAlgorithms(t *testing.T) {
	inst := model.MustInstance(50, [][2]int64{{10, 60}, {20, 100}, {30, 120}})
	for _, algo := range solver.Algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			sol, err := solver.Solve(inst, solver.WithAlgorithm(algo))
			require.NoError(t, err)
			assert.Equal(t, int64(220), sol.Benefit)
			assert.Equal(t, []int{2, 3}, sol.Indices())
			assert.Equal(t, int64(50), sol.Weight)
		})
	}
}

// TestSolve_Infeasible expects the lone oversize item to be dropped everywhere.
func TestSolve_Infeasible(t *testing.T) {
	inst := model.MustInstance(10, [][2]int64{{11, 100}})
	for _, algo := range solver.Algorithms {
		sol, err := solver.Solve(inst, solver.WithAlgorithm(algo))
		require.NoError(t, err, algo.String())
		assert.Equal(t, model.NewSolution(0, nil), sol, algo.String())
	}
}

// TestSolve_Boundaries covers zero capacity and empty item lists.
func TestSolve_Boundaries(t *testing.T) {
	for _, inst := range []model.Instance{
		model.MustInstance(0, [][2]int64{{3, 4}, {1, 1}}),
		model.MustInstance(0, nil),
		model.MustInstance(1000, nil),
	} {
		for _, algo := range solver.Algorithms {
			sol, err := solver.Solve(inst, solver.WithAlgorithm(algo))
			require.NoError(t, err, algo.String())
			assert.Equal(t, int64(0), sol.Benefit, algo.String())
			assert.True(t, sol.Empty(), algo.String())
			assert.Equal(t, int64(0), sol.Weight, algo.String())
		}
	}
}

// TestSolve_Errors covers validation and routing failures.
func TestSolve_Errors(t *testing.T) {
	_, err := solver.Solve(model.Instance{Capacity: -5})
	require.ErrorIs(t, err, model.ErrNegativeCapacity)

	_, err = solver.Solve(model.MustInstance(1, nil), solver.WithAlgorithm(solver.Algorithm(99)))
	require.ErrorIs(t, err, solver.ErrUnsupportedAlgorithm)

	raw := make([][2]int64, 8)
	for i := range raw {
		raw[i] = [2]int64{1, 1}
	}
	_, err = solver.Solve(model.MustInstance(4, raw),
		solver.WithAlgorithm(solver.Exhaustive), solver.WithExhaustiveMaxItems(5))
	require.ErrorIs(t, err, exhaustive.ErrTooManyItems)
}

// TestCrossCheck_RandomAgreement is the agreement property over many small
// instances: same optimum, every solution consistent and feasible.
func TestCrossCheck_RandomAgreement(t *testing.T) {
	spec := generator.Spec{
		Capacity: generator.Range{Min: 0, Max: 60},
		Count:    generator.Range{Min: 0, Max: 12},
		Weights:  generator.Range{Min: 1, Max: 20},
		Benefits: generator.Range{Min: 0, Max: 50},
	}
	batch, err := generator.Batch(200, spec, 2024)
	require.NoError(t, err)

	for k, inst := range batch {
		ag, err := solver.CrossCheck(inst)
		require.NoError(t, err, "instance %d", k)
		require.Empty(t, ag.Skipped)
		require.Len(t, ag.Solutions, 3)
		for algo, sol := range ag.Solutions {
			assert.Equal(t, ag.Benefit, sol.Benefit, "instance %d %s", k, algo)
			assert.LessOrEqual(t, sol.Weight, inst.Capacity)
			assert.True(t, model.VerifyBenefit(sol.Items, sol.Benefit))
		}
	}
}

// TestCrossCheck_TieBreakDivergence documents that the selected sets may
// differ while the optimum is shared.
func TestCrossCheck_TieBreakDivergence(t *testing.T) {
	inst := model.MustInstance(5, [][2]int64{{1, 0}, {4, 7}})
	ag, err := solver.CrossCheck(inst)
	require.NoError(t, err)
	assert.Equal(t, int64(7), ag.Benefit)
	assert.Equal(t, []int{2}, ag.Solutions[solver.Exhaustive].Indices())
	assert.Equal(t, []int{2}, ag.Solutions[solver.Tabulation].Indices())
	assert.Equal(t, []int{1, 2}, ag.Solutions[solver.Recursive].Indices())
}

// TestCrossCheck_SkipsExhaustive leaves enumeration out above its guard.
func TestCrossCheck_SkipsExhaustive(t *testing.T) {
	inst, err := generator.Instance(100, 40, generator.Range{Min: 1, Max: 30}, generator.Range{Min: 1, Max: 30}, 77)
	require.NoError(t, err)

	ag, err := solver.CrossCheck(inst,
		solver.WithMemoOptions(memo.WithStrategy(memo.Stack)),
		solver.WithTabulationOptions(tabulation.WithMaxCells(1<<20)),
	)
	require.NoError(t, err)
	assert.Equal(t, []solver.Algorithm{solver.Exhaustive}, ag.Skipped)
	assert.Len(t, ag.Solutions, 2)
}

// TestCrossCheck_PropagatesGuard surfaces a failing algorithm instead of
// comparing partial results.
func TestCrossCheck_PropagatesGuard(t *testing.T) {
	inst := model.MustInstance(50, [][2]int64{{10, 60}, {20, 100}, {30, 120}})
	_, err := solver.CrossCheck(inst, solver.WithTabulationOptions(tabulation.WithMaxCells(10)))
	require.ErrorIs(t, err, tabulation.ErrTableTooLarge)
}

// TestParseAlgorithm accepts names, aliases and the numeric selectors.
func TestParseAlgorithm(t *testing.T) {
	cases := map[string]solver.Algorithm{
		"exhaustive":  solver.Exhaustive,
		"Brute-Force": solver.Exhaustive,
		"1":           solver.Exhaustive,
		"tabulation":  solver.Tabulation,
		"bottom-up":   solver.Tabulation,
		"2":           solver.Tabulation,
		"recursive":   solver.Recursive,
		"top-down":    solver.Recursive,
		" memo ":      solver.Recursive,
		"3":           solver.Recursive,
	}
	for in, want := range cases {
		got, err := solver.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := solver.ParseAlgorithm("greedy")
	require.ErrorIs(t, err, solver.ErrUnsupportedAlgorithm)
	assert.Equal(t, "algorithm(0)", solver.Algorithm(0).String())
}
