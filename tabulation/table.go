package tabulation

import (
	"fmt"

	"github.com/katalvlaran/knapsack/model"
)

// Table is the finished (n+1)×(capacity+1) benefit table.
// It is immutable after Build returns; cells are stored row-major.
type Table struct {
	rows  int
	cols  int
	cells []int64
}

// Rows returns n+1.
func (t *Table) Rows() int { return t.rows }

// Cols returns capacity+1.
func (t *Table) Cols() int { return t.cols }

// At returns table[i][w]. It panics when (i, w) is outside the table,
// like indexing a slice.
func (t *Table) At(i, w int) int64 {
	if i < 0 || i >= t.rows || w < 0 || w >= t.cols {
		panic(fmt.Sprintf("tabulation: cell (%d,%d) outside %dx%d table", i, w, t.rows, t.cols))
	}

	return t.cells[i*t.cols+w]
}

// Benefit returns the optimum table[n][capacity].
func (t *Table) Benefit() int64 { return t.cells[len(t.cells)-1] }

// Row returns a copy of row i.
func (t *Table) Row(i int) []int64 {
	out := make([]int64, t.cols)
	copy(out, t.cells[i*t.cols:(i+1)*t.cols])

	return out
}

// CheckMonotone verifies the structural invariants of a knapsack table:
// row 0 and column 0 are zero, and every cell is ≥ its upper and left
// neighbour. Violations are wrapped in ErrNotMonotone.
//
// Complexity: O(rows·cols).
func (t *Table) CheckMonotone() error {
	var i, w int
	for w = 0; w < t.cols; w++ {
		if t.At(0, w) != 0 {
			return fmt.Errorf("%w: table[0][%d]=%d", ErrNotMonotone, w, t.At(0, w))
		}
	}
	for i = 1; i < t.rows; i++ {
		if t.At(i, 0) != 0 {
			return fmt.Errorf("%w: table[%d][0]=%d", ErrNotMonotone, i, t.At(i, 0))
		}
		for w = 1; w < t.cols; w++ {
			if t.At(i, w) < t.At(i-1, w) || t.At(i, w) < t.At(i, w-1) {
				return fmt.Errorf("%w: at (%d,%d)", ErrNotMonotone, i, w)
			}
		}
	}

	return nil
}

// Build fills the full benefit table for inst.
//
// For i = 1..n and w = 0..capacity:
//
//	table[i][w] = table[i-1][w]                                         if weight(i) > w
//	table[i][w] = max(table[i-1][w], benefit(i) + table[i-1][w-weight(i)]) otherwise
//
// Build ignores Options.MemoryMode; it always produces a full table.
//
// Errors: inst.Validate errors, ErrBadMaxCells, ErrTableTooLarge.
func Build(inst model.Instance, opts ...Option) (*Table, error) {
	cfg := resolve(opts)
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	rows, cols, err := shape(inst, cfg.MaxCells, inst.Len()+1)
	if err != nil {
		return nil, err
	}

	t := &Table{rows: rows, cols: cols, cells: make([]int64, rows*cols)}
	var i int
	for i = 1; i < rows; i++ {
		fillRow(t.cells[(i-1)*cols:i*cols], t.cells[i*cols:(i+1)*cols], inst.Items[i-1])
	}

	return t, nil
}

// fillRow computes one table row from the previous one.
func fillRow(prev, cur []int64, it model.Item) {
	var w int
	for w = range cur {
		if it.Weight > int64(w) {
			cur[w] = prev[w]
			continue
		}
		cur[w] = max(prev[w], it.Benefit+prev[w-int(it.Weight)])
	}
}

// shape returns rows and cols, refusing tables of more than maxCells cells
// given how many rows will actually be stored.
func shape(inst model.Instance, maxCells, storedRows int) (rows, cols int, err error) {
	if maxCells <= 0 {
		return 0, 0, ErrBadMaxCells
	}
	rows = inst.Len() + 1
	if inst.Capacity >= int64(maxCells) || inst.Capacity+1 > int64(maxCells/storedRows) {
		return 0, 0, fmt.Errorf("%w: %d rows x %d columns, limit %d cells",
			ErrTableTooLarge, storedRows, inst.Capacity+1, maxCells)
	}
	cols = int(inst.Capacity) + 1

	return rows, cols, nil
}
