package core

import (
	"fmt"
	"sort"
)

// MatrixElement is one nonzero of a sparse matrix, ordered first by Row,
// then Column, then Value — the ordering SortAndCombine produces.
type MatrixElement struct {
	Row, Column int
	Value       float64
}

// Matrix is an unordered bag of nonzeros on an n×m shape, assembled by
// repeated AddNonZero calls and finalized with SortAndCombine.
//
// This replaces the source's shared, reference-counted Matrix: Matrix
// is a plain value here, owned by whichever scope
// built it, with no aliasing and nothing to free.
type Matrix struct {
	N, M     int
	nonZero []MatrixElement
}

// NewMatrix returns an empty n×m matrix.
func NewMatrix(n, m int) Matrix {
	return Matrix{N: n, M: m}
}

// AddNonZero appends (row, column, value) to the matrix's nonzero list.
//
// Range check is 0 ≤ column < m on both ends, per spec §9's open
// question: the source excluded column 0 via a `0 < column` typo; this
// implementation uses the symmetric, correct bound.
func (mat *Matrix) AddNonZero(row, column int, value float64) error {
	if row < 0 || row >= mat.N || column < 0 || column >= mat.M {
		return fmt.Errorf("%w: (row=%d,col=%d) out of [0,%d)x[0,%d)",
			ErrDimensionMismatch, row, column, mat.N, mat.M)
	}
	mat.nonZero = append(mat.nonZero, MatrixElement{Row: row, Column: column, Value: value})
	return nil
}

// NonZeros returns the matrix's current nonzero list. The slice is owned
// by mat; callers that need to keep it past further mutation should copy.
func (mat *Matrix) NonZeros() []MatrixElement {
	return mat.nonZero
}

// SortAndCombine sorts the nonzero list by (Row, Column) and sums the
// values of any entries sharing a (Row, Column), replacing the list
// in-place with the combined result.
//
// The source's version has a control-flow bug (spec §9 open question):
// its resize call sits inside the scan loop in a way that truncates the
// list on the very first non-duplicate entry. SortAndCombine is written
// directly from the documented contract instead — running it twice
// produces the same list as running it once (testable property #7).
func (mat *Matrix) SortAndCombine() {
	sort.Slice(mat.nonZero, func(i, j int) bool {
		if mat.nonZero[i].Row != mat.nonZero[j].Row {
			return mat.nonZero[i].Row < mat.nonZero[j].Row
		}
		if mat.nonZero[i].Column != mat.nonZero[j].Column {
			return mat.nonZero[i].Column < mat.nonZero[j].Column
		}
		return mat.nonZero[i].Value < mat.nonZero[j].Value
	})

	if len(mat.nonZero) == 0 {
		return
	}

	combined := mat.nonZero[:1]
	for _, e := range mat.nonZero[1:] {
		last := &combined[len(combined)-1]
		if e.Row == last.Row && e.Column == last.Column {
			last.Value += e.Value
		} else {
			combined = append(combined, e)
		}
	}
	mat.nonZero = combined
}

// Transpose returns a new Matrix with every (row, column, value) mapped
// to (column, row, value), sorted and combined.
func (mat Matrix) Transpose() Matrix {
	result := NewMatrix(mat.M, mat.N)
	result.nonZero = make([]MatrixElement, len(mat.nonZero))
	for i, e := range mat.nonZero {
		result.nonZero[i] = MatrixElement{Row: e.Column, Column: e.Row, Value: e.Value}
	}
	result.SortAndCombine()
	return result
}
