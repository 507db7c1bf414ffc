package grid

import "iter"

// Span enumerates every coordinate in the axis-aligned rectangle between
// start (inclusive) and end (exclusive), in row-major order with columns
// varying fastest. The step direction on each axis is inferred from the
// sign of end minus start; a zero difference steps positively.
//
// The row range always covers at least one row, so start.Row == end.Row
// still enumerates that single row. The column range is strictly
// exclusive: start.Col == end.Col has zero width and the whole span is
// empty. The sequence is lazy and can be ranged over more than once.
func Span(start, end RowCol) iter.Seq[RowCol] {
	rowStep := 1
	if end.Row < start.Row {
		rowStep = -1
	}
	colStep := 1
	if end.Col < start.Col {
		colStep = -1
	}
	rowCount := (end.Row - start.Row) * rowStep
	if rowCount == 0 {
		rowCount = 1
	}
	return func(yield func(RowCol) bool) {
		for i := 0; i < rowCount; i++ {
			row := start.Row + i*rowStep
			for col := start.Col; col != end.Col; col += colStep {
				if !yield(RowCol{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}
