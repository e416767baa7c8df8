package engine

// Row is a single board row.
type Row [Size]int

// Compress moves all non-zero cells to the left, keeping their order,
// and pads the rest of the row with zeros.
func Compress(row Row) Row {
	var out Row
	i := 0
	for _, v := range row {
		if v != 0 {
			out[i] = v
			i++
		}
	}
	return out
}

// Merge makes a single left-to-right pass over adjacent pairs, doubling the
// left tile and clearing the right one when they are equal. A tile produced
// by a merge is never merged again in the same pass.
// Returns the row and the sum of the doubled values.
func Merge(row Row) (Row, int) {
	gained := 0
	for i := 0; i < Size-1; i++ {
		if row[i] != 0 && row[i] == row[i+1] {
			row[i] *= 2
			row[i+1] = 0
			gained += row[i]
		}
	}
	return row, gained
}

// SlideRow compresses, merges and compresses again.
func SlideRow(row Row) (Row, int) {
	merged, gained := Merge(Compress(row))
	return Compress(merged), gained
}

// SlideLeft slides every row of the board to the left.
// Returns the new board and the total score gained.
func SlideLeft(b Board) (Board, int) {
	var out Board
	total := 0
	for r := range Size {
		row, gained := SlideRow(Row(b[r]))
		out[r] = row
		total += gained
	}
	return out, total
}
