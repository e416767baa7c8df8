package engine

// RotateCW rotates the board 90 degrees clockwise.
func RotateCW(b Board) Board {
	var out Board
	for r := range Size {
		for c := range Size {
			out[r][c] = b[Size-1-c][r]
		}
	}
	return out
}

// RotateCCW rotates the board 90 degrees counter-clockwise.
// It is the exact inverse of RotateCW.
func RotateCCW(b Board) Board {
	var out Board
	for r := range Size {
		for c := range Size {
			out[r][c] = b[c][Size-1-r]
		}
	}
	return out
}

// Rotate180 turns the board upside down. It is its own inverse.
func Rotate180(b Board) Board {
	return RotateCW(RotateCW(b))
}
