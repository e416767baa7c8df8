package engine

// IsTerminal reports whether the board is full and no two horizontally or
// vertically adjacent cells hold the same value.
func IsTerminal(b Board) bool {
	for r := range Size {
		for c := range Size {
			v := b[r][c]
			if v == 0 {
				return false
			}
			if c < Size-1 && b[r][c+1] == v {
				return false
			}
			if r < Size-1 && b[r+1][c] == v {
				return false
			}
		}
	}
	return true
}
