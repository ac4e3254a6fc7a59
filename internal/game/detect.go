package game

// HasPossibleMerge scans row-major and reports whether any occupied cell
// equals its right or lower neighbour. It stops at the first match.
func HasPossibleMerge(b *Board) bool {
	for y := range Height {
		for x := range Width {
			cell := y*Width + x
			exp := b.Get(cell)
			if exp == 0 {
				continue
			}
			// Check right
			if x+1 < Width && b.Get(cell+1) == exp {
				return true
			}
			// Check down
			if y+1 < Height && b.Get(cell+Width) == exp {
				return true
			}
		}
	}
	return false
}
