package canvas

// Strokes finds all contiguous regions of fully inked cells (value ≥ Ink),
// according to the canvas connectivity. Falloff cells never join a stroke.
// Returns a slice of strokes; each is a slice of row-major cell indices in
// BFS order. Use Coordinate to recover (row,col).
//
// Time:   O(rows·cols·d), where d = 4 or 8.
// Memory: O(rows·cols) for visited flags and output.
func (c *Canvas) Strokes() [][]int {
	data := c.cells.Raw()
	inked := func(idx int) bool { return data[idx] >= Ink }

	seen := make([]bool, len(data))
	var strokes [][]int

	for i0 := range data {
		if !inked(i0) || seen[i0] {
			continue
		}
		// BFS to collect the stroke
		queue := []int{i0}
		seen[i0] = true
		var stroke []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			stroke = append(stroke, u)
			ur, uc := c.Coordinate(u)
			for _, d := range c.neighborOffsets {
				vr, vc := ur+d[0], uc+d[1]
				if !c.InBounds(vr, vc) {
					continue
				}
				vi := c.index(vr, vc)
				if inked(vi) && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		strokes = append(strokes, stroke)
	}

	return strokes
}
