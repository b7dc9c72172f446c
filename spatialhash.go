package pebble

// spatialHash is the broadphase: a uniform grid over the playfield mapping
// cells to the bodies whose bounding squares overlap them. It is rebuilt
// from scratch every physics step and holds no identity across steps; the
// cell slices keep their capacity so steady-state rebuilds allocate nothing.
type spatialHash struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]int32 // arena indices, row-major
}

// configure sizes the grid for the given playfield and cell size. A no-op
// when nothing changed, so the per-step retune check is cheap.
func (h *spatialHash) configure(width, height, cellSize float64) {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1
	if cols == h.cols && rows == h.rows && cellSize == h.cellSize {
		return
	}
	h.cellSize = cellSize
	h.cols = cols
	h.rows = rows
	h.cells = make([][]int32, cols*rows)
}

// clear empties every cell, keeping allocated capacity.
func (h *spatialHash) clear() {
	for i := range h.cells {
		h.cells[i] = h.cells[i][:0]
	}
}

// rebuild repopulates the grid from the body arena.
func (h *spatialHash) rebuild(bodies []Body) {
	h.clear()
	for i := range bodies {
		h.insert(int32(i), &bodies[i])
	}
}

// insert adds a body to every cell its bounding square [x−r,x+r]×[y−r,y+r]
// overlaps. A body straddling a cell border is deliberately duplicated into
// each cell so straddling pairs still share at least one cell; the resulting
// redundant pair tests are harmless because resolution is idempotent.
// Coordinates are clamped, so a body momentarily outside the playfield lands
// in an edge cell instead of being lost.
func (h *spatialHash) insert(id int32, b *Body) {
	minCX := int((b.X - b.Radius) / h.cellSize)
	maxCX := int((b.X + b.Radius) / h.cellSize)
	minCY := int((b.Y - b.Radius) / h.cellSize)
	maxCY := int((b.Y + b.Radius) / h.cellSize)
	if minCX < 0 {
		minCX = 0
	}
	if maxCX >= h.cols {
		maxCX = h.cols - 1
	}
	if minCY < 0 {
		minCY = 0
	}
	if maxCY >= h.rows {
		maxCY = h.rows - 1
	}
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			idx := cy*h.cols + cx
			h.cells[idx] = append(h.cells[idx], id)
		}
	}
}

// tunedCellSize picks a cell size targeting a few bodies per cell: a small
// multiple of the mean radius, clamped to the configured bounds. With no
// bodies the current size is kept.
func tunedCellSize(bodies []Body, min, max, current float64) float64 {
	if len(bodies) == 0 {
		return current
	}
	var sum float64
	for i := range bodies {
		sum += bodies[i].Radius
	}
	mean := sum / float64(len(bodies))
	return clamp(3*mean, min, max)
}
