package systems

// SpatialGrid buckets particle indices into square cells so neighbor lookups
// only touch nearby cells. Positions outside the grid clamp to the edge cells.
type SpatialGrid struct {
	cellSize float32
	cols     int
	rows     int
	width    float32
	height   float32
	cells    [][]int32
}

// NewSpatialGrid creates a grid covering width x height. cellSize should be
// at least the largest query radius.
func NewSpatialGrid(width, height, cellSize float32) *SpatialGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]int32, cols*rows)
	for i := range cells {
		cells[i] = make([]int32, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		width:    width,
		height:   height,
		cells:    cells,
	}
}

// Fits reports whether the grid was built for these dimensions.
func (g *SpatialGrid) Fits(width, height, cellSize float32) bool {
	return g.width == width && g.height == height && g.cellSize == cellSize
}

// Clear removes all indices from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds index i at the given position.
func (g *SpatialGrid) Insert(i int, x, y float32) {
	col, row := g.cell(x, y)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], int32(i))
}

// NeighborsInto appends every index stored in the 3x3 block of cells around
// (x, y) to dst. Any index within cellSize of (x, y) is included; callers
// filter by exact distance. Order is by cell, not by index.
func (g *SpatialGrid) NeighborsInto(dst []int32, x, y float32) []int32 {
	col, row := g.cell(x, y)
	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			dst = append(dst, g.cells[r*g.cols+c]...)
		}
	}
	return dst
}

// cell returns the clamped cell coordinates for a position.
func (g *SpatialGrid) cell(x, y float32) (col, row int) {
	col = int(x / g.cellSize)
	row = int(y / g.cellSize)

	if col < 0 || x < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 || y < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}
