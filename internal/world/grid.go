package world

// Sector grid layout. Sectors are numbered 1..MaxSectors in row-major order.
const (
	MaxSectors     = 9
	GridCols       = 3
	GridRows       = MaxSectors / GridCols
	StarbaseSector = 1 // the only sector with a starbase
)

// InBounds returns true if n names a sector on the grid.
func InBounds(n int) bool {
	return n >= 1 && n <= MaxSectors
}

// GridPos returns the zero-based column and row of sector n.
// Out-of-bounds sectors return (-1, -1).
func GridPos(n int) (col, row int) {
	if !InBounds(n) {
		return -1, -1
	}
	return (n - 1) % GridCols, (n - 1) / GridCols
}

// Distance is the number of sectors between a and b along the sector numbering.
// The grid is drawn 3x3 but travel follows the numbering, not the rows.
func Distance(a, b int) int {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
