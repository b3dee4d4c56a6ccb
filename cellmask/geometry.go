package cellmask

// RowOf returns the row index 0..8 of a cell.
func RowOf(cell int) int { return cell / 9 }

// ColOf returns the column index 0..8 of a cell.
func ColOf(cell int) int { return cell % 9 }

// RegionOf returns the 3x3 region index 0..8 of a cell.
func RegionOf(cell int) int {
	return (cell/9/3)*3 + (cell%9)/3
}

// CellAt returns the cell index for a row/column pair.
func CellAt(row, col int) int { return row*9 + col }

var (
	rowMasks    [9]Mask
	colMasks    [9]Mask
	regionMasks [9]Mask
)

func init() {
	for cell := 0; cell < Cells; cell++ {
		rowMasks[RowOf(cell)].Set(cell)
		colMasks[ColOf(cell)].Set(cell)
		regionMasks[RegionOf(cell)].Set(cell)
	}
}

// RowMask returns the mask of the nine cells in row r.
func RowMask(r int) Mask { return rowMasks[r] }

// ColMask returns the mask of the nine cells in column c.
func ColMask(c int) Mask { return colMasks[c] }

// RegionMask returns the mask of the nine cells in region g.
func RegionMask(g int) Mask { return regionMasks[g] }

// PeerMask returns the mask of the 20 cells sharing a row, column or region
// with cell, excluding cell itself.
func PeerMask(cell int) Mask {
	m := rowMasks[RowOf(cell)].
		Union(colMasks[ColOf(cell)]).
		Union(regionMasks[RegionOf(cell)])
	m.Clear(cell)
	return m
}
