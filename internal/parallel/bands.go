package parallel

// BandHeight is the default number of pixel rows per work item.
// 32 rows keeps a band of a 1080p frame well inside L2 while producing
// enough items for stealing to balance the pool.
const BandHeight = 32

// Band is a horizontal strip of pixel rows, [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows partitions height pixel rows into bands of at most
// bandHeight rows. A bandHeight of 0 or less uses BandHeight.
// Returns nil for a non-positive height.
func SplitRows(height, bandHeight int) []Band {
	if height <= 0 {
		return nil
	}
	if bandHeight <= 0 {
		bandHeight = BandHeight
	}

	bands := make([]Band, 0, (height+bandHeight-1)/bandHeight)
	for y := 0; y < height; y += bandHeight {
		end := y + bandHeight
		if end > height {
			end = height
		}
		bands = append(bands, Band{Y0: y, Y1: end})
	}
	return bands
}
