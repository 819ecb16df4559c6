package draw

// digitGlyphs are 3x5 bitmaps, one string per row, '#' marks a lit cell.
var digitGlyphs = [10][5]string{
	{"###", "#.#", "#.#", "#.#", "###"},
	{".#.", "##.", ".#.", ".#.", "###"},
	{"###", "..#", "###", "#..", "###"},
	{"###", "..#", "###", "..#", "###"},
	{"#.#", "#.#", "###", "..#", "..#"},
	{"###", "#..", "###", "..#", "###"},
	{"###", "#..", "###", "#.#", "###"},
	{"###", "..#", ".#.", ".#.", ".#."},
	{"###", "#.#", "###", "#.#", "###"},
	{"###", "#.#", "###", "..#", "###"},
}

// DigitWidth and DigitHeight are the glyph size in cells.
const (
	DigitWidth  = 3
	DigitHeight = 5
)

// FillDigit draws a large digit centered on (cx, cy). cell is the logical
// size of one glyph cell. Values outside 0-9 draw nothing.
func (c *Canvas) FillDigit(d int, cx, cy, cell float64) {
	if d < 0 || d > 9 || cell <= 0 {
		return
	}
	left := cx - DigitWidth*cell/2
	top := cy - DigitHeight*cell/2
	for row, line := range digitGlyphs[d] {
		for col := 0; col < len(line); col++ {
			if line[col] == '#' {
				c.FillRect(left+float64(col)*cell, top+float64(row)*cell, cell, cell)
			}
		}
	}
}
