package models

// 5x7 digit glyphs used to compose plate masks. Row strings use '#' for
// cells that belong to the digit.
var digitGlyphs = map[rune][7]string{
	'0': {" ### ", "#   #", "#  ##", "# # #", "##  #", "#   #", " ### "},
	'1': {"  #  ", " ##  ", "  #  ", "  #  ", "  #  ", "  #  ", " ### "},
	'2': {" ### ", "#   #", "    #", "   # ", "  #  ", " #   ", "#####"},
	'3': {"#####", "   # ", "  #  ", "   # ", "    #", "#   #", " ### "},
	'4': {"   # ", "  ## ", " # # ", "#  # ", "#####", "   # ", "   # "},
	'5': {"#####", "#    ", "#### ", "    #", "    #", "#   #", " ### "},
	'6': {"  ## ", " #   ", "#    ", "#### ", "#   #", "#   #", " ### "},
	'7': {"#####", "    #", "   # ", "  #  ", " #   ", " #   ", " #   "},
	'8': {" ### ", "#   #", "#   #", " ### ", "#   #", "#   #", " ### "},
	'9': {" ### ", "#   #", "#   #", " ####", "    #", "   # ", " ##  "},
}

const (
	glyphWidth  = 5
	glyphHeight = 7
	glyphGap    = 1 // blank columns between digits
	maskBorder  = 1 // blank ring around the composed figure
)

// MaskForDigits composes the boolean digit mask for a one- or two-digit
// answer string. Unknown runes (e.g. "none") yield an all-background mask
// of a single glyph cell, which renders as a figureless plate.
func MaskForDigits(answer string) [][]bool {
	glyphs := make([][7]string, 0, len(answer))
	for _, r := range answer {
		if g, ok := digitGlyphs[r]; ok {
			glyphs = append(glyphs, g)
		}
	}

	cols := maskBorder * 2
	if n := len(glyphs); n > 0 {
		cols += n*glyphWidth + (n-1)*glyphGap
	} else {
		cols += glyphWidth
	}
	rows := glyphHeight + maskBorder*2

	mask := make([][]bool, rows)
	for y := range mask {
		mask[y] = make([]bool, cols)
	}
	for i, g := range glyphs {
		x0 := maskBorder + i*(glyphWidth+glyphGap)
		for y := 0; y < glyphHeight; y++ {
			for x, c := range g[y] {
				if c == '#' {
					mask[maskBorder+y][x0+x] = true
				}
			}
		}
	}
	return mask
}
