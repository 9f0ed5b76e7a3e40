package formatters

import (
	"fmt"
	"strings"

	"github.com/mgmeyers/font2bitmap/converter"
)

// Text dumps every symbol as rows of X and space, one line per pixel row:
//
//	A  [  XX  ]
//	A  [ X  X ]
//
// Symbols are left aligned and padded to the font width.
func Text(font *converter.Font) (string, error) {
	if err := font.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder

	for _, subset := range font.Subsets {
		for _, symbol := range subset.Symbols {
			label := string(symbol.Char)
			if isControl(symbol.Char) {
				label = fmt.Sprintf("U+%04X", symbol.Char)
			}

			for y := 0; y < font.Height; y++ {
				fmt.Fprintf(&b, "%s  [%-*s]\n", label, font.Width, rowString(symbol, y))
			}
		}
	}

	return b.String(), nil
}

func rowString(symbol converter.Symbol, y int) string {
	row := make([]byte, symbol.Width)

	for x := 0; x < symbol.Width; x++ {
		if symbol.Pixel(x, y) {
			row[x] = 'X'
		} else {
			row[x] = ' '
		}
	}

	return string(row)
}
