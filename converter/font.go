package converter

import (
	"errors"
	"fmt"
)

var ErrMalformedFont = errors.New("malformed font")

// Symbol is a single glyph packed at one bit per pixel. Rows are stored top
// to bottom, each padded to a whole byte, with the leftmost pixel of a byte
// in its least significant bit.
type Symbol struct {
	Char   rune
	Width  int
	Bitmap []byte
}

// BytesPerRow returns the number of bytes a single bitmap row occupies.
func (s Symbol) BytesPerRow() int {
	return (s.Width + 7) / 8
}

// Pixel reports whether the pixel at column x of row y is set.
func (s Symbol) Pixel(x, y int) bool {
	if x < 0 || x >= s.Width || y < 0 {
		return false
	}
	i := y*s.BytesPerRow() + x/8
	return i < len(s.Bitmap) && s.Bitmap[i]&(1<<(x%8)) != 0
}

// Subset is a run of consecutive code points.
type Subset struct {
	Start   rune
	End     rune
	Symbols []Symbol
}

type Font struct {
	Name          string
	Width         int
	Height        int
	LetterSpacing int
	WordSpacing   int
	Subsets       []Subset
}

// SymbolCount returns the number of symbols across all subsets.
func (f *Font) SymbolCount() int {
	n := 0
	for _, subset := range f.Subsets {
		n += len(subset.Symbols)
	}
	return n
}

// Validate reports the first structural problem found in the font. Fonts
// produced by ConvertFont always validate; hand-built fonts may not.
func (f *Font) Validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil font", ErrMalformedFont)
	}

	if f.Height < 0 || f.Width < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrMalformedFont, f.Width, f.Height)
	}

	maxWidth := 0

	for i, subset := range f.Subsets {
		if len(subset.Symbols) == 0 {
			return fmt.Errorf("%w: subset %d is empty", ErrMalformedFont, i)
		}

		if i > 0 && subset.Start <= f.Subsets[i-1].End {
			return fmt.Errorf("%w: subset %d (U+%04X) overlaps or precedes subset %d (U+%04X)",
				ErrMalformedFont, i, subset.Start, i-1, f.Subsets[i-1].End)
		}

		if subset.Symbols[0].Char != subset.Start || subset.Symbols[len(subset.Symbols)-1].Char != subset.End {
			return fmt.Errorf("%w: subset %d bounds U+%04X..U+%04X do not match its symbols",
				ErrMalformedFont, i, subset.Start, subset.End)
		}

		if int(subset.End-subset.Start)+1 != len(subset.Symbols) {
			return fmt.Errorf("%w: subset %d has %d symbols for range U+%04X..U+%04X",
				ErrMalformedFont, i, len(subset.Symbols), subset.Start, subset.End)
		}

		for j, symbol := range subset.Symbols {
			if symbol.Char != subset.Start+rune(j) {
				return fmt.Errorf("%w: subset %d is not contiguous at U+%04X", ErrMalformedFont, i, symbol.Char)
			}

			if symbol.Width < 0 {
				return fmt.Errorf("%w: symbol %q has negative width", ErrMalformedFont, symbol.Char)
			}

			if len(symbol.Bitmap) != symbol.BytesPerRow()*f.Height {
				return fmt.Errorf("%w: symbol %q has %d bitmap bytes, expected %d",
					ErrMalformedFont, symbol.Char, len(symbol.Bitmap), symbol.BytesPerRow()*f.Height)
			}

			if symbol.Width > maxWidth {
				maxWidth = symbol.Width
			}
		}
	}

	if maxWidth != f.Width {
		return fmt.Errorf("%w: font width %d, widest symbol is %d", ErrMalformedFont, f.Width, maxWidth)
	}

	return nil
}
