package converter

import "fmt"

const (
	// LooseThreshold decides which columns belong to the glyph's bounding
	// box. Anything darker than pure white counts, so antialiased edges are
	// kept inside the crop.
	LooseThreshold = 255

	// StrictThreshold decides which pixels become set bits. Only pixels
	// darker than mid grey are ink; faint antialiasing is dropped.
	StrictThreshold = 128

	Background = "#fff"
	Foreground = "#000"
)

// ProcessSymbol draws char on s and returns its cropped 1bpp bitmap. The
// surface is cleared first, so nothing from a previous character leaks in.
// Only rows [0, height) are examined.
func ProcessSymbol(char rune, s Surface, height int) (Symbol, error) {
	canvasWidth := s.Bounds().Dx()

	if err := s.SetFillStyle(Background); err != nil {
		return Symbol{}, err
	}
	s.FillRect(0, 0, float64(canvasWidth), float64(s.Bounds().Dy()))

	if err := s.SetFillStyle(Foreground); err != nil {
		return Symbol{}, err
	}
	if err := s.FillText(string(char), 0, float64(height)/2); err != nil {
		return Symbol{}, fmt.Errorf("drawing %q: %w", char, err)
	}

	data, err := s.GetImageData(0, 0, canvasWidth, height)
	if err != nil {
		return Symbol{}, fmt.Errorf("reading back %q: %w", char, err)
	}

	minX, maxX := findInkColumns(data, canvasWidth, height)

	if minX > maxX {
		return Symbol{Char: char, Bitmap: []byte{}}, nil
	}

	width := maxX - minX + 1
	bytesPerRow := (width + 7) / 8
	bitmap := make([]byte, bytesPerRow*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if brightness(data, canvasWidth, minX+x, y) < StrictThreshold {
				bitmap[y*bytesPerRow+x/8] |= 1 << (x % 8)
			}
		}
	}

	return Symbol{Char: char, Width: width, Bitmap: bitmap}, nil
}

// findInkColumns returns the first and last column containing a pixel below
// LooseThreshold. When there are none, minX > maxX.
func findInkColumns(data []byte, canvasWidth, height int) (minX, maxX int) {
	minX, maxX = canvasWidth, -1

	for y := 0; y < height; y++ {
		for x := 0; x < canvasWidth; x++ {
			if brightness(data, canvasWidth, x, y) < LooseThreshold {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}

	return minX, maxX
}

// brightness of a pixel is its red channel. Glyphs are drawn black on white,
// so every channel carries the same value.
func brightness(data []byte, canvasWidth, x, y int) int {
	i := (y*canvasWidth + x) * 4
	if i < 0 || i >= len(data) {
		return LooseThreshold
	}
	return int(data[i])
}
