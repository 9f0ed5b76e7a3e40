package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/mgmeyers/font2bitmap/canvas"
	"github.com/mgmeyers/font2bitmap/converter"
	"golang.org/x/image/draw"
)

// Columns is the number of glyph cells per row of the sheet.
const Columns = 16

var ErrUnsupportedImage = errors.New("unsupported preview image format")

type Options struct {
	Scale int
	Ink   string
	Paper string
}

func DefaultOptions() Options {
	return Options{
		Scale: 4,
		Ink:   "#000000",
		Paper: "#ffffff",
	}
}

// Render draws every symbol of the font into a grid of cells. Each cell is
// one pixel wider and taller than the font so neighbouring glyphs never
// touch. Glyphs are painted at 1x and magnified by opts.Scale with
// nearest-neighbour scaling, keeping pixel edges sharp.
func Render(font *converter.Font, opts Options) (*image.RGBA, error) {
	if opts.Scale <= 0 {
		return nil, fmt.Errorf("invalid preview scale %d", opts.Scale)
	}

	ink, err := canvas.ParseColor(opts.Ink)
	if err != nil {
		return nil, err
	}
	paper, err := canvas.ParseColor(opts.Paper)
	if err != nil {
		return nil, err
	}

	count := font.SymbolCount()
	rows := (count + Columns - 1) / Columns
	cols := Columns
	if count < Columns {
		cols = count
	}

	cellW := (font.Width + 1) * opts.Scale
	cellH := (font.Height + 1) * opts.Scale

	img := image.NewRGBA(image.Rect(0, 0, max(cols*cellW, 1), max(rows*cellH, 1)))
	draw.Draw(img, img.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)

	if font.Width == 0 || font.Height == 0 {
		return img, nil
	}

	glyph := image.NewRGBA(image.Rect(0, 0, font.Width, font.Height))
	scaled := image.Rect(0, 0, font.Width*opts.Scale, font.Height*opts.Scale)

	i := 0
	for _, subset := range font.Subsets {
		for _, symbol := range subset.Symbols {
			paintSymbol(glyph, symbol, ink, paper)

			origin := image.Pt((i%Columns)*cellW, (i/Columns)*cellH)
			draw.NearestNeighbor.Scale(img, scaled.Add(origin), glyph, glyph.Bounds(), draw.Src, nil)
			i++
		}
	}

	return img, nil
}

// paintSymbol renders symbol at one pixel per bit into glyph, which is as
// large as the font.
func paintSymbol(glyph *image.RGBA, symbol converter.Symbol, ink, paper color.RGBA) {
	draw.Draw(glyph, glyph.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)

	b := glyph.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < symbol.Width; x++ {
			if symbol.Pixel(x, y) {
				glyph.SetRGBA(x, y, ink)
			}
		}
	}
}

// Encode writes img to w as PNG or JPEG, chosen from the extension of name.
// quality only applies to JPEG.
func Encode(w io.Writer, img image.Image, name string, quality int) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedImage, name)
}
