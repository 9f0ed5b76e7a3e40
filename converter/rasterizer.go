package converter

import "image"

// Typeface is a font registered with a Rasterizer. It is only meaningful to
// the Rasterizer that returned it.
type Typeface interface {
	Family() string
}

// typefaceName returns the typeface's full name when the Rasterizer knows
// it, falling back to its family.
func typefaceName(face Typeface) string {
	if named, ok := face.(interface{ Name() string }); ok && named.Name() != "" {
		return named.Name()
	}
	return face.Family()
}

// Rasterizer loads fonts and hands out drawing surfaces.
type Rasterizer interface {
	RegisterFont(path, alias string) (Typeface, error)
	CreateSurface(width, height int) Surface
}

// Surface is a 2D drawing target in the spirit of an HTML canvas context.
// Text is drawn with a middle baseline and left alignment. A Surface must
// not be used from more than one goroutine at a time.
type Surface interface {
	Bounds() image.Rectangle
	SetFont(face Typeface, px float64) error
	SetFillStyle(style string) error
	FillRect(x, y, w, h float64)
	FillText(text string, x, y float64) error

	// GetImageData returns the RGBA pixels of the given region, row major,
	// four bytes per pixel. Pixels outside the surface read as zero.
	GetImageData(x, y, w, h int) ([]byte, error)
}
