package canvas

import (
	"image"
	"math"

	"github.com/golang/geo/r2"
)

func toR2(r image.Rectangle) r2.Rect {
	return r2.RectFromPoints(
		r2.Point{X: float64(r.Min.X), Y: float64(r.Min.Y)},
		r2.Point{X: float64(r.Max.X), Y: float64(r.Max.Y)},
	)
}

// pixelRect converts a canvas rectangle, which may have a negative width or
// height, into the pixels it covers inside bounds. A pixel is covered when
// its centre lies inside the rectangle.
func pixelRect(x, y, w, h float64, bounds image.Rectangle) image.Rectangle {
	rect := r2.RectFromPoints(r2.Point{X: x, Y: y}, r2.Point{X: x + w, Y: y + h})
	clipped := rect.Intersection(toR2(bounds))

	if clipped.IsEmpty() {
		return image.Rectangle{}
	}

	return image.Rect(
		int(math.Round(clipped.X.Lo)),
		int(math.Round(clipped.Y.Lo)),
		int(math.Round(clipped.X.Hi)),
		int(math.Round(clipped.Y.Hi)),
	)
}
