package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/mgmeyers/font2bitmap/converter"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Surface is an RGBA drawing target. Text is laid out with a middle baseline
// and left alignment, matching what the converter expects.
type Surface struct {
	img  *image.RGBA
	fill color.RGBA
	face font.Face
	tf   *Typeface
	px   float64
}

var _ converter.Surface = (*Surface)(nil)

// NewSurface returns a transparent surface with an opaque black fill style.
func NewSurface(width, height int) *Surface {
	return &Surface{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		fill: color.RGBA{A: 255},
	}
}

func (s *Surface) Bounds() image.Rectangle { return s.img.Bounds() }

func (s *Surface) SetFont(face converter.Typeface, px float64) error {
	tf, ok := face.(*Typeface)
	if !ok || tf == nil {
		return ErrForeignTypeface
	}
	if px <= 0 {
		return fmt.Errorf("invalid font size %v", px)
	}
	if tf == s.tf && px == s.px {
		return nil
	}

	f, err := opentype.NewFace(tf.font, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return fmt.Errorf("creating %vpx face for %s: %w", px, tf.alias, err)
	}

	if s.face != nil {
		s.face.Close()
	}
	s.face, s.tf, s.px = f, tf, px

	return nil
}

func (s *Surface) SetFillStyle(style string) error {
	c, err := ParseColor(style)
	if err != nil {
		return err
	}
	s.fill = c
	return nil
}

func (s *Surface) FillRect(x, y, w, h float64) {
	r := pixelRect(x, y, w, h, s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(s.fill), image.Point{}, draw.Over)
}

// FillText draws text with its left edge at x and the middle of the em box
// at y.
func (s *Surface) FillText(text string, x, y float64) error {
	if s.face == nil {
		return ErrNoFont
	}

	metrics := s.face.Metrics()
	baseline := fixed.Int26_6(y*64) + (metrics.Ascent-metrics.Descent)/2

	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(s.fill),
		Face: s.face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: baseline},
	}
	d.DrawString(text)

	return nil
}

func (s *Surface) GetImageData(x, y, w, h int) ([]byte, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid image data region %dx%d", w, h)
	}

	data := make([]byte, w*h*4)
	region := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	if region.Empty() {
		return data, nil
	}

	rowBytes := region.Dx() * 4
	for py := region.Min.Y; py < region.Max.Y; py++ {
		src := s.img.PixOffset(region.Min.X, py)
		dst := ((py-y)*w + (region.Min.X - x)) * 4
		copy(data[dst:dst+rowBytes], s.img.Pix[src:src+rowBytes])
	}

	return data, nil
}
