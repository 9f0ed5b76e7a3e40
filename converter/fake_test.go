package converter

import (
	"errors"
	"image"
)

// paint is one pixel a fake glyph leaves behind, as a grey level.
type paint struct {
	x, y  int
	value byte
}

type fakeTypeface struct{ family string }

func (t *fakeTypeface) Family() string { return t.family }

// fakeSurface replays scripted glyphs instead of rendering fonts.
type fakeSurface struct {
	w, h    int
	pix     []byte
	fill    byte
	font    Typeface
	glyphs  map[string][]paint
	drawn   []string
	textErr error
	readErr error
}

func newFakeSurface(w, h int, glyphs map[string][]paint) *fakeSurface {
	return &fakeSurface{
		w:      w,
		h:      h,
		pix:    make([]byte, w*h*4),
		glyphs: glyphs,
	}
}

func (s *fakeSurface) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }

func (s *fakeSurface) SetFont(face Typeface, px float64) error {
	s.font = face
	return nil
}

func (s *fakeSurface) SetFillStyle(style string) error {
	switch style {
	case "#fff":
		s.fill = 255
	case "#000":
		s.fill = 0
	default:
		return errors.New("unexpected fill style " + style)
	}
	return nil
}

func (s *fakeSurface) set(x, y int, v byte) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	i := (y*s.w + x) * 4
	s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3] = v, v, v, 255
}

func (s *fakeSurface) FillRect(x, y, w, h float64) {
	for py := int(y); py < int(y+h); py++ {
		for px := int(x); px < int(x+w); px++ {
			s.set(px, py, s.fill)
		}
	}
}

func (s *fakeSurface) FillText(text string, x, y float64) error {
	if s.textErr != nil {
		return s.textErr
	}
	s.drawn = append(s.drawn, text)
	for _, p := range s.glyphs[text] {
		s.set(int(x)+p.x, p.y, p.value)
	}
	return nil
}

func (s *fakeSurface) GetImageData(x, y, w, h int) ([]byte, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	data := make([]byte, w*h*4)
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			sx, sy := x+px, y+py
			if sx < 0 || sy < 0 || sx >= s.w || sy >= s.h {
				continue
			}
			copy(data[(py*w+px)*4:(py*w+px)*4+4], s.pix[(sy*s.w+sx)*4:])
		}
	}
	return data, nil
}

type fakeRasterizer struct {
	glyphs      map[string][]paint
	registerErr error
	textErr     error

	registered []string
	surfaces   []*fakeSurface
}

func (r *fakeRasterizer) RegisterFont(path, alias string) (Typeface, error) {
	if r.registerErr != nil {
		return nil, r.registerErr
	}
	r.registered = append(r.registered, path)
	return &fakeTypeface{family: alias}, nil
}

func (r *fakeRasterizer) CreateSurface(width, height int) Surface {
	s := newFakeSurface(width, height, r.glyphs)
	s.textErr = r.textErr
	r.surfaces = append(r.surfaces, s)
	return s
}

// solidGlyph paints a width x height block of full ink starting at column x0.
func solidGlyph(x0, width, height int) []paint {
	var p []paint
	for y := 0; y < height; y++ {
		for x := x0; x < x0+width; x++ {
			p = append(p, paint{x: x, y: y, value: 0})
		}
	}
	return p
}
