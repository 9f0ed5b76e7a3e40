// Package canvas is a small software canvas on top of golang.org/x/image. It
// implements converter.Rasterizer: fonts are parsed with the opentype package
// and drawn antialiased, without hinting, onto RGBA surfaces.
package canvas

import (
	"errors"
	"fmt"
	"os"

	"github.com/mgmeyers/font2bitmap/converter"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

var (
	ErrNoFont          = errors.New("no font selected")
	ErrForeignTypeface = errors.New("typeface was not created by package canvas")
)

// Typeface is a parsed font registered under an alias.
type Typeface struct {
	alias string
	name  string
	font  *opentype.Font
}

func (t *Typeface) Family() string { return t.alias }

// Name is the full font name from the font's name table, if it has one.
func (t *Typeface) Name() string { return t.name }

// Rasterizer parses fonts and hands out surfaces.
type Rasterizer struct{}

var _ converter.Rasterizer = (*Rasterizer)(nil)

func New() *Rasterizer {
	return &Rasterizer{}
}

func (r *Rasterizer) RegisterFont(path, alias string) (converter.Typeface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tf, err := r.RegisterFontData(data, alias)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return tf, nil
}

// RegisterFontData registers a TTF or OTF font held in memory.
func (r *Rasterizer) RegisterFontData(data []byte, alias string) (*Typeface, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	name, err := f.Name(nil, sfnt.NameIDFull)
	if err != nil {
		name = alias
	}

	return &Typeface{alias: alias, name: name, font: f}, nil
}

func (r *Rasterizer) CreateSurface(width, height int) converter.Surface {
	return NewSurface(width, height)
}
