package converter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// FontAlias is the family name fonts are registered under.
const FontAlias = "Font Family"

var ErrInvalidHeight = errors.New("height must be positive")

type Options struct {
	FontPath      string
	FontName      string
	Height        int
	Subsets       []Charset
	Symbols       []rune
	LetterSpacing int
	WordSpacing   int

	// Logger is optional.
	Logger *slog.Logger
}

// ConvertFont rasterizes every requested character and assembles the font.
// Characters are drawn one at a time on a single surface of 2*height by
// height pixels. Any rasterizer error aborts the whole conversion.
func ConvertFont(r Rasterizer, opts Options) (*Font, error) {
	if opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeight, opts.Height)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	face, err := r.RegisterFont(opts.FontPath, FontAlias)
	if err != nil {
		return nil, fmt.Errorf("registering font %s: %w", opts.FontPath, err)
	}

	font := &Font{
		Name:          opts.FontName,
		Height:        opts.Height,
		LetterSpacing: opts.LetterSpacing,
		WordSpacing:   opts.WordSpacing,
	}

	chars := ResolveCharacters(opts.Subsets, opts.Symbols)
	if len(chars) == 0 {
		logger.Warn("no characters requested", slog.String("font", opts.FontName))
		return font, nil
	}

	surface := r.CreateSurface(opts.Height*2, opts.Height)
	if err := surface.SetFont(face, float64(opts.Height)); err != nil {
		return nil, err
	}

	symbols := make([]Symbol, 0, len(chars))
	inkless := 0

	for _, char := range chars {
		symbol, err := ProcessSymbol(char, surface, opts.Height)
		if err != nil {
			return nil, err
		}

		if symbol.Width > font.Width {
			font.Width = symbol.Width
		}
		if symbol.Width == 0 {
			inkless++
		}

		symbols = append(symbols, symbol)
	}

	font.Subsets = GroupSymbols(symbols)

	logger.Debug("converted font",
		slog.String("font", opts.FontName),
		slog.String("family", face.Family()),
		slog.String("typeface", typefaceName(face)),
		slog.Int("height", opts.Height),
		slog.Int("width", font.Width),
		slog.Int("symbols", len(symbols)),
		slog.Int("inkless", inkless),
		slog.Int("subsets", len(font.Subsets)))

	return font, nil
}
