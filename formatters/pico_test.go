package formatters

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/mgmeyers/font2bitmap/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedFont() *converter.Font {
	return &converter.Font{
		Name:          "test_font",
		Width:         8,
		Height:        2,
		LetterSpacing: 1,
		WordSpacing:   3,
		Subsets: []converter.Subset{{
			Start: 65,
			End:   66,
			Symbols: []converter.Symbol{
				{Char: 'A', Width: 8, Bitmap: []byte{0x01, 0x02}},
				{Char: 'B', Width: 8, Bitmap: []byte{0x03, 0x04}},
			},
		}},
	}
}

func variableFont() *converter.Font {
	return &converter.Font{
		Name:   "variable_font",
		Width:  9,
		Height: 1,
		Subsets: []converter.Subset{{
			Start: 105,
			End:   106,
			Symbols: []converter.Symbol{
				{Char: 'i', Width: 3, Bitmap: []byte{0x01}},
				{Char: 'j', Width: 9, Bitmap: []byte{0x02, 0x03}},
			},
		}},
	}
}

func TestPicoFixedWidth(t *testing.T) {
	out, err := Pico(fixedFont())
	require.NoError(t, err)

	assert.Contains(t, out, "#ifndef FONT_TEST_FONT_H\n#define FONT_TEST_FONT_H\n")
	assert.Contains(t, out, "#include <stdint.h>\n#include \"font.h\"\n")
	assert.Contains(t, out, "const font_t test_font = {\n")
	assert.Contains(t, out, ".width = 8,")
	assert.Contains(t, out, ".height = 2,")
	assert.Contains(t, out, ".letter_spacing = 1,")
	assert.Contains(t, out, ".word_spacing = 3,")
	assert.Contains(t, out, ".subsets_count = 1,")
	assert.Contains(t, out, ".start = 65,")
	assert.Contains(t, out, ".end = 66,")
	assert.Contains(t, out, ".symbols_count = 2,")
	assert.Contains(t, out, "0x01, 0x02, // 'A'\n")
	assert.Contains(t, out, "0x03, 0x04, // 'B'\n")
	assert.Contains(t, out, ".offsets = (uint32_t[]) { 0, 2 },")
	assert.Contains(t, out, ".widths = NULL\n")
	assert.True(t, strings.HasSuffix(out, "#endif // FONT_TEST_FONT_H\n"))
}

func TestPicoVariableWidth(t *testing.T) {
	out, err := Pico(variableFont())
	require.NoError(t, err)

	assert.Contains(t, out, "const font_t variable_font = {")
	assert.Contains(t, out, ".width = 9,")
	assert.Regexp(t, `symbols = \(uint8_t\[\]\)\{\n\s*0x01, // 'i'\n\s*0x02, 0x03, // 'j'\n\s*\}`, out)
	assert.Contains(t, out, ".offsets = (uint32_t[]) { 0, 1 },")
	assert.Regexp(t, `\.widths = \(uint8_t\[\]\) \{\n\s*0x03, 0x09,\n\s*\}`, out)
	assert.NotContains(t, out, ".widths = NULL")
}

func TestPicoWidthsPerSubset(t *testing.T) {
	font := &converter.Font{
		Name:   "mixed",
		Width:  4,
		Height: 1,
		Subsets: []converter.Subset{
			{Start: '0', End: '1', Symbols: []converter.Symbol{
				{Char: '0', Width: 4, Bitmap: []byte{0x0f}},
				{Char: '1', Width: 4, Bitmap: []byte{0x02}},
			}},
			{Start: 'a', End: 'b', Symbols: []converter.Symbol{
				{Char: 'a', Width: 4, Bitmap: []byte{0x11}},
				{Char: 'b', Width: 2, Bitmap: []byte{0x01}},
			}},
		},
	}

	out, err := Pico(font)
	require.NoError(t, err)

	assert.Contains(t, out, ".subsets_count = 2,")
	assert.Contains(t, out, ".start = 48,")
	assert.Contains(t, out, ".end = 49,")
	assert.Contains(t, out, ".start = 97,")
	assert.Contains(t, out, ".end = 98,")
	assert.Regexp(t, `0x0f, // '0'\n\s*0x02, // '1'`, out)
	assert.Regexp(t, `0x11, // 'a'\n\s*0x01, // 'b'`, out)

	widths := regexp.MustCompile(`\.widths = ([^\n]*)`).FindAllStringSubmatch(out, -1)
	require.Len(t, widths, 2)
	assert.Equal(t, "NULL", widths[0][1])
	assert.Equal(t, "(uint8_t[]) {", widths[1][1])
	assert.Contains(t, out, "0x04, 0x02,")
}

func TestPicoEmptyFont(t *testing.T) {
	out, err := Pico(&converter.Font{Name: "empty_font"})
	require.NoError(t, err)

	assert.Contains(t, out, "#ifndef FONT_EMPTY_FONT_H")
	assert.Contains(t, out, "const font_t empty_font = {")
	assert.Contains(t, out, ".width = 0,")
	assert.Contains(t, out, ".height = 0,")
	assert.Contains(t, out, ".subsets_count = 0,")
	assert.Contains(t, out, ".subsets = (const font_subset_t[]) {\n    }\n};")
	assert.NotRegexp(t, `,\s*\}`, out)
}

func TestPicoInklessSubset(t *testing.T) {
	font := &converter.Font{
		Name:   "spaces",
		Width:  5,
		Height: 2,
		Subsets: []converter.Subset{
			{Start: ' ', End: '!', Symbols: []converter.Symbol{
				{Char: ' ', Width: 0, Bitmap: []byte{}},
				{Char: '!', Width: 5, Bitmap: []byte{0x04, 0x04}},
			}},
			{Start: '~' + 1, End: '~' + 1, Symbols: []converter.Symbol{
				{Char: '~' + 1, Width: 0, Bitmap: []byte{}},
			}},
		},
	}

	out, err := Pico(font)
	require.NoError(t, err)

	assert.NotContains(t, out, "// ' '")
	assert.Contains(t, out, "0x04, 0x04, // '!'")
	assert.Contains(t, out, ".offsets = (uint32_t[]) { 0, 0 },")
	assert.Contains(t, out, ".symbols = NULL,")
	assert.Contains(t, out, "0x00, 0x05,")
}

func TestPicoLongBitmapWraps(t *testing.T) {
	bitmap := make([]byte, 40)
	for i := range bitmap {
		bitmap[i] = byte(i)
	}
	font := &converter.Font{
		Name:   "wide",
		Width:  16,
		Height: 20,
		Subsets: []converter.Subset{{Start: 'W', End: 'W', Symbols: []converter.Symbol{
			{Char: 'W', Width: 16, Bitmap: bitmap},
		}}},
	}

	out, err := Pico(font)
	require.NoError(t, err)

	lines := regexp.MustCompile(`(?m)^ {16}0x.*$`).FindAllString(out, -1)
	require.Len(t, lines, 3)
	assert.Equal(t, 16, strings.Count(lines[0], "0x"))
	assert.Equal(t, 16, strings.Count(lines[1], "0x"))
	assert.Equal(t, 8, strings.Count(lines[2], "0x"))
	assert.True(t, strings.HasSuffix(lines[2], "// 'W'"))
	assert.NotContains(t, lines[0], "//")
}

func TestPicoOffsetsMatchData(t *testing.T) {
	font := &converter.Font{
		Name:   "offsets",
		Width:  12,
		Height: 2,
		Subsets: []converter.Subset{{Start: 'a', End: 'd', Symbols: []converter.Symbol{
			{Char: 'a', Width: 3, Bitmap: []byte{1, 2}},
			{Char: 'b', Width: 0, Bitmap: []byte{}},
			{Char: 'c', Width: 12, Bitmap: []byte{1, 2, 3, 4}},
			{Char: 'd', Width: 9, Bitmap: []byte{5, 6, 7, 8}},
		}}},
	}

	out, err := Pico(font)
	require.NoError(t, err)
	assert.Contains(t, out, ".offsets = (uint32_t[]) { 0, 2, 2, 6 },")

	t.Run("invariant", func(t *testing.T) {
		tables := buildTables(font, font.Subsets[0])
		last := len(tables.offsets) - 1
		assert.Equal(t, len(tables.data), tables.offsets[last]+len(font.Subsets[0].Symbols[last].Bitmap))

		sum := 0
		for i, symbol := range font.Subsets[0].Symbols {
			assert.Equal(t, sum, tables.offsets[i], "offset "+strconv.Itoa(i))
			sum += len(symbol.Bitmap)
		}
	})
}

func TestPicoDeterministic(t *testing.T) {
	a, err := Pico(variableFont())
	require.NoError(t, err)
	b, err := Pico(variableFont())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPicoRejects(t *testing.T) {
	font := fixedFont()
	font.Name = "my-font"
	_, err := Pico(font)
	assert.ErrorIs(t, err, ErrInvalidName)

	font = fixedFont()
	font.Name = "int"
	_, err = Pico(font)
	assert.ErrorIs(t, err, ErrInvalidName)

	font = fixedFont()
	font.Subsets[0].End = 'C'
	_, err = Pico(font)
	assert.ErrorIs(t, err, converter.ErrMalformedFont)

	wide := make([]byte, 33)
	font = &converter.Font{
		Name:   "huge",
		Width:  260,
		Height: 1,
		Subsets: []converter.Subset{{Start: 'M', End: 'M', Symbols: []converter.Symbol{
			{Char: 'M', Width: 260, Bitmap: wide},
		}}},
	}
	_, err = Pico(font)
	assert.ErrorIs(t, err, ErrWidthOverflow)
}

func TestHeaderGuard(t *testing.T) {
	assert.Equal(t, "FONT_ROBOTOMONO_H", HeaderGuard("RobotoMono"))
	assert.Equal(t, "FONT_GO_MONO_16_H", HeaderGuard("Go_Mono_16"))
}

func TestCharComment(t *testing.T) {
	assert.Equal(t, "'A'", charComment('A'))
	assert.Equal(t, `'\'`, charComment('\\'))
	assert.Equal(t, "'Ж'", charComment('Ж'))
	assert.Equal(t, "U+000A", charComment('\n'))
}
