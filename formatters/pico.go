package formatters

import (
	"fmt"
	"strings"

	"github.com/mgmeyers/font2bitmap/converter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	symbolBytesPerLine = 16
	widthsPerLine      = 20
	arrayIndent        = 16
)

// Pico renders the font as a C header declaring a font_t. Widths are stored
// as uint8_t, and a subset whose symbols are all font.width wide gets
// .widths = NULL.
func Pico(font *converter.Font) (string, error) {
	if err := font.Validate(); err != nil {
		return "", err
	}
	if err := ValidateName(font.Name); err != nil {
		return "", err
	}
	if font.Width > 255 {
		return "", fmt.Errorf("%w: %d", ErrWidthOverflow, font.Width)
	}

	guard := HeaderGuard(font.Name)

	subsets := make([]string, 0, len(font.Subsets))
	for _, subset := range font.Subsets {
		subsets = append(subsets, picoSubset(font, subset))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "#ifndef %s\n", guard)
	fmt.Fprintf(&b, "#define %s\n\n", guard)
	b.WriteString("#include <stdint.h>\n")
	b.WriteString("#include \"font.h\"\n\n")
	fmt.Fprintf(&b, "const font_t %s = {\n", font.Name)
	fmt.Fprintf(&b, "    .width = %d,\n", font.Width)
	fmt.Fprintf(&b, "    .height = %d,\n", font.Height)
	fmt.Fprintf(&b, "    .letter_spacing = %d,\n", font.LetterSpacing)
	fmt.Fprintf(&b, "    .word_spacing = %d,\n", font.WordSpacing)
	fmt.Fprintf(&b, "    .subsets_count = %d,\n", len(font.Subsets))
	b.WriteString("    .subsets = (const font_subset_t[]) {\n")
	if len(subsets) > 0 {
		b.WriteString(strings.Join(subsets, ",\n"))
		b.WriteString("\n")
	}
	b.WriteString("    }\n")
	b.WriteString("};\n\n")
	fmt.Fprintf(&b, "#endif // %s\n", guard)

	return b.String(), nil
}

// HeaderGuard derives the include guard for a font name, e.g. FONT_ROBOTO_H.
func HeaderGuard(name string) string {
	return "FONT_" + cases.Upper(language.Und).String(name) + "_H"
}

func picoSubset(font *converter.Font, subset converter.Subset) string {
	t := buildTables(font, subset)

	symbols := "NULL"
	if len(t.data) > 0 {
		lines := []string{}
		for _, symbol := range subset.Symbols {
			if len(symbol.Bitmap) == 0 {
				continue
			}
			lines = append(lines, hexLines(symbol.Bitmap, symbolBytesPerLine, arrayIndent, charComment(symbol.Char))...)
		}
		symbols = "(uint8_t[]){\n" + strings.Join(lines, "\n") + "\n            }"
	}

	offsets := make([]string, len(t.offsets))
	for i, o := range t.offsets {
		offsets[i] = fmt.Sprint(o)
	}

	widths := "NULL"
	if t.widths != nil {
		bytes := make([]byte, len(t.widths))
		for i, w := range t.widths {
			bytes[i] = byte(w)
		}
		widths = "(uint8_t[]) {\n" + strings.Join(hexLines(bytes, widthsPerLine, arrayIndent, ""), "\n") + "\n            }"
	}

	var b strings.Builder
	b.WriteString("        {\n")
	fmt.Fprintf(&b, "            .start = %d,\n", subset.Start)
	fmt.Fprintf(&b, "            .end = %d,\n", subset.End)
	fmt.Fprintf(&b, "            .symbols_count = %d,\n", len(subset.Symbols))
	fmt.Fprintf(&b, "            .symbols = %s,\n", symbols)
	fmt.Fprintf(&b, "            .offsets = (uint32_t[]) { %s },\n", strings.Join(offsets, ", "))
	fmt.Fprintf(&b, "            .widths = %s\n", widths)
	b.WriteString("        }")

	return b.String()
}

// hexLines formats bytes as indented "0x.., " lines of at most perLine
// values. Every value is followed by a comma; comment, when set, goes at the
// end of the last line.
func hexLines(data []byte, perLine, indent int, comment string) []string {
	pad := strings.Repeat(" ", indent)
	lines := []string{}

	for i := 0; i < len(data); i += perLine {
		end := i + perLine
		if end > len(data) {
			end = len(data)
		}

		hex := make([]string, 0, end-i)
		for _, v := range data[i:end] {
			hex = append(hex, fmt.Sprintf("0x%02x,", v))
		}
		lines = append(lines, pad+strings.Join(hex, " "))
	}

	if comment != "" && len(lines) > 0 {
		lines[len(lines)-1] += " // " + comment
	}

	return lines
}

// charComment quotes a character for a C line comment. Control characters
// are spelled as code points so the comment stays on one line.
func charComment(r rune) string {
	if isControl(r) {
		return fmt.Sprintf("U+%04X", r)
	}
	return "'" + string(r) + "'"
}
