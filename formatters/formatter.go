// Package formatters serializes converted fonts. Every formatter is a pure
// function of the font: the same font always produces the same bytes.
package formatters

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/mgmeyers/font2bitmap/converter"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidName       = errors.New("font name is not a valid identifier")
	ErrWidthOverflow     = errors.New("symbol width does not fit in a byte")
)

type Formatter func(font *converter.Font) (string, error)

var registry = map[string]Formatter{
	"pico": Pico,
	"json": JSON,
	"text": Text,
}

// DefaultFormat is the format used when none is given.
const DefaultFormat = "pico"

func Lookup(name string) (Formatter, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}

// Names lists the registered formats in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// reservedNames are C11 keywords plus the identifiers the generated header
// and font.h declare themselves.
var reservedNames = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "struct": true, "switch": true, "typedef": true, "union": true,
	"unsigned": true, "void": true, "volatile": true, "while": true,
	"_Alignas": true, "_Alignof": true, "_Atomic": true, "_Bool": true,
	"_Complex": true, "_Generic": true, "_Imaginary": true, "_Noreturn": true,
	"_Static_assert": true, "_Thread_local": true,

	"font_t": true, "font_subset_t": true, "NULL": true,
}

// ValidateName checks that name can be used verbatim as a C identifier and
// as part of a header guard.
func ValidateName(name string) error {
	if !identifier.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if reservedNames[name] {
		return fmt.Errorf("%w: %q is reserved in C", ErrInvalidName, name)
	}
	return nil
}

// isControl reports whether r is a C0 or C1 control character, which would
// break a one-line label or comment.
func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0)
}

// subsetTables derives the per-subset arrays shared by all formatters.
type subsetTables struct {
	data    []byte
	offsets []int
	widths  []int // nil when every symbol is as wide as the font
}

func buildTables(font *converter.Font, subset converter.Subset) subsetTables {
	t := subsetTables{offsets: make([]int, 0, len(subset.Symbols))}

	variable := false
	widths := make([]int, 0, len(subset.Symbols))

	for _, symbol := range subset.Symbols {
		t.offsets = append(t.offsets, len(t.data))
		t.data = append(t.data, symbol.Bitmap...)
		widths = append(widths, symbol.Width)

		if symbol.Width != font.Width {
			variable = true
		}
	}

	if variable {
		t.widths = widths
	}

	return t
}
