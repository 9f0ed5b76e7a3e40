package formatters

import (
	"encoding/json"

	"github.com/mgmeyers/font2bitmap/converter"
)

type jsonFont struct {
	Name          string       `json:"name"`
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	LetterSpacing int          `json:"letter_spacing"`
	WordSpacing   int          `json:"word_spacing"`
	SubsetsCount  int          `json:"subsets_count"`
	Subsets       []jsonSubset `json:"subsets"`
}

type jsonSubset struct {
	Start        int   `json:"start"`
	End          int   `json:"end"`
	SymbolsCount int   `json:"symbols_count"`
	Symbols      []int `json:"symbols"`
	Offsets      []int `json:"offsets"`
	Widths       []int `json:"widths"`
}

// JSON renders the same tables as Pico as an indented JSON document. Bitmap
// bytes are plain numbers and a fixed-width subset has "widths": null.
func JSON(font *converter.Font) (string, error) {
	if err := font.Validate(); err != nil {
		return "", err
	}

	out := jsonFont{
		Name:          font.Name,
		Width:         font.Width,
		Height:        font.Height,
		LetterSpacing: font.LetterSpacing,
		WordSpacing:   font.WordSpacing,
		SubsetsCount:  len(font.Subsets),
		Subsets:       []jsonSubset{},
	}

	for _, subset := range font.Subsets {
		t := buildTables(font, subset)

		symbols := make([]int, len(t.data))
		for i, b := range t.data {
			symbols[i] = int(b)
		}

		out.Subsets = append(out.Subsets, jsonSubset{
			Start:        int(subset.Start),
			End:          int(subset.End),
			SymbolsCount: len(subset.Symbols),
			Symbols:      symbols,
			Offsets:      t.offsets,
			Widths:       t.widths,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}

	return string(data) + "\n", nil
}
