package converter

import "sort"

type ByChar []Symbol

func (s ByChar) Len() int           { return len(s) }
func (s ByChar) Less(i, j int) bool { return s[i].Char < s[j].Char }
func (s ByChar) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// GroupSymbols sorts symbols by code point and splits them into maximal runs
// of consecutive code points. The input slice is left untouched.
func GroupSymbols(symbols []Symbol) []Subset {
	if len(symbols) == 0 {
		return nil
	}

	sorted := make([]Symbol, len(symbols))
	copy(sorted, symbols)
	sort.Stable(ByChar(sorted))

	subsets := []Subset{}
	current := Subset{
		Start:   sorted[0].Char,
		End:     sorted[0].Char,
		Symbols: []Symbol{sorted[0]},
	}

	for _, symbol := range sorted[1:] {
		if symbol.Char == current.End+1 {
			current.End = symbol.Char
			current.Symbols = append(current.Symbols, symbol)
			continue
		}

		subsets = append(subsets, current)
		current = Subset{
			Start:   symbol.Char,
			End:     symbol.Char,
			Symbols: []Symbol{symbol},
		}
	}

	return append(subsets, current)
}
