package converter

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCharset = errors.New("unknown subset")

type Charset string

const (
	ASCII       Charset = "ascii"
	Latin       Charset = "latin"
	Digits      Charset = "digits"
	Cyrillic    Charset = "cyrillic"
	Punctuation Charset = "punctuation"
)

var Charsets = []Charset{ASCII, Latin, Digits, Cyrillic, Punctuation}

const (
	latinChars       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digitChars       = "0123456789"
	cyrillicChars    = "АБВГДЕЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯабвгдежзийклмнопрстуфхцчшщъыьэюя"
	punctuationChars = `.,!?"'-=/\[]{}();:&*+@~`
)

// Runes returns the characters of the charset in their canonical order.
func (c Charset) Runes() []rune {
	switch c {
	case ASCII:
		chars := make([]rune, 0, 95)
		for r := rune(32); r <= 126; r++ {
			chars = append(chars, r)
		}
		return chars
	case Latin:
		return []rune(latinChars)
	case Digits:
		return []rune(digitChars)
	case Cyrillic:
		return []rune(cyrillicChars)
	case Punctuation:
		return []rune(punctuationChars)
	}
	return nil
}

func ParseCharset(name string) (Charset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Charsets {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w %q (expected one of ascii, latin, digits, cyrillic, punctuation)", ErrUnknownCharset, name)
}

func ParseCharsets(names []string) ([]Charset, error) {
	charsets := make([]Charset, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c, err := ParseCharset(name)
		if err != nil {
			return nil, err
		}
		charsets = append(charsets, c)
	}
	return charsets, nil
}

// ResolveCharacters unions the named charsets with the literal symbols.
// Duplicates collapse; the order is first appearance, symbols first.
func ResolveCharacters(charsets []Charset, symbols []rune) []rune {
	seen := make(map[rune]bool)
	chars := []rune{}

	add := func(r rune) {
		if !seen[r] {
			seen[r] = true
			chars = append(chars, r)
		}
	}

	for _, r := range symbols {
		add(r)
	}
	for _, c := range charsets {
		for _, r := range c.Runes() {
			add(r)
		}
	}

	return chars
}
