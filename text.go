package ui

import (
	"strings"
	"unicode"
)

// TextWrapMode specifies how text is broken into lines.
type TextWrapMode int

const (
	// WrapModeWord breaks at spaces.
	WrapModeWord TextWrapMode = iota
	// WrapModeChar breaks between any two characters.
	WrapModeChar
	// WrapModeAuto breaks by character when the text has CJK in it.
	WrapModeAuto
)

// WrapText breaks text into lines no wider than maxWidth at scale. A
// single word wider than maxWidth gets a line of its own.
func WrapText(text string, maxWidth, scale float32, mode TextWrapMode) []string {
	if maxWidth <= 0 {
		return []string{text}
	}
	if mode == WrapModeAuto {
		mode = WrapModeWord
		if containsCJK(text) {
			mode = WrapModeChar
		}
	}
	if mode == WrapModeChar {
		return wrapByChar(text, maxWidth, scale)
	}
	return wrapByWord(text, maxWidth, scale)
}

func wrapByWord(text string, maxWidth, scale float32) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		next := word
		if line != "" {
			next = line + " " + word
		}
		if TextSize(next, scale).X > maxWidth && line != "" {
			lines = append(lines, line)
			next = word
		}
		line = next
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func wrapByChar(text string, maxWidth, scale float32) []string {
	var lines []string
	var line []rune
	for _, r := range text {
		if r == '\n' {
			lines = append(lines, string(line))
			line = line[:0]
			continue
		}
		if TextSize(string(append(line, r)), scale).X > maxWidth && len(line) > 0 {
			lines = append(lines, string(line))
			line = line[:0]
		}
		line = append(line, r)
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}

func containsCJK(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) ||
			unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}

// TruncateText shortens text to fit maxWidth, ending it with "..". It
// returns "" when not even the suffix fits.
func TruncateText(text string, maxWidth, scale float32) string {
	if TextSize(text, scale).X <= maxWidth {
		return text
	}
	const suffix = ".."
	room := maxWidth - TextSize(suffix, scale).X
	if room < 0 {
		return ""
	}
	runes := []rune(text)
	for len(runes) > 0 && TextSize(string(runes), scale).X > room {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + suffix
}

// MeasureWrappedText returns the extent of text wrapped to maxWidth.
func MeasureWrappedText(text string, maxWidth, scale float32, mode TextWrapMode) Vec2 {
	lines := WrapText(text, maxWidth, scale, mode)
	var w float32
	for _, line := range lines {
		w = max(w, TextSize(line, scale).X)
	}
	return Vec2{X: w, Y: float32(len(lines)) * GlyphHeight * scale}
}
