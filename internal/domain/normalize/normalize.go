// Package normalize turns arbitrary learner input into a canonical comparable form.
//
// Every function here is pure and total: any string, including the empty
// string, maps to a defined result.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Katakana block boundaries folded onto hiragana by a fixed offset.
const (
	katakanaFirst  = '\u30A1' // ァ
	katakanaLast   = '\u30F3' // ン
	katakanaOffset = 0x60

	smallKatakanaKa = '\u30F5' // ヵ
	smallKatakanaKe = '\u30F6' // ヶ
	smallHiraganaKa = '\u3095' // ゕ
	smallHiraganaKe = '\u3096' // ゖ
)

// NormalizeCompat applies Unicode compatibility normalization (NFKC).
// Full-width Latin, half-width katakana and other compatibility forms fold to
// their canonical codepoints.
func NormalizeCompat(text string) string {
	return norm.NFKC.String(text)
}

// KatakanaToHiragana maps katakana in U+30A1..U+30F3 plus small ka/ke onto
// hiragana. All other runes pass through unchanged.
func KatakanaToHiragana(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= katakanaFirst && r <= katakanaLast:
			return r - katakanaOffset
		case r == smallKatakanaKa:
			return smallHiraganaKa
		case r == smallKatakanaKe:
			return smallHiraganaKe
		default:
			return r
		}
	}, text)
}

// ToComparableForm composes NormalizeCompat, KatakanaToHiragana and lowercasing.
// Lowercasing can leave sequences NFKC would compose (h + U+0331 -> U+1E96),
// so the result is normalized once more to stay a fixed point.
func ToComparableForm(text string) string {
	return NormalizeCompat(Lower(KatakanaToHiragana(NormalizeCompat(text))))
}

// Lower folds letter case. Kana and kanji have no case and are unaffected.
func Lower(text string) string {
	// Caser values keep state between calls, so each call gets its own.
	return cases.Lower(language.Und).String(text)
}

// CollapseWhitespace replaces every whitespace run with one space and trims the ends.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// StripWhitespace removes all whitespace.
func StripWhitespace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

// LatinLetters keeps only the basic Latin lowercase letters a-z.
func LatinLetters(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, text)
}
