package check

import (
	"fmt"
	"slices"
	"strings"

	"github.com/okian/kanadrill/internal/domain/model"
	"github.com/okian/kanadrill/internal/domain/normalize"
)

const vowelsRomaji = "aiueo"

var vowelSequence = []string{"あ", "い", "う", "え", "お"}

// Vowels checks the five vowels あ い う え お in order.
// Space-separated and contiguous input are both accepted. When exactly five
// tokens are given, the hint lists every wrong position with its expected kana.
func Vowels(answer string, allowRomaji bool) model.Outcome {
	compat := normalize.NormalizeCompat(answer)
	tokens := vowelTokens(normalize.KatakanaToHiragana(compat))

	if slices.Equal(tokens, vowelSequence) {
		return model.Outcome{Passed: true, Message: vowelsPassed}
	}

	if allowRomaji && normalize.LatinLetters(normalize.Lower(compat)) == vowelsRomaji {
		return model.Outcome{Passed: true, Message: vowelsPassed}
	}

	if len(tokens) == len(vowelSequence) {
		if wrong := mismatches(tokens); len(wrong) > 0 {
			return model.Outcome{Message: vowelsPositionHint + strings.Join(wrong, ", ")}
		}
	}

	return model.Outcome{Message: vowelsAnswer}
}

// vowelTokens splits on whitespace; a single token is split into runes.
func vowelTokens(text string) []string {
	tokens := strings.Fields(text)
	if len(tokens) != 1 {
		return tokens
	}
	runes := []rune(tokens[0])
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

// mismatches describes each position where tokens differs from vowelSequence.
func mismatches(tokens []string) []string {
	var wrong []string
	for i, want := range vowelSequence {
		if tokens[i] != want {
			wrong = append(wrong, fmt.Sprintf("position %d should be %s", i+1, want))
		}
	}
	return wrong
}
