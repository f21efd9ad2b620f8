package check

import (
	"github.com/okian/kanadrill/internal/domain/model"
	"github.com/okian/kanadrill/internal/domain/normalize"
)

const (
	greetingKana   = "こんにちは"
	greetingWaKana = "こんにちわ" // わ written where the particle は belongs
	greetingRomaji = "konnichiwa"
)

// Greeting checks for こんにちは.
// Katakana and compatibility forms are accepted. A targeted hint is returned
// for the common こんにちわ spelling. Romaji is accepted only when allowRomaji is set.
func Greeting(answer string, allowRomaji bool) model.Outcome {
	kana := normalize.StripWhitespace(normalize.ToComparableForm(answer))

	switch {
	case kana == greetingKana:
		return model.Outcome{Passed: true, Message: greetingPassed}
	case kana == greetingWaKana:
		return model.Outcome{Message: greetingWaHint}
	}

	if allowRomaji && romajiLetters(answer) == greetingRomaji {
		return model.Outcome{Passed: true, Message: greetingPassed}
	}

	return model.Outcome{Message: greetingHint}
}

// romajiLetters lowercases the compatibility-normalized answer and keeps only a-z.
func romajiLetters(answer string) string {
	return normalize.LatinLetters(normalize.Lower(normalize.NormalizeCompat(answer)))
}
