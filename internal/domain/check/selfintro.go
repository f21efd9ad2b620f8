package check

import (
	"regexp"
	"strings"

	"github.com/okian/kanadrill/internal/domain/model"
	"github.com/okian/kanadrill/internal/domain/normalize"
)

// The name group is non-greedy so trailing particles stay outside it.
var (
	selfIntroKana   = regexp.MustCompile(`^(?:わたし|私|ぼく|わたくし)\s*は\s*(.+?)\s*です[。.]?\s*$`)
	selfIntroRomaji = regexp.MustCompile(`^(?:watashi|boku|watakushi) wa (.+?) desu\.?$`)
)

// SelfIntro checks the pattern "[pronoun] は [name] です" and extracts the name.
// The kana path is tried first; the romaji path "[pronoun] wa [name] desu"
// only when allowRomaji is set.
func SelfIntro(answer string, allowRomaji bool) model.Outcome {
	compat := normalize.NormalizeCompat(answer)

	// Kana and kanji have no case, so the Japanese path is not lowercased.
	kana := normalize.CollapseWhitespace(normalize.KatakanaToHiragana(compat))
	if name, ok := matchName(selfIntroKana, kana); ok {
		return model.Outcome{Passed: true, Message: selfIntroPassed, Name: name}
	}

	if allowRomaji {
		romaji := normalize.CollapseWhitespace(normalize.Lower(compat))
		if name, ok := matchName(selfIntroRomaji, romaji); ok {
			return model.Outcome{Passed: true, Message: selfIntroPassed, Name: name}
		}
	}

	return model.Outcome{Message: selfIntroHint}
}

// matchName returns the trimmed name group. A blank name is not a match.
func matchName(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	return name, name != ""
}
