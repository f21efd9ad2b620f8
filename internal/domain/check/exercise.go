package check

import (
	"fmt"

	"github.com/okian/kanadrill/internal/domain/model"
)

const defaultDisplayName = "(your name)"

// Checker validates one answer.
type Checker func(answer string, allowRomaji bool) model.Outcome

// Exercise is one question of the lesson.
type Exercise struct {
	ID     model.ExerciseID
	Prompt string
	Reveal string // model answer shown after repeated failures
	Check  Checker
}

// Lesson returns the three Lesson 1 exercises in order. displayName fills the
// self-introduction prompt; a placeholder is used when it is empty.
func Lesson(displayName string) []Exercise {
	if displayName == "" {
		displayName = defaultDisplayName
	}
	return []Exercise{
		{
			ID:     model.ExerciseGreeting,
			Prompt: "1) Write 'Hello' in Japanese.",
			Reveal: "こんにちは (romaji: konnichiwa)",
			Check:  Greeting,
		},
		{
			ID:     model.ExerciseSelfIntro,
			Prompt: fmt.Sprintf("2) Write 'I am %s.' in Japanese.", displayName),
			Reveal: "わたしは [name] です。 (romaji: watashi wa [name] desu.)",
			Check:  SelfIntro,
		},
		{
			ID:     model.ExerciseVowels,
			Prompt: "3) Write the five hiragana for a i u e o, separated by spaces.",
			Reveal: "あ い う え お (romaji: a i u e o)",
			Check:  Vowels,
		},
	}
}
