// Package model contains domain models passed between layers.
package model

// ExerciseID names one of the fixed Lesson 1 exercises.
type ExerciseID string

// Lesson 1 exercises in the order they are asked.
const (
	ExerciseGreeting  ExerciseID = "greeting"
	ExerciseSelfIntro ExerciseID = "self_intro"
	ExerciseVowels    ExerciseID = "vowels"
)

// Outcome is the result of checking one answer.
// Values are immutable once returned by a checker.
type Outcome struct {
	Passed  bool   // answer accepted
	Message string // feedback shown to the learner, never empty
	Name    string // name extracted by the self-introduction check; empty when absent
}

// HasName reports whether the outcome carries an extracted name.
func (o Outcome) HasName() bool {
	return o.Name != ""
}
