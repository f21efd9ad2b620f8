// Package check validates Lesson 1 answers.
//
// Each checker is a pure function of (answer, allowRomaji): it keeps no state,
// performs no I/O and returns the same model.Outcome for the same input.
// Malformed or empty answers are not errors; they produce a failing outcome
// with feedback.
package check
