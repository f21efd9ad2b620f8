// Package scoring keeps session tallies and decides the retry flow for an exercise.
package scoring

import "fmt"

// Default attempt policy constants.
const (
	defaultMaxAttempts = 3
	defaultRevealAfter = 2
)

// Tally counts exercises asked and exercises passed in one session.
// The session runner owns it; checkers never see it.
type Tally struct {
	Score int
	Total int
}

// Begin records that an exercise was asked.
func (t *Tally) Begin() {
	t.Total++
}

// Award records that the current exercise was passed.
func (t *Tally) Award() {
	t.Score++
}

// Perfect reports whether every asked exercise was passed.
func (t Tally) Perfect() bool {
	return t.Score == t.Total
}

// String renders the tally as "score / total".
func (t Tally) String() string {
	return fmt.Sprintf("%d / %d", t.Score, t.Total)
}

// Action is what the runner does after a failed attempt.
type Action int

// Actions after a failed attempt.
const (
	Retry           Action = iota // show feedback and ask again
	RetryWithReveal               // show feedback and the model answer, ask one last time
	Skip                          // give up on the exercise and reveal the model answer
)

func (a Action) String() string {
	switch a {
	case Retry:
		return "retry"
	case RetryWithReveal:
		return "retry_with_reveal"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// Option applies a configuration option to an AttemptPolicy.
type Option func(*AttemptPolicy)

// WithMaxAttempts sets how many answers are accepted before skipping.
func WithMaxAttempts(n int) Option {
	return func(p *AttemptPolicy) {
		if n > 0 {
			p.MaxAttempts = n
		}
	}
}

// WithRevealAfter sets after how many failures the model answer is shown.
func WithRevealAfter(n int) Option {
	return func(p *AttemptPolicy) {
		if n > 0 {
			p.RevealAfter = n
		}
	}
}

// AttemptPolicy describes the retry flow of a single exercise.
type AttemptPolicy struct {
	MaxAttempts int
	RevealAfter int
}

// NewAttemptPolicy returns the Lesson 1 policy: three attempts, reveal after the second failure.
func NewAttemptPolicy(opts ...Option) AttemptPolicy {
	p := AttemptPolicy{
		MaxAttempts: defaultMaxAttempts,
		RevealAfter: defaultRevealAfter,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Step returns the action after the given number of failed attempts (1-based).
func (p AttemptPolicy) Step(failures int) Action {
	switch {
	case failures >= p.MaxAttempts:
		return Skip
	case failures == p.RevealAfter:
		return RetryWithReveal
	default:
		return Retry
	}
}
