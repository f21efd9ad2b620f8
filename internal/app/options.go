package app

import (
	"io"
	"os"

	"github.com/okian/kanadrill/internal/domain/scoring"
	"github.com/okian/kanadrill/pkg/logger"
	"github.com/okian/kanadrill/pkg/metrics"
)

// Option applies a configuration option to the Session.
type Option func(*Session)

// WithLogger sets a custom logger for the session.
func WithLogger(l logger.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager. Defaults to the global manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Session) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithSpeed sets the output pacing: fast, normal or slow.
// Unknown values fall back to normal pacing.
func WithSpeed(speed string) Option {
	return func(s *Session) {
		s.delay = delayFor(speed)
	}
}

// WithExplain sets the introduction verbosity: minimal or normal.
func WithExplain(explain string) Option {
	return func(s *Session) {
		if explain != "" {
			s.explain = explain
		}
	}
}

// WithAllowRomaji accepts romanized answers.
func WithAllowRomaji(allow bool) Option {
	return func(s *Session) {
		s.allowRomaji = allow
	}
}

// WithName sets the display name used in the self-introduction prompt.
func WithName(name string) Option {
	return func(s *Session) {
		s.name = name
	}
}

// WithInput sets where answers are read from.
func WithInput(r io.Reader) Option {
	return func(s *Session) {
		if r != nil {
			s.in = r
		}
	}
}

// WithOutput sets where prompts and feedback are written.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithInterrupts sets the channel on which learner interrupts arrive.
// Each signal aborts the exercise currently waiting for an answer.
func WithInterrupts(ch <-chan os.Signal) Option {
	return func(s *Session) {
		s.interrupts = ch
	}
}

// WithColor enables or disables coloured feedback.
func WithColor(enabled bool) Option {
	return func(s *Session) {
		s.color = enabled
	}
}

// WithAttemptPolicy overrides the retry flow.
func WithAttemptPolicy(p scoring.AttemptPolicy) Option {
	return func(s *Session) {
		if p.MaxAttempts > 0 {
			s.policy = p
		}
	}
}
