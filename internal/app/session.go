// Package app runs the interactive Lesson 1 session on top of the answer checkers.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/okian/kanadrill/internal/config"
	"github.com/okian/kanadrill/internal/domain/check"
	"github.com/okian/kanadrill/internal/domain/scoring"
	"github.com/okian/kanadrill/pkg/logger"
	"github.com/okian/kanadrill/pkg/metrics"
)

// Pause after every printed line, per speed preset.
const (
	delayFast   = 0
	delayNormal = 250 * time.Millisecond
	delaySlow   = 600 * time.Millisecond
)

const answerPrompt = "> "

// maxAnswerBytes bounds how much of one answer line is kept; the rest is discarded.
const maxAnswerBytes = 1 << 20

func delayFor(speed string) time.Duration {
	switch speed {
	case config.SpeedFast:
		return delayFast
	case config.SpeedSlow:
		return delaySlow
	default:
		return delayNormal
	}
}

type line struct {
	text string
	err  error
}

// Session asks the lesson exercises and keeps the score.
// A Session is not safe for concurrent use.
type Session struct {
	id      string
	logger  logger.Logger
	metrics *metrics.Manager

	in         io.Reader
	out        io.Writer
	interrupts <-chan os.Signal
	lines      chan line
	done       chan struct{}
	closeOnce  sync.Once

	delay       time.Duration
	explain     string
	allowRomaji bool
	name        string
	color       bool
	policy      scoring.AttemptPolicy

	good, hint, note, bold *color.Color

	tally scoring.Tally
}

// New constructs a Session reading stdin and writing stdout by default.
func New(opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		done:    make(chan struct{}),
		metrics: metrics.Default(),
		in:      os.Stdin,
		out:     os.Stdout,
		delay:   delayNormal,
		explain: config.ExplainNormal,
		color:   true,
		policy:  scoring.NewAttemptPolicy(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger = s.logger.Named("session").With(logger.String("session_id", s.id))

	s.good = color.New(color.FgGreen)
	s.hint = color.New(color.FgYellow)
	s.note = color.New(color.FgCyan)
	s.bold = color.New(color.Bold)
	if !s.color {
		for _, c := range []*color.Color{s.good, s.hint, s.note, s.bold} {
			c.DisableColor()
		}
	}
	return s
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Tally returns the current score.
func (s *Session) Tally() scoring.Tally { return s.tally }

// Close stops the background input reader. The session reads no more answers
// afterwards. RunLesson closes the session when it returns.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// RunLesson prints the introduction, asks every exercise and prints the summary.
// It returns ErrInterrupted when ctx is cancelled or an interrupt arrives outside
// an answer prompt; running out of input ends the lesson early but still prints
// the summary.
func (s *Session) RunLesson(ctx context.Context) (scoring.Tally, error) {
	defer s.Close()

	s.logger.Info(ctx, "lesson started",
		logger.Bool("allow_romaji", s.allowRomaji),
		logger.String("explain", s.explain),
	)

	s.say(ctx, s.bold.Sprint("Session 1: greetings, self-introduction, hiragana vowels"))
	if s.explain == config.ExplainNormal {
		s.say(ctx, "Pronunciation: a / i / u / e / o")
		s.say(ctx, "Key phrases: こんにちは | ありがとう | すみません | はい/いいえ")
		s.say(ctx, "Self-introduction: わたしは [name] です。 (watashi wa [name] desu)")
	}

	for _, ex := range check.Lesson(s.name) {
		err := s.Ask(ctx, ex)
		if errors.Is(err, ErrInputClosed) {
			s.logger.Warn(ctx, "input closed; ending lesson early", logger.String("exercise", string(ex.ID)))
			fmt.Fprintln(s.out)
			break
		}
		if err != nil {
			s.logger.Info(ctx, "lesson interrupted", logger.String("score", s.tally.String()))
			return s.tally, err
		}
	}

	s.say(ctx, "")
	s.say(ctx, s.bold.Sprintf("Score: %s", s.tally))
	if s.tally.Perfect() {
		s.say(ctx, "Great job! Next up: numbers 1-10 and simple question-and-answer.")
	} else {
		s.say(ctx, "Well done. Review the ones you missed next time.")
	}

	s.logger.Info(ctx, "lesson finished",
		logger.Int("score", s.tally.Score),
		logger.Int("total", s.tally.Total),
	)
	return s.tally, nil
}

// Ask runs one exercise: up to MaxAttempts answers, the model answer after
// RevealAfter failures, and a skip once attempts run out. An interrupt aborts
// the exercise and returns nil; the exercise still counts toward the total.
func (s *Session) Ask(ctx context.Context, ex check.Exercise) error {
	s.tally.Begin()
	defer s.metrics.UpdateTally(s.tally.Score, s.tally.Total)

	exercise := string(ex.ID)
	failures := 0
	for {
		s.say(ctx, ex.Prompt)
		answer, err := s.readAnswer(ctx)
		if errors.Is(err, errAborted) {
			s.metrics.RecordInterrupt()
			s.logger.Info(ctx, "exercise aborted", logger.String("exercise", exercise))
			s.say(ctx, s.note.Sprint("Stopped. Feel free to pick it up again later."))
			return nil
		}
		if err != nil {
			return err
		}

		out := ex.Check(answer, s.allowRomaji)
		s.metrics.RecordCheck(exercise, out.Passed)
		s.logger.Debug(ctx, "answer checked",
			logger.String("exercise", exercise),
			logger.Int("attempt", failures+1),
			logger.Bool("passed", out.Passed),
		)

		if out.Passed {
			s.say(ctx, s.good.Sprint(out.Message))
			s.tally.Award()
			s.metrics.RecordAttempts(exercise, failures+1)
			return nil
		}

		failures++
		switch s.policy.Step(failures) {
		case scoring.Retry:
			s.say(ctx, s.hint.Sprint(out.Message))
			s.say(ctx, "Want to try once more?")
		case scoring.RetryWithReveal:
			s.say(ctx, s.hint.Sprint(out.Message))
			if ex.Reveal != "" {
				s.say(ctx, s.note.Sprint("For reference: "+ex.Reveal))
			}
			s.say(ctx, "One last try!")
		case scoring.Skip:
			s.say(ctx, "You'll get it next time. Moving on.")
			if ex.Reveal != "" {
				s.say(ctx, s.note.Sprint("Model answer: "+ex.Reveal))
			}
			s.metrics.RecordSkip(exercise)
			s.metrics.RecordAttempts(exercise, failures)
			return nil
		}
	}
}

// say prints one line and pauses according to the speed preset.
func (s *Session) say(ctx context.Context, text string) {
	fmt.Fprintln(s.out, text)
	if s.delay <= 0 {
		return
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// readAnswer prompts for and returns one trimmed line. An interrupt received
// while waiting aborts the exercise; one that arrived earlier ends the lesson.
func (s *Session) readAnswer(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	select {
	case <-s.interrupts:
		return "", fmt.Errorf("%w: %w", ErrInterrupted, errOutsidePrompt)
	default:
	}

	fmt.Fprint(s.out, answerPrompt)
	if s.lines == nil {
		s.lines = make(chan line)
		go readLines(s.in, s.lines, s.done)
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
	case <-s.interrupts:
		fmt.Fprintln(s.out)
		return "", errAborted
	case l, ok := <-s.lines:
		if !ok {
			return "", ErrInputClosed
		}
		if l.err != nil {
			return "", fmt.Errorf("%w: %w", ErrInputClosed, l.err)
		}
		return strings.TrimSpace(l.text), nil
	}
}

// readLines feeds lines from r into ch until end of input or done is closed.
// Over-long lines are truncated to maxAnswerBytes rather than treated as errors.
func readLines(r io.Reader, ch chan<- line, done <-chan struct{}) {
	defer close(ch)
	br := bufio.NewReader(r)
	for {
		select {
		case <-done:
			return
		default:
		}

		text, err := readLine(br)
		if err != nil && !errors.Is(err, io.EOF) {
			select {
			case ch <- line{err: err}:
			case <-done:
			}
			return
		}
		if err == nil || text != "" {
			select {
			case ch <- line{text: text}:
			case <-done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// readLine reads up to the next newline, keeping at most maxAnswerBytes.
// The line terminator is dropped.
func readLine(br *bufio.Reader) (string, error) {
	var buf []byte
	for {
		chunk, err := br.ReadSlice('\n')
		if room := maxAnswerBytes - len(buf); room > 0 {
			buf = append(buf, chunk[:min(len(chunk), room)]...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return strings.TrimRight(string(buf), "\r\n"), err
	}
}
