package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	app "github.com/okian/kanadrill/internal/app"
	"github.com/okian/kanadrill/internal/config"
	"github.com/okian/kanadrill/pkg/logger"
	"github.com/okian/kanadrill/pkg/metrics"
)

// Process exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

var errSelfCheckFailed = errors.New("self-check failed")

type flags struct {
	configPath  string
	speed       string
	explain     string
	name        string
	logLevel    string
	metricsFile string
	allowRomaji bool
	selfCheck   bool
	noColor     bool
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, interrupts <-chan os.Signal) int {
	if err := logger.Init(logger.WithOutput(stderr)); err != nil {
		fmt.Fprintln(stderr, "failed to initialize logging:", err)
		return exitFailure
	}
	defer func() { _ = logger.Sync() }()

	cmd := newRootCmd(stdin, interrupts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.code != exitInterrupted && !errors.Is(err, errSelfCheckFailed) {
			fmt.Fprintln(stderr, "error:", err)
		}
		return ee.code
	}
	// Anything cobra rejects before RunE is a usage problem.
	fmt.Fprintln(stderr, "error:", err)
	return exitUsage
}

func newRootCmd(stdin io.Reader, interrupts <-chan os.Signal) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "kanadrill",
		Short: "Japanese Lesson 1 drill: greetings, self-introduction, vowels",
		Long: `kanadrill asks three Japanese exercises and checks free-text answers.

Answers may use hiragana, katakana or half-width forms; romaji is accepted with
--allow-romaji. Each exercise allows three attempts and shows the model answer
after the second miss. Ctrl+C at an answer prompt skips that exercise;
elsewhere it ends the lesson.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.selfCheck {
				if app.SelfCheck(cmd.OutOrStdout()) != exitOK {
					return &exitError{code: exitFailure, err: errSelfCheckFailed}
				}
				return nil
			}
			return runLesson(cmd, f, stdin, interrupts)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.speed, "speed", config.SpeedNormal, "output speed: fast, normal, slow")
	fs.StringVar(&f.explain, "explain", config.ExplainNormal, "explanation level: minimal, normal")
	fs.BoolVar(&f.allowRomaji, "allow-romaji", false, "accept romaji answers")
	fs.StringVar(&f.name, "name", "", "name shown in the self-introduction prompt")
	fs.BoolVar(&f.selfCheck, "self-check", false, "run the built-in checks and exit")
	fs.StringVar(&f.configPath, "config", "", "YAML config file (default $"+config.EnvConfig+")")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&f.noColor, "no-color", false, "disable coloured feedback")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write run metrics in Prometheus text format to this file")

	return cmd
}

func runLesson(cmd *cobra.Command, f flags, stdin io.Reader, interrupts <-chan os.Signal) error {
	ctx := cmd.Context()
	log := logger.Get()

	cfg, err := config.Load(ctx, f.configPath)
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}
	applyFlags(cmd, f, cfg)
	if err := cfg.Validate(); err != nil {
		return &exitError{code: exitUsage, err: err}
	}

	// Apply configured log level (fallback to warn on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to warn", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("warn")
	}

	session := app.New(
		app.WithLogger(log),
		app.WithInput(stdin),
		app.WithOutput(cmd.OutOrStdout()),
		app.WithInterrupts(interrupts),
		app.WithSpeed(cfg.Speed),
		app.WithExplain(cfg.Explain),
		app.WithAllowRomaji(cfg.AllowRomaji),
		app.WithName(cfg.Name),
		app.WithColor(cfg.Color),
	)

	_, err = session.RunLesson(ctx)
	exportMetrics(ctx, cfg.MetricsFile)

	if errors.Is(err, app.ErrInterrupted) {
		fmt.Fprintln(cmd.OutOrStdout(), "\nExiting. Good work today!")
		return &exitError{code: exitInterrupted, err: err}
	}
	if err != nil {
		return &exitError{code: exitFailure, err: err}
	}
	return nil
}

// applyFlags lets explicitly set flags override file and env configuration.
func applyFlags(cmd *cobra.Command, f flags, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("speed") {
		cfg.Speed = f.speed
	}
	if fs.Changed("explain") {
		cfg.Explain = f.explain
	}
	if fs.Changed("allow-romaji") {
		cfg.AllowRomaji = f.allowRomaji
	}
	if fs.Changed("name") {
		cfg.Name = f.name
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("no-color") {
		cfg.Color = !f.noColor
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
}

func exportMetrics(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := metrics.Default().WriteTextfile(path); err != nil {
		logger.Get().Error(ctx, "failed to write metrics file", logger.String("path", path), logger.Error(err))
	}
}
