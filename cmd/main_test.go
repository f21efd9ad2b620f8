package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func runCLI(ctx context.Context, stdin string, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(ctx, args, strings.NewReader(stdin), &stdout, &stderr, nil)
	return code, stdout.String(), stderr.String()
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the kanadrill command", t, func() {
		ctx := context.Background()

		convey.Convey("When running the self-check", func() {
			code, stdout, _ := runCLI(ctx, "", "--self-check")

			convey.Convey("Then it should pass and exit 0", func() {
				convey.So(code, convey.ShouldEqual, exitOK)
				convey.So(stdout, convey.ShouldContainSubstring, "Self-check passed.")
			})
		})

		convey.Convey("When running a full lesson with correct answers", func() {
			code, stdout, _ := runCLI(ctx, "こんにちは\nわたしは ボブ です。\nあいうえお\n",
				"--speed", "fast", "--no-color", "--name", "Bob")

			convey.Convey("Then it should print a perfect score", func() {
				convey.So(code, convey.ShouldEqual, exitOK)
				convey.So(stdout, convey.ShouldContainSubstring, "I am Bob.")
				convey.So(stdout, convey.ShouldContainSubstring, "Score: 3 / 3")
			})
		})

		convey.Convey("When romaji answers are given", func() {
			in := "konnichiwa\nwatashi wa bob desu.\na i u e o\n"

			convey.Convey("And --allow-romaji is set", func() {
				code, stdout, _ := runCLI(ctx, in, "--speed", "fast", "--no-color", "--allow-romaji")
				convey.So(code, convey.ShouldEqual, exitOK)
				convey.So(stdout, convey.ShouldContainSubstring, "Score: 3 / 3")
			})

			convey.Convey("And romaji comes from a config file", func() {
				path := filepath.Join(t.TempDir(), "kanadrill.yaml")
				err := os.WriteFile(path, []byte("speed: fast\ncolor: false\nallow_romaji: true\n"), 0o600)
				convey.So(err, convey.ShouldBeNil)

				code, stdout, _ := runCLI(ctx, in, "--config", path)
				convey.So(code, convey.ShouldEqual, exitOK)
				convey.So(stdout, convey.ShouldContainSubstring, "Score: 3 / 3")
			})
		})

		convey.Convey("When --explain minimal is set", func() {
			_, stdout, _ := runCLI(ctx, "", "--speed", "fast", "--explain", "minimal")

			convey.Convey("Then the introduction should be skipped", func() {
				convey.So(stdout, convey.ShouldNotContainSubstring, "Pronunciation")
			})
		})

		convey.Convey("When a metrics file is requested", func() {
			path := filepath.Join(t.TempDir(), "kanadrill.prom")
			code, _, _ := runCLI(ctx, "こんにちは\n", "--speed", "fast", "--metrics-file", path)

			convey.Convey("Then the run's metrics should be written", func() {
				convey.So(code, convey.ShouldEqual, exitOK)
				data, err := os.ReadFile(path)
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(data), convey.ShouldContainSubstring, "kanadrill_lesson_checks_total")
			})
		})

		convey.Convey("When the speed is not a known preset", func() {
			code, _, stderr := runCLI(ctx, "", "--speed", "turbo")

			convey.Convey("Then it should exit with a usage error", func() {
				convey.So(code, convey.ShouldEqual, exitUsage)
				convey.So(stderr, convey.ShouldContainSubstring, "speed")
			})
		})

		convey.Convey("When an unknown flag or argument is passed", func() {
			code, _, _ := runCLI(ctx, "", "--loud")
			convey.So(code, convey.ShouldEqual, exitUsage)

			code, _, _ = runCLI(ctx, "", "lesson2")
			convey.So(code, convey.ShouldEqual, exitUsage)
		})

		convey.Convey("When Ctrl+C arrives before the first prompt", func() {
			interrupts := make(chan os.Signal, 1)
			interrupts <- syscall.SIGINT
			var stdout, stderr bytes.Buffer
			code := run(ctx, []string{"--speed", "fast"}, strings.NewReader("こんにちは\n"), &stdout, &stderr, interrupts)

			convey.Convey("Then it should exit 130 like a cancelled lesson", func() {
				convey.So(code, convey.ShouldEqual, exitInterrupted)
				convey.So(stdout.String(), convey.ShouldContainSubstring, "Good work today!")
				convey.So(stdout.String(), convey.ShouldNotContainSubstring, "Score:")
			})
		})

		convey.Convey("When the lesson context is cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			code, stdout, _ := runCLI(cancelled, "", "--speed", "fast")

			convey.Convey("Then it should exit 130 with a farewell", func() {
				convey.So(code, convey.ShouldEqual, exitInterrupted)
				convey.So(stdout, convey.ShouldContainSubstring, "Good work today!")
			})
		})
	})
}
