package app

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/kanadrill/internal/config"
	"github.com/okian/kanadrill/pkg/metrics"
)

// drained reports whether ch is closed within the timeout, discarding values.
func drained(ch <-chan line, timeout time.Duration) bool {
	deadline := time.After(timeout)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return true
			}
		case <-deadline:
			return false
		}
	}
}

func TestReadLine(t *testing.T) {
	Convey("Given a reader with several lines", t, func() {
		br := bufio.NewReaderSize(strings.NewReader("こんにちは\r\n"+strings.Repeat("x", 5000)+"\nlast"), 16)

		Convey("Then lines come back without terminators, however long", func() {
			first, err := readLine(br)
			So(err, ShouldBeNil)
			So(first, ShouldEqual, "こんにちは")

			second, err := readLine(br)
			So(err, ShouldBeNil)
			So(len(second), ShouldEqual, 5000)

			last, err := readLine(br)
			So(err, ShouldEqual, io.EOF)
			So(last, ShouldEqual, "last")
		})
	})
}

func TestReadLines(t *testing.T) {
	Convey("Given a lesson that ends before its input does", t, func() {
		pr, pw := io.Pipe()
		defer func() { _ = pr.Close() }()
		go func() {
			_, _ = io.WriteString(pw, "こんにちは\nわたしは ボブ です。\nあ い う え お\nextra\n")
		}()

		s := New(
			WithInput(pr),
			WithOutput(io.Discard),
			WithSpeed(config.SpeedFast),
			WithColor(false),
			WithMetrics(metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))),
		)
		tally, err := s.RunLesson(context.Background())

		Convey("Then the input reader stops once the lesson returns", func() {
			So(err, ShouldBeNil)
			So(tally.String(), ShouldEqual, "3 / 3")
			So(drained(s.lines, time.Second), ShouldBeTrue)
		})
	})
}
