package scoring_test

import (
	"testing"

	scoring "github.com/okian/kanadrill/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTally(t *testing.T) {
	Convey("Given a new tally", t, func() {
		var tally scoring.Tally

		Convey("Then it starts perfect at zero", func() {
			So(tally.Perfect(), ShouldBeTrue)
			So(tally.String(), ShouldEqual, "0 / 0")
		})

		Convey("When two exercises are asked and one is passed", func() {
			tally.Begin()
			tally.Award()
			tally.Begin()

			Convey("Then score and total should reflect it", func() {
				So(tally.Score, ShouldEqual, 1)
				So(tally.Total, ShouldEqual, 2)
				So(tally.Perfect(), ShouldBeFalse)
				So(tally.String(), ShouldEqual, "1 / 2")
			})
		})
	})
}

func TestAttemptPolicy_Step(t *testing.T) {
	Convey("Given the default attempt policy", t, func() {
		p := scoring.NewAttemptPolicy()

		Convey("Then it allows three attempts and reveals after the second failure", func() {
			So(p.MaxAttempts, ShouldEqual, 3)
			So(p.RevealAfter, ShouldEqual, 2)
			So(p.Step(1), ShouldEqual, scoring.Retry)
			So(p.Step(2), ShouldEqual, scoring.RetryWithReveal)
			So(p.Step(3), ShouldEqual, scoring.Skip)
			So(p.Step(4), ShouldEqual, scoring.Skip)
		})
	})

	Convey("Given a custom attempt policy", t, func() {
		p := scoring.NewAttemptPolicy(scoring.WithMaxAttempts(5), scoring.WithRevealAfter(3))

		Convey("Then it follows the configured limits", func() {
			So(p.Step(2), ShouldEqual, scoring.Retry)
			So(p.Step(3), ShouldEqual, scoring.RetryWithReveal)
			So(p.Step(4), ShouldEqual, scoring.Retry)
			So(p.Step(5), ShouldEqual, scoring.Skip)
		})

		Convey("And invalid values are ignored", func() {
			p := scoring.NewAttemptPolicy(scoring.WithMaxAttempts(0), scoring.WithRevealAfter(-1))
			So(p.MaxAttempts, ShouldEqual, 3)
			So(p.RevealAfter, ShouldEqual, 2)
		})
	})

	Convey("Given the action names", t, func() {
		So(scoring.Retry.String(), ShouldEqual, "retry")
		So(scoring.RetryWithReveal.String(), ShouldEqual, "retry_with_reveal")
		So(scoring.Skip.String(), ShouldEqual, "skip")
	})
}
