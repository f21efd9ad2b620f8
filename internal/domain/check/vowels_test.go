package check_test

import (
	"testing"

	"github.com/okian/kanadrill/internal/domain/check"
	. "github.com/smartystreets/goconvey/convey"
)

func TestVowels(t *testing.T) {
	Convey("Given the vowel checker", t, func() {
		Convey("When the vowels are space separated", func() {
			So(check.Vowels("あ い う え お", false).Passed, ShouldBeTrue)
		})

		Convey("When the vowels are contiguous", func() {
			So(check.Vowels("あいうえお", false).Passed, ShouldBeTrue)
		})

		Convey("When the vowels are katakana or half-width", func() {
			So(check.Vowels("ア イ ウ エ オ", false).Passed, ShouldBeTrue)
			So(check.Vowels("ｱｲｳｴｵ", false).Passed, ShouldBeTrue)
			So(check.Vowels(" あ\tい  う\nえ お ", false).Passed, ShouldBeTrue)
		})

		Convey("When the answer is romaji", func() {
			So(check.Vowels("aiueo", true).Passed, ShouldBeTrue)
			So(check.Vowels("A I U E O", true).Passed, ShouldBeTrue)
			So(check.Vowels("aiueo", false).Passed, ShouldBeFalse)
		})

		Convey("When two vowels are swapped", func() {
			out := check.Vowels("あ う い え お", false)

			Convey("Then it should fail and name positions 2 and 3", func() {
				So(out.Passed, ShouldBeFalse)
				So(out.Message, ShouldContainSubstring, "position 2 should be い")
				So(out.Message, ShouldContainSubstring, "position 3 should be う")
				So(out.Message, ShouldNotContainSubstring, "position 1")
				So(out.Message, ShouldNotContainSubstring, "position 4")
			})
		})

		Convey("When five contiguous characters are wrong", func() {
			out := check.Vowels("あいうえを", false)
			So(out.Passed, ShouldBeFalse)
			So(out.Message, ShouldEqual, "Hint: position 5 should be お")
		})

		Convey("When the token count is not five", func() {
			for _, in := range []string{"", "あ い う え", "あ い う え お か", "あい うえお"} {
				out := check.Vowels(in, false)
				So(out.Passed, ShouldBeFalse)
				So(out.Message, ShouldContainSubstring, "あ い う え お")
				So(out.Message, ShouldNotContainSubstring, "position")
			}
		})

		Convey("Then repeated calls return identical outcomes", func() {
			for _, in := range []string{"あいうえお", "あ う い え お", "aiueo", ""} {
				So(check.Vowels(in, true), ShouldResemble, check.Vowels(in, true))
			}
		})
	})
}
