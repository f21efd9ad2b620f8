package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/okian/kanadrill/internal/domain/check"
)

type selfCheckCase struct {
	label string
	ok    func() bool
}

func passes(c check.Checker, answer string, allowRomaji bool) func() bool {
	return func() bool { return c(answer, allowRomaji).Passed }
}

func fails(c check.Checker, answer string, allowRomaji bool) func() bool {
	return func() bool { return !c(answer, allowRomaji).Passed }
}

var selfCheckCases = []selfCheckCase{
	{"greeting_hira_correct", passes(check.Greeting, "こんにちは", false)},
	{"greeting_halfwidth_katakana", passes(check.Greeting, "ｺﾝﾆﾁﾊ", false)},
	{"greeting_common_mistake_rejected", fails(check.Greeting, "こんにちわ", false)},
	{"greeting_romaji_correct", passes(check.Greeting, "konnichiwa", true)},
	{"greeting_romaji_disallowed", fails(check.Greeting, "konnichiwa", false)},

	{"selfintro_jp", passes(check.SelfIntro, "わたしは ボブ です。", false)},
	{"selfintro_jp_name", func() bool { return check.SelfIntro("わたしは ボブ です。", false).Name == "ぼぶ" }},
	{"selfintro_romaji", func() bool { return check.SelfIntro("watashi wa bob desu.", true).Name == "bob" }},
	{"selfintro_missing_wa", fails(check.SelfIntro, "わたし ボブ です", false)},
	{"selfintro_empty_name", fails(check.SelfIntro, "わたしは です。", false)},

	{"vowels_hira", passes(check.Vowels, "あ い う え お", false)},
	{"vowels_contiguous", passes(check.Vowels, "あいうえお", false)},
	{"vowels_romaji", passes(check.Vowels, "aiueo", true)},
	{"vowels_romaji_disallowed", fails(check.Vowels, "aiueo", false)},
	{"vowels_wrong_order", fails(check.Vowels, "あ う い え お", false)},
	{"vowels_wrong_order_hint", func() bool {
		msg := check.Vowels("あ う い え お", false).Message
		return strings.Contains(msg, "2") && strings.Contains(msg, "い") &&
			strings.Contains(msg, "3") && strings.Contains(msg, "う")
	}},
}

// SelfCheck runs the built-in acceptance cases and writes the result to w.
// It returns the process exit code: 0 when every case passes, 1 otherwise.
func SelfCheck(w io.Writer) int {
	var failures []string
	for _, c := range selfCheckCases {
		if !c.ok() {
			failures = append(failures, c.label)
		}
	}

	if len(failures) > 0 {
		fmt.Fprintln(w, "SELF-CHECK FAILURES:")
		for _, f := range failures {
			fmt.Fprintln(w, "-", f)
		}
		return 1
	}

	fmt.Fprintln(w, "Self-check passed.")
	return 0
}
