package check

// Feedback shown to the learner.
const (
	greetingPassed = "Nice! こんにちは"
	greetingWaHint = "Almost! The 'wa' here is written with は, not わ: こんにちは"
	greetingHint   = "Hint: the daytime greeting is こんにちは. Its 'wa' is written with は, not わ."

	selfIntroPassed = "Nice! That sounds natural."
	selfIntroHint   = "Pattern: わたしは [name] です。 (romaji: watashi wa [name] desu)"

	vowelsPassed       = "Perfect! あ い う え お"
	vowelsPositionHint = "Hint: "
	vowelsAnswer       = "Answer: あ い う え お (romaji: a i u e o)"
)
