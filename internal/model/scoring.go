package model

import (
	"math"
	"strings"

	"amareke/internal/util"
)

const (
	strongNote = "Strong draft. Add one concrete metric (time saved, clicks, revenue) to increase conversion."
	goodNote   = "Good foundation. Make the first line punchier and tighten the CTA to one action."
	weakNote   = "Draft needs a clearer hook and a stronger call to action. Try shorter sentences and one concrete promise."
)

// ctaMatchPrefix is how much of the CTA has to appear in the draft to count as present.
const ctaMatchPrefix = 6

// ScorePost rates a draft on hook, clarity, structure and CTA, each in [0,100].
// Any input is accepted; empty drafts score at the floor of every dimension.
func ScorePost(in ScoreInput) ScoreResult {
	text := util.Trim(in.Draft)
	length := util.Length(text)
	lines := util.NonEmptyLines(text)

	firstLen := 0
	if len(lines) > 0 {
		firstLen = util.Length(lines[0])
	}
	hookBase := 10.0
	if firstLen > 0 {
		hookBase = 40
	}
	hook := score(hookBase + math.Min(20, float64(firstLen)/6))
	clarity := score(30 + math.Min(40, float64(length)/8))
	structure := score(20 + math.Min(40, float64(len(lines)*8)))
	cta := ctaScore(text, in.CTA)

	// Equal weights; kept as quarters so the mean matches the displayed arithmetic.
	total := score(float64(hook)*0.25 + float64(clarity)*0.25 + float64(structure)*0.25 + float64(cta)*0.25)

	return ScoreResult{
		Hook:      hook,
		Clarity:   clarity,
		Structure: structure,
		CTA:       cta,
		Total:     total,
		Note:      noteFor(total),
	}
}

// CTAPresent reports whether the start of cta shows up in draft, ignoring case.
func CTAPresent(draft, cta string) bool {
	if cta == "" {
		return false
	}
	needle := util.Prefix(util.Lower(cta), ctaMatchPrefix)
	return strings.Contains(util.Lower(draft), needle)
}

func ctaScore(draft, cta string) int {
	base := 35
	if CTAPresent(draft, cta) {
		base = 70
	}
	bonus := util.Length(cta) * 2
	if bonus > 30 {
		bonus = 30
	}
	return util.Clamp(base+bonus, 0, 100)
}

func noteFor(total int) string {
	switch {
	case total >= 85:
		return strongNote
	case total >= 65:
		return goodNote
	default:
		return weakNote
	}
}

func score(x float64) int {
	return util.Clamp(int(util.Round(x)), 0, 100)
}
