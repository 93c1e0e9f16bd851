package model

import (
	"strings"
	"testing"
)

func TestScorePostEmpty(t *testing.T) {
	r := ScorePost(ScoreInput{})
	want := ScoreResult{Hook: 10, Clarity: 30, Structure: 20, CTA: 35, Total: 24, Note: weakNote}
	if r != want {
		t.Fatalf("got %+v want %+v", r, want)
	}
}

func TestScorePostArithmetic(t *testing.T) {
	cases := []struct {
		name string
		in   ScoreInput
		want ScoreResult
	}{
		{
			name: "two lines with cta",
			in:   ScoreInput{Draft: "Hello world\n\nTry the live demo now", CTA: "Try the live demo"},
			want: ScoreResult{Hook: 42, Clarity: 34, Structure: 36, CTA: 100, Total: 53, Note: weakNote},
		},
		{
			name: "cta missing from draft",
			in:   ScoreInput{Draft: "Hello", CTA: "Join"},
			want: ScoreResult{Hook: 41, Clarity: 31, Structure: 28, CTA: 43, Total: 36, Note: weakNote},
		},
		{
			name: "surrounding whitespace is trimmed",
			in:   ScoreInput{Draft: "  \n\nHello\n\n  ", CTA: ""},
			want: ScoreResult{Hook: 41, Clarity: 31, Structure: 28, CTA: 35, Total: 34, Note: weakNote},
		},
		{
			name: "half rounds up",
			in:   ScoreInput{Draft: strings.Repeat("a", 10000), CTA: strings.Repeat("a", 20)},
			want: ScoreResult{Hook: 60, Clarity: 70, Structure: 28, CTA: 100, Total: 65, Note: goodNote},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ScorePost(c.in); got != c.want {
				t.Fatalf("got %+v want %+v", got, c.want)
			}
		})
	}
}

func TestScorePostBounds(t *testing.T) {
	long := strings.Repeat("word ", 2000)
	inputs := []ScoreInput{
		{},
		{Draft: "\n\n\n", CTA: "\n"},
		{Draft: long, CTA: long},
		{Draft: strings.Repeat("line\n", 10000), CTA: "line"},
		{Draft: strings.Repeat("😀", 10000), CTA: "😀😀😀😀"},
		{Draft: "!!! ??? ...", CTA: "!!!"},
	}
	for _, in := range inputs {
		r := ScorePost(in)
		for name, v := range map[string]int{"hook": r.Hook, "clarity": r.Clarity, "structure": r.Structure, "cta": r.CTA, "total": r.Total} {
			if v < 0 || v > 100 {
				t.Fatalf("%s out of range: %d for draft len %d", name, v, len(in.Draft))
			}
		}
		mean := float64(r.Hook+r.Clarity+r.Structure+r.CTA) / 4
		if diff := float64(r.Total) - mean; diff > 0.5 || diff <= -0.5 {
			t.Fatalf("total %d is not the rounded mean %.2f", r.Total, mean)
		}
		if r.Note == "" {
			t.Fatal("empty note")
		}
	}
}

func TestCTAPresent(t *testing.T) {
	cases := []struct {
		draft, cta string
		want       bool
	}{
		{"JOIN NOW", "join now please", true},
		{"book a call today", "Book a demo", true},
		{"book a call today", "", false},
		{"hello", "join", false},
		{"", "join", false},
		// the needle ends before a character that would cross 6 UTF-16 units
		{"abcdeX", "abcde\U0001F600", true},
		{"abcde", "abcde\U0001F600", true},
		{"abcd\U0001F600 now", "ABCD\U0001F600!", true},
		{"abcd now", "abcd\U0001F600", false},
	}
	for _, c := range cases {
		if got := CTAPresent(c.draft, c.cta); got != c.want {
			t.Fatalf("CTAPresent(%q, %q) = %v", c.draft, c.cta, got)
		}
	}
}

func TestNoteTiers(t *testing.T) {
	for total, want := range map[int]string{100: strongNote, 85: strongNote, 84: goodNote, 65: goodNote, 64: weakNote, 0: weakNote} {
		if got := noteFor(total); got != want {
			t.Fatalf("noteFor(%d) = %q", total, got)
		}
	}
}
