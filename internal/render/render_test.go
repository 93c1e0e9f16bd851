package render

import (
	"strings"
	"testing"

	"amareke/internal/model"
	"amareke/internal/random"
	"amareke/internal/schedule"
	"amareke/internal/studio"
	"amareke/internal/suggest"
)

func sampleReport(topic string) studio.Report {
	return reportWithValueProp(topic, "Plan it.")
}

func reportWithValueProp(topic, valueProp string) studio.Report {
	in := model.GenerationInput{Platform: model.Instagram, Tone: model.Bold, Topic: topic, ValueProp: valueProp, CTA: "Try it"}
	caption := suggest.Caption(in, random.Fixed(0))
	return studio.Report{
		Input:    in,
		Caption:  caption,
		Draft:    caption,
		Hashtags: suggest.Hashtags(in.Platform, in.Topic),
		Score:    model.ScorePost(model.ScoreInput{Draft: caption, CTA: in.CTA}),
		Calendar: schedule.BuildCalendar(in.Topic, in.Platform),
	}
}

func TestMarkdownSections(t *testing.T) {
	out := Markdown(sampleReport("newsletters"))
	for _, want := range []string{
		"# Creator Studio: Instagram / Bold",
		"## Caption",
		"Stop guessing. newsletters should feel predictable.",
		"Platform note: Keep it short. Use punchy lines. End with a clear CTA.",
		"`#creator` `#contentcreator`",
		"`#newsletters`",
		"| Hook |",
		"| Day 1 | Reel | Define newsletters in one sentence and why it matters. |",
		"| Day 7 | Reel |",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestHTMLRendersTables(t *testing.T) {
	out, err := HTML(sampleReport("newsletters"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<h2>Caption</h2>",
		"<p>Platform note: Keep it short. Use punchy lines. End with a clear CTA.</p>",
		"<code>#creator</code>",
		"<table>",
		"<th>Day</th>",
		"<td>Day 3</td>",
		"<td>Story</td>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("html missing %q:\n%s", want, out)
		}
	}
}

func TestUserTextIsEscaped(t *testing.T) {
	rep := sampleReport("a|b <x>")
	md := Markdown(rep)
	if !strings.Contains(md, `a\|b \<x\>`) {
		t.Fatalf("cell not escaped:\n%s", md)
	}
	out, err := HTML(rep)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "<x>") {
		t.Fatalf("raw html leaked:\n%s", out)
	}
	if !strings.Contains(out, "a|b &lt;x&gt;") {
		t.Fatalf("escaped text missing:\n%s", out)
	}
}

func TestBlockMarkersAreEscaped(t *testing.T) {
	cases := []struct {
		valueProp string
		banned    string
		want      string
	}{
		{"1. Plan it", "<ol>", "<p>1. Plan it</p>"},
		{"2) Ship it", "<ol", "<p>2) Ship it</p>"},
		{"Plan it\n===", "<h1>Plan it</h1>", "<p>Plan it\n===</p>"},
		{"Plan it\n---", "<h2>Plan it</h2>", "<p>Plan it\n---</p>"},
	}
	for _, c := range cases {
		out, err := HTML(reportWithValueProp("newsletters", c.valueProp))
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(out, c.banned) {
			t.Fatalf("%q rendered as markup:\n%s", c.valueProp, out)
		}
		if !strings.Contains(out, c.want) {
			t.Fatalf("%q: html missing %q:\n%s", c.valueProp, c.want, out)
		}
	}
}

func TestEscapeTextLeavesInlineDigits(t *testing.T) {
	if got := escapeText("Post 3. times, 10) days"); got != "Post 3. times, 10) days" {
		t.Fatalf("got %q", got)
	}
	if got := escapeText("  12. a"); got != `  12\. a` {
		t.Fatalf("got %q", got)
	}
}
