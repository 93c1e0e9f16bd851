package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"amareke/internal/studio"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Markdown lays a studio report out as a Markdown document.
func Markdown(r studio.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Creator Studio: %s / %s\n\n", r.Input.Platform, r.Input.Tone)

	b.WriteString("## Caption\n\n")
	for _, line := range strings.Split(r.Caption, "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(escapeText(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("## Hashtags\n\n")
	tags := make([]string, len(r.Hashtags))
	for i, h := range r.Hashtags {
		tags[i] = "`" + h + "`"
	}
	b.WriteString(strings.Join(tags, " "))
	b.WriteString("\n\n")

	b.WriteString("## Post score\n\n")
	b.WriteString("| Dimension | Score |\n|---|---|\n")
	fmt.Fprintf(&b, "| Hook | %d |\n", r.Score.Hook)
	fmt.Fprintf(&b, "| Clarity | %d |\n", r.Score.Clarity)
	fmt.Fprintf(&b, "| Structure | %d |\n", r.Score.Structure)
	fmt.Fprintf(&b, "| CTA | %d |\n", r.Score.CTA)
	fmt.Fprintf(&b, "| **Total** | **%d** |\n\n", r.Score.Total)
	b.WriteString(escapeText(r.Score.Note))
	b.WriteString("\n\n")

	b.WriteString("## 7 day calendar\n\n")
	b.WriteString("| Day | Format | Idea |\n|---|---|---|\n")
	for _, e := range r.Calendar {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", escapeCell(e.Day), escapeCell(e.Format), escapeCell(e.Idea))
	}
	return b.String()
}

// HTML renders the Markdown report to an HTML fragment.
func HTML(r studio.Report) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(r)), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// user text must not turn into headings, lists or inline markup
var textEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "#", `\#`,
	"[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`, "|", `\|`,
	"-", `\-`, "+", `\+`, "!", `\!`, "=", `\=`,
)

// digits followed by "." or ")" open an ordered list item
var orderedMarker = regexp.MustCompile(`(?m)^([ \t]*\d+)([.)])`)

func escapeText(s string) string {
	return orderedMarker.ReplaceAllString(textEscaper.Replace(s), `${1}\${2}`)
}

func escapeCell(s string) string {
	return escapeText(strings.ReplaceAll(s, "\n", " "))
}
