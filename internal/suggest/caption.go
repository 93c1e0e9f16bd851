package suggest

import (
	"strings"

	"amareke/internal/model"
	"amareke/internal/random"
	"amareke/internal/util"
)

// Openers per tone. {topic} is replaced by the resolved topic.
var openers = [model.ToneCount][3]string{
	model.Bold: {
		"Stop guessing. {topic} should feel predictable.",
		"If you want results, treat {topic} like infrastructure.",
		"Creators who win do one thing: they ship distribution, not vibes.",
	},
	model.Calm: {
		"A simple way to think about {topic}.",
		"Here is a practical approach to {topic}.",
		"If you feel overwhelmed, this helps:",
	},
	model.Friendly: {
		"Quick tip on {topic} 👇",
		"Sharing what is working for {topic}.",
		"If you are building {topic}, this will help.",
	},
	model.Direct: {
		"Problem: inconsistent output. Fix: {topic}.",
		"What you measure improves. {topic} is the system.",
		"Build the workflow. Then publish.",
	},
	model.Premium: {
		"Distribution is a compounding asset.",
		"High performers operationalize {topic}.",
		"Consistency is designed, not hoped for.",
	},
}

var styleNotes = [model.PlatformCount]string{
	model.Instagram: "Keep it short. Use punchy lines. End with a clear CTA.",
	model.TikTok:    "Hook fast. Use one promise. Add a direct CTA.",
	model.YouTube:   "Set context. Promise payoff. Invite people to watch or subscribe.",
	model.X:         "Write like a thread starter. Make it quotable.",
	model.LinkedIn:  "Make it strategic. Add a lesson and a concrete takeaway.",
}

// StyleNote is the platform-specific writing advice embedded in captions.
func StyleNote(p model.Platform) string { return styleNotes[p] }

// Openers returns the tone's opener templates with topic filled in.
func Openers(t model.Tone, topic string) []string {
	resolved := util.OrDefault(topic, fallbackTopic)
	out := make([]string, 0, len(openers[t]))
	for _, tmpl := range openers[t] {
		out = append(out, util.Interpolate(tmpl, resolved))
	}
	return out
}

// Caption composes a post from the input: a tone opener picked by src, the
// value proposition, the platform note and the CTA, separated by blank lines.
// A nil src always picks the first opener.
func Caption(in model.GenerationInput, src random.Source) string {
	topic := util.OrDefault(in.Topic, fallbackTopic)
	valueProp := util.OrDefault(in.ValueProp, fallbackValueProp)
	cta := util.OrDefault(in.CTA, fallbackCTA)

	templates := openers[in.Tone]
	idx := 0
	if src != nil {
		idx = random.Index(src.Intn(len(templates)), len(templates))
	}
	opener := util.Interpolate(templates[idx], topic)

	body := strings.Join([]string{
		opener,
		"",
		valueProp,
		"",
		"Platform note: " + styleNotes[in.Platform],
		"",
		"CTA: " + cta,
	}, "\n")
	return util.Trim(body)
}
