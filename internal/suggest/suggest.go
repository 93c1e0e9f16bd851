package suggest

import (
	"strings"

	"amareke/internal/model"
	"amareke/internal/util"
)

const (
	maxHashtags   = 12
	maxTopicWords = 4

	fallbackTopic     = "your topic"
	fallbackValueProp = "a clear value proposition"
	fallbackCTA       = "Take action"
)

var platformHashtags = [model.PlatformCount][]string{
	model.Instagram: {"#creator", "#contentcreator", "#reels", "#marketing", "#growth"},
	model.TikTok:    {"#fyp", "#creator", "#contenttips", "#storytelling", "#marketing"},
	model.YouTube:   {"#youtube", "#shorts", "#creator", "#contentstrategy", "#growth"},
	model.X:         {"#buildinpublic", "#marketing", "#creatoreconomy", "#growth", "#founder"},
	model.LinkedIn:  {"#product", "#marketing", "#creatoreconomy", "#startup", "#growth"},
}

// BaseHashtags returns a copy of the fixed tag list for p.
func BaseHashtags(p model.Platform) []string {
	return append([]string(nil), platformHashtags[p]...)
}

// Hashtags suggests up to 12 unique tags: the platform's base set followed by
// tags built from the first words of topic.
func Hashtags(p model.Platform, topic string) []string {
	base := platformHashtags[p]
	out := make([]string, 0, len(base)+maxTopicWords)
	seen := make(map[string]struct{}, len(base)+maxTopicWords)
	add := func(tag string) {
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	for _, tag := range base {
		add(tag)
	}
	for _, w := range TopicWords(topic) {
		tag := "#" + stripNonAlnum(w)
		if len(tag) <= 2 {
			continue
		}
		add(tag)
	}
	if len(out) > maxHashtags {
		out = out[:maxHashtags]
	}
	return out
}

// TopicWords lowercases topic, treats anything outside [a-z0-9] and whitespace
// as a separator, and returns the first four words.
func TopicWords(topic string) []string {
	lower := util.Lower(topic)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !isASCIIAlnum(r)
	})
	if len(words) > maxTopicWords {
		words = words[:maxTopicWords]
	}
	return words
}

func stripNonAlnum(s string) string {
	return strings.Map(func(r rune) rune {
		if isASCIIAlnum(r) {
			return r
		}
		return -1
	}, s)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
