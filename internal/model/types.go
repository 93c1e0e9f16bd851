package model

import (
	"errors"
	"fmt"
	"strings"
)

// Platform is a supported distribution channel.
type Platform int

const (
	Instagram Platform = iota
	TikTok
	YouTube
	X
	LinkedIn

	platformCount
)

// PlatformCount is the number of supported platforms; lookup tables are sized by it.
const PlatformCount = int(platformCount)

var platformNames = [PlatformCount]string{
	Instagram: "Instagram",
	TikTok:    "TikTok",
	YouTube:   "YouTube",
	X:         "X",
	LinkedIn:  "LinkedIn",
}

func (p Platform) String() string {
	if p < 0 || p >= platformCount {
		return fmt.Sprintf("Platform(%d)", int(p))
	}
	return platformNames[p]
}

// Platforms returns every platform in display order.
func Platforms() []Platform {
	out := make([]Platform, 0, PlatformCount)
	for p := Platform(0); p < platformCount; p++ {
		out = append(out, p)
	}
	return out
}

// Tone is a stylistic register for generated captions.
type Tone int

const (
	Bold Tone = iota
	Calm
	Friendly
	Direct
	Premium

	toneCount
)

// ToneCount is the number of supported tones.
const ToneCount = int(toneCount)

var toneNames = [ToneCount]string{
	Bold:     "Bold",
	Calm:     "Calm",
	Friendly: "Friendly",
	Direct:   "Direct",
	Premium:  "Premium",
}

func (t Tone) String() string {
	if t < 0 || t >= toneCount {
		return fmt.Sprintf("Tone(%d)", int(t))
	}
	return toneNames[t]
}

// Tones returns every tone in display order.
func Tones() []Tone {
	out := make([]Tone, 0, ToneCount)
	for t := Tone(0); t < toneCount; t++ {
		out = append(out, t)
	}
	return out
}

var (
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrUnknownTone     = errors.New("unknown tone")
)

// ParsePlatform resolves a platform name, case-insensitively.
func ParsePlatform(s string) (Platform, error) {
	name := strings.TrimSpace(s)
	for p, n := range platformNames {
		if strings.EqualFold(n, name) {
			return Platform(p), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

// ParseTone resolves a tone name, case-insensitively.
func ParseTone(s string) (Tone, error) {
	name := strings.TrimSpace(s)
	for t, n := range toneNames {
		if strings.EqualFold(n, name) {
			return Tone(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTone, s)
}

// GenerationInput is the shared record the studio generates from.
// Free-text fields may be empty; fallbacks are substituted downstream.
type GenerationInput struct {
	Platform  Platform
	Tone      Tone
	Topic     string
	ValueProp string
	CTA       string
}

// ScoreInput is what the post scorer reads.
type ScoreInput struct {
	Draft string
	CTA   string
}

// ScoreResult holds the heuristic sub-scores, each in [0,100].
type ScoreResult struct {
	Hook      int    `json:"hook"`
	Clarity   int    `json:"clarity"`
	Structure int    `json:"structure"`
	CTA       int    `json:"cta"`
	Total     int    `json:"total"`
	Note      string `json:"note"`
}

// CalendarEntry is one day of a weekly posting plan.
type CalendarEntry struct {
	Day    string `json:"day"`
	Format string `json:"format"`
	Idea   string `json:"idea"`
}
