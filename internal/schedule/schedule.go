package schedule

import (
	"strconv"
	"time"

	"amareke/internal/model"
	"amareke/internal/util"
)

// Days is the length of a posting plan.
const Days = 7

var formatRotations = [model.PlatformCount][Days]string{
	model.Instagram: {"Reel", "Carousel", "Story", "Reel", "Carousel", "Story", "Reel"},
	model.TikTok:    {"Video", "Video", "Live", "Video", "Video", "Duet", "Video"},
	model.YouTube:   {"Short", "Short", "Community", "Short", "Long form", "Short", "Short"},
	model.X:         {"Post", "Thread", "Post", "Thread", "Post", "Post", "Thread"},
	model.LinkedIn:  {"Post", "Carousel", "Post", "Post", "Carousel", "Post", "Post"},
}

var ideas = [Days]string{
	"Define {topic} in one sentence and why it matters.",
	"Three common mistakes people make with {topic}.",
	"A simple checklist you can reuse for {topic}.",
	"A short case study showing outcomes from {topic}.",
	"Your framework: inputs, process, outputs for {topic}.",
	"Behind the scenes: how you execute {topic} weekly.",
	"One contrarian take about {topic} and your evidence.",
}

// BuildCalendar returns a 7-day plan for topic on platform p.
func BuildCalendar(topic string, p model.Platform) []model.CalendarEntry {
	t := util.OrDefault(topic, "your topic")
	formats := formatRotations[p]
	out := make([]model.CalendarEntry, Days)
	for i := range out {
		out[i] = model.CalendarEntry{
			Day:    "Day " + strconv.Itoa(i+1),
			Format: formats[i],
			Idea:   util.Interpolate(ideas[i], t),
		}
	}
	return out
}

// DatedEntry pins a calendar entry to a date.
type DatedEntry struct {
	model.CalendarEntry
	Date time.Time
}

// Dated assigns consecutive dates to entries, Day 1 falling on start's date.
func Dated(start time.Time, entries []model.CalendarEntry) []DatedEntry {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	out := make([]DatedEntry, len(entries))
	for i, e := range entries {
		out[i] = DatedEntry{CalendarEntry: e, Date: day.AddDate(0, 0, i)}
	}
	return out
}
