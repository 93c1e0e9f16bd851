package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"amareke/internal/cmdlog"
	"amareke/internal/config"
	"amareke/internal/logging"
	"amareke/internal/model"
	"amareke/internal/random"
	"amareke/internal/render"
	"amareke/internal/schedule"
	"amareke/internal/studio"
	"amareke/internal/suggest"
	"amareke/internal/theme"
)

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	var args []string
	if len(os.Args) > 2 {
		args = os.Args[2:]
	}
	var run func([]string) error
	switch cmd {
	case "init":
		run = cmdInit
	case "hashtags":
		run = cmdHashtags
	case "score":
		run = cmdScore
	case "caption":
		run = cmdCaption
	case "calendar":
		run = cmdCalendar
	case "report":
		run = cmdReport
	case "live":
		run = cmdLive
	case "platforms":
		run = cmdPlatforms
	default:
		printHelp()
		return
	}
	if err := cmdlog.Run(cmd, func() error { return run(args) }); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: amareke <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  init        Create a config file at ./amareke.yaml")
	fmt.Println("  hashtags    Suggest hashtags for a platform and topic")
	fmt.Println("  score       Score a draft post")
	fmt.Println("  caption     Generate a caption")
	fmt.Println("  calendar    Build a 7 day posting calendar")
	fmt.Println("  report      Run the whole studio and print a Markdown or HTML report")
	fmt.Println("  live        Score drafts from stdin line by line and serve /metrics")
	fmt.Println("  platforms   List platforms, tones, style notes and openers")
}

// studioFlags binds the shared input flags; unset ones fall back to config.
type studioFlags struct {
	name      string
	fs        *flag.FlagSet
	cfgPath   *string
	platform  *string
	tone      *string
	topic     *string
	valueProp *string
	cta       *string
	seed      *int64
}

func newStudioFlags(name string) *studioFlags {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return &studioFlags{
		name:      name,
		fs:        fs,
		cfgPath:   fs.String("config", "./amareke.yaml", "config path"),
		platform:  fs.String("platform", "", "Instagram, TikTok, YouTube, X or LinkedIn"),
		tone:      fs.String("tone", "", "Bold, Calm, Friendly, Direct or Premium"),
		topic:     fs.String("topic", "", "post topic"),
		valueProp: fs.String("value", "", "value proposition"),
		cta:       fs.String("cta", "", "call to action"),
		seed:      fs.Int64("seed", 0, "random seed for caption openers (0 = config or fresh)"),
	}
}

// resolve loads config and returns the effective input after parsing args.
func (f *studioFlags) resolve(args []string) (config.Config, model.GenerationInput, error) {
	_ = f.fs.Parse(args)
	cfg, err := config.LoadOrDefault(*f.cfgPath)
	if err != nil {
		return cfg, model.GenerationInput{}, err
	}
	set := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	pick := func(name, flagVal, cfgVal string) string {
		if set[name] {
			return flagVal
		}
		return cfgVal
	}
	p, err := model.ParsePlatform(pick("platform", *f.platform, cfg.Studio.Platform))
	if err != nil {
		return cfg, model.GenerationInput{}, err
	}
	t, err := model.ParseTone(pick("tone", *f.tone, cfg.Studio.Tone))
	if err != nil {
		return cfg, model.GenerationInput{}, err
	}
	if set["seed"] {
		cfg.Random.Seed = *f.seed
	}
	if cfg.Metrics.Addr != "" && f.name != "live" {
		// one-shot commands exit before anything could scrape
		logging.Warn("metrics_server_skipped", map[string]any{"command": f.name, "addr": cfg.Metrics.Addr})
	}
	return cfg, model.GenerationInput{
		Platform:  p,
		Tone:      t,
		Topic:     pick("topic", *f.topic, cfg.Studio.Topic),
		ValueProp: pick("value", *f.valueProp, cfg.Studio.ValueProp),
		CTA:       pick("cta", *f.cta, cfg.Studio.CTA),
	}, nil
}

func newStudio(cfg config.Config) *studio.Studio {
	return studio.New(
		studio.WithSource(random.NewSeeded(cfg.Random.Seed)),
		studio.WithPacing(time.Duration(cfg.Studio.PacingMS)*time.Millisecond),
	)
}

func cmdInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("path", "./amareke.yaml", "path to write config")
	_ = fs.Parse(args)
	if err := config.Save(*path, config.Default()); err != nil {
		return err
	}
	abs, _ := filepath.Abs(*path)
	theme.PrintBanner()
	fmt.Println("Config written to:", abs)
	return nil
}

func cmdHashtags(args []string) error {
	f := newStudioFlags("hashtags")
	cfg, in, err := f.resolve(args)
	if err != nil {
		return err
	}
	for _, h := range newStudio(cfg).Hashtags(in.Platform, in.Topic) {
		fmt.Println(h)
	}
	return nil
}

func cmdScore(args []string) error {
	f := newStudioFlags("score")
	draft := f.fs.String("draft", "", "draft text")
	draftFile := f.fs.String("draft-file", "", "read the draft from a file (- for stdin)")
	asJSON := f.fs.Bool("json", false, "print the score as JSON")
	cfg, in, err := f.resolve(args)
	if err != nil {
		return err
	}
	text := *draft
	if *draftFile != "" {
		if text, err = readDraft(*draftFile); err != nil {
			return err
		}
	}
	r := newStudio(cfg).Score(model.ScoreInput{Draft: text, CTA: in.CTA})
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	printScore(os.Stdout, r)
	return nil
}

func printScore(w io.Writer, r model.ScoreResult) {
	fmt.Fprintf(w, "total=%d hook=%d clarity=%d structure=%d cta=%d\n", r.Total, r.Hook, r.Clarity, r.Structure, r.CTA)
	fmt.Fprintln(w, r.Note)
}

func cmdCaption(args []string) error {
	f := newStudioFlags("caption")
	cfg, in, err := f.resolve(args)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	caption, err := newStudio(cfg).Caption(ctx, in)
	if err != nil {
		return err
	}
	fmt.Println(caption)
	return nil
}

func cmdCalendar(args []string) error {
	f := newStudioFlags("calendar")
	start := f.fs.String("start", "", "date of Day 1 (YYYY-MM-DD); omit for an undated plan")
	cfg, in, err := f.resolve(args)
	if err != nil {
		return err
	}
	entries := newStudio(cfg).Calendar(in.Topic, in.Platform)
	if *start == "" {
		for _, e := range entries {
			fmt.Printf("%-6s %-10s %s\n", e.Day, e.Format, e.Idea)
		}
		return nil
	}
	day, err := time.Parse(time.DateOnly, *start)
	if err != nil {
		return fmt.Errorf("parse -start: %w", err)
	}
	for _, e := range schedule.Dated(day, entries) {
		fmt.Printf("%s %-6s %-10s %s\n", e.Date.Format("Mon 2006-01-02"), e.Day, e.Format, e.Idea)
	}
	return nil
}

func cmdReport(args []string) error {
	f := newStudioFlags("report")
	draft := f.fs.String("draft", "", "draft to score (default: the generated caption)")
	asHTML := f.fs.Bool("html", false, "render HTML instead of Markdown")
	cfg, in, err := f.resolve(args)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rep, err := newStudio(cfg).Snapshot(ctx, in, *draft)
	if err != nil {
		return err
	}
	if !*asHTML {
		fmt.Print(render.Markdown(rep))
		return nil
	}
	html, err := render.HTML(rep)
	if err != nil {
		return err
	}
	fmt.Print(html)
	return nil
}

func cmdPlatforms(args []string) error {
	f := newStudioFlags("platforms")
	_, in, err := f.resolve(args)
	if err != nil {
		return err
	}
	printCatalog(os.Stdout, in.Topic)
	return nil
}

// printCatalog lists each platform's style note and base tags, then each
// tone's openers filled in with topic.
func printCatalog(w io.Writer, topic string) {
	fmt.Fprintln(w, "Platforms:")
	for _, p := range model.Platforms() {
		fmt.Fprintf(w, "  %-10s %s\n", p, suggest.StyleNote(p))
		fmt.Fprintf(w, "  %-10s %s\n", "", strings.Join(suggest.BaseHashtags(p), " "))
	}
	fmt.Fprintln(w, "Tones:")
	for _, t := range model.Tones() {
		for i, o := range suggest.Openers(t, topic) {
			name := ""
			if i == 0 {
				name = t.String()
			}
			fmt.Fprintf(w, "  %-10s %s\n", name, o)
		}
	}
}

func readDraft(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("draft file %s not found", path)
	}
	return string(b), err
}
