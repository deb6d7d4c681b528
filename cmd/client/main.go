package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/yourusername/stream-chat/internal/chat"
	"github.com/yourusername/stream-chat/internal/client"
	"github.com/yourusername/stream-chat/internal/client/ui"
	"github.com/yourusername/stream-chat/internal/config"
	"github.com/yourusername/stream-chat/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	configPath := flag.String("config", os.Getenv(config.ConfigPathEnv), "Path to a YAML config file")
	renderer := flag.String("renderer", "", "Renderer: tui, termloop or plain (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if *renderer != "" {
		cfg.Renderer = *renderer
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	script := cfg.CannedScript()
	log.Info().
		Str("renderer", cfg.Renderer).
		Str("username", cfg.Username).
		Int("canned", len(script)).
		Msg("starting")

	feed := chat.NewFeed()

	switch cfg.Renderer {
	case config.RendererTermloop:
		return runTermloop(feed, cfg, script, log)
	case config.RendererPlain:
		return runPlain(feed, cfg, script, log)
	default:
		return runBubbleTea(feed, cfg, script, log)
	}
}

// runBubbleTea runs the full-screen Bubble Tea chat
func runBubbleTea(feed *chat.Feed, cfg *config.Config, script chat.Script, log zerolog.Logger) error {
	model := ui.NewModel(feed, ui.Options{
		Username:       cfg.Username,
		Script:         script,
		ShowTimestamps: cfg.ShowTimestamps,
		Logger:         log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// runTermloop runs the termloop renderer with a chat loop owning the feed
func runTermloop(feed *chat.Feed, cfg *config.Config, script chat.Script, log zerolog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := chat.NewLoop(feed, cfg.Username, log)
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	loop.Schedule(script)

	client.NewTermloopChat(feed, loop, cfg.Username, cfg.ShowTimestamps).Start()

	cancel()
	return <-done
}

// runPlain reads submissions from stdin and prints messages to stdout.
// After stdin closes it waits for the remaining canned messages.
func runPlain(feed *chat.Feed, cfg *config.Config, script chat.Script, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	feed.Subscribe(client.NewPlainChat(os.Stdout, cfg.ShowTimestamps))

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := chat.NewLoop(feed, cfg.Username, log)
	done := make(chan error, 1)
	go func() { done <- loop.Run(loopCtx) }()

	started := time.Now()
	loop.Schedule(script)

	if err := client.ReadSubmissions(ctx, os.Stdin, loop); err != nil {
		cancel()
		<-done
		return err
	}

	last := lo.MaxBy(script, func(a, b chat.CannedMessage) bool { return a.After > b.After })
	wait := time.NewTimer(time.Until(started.Add(last.After + 50*time.Millisecond)))
	defer wait.Stop()
	select {
	case <-ctx.Done():
	case <-wait.C:
	}

	cancel()
	return <-done
}
