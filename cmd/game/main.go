package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/pong/internal/audio"
	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	settings, err := config.Load(config.GetEnv("PONG_CONFIG", "pong.toml"))
	if err != nil {
		return err
	}

	// Stdout is the game screen, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("PONG_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           log.DebugLevel,
	})

	var player audio.Player = audio.Nop{}
	if settings.Audio.Enabled && config.GetEnvBool("PONG_AUDIO", true) {
		sp, err := audio.NewSpeaker(settings.Audio.Volume)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer sp.Close()
			player = sp
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "fps", settings.TargetFPS, "debug", settings.Debug)
	c := loop.NewClient(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Settings: settings,
		Logger:   logger,
		Audio:    player,
	})
	if err := c.Run(ctx); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	logger.Info("exited")
	return nil
}
