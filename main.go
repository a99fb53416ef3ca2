package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-texture-pipeline/pkg/baker"
	"github.com/df07/go-texture-pipeline/pkg/config"
	"github.com/df07/go-texture-pipeline/pkg/core"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, bakes the configured texture and writes it as a PNG
func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("texbake", flag.ContinueOnError)
	flags.SetOutput(stdout)
	configPath := flags.String("config", "", "TOML bake description (built-in checker when empty)")
	outPath := flags.String("out", "", "Output PNG path (overrides [output] path)")
	workers := flags.Int("workers", 0, "Number of bake workers (0 = config value or CPU count)")
	verbose := flags.Bool("verbose", false, "Log adjustment and bake details")
	help := flags.Bool("help", false, "Show help information")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *help {
		fmt.Fprintln(stdout, "Texture Baker")
		fmt.Fprintln(stdout, "Usage: texbake [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		flags.PrintDefaults()
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Output will be saved to output/bake_<timestamp>.png unless a path is given")
		return nil
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	}
	if *workers > 0 {
		cfg.Output.Workers = *workers
	}

	var logger core.Logger = core.NopLogger{}
	if *verbose {
		handler := slog.NewTextHandler(stdout, nil)
		logger = core.NewSlogLogger(slog.New(handler)).WithLevel(slog.LevelInfo)
	}

	sampler, err := cfg.BuildSampler(logger)
	if err != nil {
		return err
	}

	opts := cfg.BakeOptions()
	opts.Logger = logger
	img, err := baker.Bake(ctx, sampler, opts)
	if err != nil {
		return err
	}

	filename := *outPath
	if filename == "" {
		filename = cfg.Output.Path
	}
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", fmt.Sprintf("bake_%s.png", timestamp))
	}
	if err := writePNG(filename, img); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Bake saved as %s\n", filename)
	return nil
}

func writePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return file.Close()
}
