package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	ImageDir     string
	CSVPath      string
	OutDir       string
	PerEmotion   int
	Seed         int64
	ConfigPath   string
	ManifestPath string
	Overwrite    bool
	DryRun       bool
	Debug        bool
}

func (c Config) Validate() error {
	if c.ImageDir == "" {
		return errors.New("missing -images")
	}
	if c.CSVPath == "" {
		return errors.New("missing -csv")
	}
	if c.OutDir == "" {
		return errors.New("missing -out")
	}
	if c.PerEmotion <= 0 {
		return errors.New("per-emotion must be > 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		PerEmotion: 50,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.ImageDir, "images", cfg.ImageDir, "Flat directory holding the source image files")
	fs.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "Label CSV (header row + image/emotion columns)")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Output root for train/ and test/ trees")
	fs.IntVar(&cfg.PerEmotion, "per-emotion", cfg.PerEmotion, "Max number of images selected per emotion")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Random seed for the shuffle; 0 uses a fresh seed each run")
	fs.StringVar(&cfg.ConfigPath, "config", "", "Optional YAML run config (column roles)")
	fs.StringVar(&cfg.ManifestPath, "manifest", "", "Optional path for a JSONL run manifest")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "Overwrite an existing manifest file")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Plan the split and print stats without creating or copying anything")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags]\n\nFlags:\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "\nExamples:")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/random-split -images data/faces -csv data/labels.csv -out data/splits -per-emotion 100")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/random-split -images data/faces -csv data/labels.csv -out data/splits -seed 42")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.ImageDir != "" {
		cfg.ImageDir = filepath.Clean(cfg.ImageDir)
	}
	if cfg.OutDir != "" {
		cfg.OutDir = filepath.Clean(cfg.OutDir)
	}
	return cfg, nil
}
