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
	PrimaryCSV   string
	SecondaryCSV string
	OutDir       string
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
	if c.PrimaryCSV == "" {
		return errors.New("missing -primary")
	}
	if c.OutDir == "" {
		return errors.New("missing -out")
	}
	return nil
}

func defaultConfig() Config {
	return Config{}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.ImageDir, "images", cfg.ImageDir, "Flat directory holding the source image files")
	fs.StringVar(&cfg.PrimaryCSV, "primary", cfg.PrimaryCSV, "Primary label CSV (header row + image/emotion columns)")
	fs.StringVar(&cfg.SecondaryCSV, "secondary", cfg.SecondaryCSV, "Optional secondary label CSV used to fill thin emotions")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Output root for test/ and train_{10..50}/ trees")
	fs.StringVar(&cfg.ConfigPath, "config", "", "Optional YAML run config (column roles, synonym table)")
	fs.StringVar(&cfg.ManifestPath, "manifest", "", "Optional path for a JSONL run manifest")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "Overwrite an existing manifest file")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Plan the split and print stats without creating or copying anything")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags]\n\nFlags:\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "\nExamples:")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/ladder-split -images data/faces -primary data/labels.csv -out data/splits")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/ladder-split -images data/faces -primary data/labels.csv -secondary data/extra.csv -out data/splits -manifest data/splits/manifest.jsonl")
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
