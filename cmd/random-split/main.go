package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/faceworks/emoset/dataset"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	log.SetOutput(os.Stderr)
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config) error {
	rc, err := dataset.LoadRunConfig(cfg.ConfigPath)
	if err != nil {
		return err
	}

	labels, rstats, err := dataset.ReadEmotionLabels(cfg.CSVPath, dataset.LabelReaderOptions{
		ImageColumn:   rc.Columns.Image,
		EmotionColumn: rc.Columns.Emotion,
		Warnf:         log.Warnf,
	})
	if err != nil {
		return err
	}
	log.Debugf("labels: %d rows, %d emotions", rstats.Rows, len(labels))

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	assignments, sstats, err := dataset.BuildRandomAssignments(labels, dataset.RandomOptions{
		PerEmotion: cfg.PerEmotion,
		Rand:       rng,
		Warnf:      log.Warnf,
	})
	if err != nil {
		return err
	}

	res, records, err := dataset.CopyAssignments(ctx, assignments, dataset.OrganizeOptions{
		ImageDir: cfg.ImageDir,
		OutDir:   cfg.OutDir,
		DryRun:   cfg.DryRun,
		Warnf:    log.Warnf,
	})
	if err != nil {
		return err
	}

	if cfg.ManifestPath != "" {
		dataset.StampManifest(records, dataset.NewRunID(), "random")
		if err := dataset.WriteManifest(cfg.ManifestPath, records, cfg.Overwrite); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "emotions_processed=%d emotions_short=%d images_copied=%d images_missing=%d rows_skipped=%d dry_run=%t out_dir=%s\n",
		sstats.EmotionsProcessed, sstats.ShortEmotions, res.ImagesCopied, res.ImagesMissing,
		rstats.SkippedRows, cfg.DryRun, cfg.OutDir)
	return nil
}
