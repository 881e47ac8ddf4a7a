package main

import (
	"context"
	"flag"
	"fmt"
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

	readerOpts := dataset.LabelReaderOptions{
		ImageColumn:   rc.Columns.Image,
		EmotionColumn: rc.Columns.Emotion,
		Warnf:         log.Warnf,
	}

	primary, pstats, err := dataset.ReadEmotionLabels(cfg.PrimaryCSV, readerOpts)
	if err != nil {
		return err
	}
	log.Debugf("primary: %d rows, %d emotions", pstats.Rows, len(primary))

	secondary := dataset.EmotionImages{}
	var sstats dataset.ReadStats
	if cfg.SecondaryCSV != "" {
		secondary, sstats, err = dataset.ReadSecondaryLabels(cfg.SecondaryCSV, primary, rc.Synonyms, readerOpts)
		if err != nil {
			return err
		}
		log.Debugf("secondary: %d rows, %d filler emotions", sstats.Rows, len(secondary))
	}

	combined := dataset.MergeLabelSources(primary, secondary)

	assignments, lstats := dataset.BuildLadderAssignments(combined, dataset.LadderOptions{Warnf: log.Warnf})

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
		dataset.StampManifest(records, dataset.NewRunID(), "ladder")
		if err := dataset.WriteManifest(cfg.ManifestPath, records, cfg.Overwrite); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "emotions_processed=%d emotions_skipped=%d images_copied=%d images_missing=%d rows_skipped=%d dry_run=%t out_dir=%s\n",
		lstats.EmotionsProcessed, lstats.EmotionsSkipped, res.ImagesCopied, res.ImagesMissing,
		pstats.SkippedRows+sstats.SkippedRows, cfg.DryRun, cfg.OutDir)
	return nil
}
