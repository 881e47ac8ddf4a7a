package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Split directory names shared by both layouts.
const (
	SplitTest  = "test"
	SplitTrain = "train"
)

// LadderSizes are the nested training-set sizes produced by the ladder split.
var LadderSizes = []int{10, 20, 30, 40, 50}

const (
	ladderPoolSize = 60 // images consumed per emotion: 50 train + 10 test
	ladderTestSize = 10
)

// TrainSplitName returns the directory name for one ladder training size,
// e.g. "train_20".
func TrainSplitName(size int) string {
	return fmt.Sprintf("train_%d", size)
}

// LadderSplitNames returns every split directory name of the ladder layout.
func LadderSplitNames() []string {
	names := make([]string, 0, len(LadderSizes)+1)
	names = append(names, SplitTest)
	for _, size := range LadderSizes {
		names = append(names, TrainSplitName(size))
	}
	return names
}

// LadderOptions controls BuildLadderAssignments.
type LadderOptions struct {
	// Warnf receives per-emotion warnings. If nil, warnings are dropped.
	Warnf func(format string, args ...any)
}

// LadderStats contains counters from one ladder split.
type LadderStats struct {
	EmotionsProcessed int
	EmotionsSkipped   int
}

// BuildLadderAssignments partitions each emotion's images into a fixed test
// set and a ladder of nested training sets.
//
// Per emotion, in sorted image order: the first 60 images form the working
// pool (any excess is silently discarded), the last 10 of those are the test
// set, and train_N is the first N of the remaining 50 for each ladder size,
// so train_10 through train_50 are nested prefixes of one list. Emotions with
// fewer than 60 images are skipped with a warning. The output is fully
// deterministic: no randomness, emotions visited in sorted order.
func BuildLadderAssignments(images EmotionImages, opts LadderOptions) ([]Assignment, LadderStats) {
	warnf := opts.Warnf
	if warnf == nil {
		warnf = func(string, ...any) {}
	}

	var (
		out   []Assignment
		stats LadderStats
	)
	for _, emotion := range images.Emotions() {
		sorted := images.Images(emotion)
		if len(sorted) < ladderPoolSize {
			warnf("only %d images for emotion %q; need at least %d, skipping", len(sorted), emotion, ladderPoolSize)
			stats.EmotionsSkipped++
			continue
		}
		stats.EmotionsProcessed++

		pool := sorted[:ladderPoolSize]
		train := pool[:ladderPoolSize-ladderTestSize]
		test := pool[ladderPoolSize-ladderTestSize:]

		out = append(out, Assignment{Emotion: emotion, Split: SplitTest, Images: test})
		for _, size := range LadderSizes {
			out = append(out, Assignment{Emotion: emotion, Split: TrainSplitName(size), Images: train[:size]})
		}
	}
	return out, stats
}

// RandomOptions controls BuildRandomAssignments.
type RandomOptions struct {
	// PerEmotion caps how many images are selected per emotion. Required.
	PerEmotion int

	// TrainFraction is the share of selected images assigned to the training
	// set, applied as floor(frac * selected). Defaults to 0.8.
	TrainFraction float64

	// Rand is the permutation source. Nil means a fresh time-seeded source,
	// giving a different split every run; pass a seeded source to pin the
	// split for tests or reproducible runs.
	Rand *rand.Rand

	// Warnf receives per-emotion warnings. If nil, warnings are dropped.
	Warnf func(format string, args ...any)
}

// RandomStats contains counters from one random split.
type RandomStats struct {
	EmotionsProcessed int

	// ShortEmotions counts emotions that had fewer images than requested.
	ShortEmotions int
}

// BuildRandomAssignments shuffles each emotion's images and cuts them into a
// train/test pair. Per emotion: permute, truncate to PerEmotion (using all
// available with a warning when fewer exist), then split at
// floor(TrainFraction * selected). With very small selections the train or
// test side can be empty; that is expected boundary behavior, not an error.
//
// The shuffle starts from the sorted image list, so a pinned Rand source
// reproduces the exact same split on identical input.
func BuildRandomAssignments(images EmotionImages, opts RandomOptions) ([]Assignment, RandomStats, error) {
	if opts.PerEmotion <= 0 {
		return nil, RandomStats{}, errors.New("BuildRandomAssignments: PerEmotion must be > 0")
	}
	if opts.TrainFraction == 0 {
		opts.TrainFraction = 0.8
	}
	if opts.TrainFraction < 0 || opts.TrainFraction > 1 {
		return nil, RandomStats{}, fmt.Errorf("BuildRandomAssignments: TrainFraction %v out of range [0,1]", opts.TrainFraction)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	warnf := opts.Warnf
	if warnf == nil {
		warnf = func(string, ...any) {}
	}

	var (
		out   []Assignment
		stats RandomStats
	)
	for _, emotion := range images.Emotions() {
		imgs := images.Images(emotion)
		rng.Shuffle(len(imgs), func(i, j int) {
			imgs[i], imgs[j] = imgs[j], imgs[i]
		})

		n := len(imgs)
		if n > opts.PerEmotion {
			n = opts.PerEmotion
		} else if n < opts.PerEmotion {
			warnf("only %d of %d requested images for emotion %q; using all available", n, opts.PerEmotion, emotion)
			stats.ShortEmotions++
		}
		selected := imgs[:n]

		cut := int(opts.TrainFraction * float64(n))
		out = append(out,
			Assignment{Emotion: emotion, Split: SplitTrain, Images: selected[:cut]},
			Assignment{Emotion: emotion, Split: SplitTest, Images: selected[cut:]},
		)
		stats.EmotionsProcessed++
	}
	return out, stats, nil
}
