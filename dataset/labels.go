package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LabelReaderOptions controls how a label CSV is interpreted.
type LabelReaderOptions struct {
	// ImageColumn is the header name of the column holding image file names.
	// Defaults to "image".
	ImageColumn string

	// EmotionColumn is the header name of the column holding emotion labels.
	// Defaults to "emotion".
	EmotionColumn string

	// Warnf receives per-row warnings (short rows, empty fields). If nil,
	// warnings are dropped.
	Warnf func(format string, args ...any)
}

// ReadStats contains basic counters from one CSV read.
type ReadStats struct {
	Rows        int
	SkippedRows int
}

func (o *LabelReaderOptions) applyDefaults() {
	if o.ImageColumn == "" {
		o.ImageColumn = "image"
	}
	if o.EmotionColumn == "" {
		o.EmotionColumn = "emotion"
	}
	if o.Warnf == nil {
		o.Warnf = func(string, ...any) {}
	}
}

// ReadEmotionLabels reads a label CSV and returns an emotion -> image-name-set
// map. The first row must be a header; the image and emotion columns are
// resolved against it by name, and a configured column missing from the header
// is a hard error before any row is parsed.
//
// Emotion labels are trimmed and lowercased so that differently-cased spellings
// of the same label land in one bucket. Rows too short to hold both columns,
// or with an empty image or emotion field, are skipped with a warning.
func ReadEmotionLabels(path string, opts LabelReaderOptions) (EmotionImages, ReadStats, error) {
	images := make(EmotionImages)
	stats, err := readLabelRows(path, opts, func(image, emotion string) {
		images.Add(emotion, image)
	})
	if err != nil {
		return nil, ReadStats{}, err
	}
	return images, stats, nil
}

// readLabelRows runs the shared header-resolution and row loop, handing each
// well-formed (image, emotion) pair to visit.
func readLabelRows(path string, opts LabelReaderOptions, visit func(image, emotion string)) (ReadStats, error) {
	if path == "" {
		return ReadStats{}, errors.New("readLabelRows: path is empty")
	}
	opts.applyDefaults()

	f, err := os.Open(path)
	if err != nil {
		return ReadStats{}, fmt.Errorf("readLabelRows: open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return ReadStats{}, fmt.Errorf("readLabelRows: read header of %s: %w", path, err)
	}

	imageIdx, emotionIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case strings.ToLower(opts.ImageColumn):
			imageIdx = i
		case strings.ToLower(opts.EmotionColumn):
			emotionIdx = i
		}
	}
	if imageIdx == -1 {
		return ReadStats{}, fmt.Errorf("readLabelRows: column %q not found in header of %s", opts.ImageColumn, path)
	}
	if emotionIdx == -1 {
		return ReadStats{}, fmt.Errorf("readLabelRows: column %q not found in header of %s", opts.EmotionColumn, path)
	}

	var stats ReadStats
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ReadStats{}, fmt.Errorf("readLabelRows: read row %d of %s: %w", line, path, err)
		}
		stats.Rows++

		if imageIdx >= len(row) || emotionIdx >= len(row) {
			opts.Warnf("row %d of %s has %d columns, need %d; skipping", line, path, len(row), max(imageIdx, emotionIdx)+1)
			stats.SkippedRows++
			continue
		}

		image := strings.TrimSpace(row[imageIdx])
		emotion := normalizeLabel(row[emotionIdx])
		if image == "" || emotion == "" {
			opts.Warnf("row %d of %s has an empty image or emotion field; skipping", line, path)
			stats.SkippedRows++
			continue
		}

		visit(image, emotion)
	}
	return stats, nil
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
