package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/faceworks/emoset/dataset/fileutils"
)

// ManifestRecord describes one planned image placement from a split run.
type ManifestRecord struct {
	RunID   string `json:"run_id,omitempty"`
	Variant string `json:"variant,omitempty"`

	Emotion    string `json:"emotion"`
	Split      string `json:"split"`
	Image      string `json:"image"`
	SourcePath string `json:"source_path"`
	DestPath   string `json:"dest_path"`

	// Copied is false when the source image was missing (or, in a dry run,
	// when it would have been).
	Copied bool `json:"copied"`
}

// NewRunID returns a fresh identifier for stamping one run's manifest records.
func NewRunID() string {
	return uuid.NewString()
}

// StampManifest sets the run id and variant on every record in place.
func StampManifest(records []ManifestRecord, runID, variant string) {
	for i := range records {
		records[i].RunID = runID
		records[i].Variant = variant
	}
}

// WriteManifest writes manifest records as JSONL, atomically. If overwrite is
// false and the file already exists, it returns an error.
func WriteManifest(path string, records []ManifestRecord, overwrite bool) error {
	if path == "" {
		return errors.New("WriteManifest: path is empty")
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("WriteManifest: file exists: %s", path)
		}
	}

	var b strings.Builder
	for _, r := range records {
		line, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("WriteManifest: marshal record: %w", err)
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	if err := fileutils.WriteFileAtomicSameDir(path, []byte(strings.TrimSuffix(b.String(), "\n")), 0o644); err != nil {
		return fmt.Errorf("WriteManifest: write: %w", err)
	}
	return nil
}
