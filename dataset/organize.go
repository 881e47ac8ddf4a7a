package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/faceworks/emoset/dataset/fileutils"
)

// OrganizeOptions controls CopyAssignments.
type OrganizeOptions struct {
	// ImageDir is the flat source directory holding the image files.
	ImageDir string

	// OutDir is the root under which <split>/<emotion>/<image> paths are written.
	OutDir string

	// DryRun plans the run without creating directories or copying anything.
	DryRun bool

	// DirMode is used when creating output directories (defaults to 0o755).
	DirMode fs.FileMode

	// Warnf receives per-image warnings (missing source files). If nil,
	// warnings are dropped.
	Warnf func(format string, args ...any)
}

// OrganizeResult contains basic stats from one copy run.
type OrganizeResult struct {
	DirsCreated   int
	ImagesCopied  int
	ImagesMissing int
}

// MaterializeLayout ensures one directory per (split, emotion) pair under
// outDir. Pre-existing directories are not an error. It returns how many
// pairs were ensured.
func MaterializeLayout(outDir string, splits, emotions []string, mode fs.FileMode) (int, error) {
	if outDir == "" {
		return 0, errors.New("MaterializeLayout: outDir is empty")
	}
	if mode == 0 {
		mode = 0o755
	}
	created := 0
	for _, split := range splits {
		for _, emotion := range emotions {
			dir := filepath.Join(outDir, split, emotion)
			if err := os.MkdirAll(dir, mode); err != nil {
				return created, fmt.Errorf("MaterializeLayout: mkdir %s: %w", dir, err)
			}
			created++
		}
	}
	return created, nil
}

// CopyAssignments materializes the directory layout for the given assignments
// and copies every selected image from ImageDir into its split/emotion folder.
// A missing source file is a warning, not an error: the copy is skipped and
// the run continues. Existing destination files are overwritten.
//
// It returns one ManifestRecord per planned image, in assignment order, so
// callers can write a run manifest.
func CopyAssignments(ctx context.Context, assignments []Assignment, opts OrganizeOptions) (OrganizeResult, []ManifestRecord, error) {
	if ctx == nil {
		return OrganizeResult{}, nil, errors.New("CopyAssignments: ctx is nil")
	}
	if opts.ImageDir == "" {
		return OrganizeResult{}, nil, errors.New("CopyAssignments: ImageDir is empty")
	}
	if opts.OutDir == "" {
		return OrganizeResult{}, nil, errors.New("CopyAssignments: OutDir is empty")
	}
	warnf := opts.Warnf
	if warnf == nil {
		warnf = func(string, ...any) {}
	}

	var res OrganizeResult
	if !opts.DryRun {
		n, err := MaterializeLayout(opts.OutDir, assignmentSplits(assignments), assignmentEmotions(assignments), opts.DirMode)
		if err != nil {
			return OrganizeResult{}, nil, err
		}
		res.DirsCreated = n
	}

	var records []ManifestRecord
	for _, a := range assignments {
		for _, image := range a.Images {
			select {
			case <-ctx.Done():
				return res, records, ctx.Err()
			default:
			}

			src := filepath.Join(opts.ImageDir, image)
			dst := filepath.Join(opts.OutDir, a.Split, a.Emotion, image)
			rec := ManifestRecord{
				Emotion:    a.Emotion,
				Split:      a.Split,
				Image:      image,
				SourcePath: src,
				DestPath:   dst,
			}

			if opts.DryRun {
				if fileutils.FileExists(src) {
					rec.Copied = true
				} else {
					warnf("image %s not found in %s; would skip", image, opts.ImageDir)
					res.ImagesMissing++
				}
				records = append(records, rec)
				continue
			}

			copied, err := fileutils.CopyFile(src, dst)
			if err != nil {
				return res, records, fmt.Errorf("CopyAssignments: copy %s: %w", image, err)
			}
			if !copied {
				warnf("image %s not found in %s; skipping", image, opts.ImageDir)
				res.ImagesMissing++
				records = append(records, rec)
				continue
			}
			rec.Copied = true
			res.ImagesCopied++
			records = append(records, rec)
		}
	}
	return res, records, nil
}

func assignmentSplits(assignments []Assignment) []string {
	return uniqueSorted(assignments, func(a Assignment) string { return a.Split })
}

func assignmentEmotions(assignments []Assignment) []string {
	return uniqueSorted(assignments, func(a Assignment) string { return a.Emotion })
}

func uniqueSorted(assignments []Assignment, key func(Assignment) string) []string {
	seen := make(map[string]struct{}, len(assignments))
	var out []string
	for _, a := range assignments {
		k := key(a)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
