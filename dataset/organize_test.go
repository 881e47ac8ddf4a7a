package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeImages(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("img:"+name), 0o644); err != nil {
			t.Fatalf("write image %s: %v", name, err)
		}
	}
}

func TestCopyAssignments_CopiesIntoLayout(t *testing.T) {
	t.Parallel()

	imageDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "splits")
	writeImages(t, imageDir, "a.jpg", "b.jpg", "c.jpg")

	assignments := []Assignment{
		{Emotion: "happy", Split: "train", Images: []string{"a.jpg", "b.jpg"}},
		{Emotion: "happy", Split: "test", Images: []string{"c.jpg"}},
	}

	res, records, err := CopyAssignments(context.Background(), assignments, OrganizeOptions{
		ImageDir: imageDir,
		OutDir:   outDir,
	})
	if err != nil {
		t.Fatalf("CopyAssignments: %v", err)
	}
	if res.ImagesCopied != 3 || res.ImagesMissing != 0 {
		t.Fatalf("res=%+v, want 3 copied", res)
	}
	if len(records) != 3 {
		t.Fatalf("records=%d, want 3", len(records))
	}

	b, err := os.ReadFile(filepath.Join(outDir, "train", "happy", "a.jpg"))
	if err != nil {
		t.Fatalf("read copied image: %v", err)
	}
	if string(b) != "img:a.jpg" {
		t.Fatalf("copied content=%q", string(b))
	}
	if _, err := os.Stat(filepath.Join(outDir, "test", "happy", "c.jpg")); err != nil {
		t.Fatalf("test image not copied: %v", err)
	}
}

func TestCopyAssignments_MissingSourceWarnsAndContinues(t *testing.T) {
	t.Parallel()

	imageDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "splits")
	writeImages(t, imageDir, "a.jpg")

	assignments := []Assignment{
		{Emotion: "sad", Split: "test", Images: []string{"missing.jpg", "a.jpg"}},
	}

	var warnings []string
	res, records, err := CopyAssignments(context.Background(), assignments, OrganizeOptions{
		ImageDir: imageDir,
		OutDir:   outDir,
		Warnf:    collectWarnings(&warnings),
	})
	if err != nil {
		t.Fatalf("CopyAssignments: %v", err)
	}
	if res.ImagesCopied != 1 || res.ImagesMissing != 1 {
		t.Fatalf("res=%+v, want 1 copied, 1 missing", res)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "missing.jpg") {
		t.Fatalf("warnings=%v", warnings)
	}
	if len(records) != 2 {
		t.Fatalf("records=%d, want 2", len(records))
	}
	if records[0].Copied || !records[1].Copied {
		t.Fatalf("records=%+v, want first missing, second copied", records)
	}
	if _, err := os.Stat(filepath.Join(outDir, "test", "sad", "a.jpg")); err != nil {
		t.Fatalf("surviving image not copied: %v", err)
	}
}

func TestCopyAssignments_DryRunCreatesNothing(t *testing.T) {
	t.Parallel()

	imageDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "splits")
	writeImages(t, imageDir, "a.jpg")

	assignments := []Assignment{
		{Emotion: "happy", Split: "train", Images: []string{"a.jpg", "gone.jpg"}},
	}

	res, records, err := CopyAssignments(context.Background(), assignments, OrganizeOptions{
		ImageDir: imageDir,
		OutDir:   outDir,
		DryRun:   true,
	})
	if err != nil {
		t.Fatalf("CopyAssignments: %v", err)
	}
	if res.ImagesCopied != 0 {
		t.Fatalf("res=%+v, want 0 copied in dry run", res)
	}
	if res.ImagesMissing != 1 {
		t.Fatalf("res=%+v, want 1 missing in dry run", res)
	}
	if len(records) != 2 {
		t.Fatalf("records=%d, want 2", len(records))
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Fatalf("dry run created output dir")
	}
}

func TestCopyAssignments_StopsOnCancel(t *testing.T) {
	t.Parallel()

	imageDir := t.TempDir()
	writeImages(t, imageDir, "a.jpg")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := CopyAssignments(ctx, []Assignment{
		{Emotion: "happy", Split: "train", Images: []string{"a.jpg"}},
	}, OrganizeOptions{
		ImageDir: imageDir,
		OutDir:   filepath.Join(t.TempDir(), "splits"),
	})
	if err != context.Canceled {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}

func TestMaterializeLayout_Idempotent(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	splits := []string{"train", "test"}
	emotions := []string{"happy", "sad"}

	n, err := MaterializeLayout(outDir, splits, emotions, 0)
	if err != nil {
		t.Fatalf("MaterializeLayout: %v", err)
	}
	if n != 4 {
		t.Fatalf("ensured=%d, want 4", n)
	}

	// Pre-existing directories are not an error.
	if _, err := MaterializeLayout(outDir, splits, emotions, 0); err != nil {
		t.Fatalf("second MaterializeLayout: %v", err)
	}

	for _, split := range splits {
		for _, emotion := range emotions {
			fi, err := os.Stat(filepath.Join(outDir, split, emotion))
			if err != nil || !fi.IsDir() {
				t.Fatalf("missing dir %s/%s: %v", split, emotion, err)
			}
		}
	}
}
