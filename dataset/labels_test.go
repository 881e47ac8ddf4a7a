package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func collectWarnings(warnings *[]string) func(string, ...any) {
	return func(format string, args ...any) {
		*warnings = append(*warnings, fmt.Sprintf(format, args...))
	}
}

func TestReadEmotionLabels_GroupsAndNormalizes(t *testing.T) {
	t.Parallel()

	path := writeCSV(t,
		"id,image,emotion",
		"1,a.jpg,Happy",
		"2,b.jpg,  happy ",
		"3,c.jpg,sad",
	)

	images, stats, err := ReadEmotionLabels(path, LabelReaderOptions{})
	if err != nil {
		t.Fatalf("ReadEmotionLabels: %v", err)
	}
	if stats.Rows != 3 || stats.SkippedRows != 0 {
		t.Fatalf("stats=%+v, want 3 rows, 0 skipped", stats)
	}
	if got := images.Emotions(); !reflect.DeepEqual(got, []string{"happy", "sad"}) {
		t.Fatalf("emotions=%v, want [happy sad]", got)
	}
	if got := images.Images("happy"); !reflect.DeepEqual(got, []string{"a.jpg", "b.jpg"}) {
		t.Fatalf("happy=%v, want [a.jpg b.jpg]", got)
	}
}

func TestReadEmotionLabels_ResolvesColumnsByName(t *testing.T) {
	t.Parallel()

	// Columns in a different order than the original fixed positions.
	path := writeCSV(t,
		"label,file,id",
		"happy,a.jpg,1",
	)

	images, _, err := ReadEmotionLabels(path, LabelReaderOptions{
		ImageColumn:   "file",
		EmotionColumn: "label",
	})
	if err != nil {
		t.Fatalf("ReadEmotionLabels: %v", err)
	}
	if got := images.Images("happy"); !reflect.DeepEqual(got, []string{"a.jpg"}) {
		t.Fatalf("happy=%v, want [a.jpg]", got)
	}
}

func TestReadEmotionLabels_MissingColumnFailsFast(t *testing.T) {
	t.Parallel()

	path := writeCSV(t,
		"id,image,mood",
		"1,a.jpg,happy",
	)

	_, _, err := ReadEmotionLabels(path, LabelReaderOptions{})
	if err == nil {
		t.Fatalf("expected schema error for missing emotion column")
	}
	if !strings.Contains(err.Error(), `"emotion"`) {
		t.Fatalf("err=%v, want it to name the missing column", err)
	}
}

func TestReadEmotionLabels_SkipsShortAndEmptyRows(t *testing.T) {
	t.Parallel()

	path := writeCSV(t,
		"id,image,emotion",
		"1,a.jpg,happy",
		"2,b.jpg",
		"3,,happy",
		"4,c.jpg,sad",
	)

	var warnings []string
	images, stats, err := ReadEmotionLabels(path, LabelReaderOptions{Warnf: collectWarnings(&warnings)})
	if err != nil {
		t.Fatalf("ReadEmotionLabels: %v", err)
	}
	if stats.Rows != 4 || stats.SkippedRows != 2 {
		t.Fatalf("stats=%+v, want 4 rows, 2 skipped", stats)
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings=%v, want 2", warnings)
	}
	if got := images.Images("happy"); !reflect.DeepEqual(got, []string{"a.jpg"}) {
		t.Fatalf("happy=%v, want [a.jpg]", got)
	}
	if got := images.Images("sad"); !reflect.DeepEqual(got, []string{"c.jpg"}) {
		t.Fatalf("sad=%v, want [c.jpg]", got)
	}
}

func TestReadEmotionLabels_MissingFileIsHardError(t *testing.T) {
	t.Parallel()

	_, _, err := ReadEmotionLabels(filepath.Join(t.TempDir(), "nope.csv"), LabelReaderOptions{})
	if err == nil {
		t.Fatalf("expected error for missing csv")
	}
}
