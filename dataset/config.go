package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig is the optional YAML run configuration shared by the split tools.
// It names which CSV header columns carry the image name and emotion label,
// and overrides the label-synonym table used when merging a secondary source.
type RunConfig struct {
	Columns struct {
		Image   string `yaml:"image"`
		Emotion string `yaml:"emotion"`
	} `yaml:"columns"`
	Synonyms map[string]string `yaml:"synonyms"`
}

// DefaultRunConfig returns the built-in column roles and synonym table.
func DefaultRunConfig() RunConfig {
	var cfg RunConfig
	cfg.Columns.Image = "image"
	cfg.Columns.Emotion = "emotion"
	cfg.Synonyms = DefaultSynonyms()
	return cfg
}

// LoadRunConfig reads a YAML run config. An empty path returns the defaults;
// a path that cannot be read or parsed is a hard error. Fields absent from
// the file keep their default values, and synonym keys/values are normalized
// the same way emotion labels are.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("LoadRunConfig: read config: %w", err)
	}

	var file RunConfig
	if err := yaml.Unmarshal(b, &file); err != nil {
		return RunConfig{}, fmt.Errorf("LoadRunConfig: parse %s: %w", path, err)
	}

	if file.Columns.Image != "" {
		cfg.Columns.Image = file.Columns.Image
	}
	if file.Columns.Emotion != "" {
		cfg.Columns.Emotion = file.Columns.Emotion
	}
	if file.Synonyms != nil {
		cfg.Synonyms = make(map[string]string, len(file.Synonyms))
		for from, to := range file.Synonyms {
			from = normalizeLabel(from)
			to = normalizeLabel(to)
			if from == "" || to == "" {
				continue
			}
			cfg.Synonyms[from] = to
		}
	}
	return cfg, nil
}
