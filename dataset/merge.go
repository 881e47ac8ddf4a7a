package dataset

// DefaultSynonyms returns the built-in mapping from secondary-source emotion
// spellings to the primary source's vocabulary.
func DefaultSynonyms() map[string]string {
	return map[string]string{
		"sadness":   "sad",
		"happiness": "happy",
		"fearful":   "fear",
	}
}

// ReadSecondaryLabels reads a second label CSV and returns a per-emotion
// filler pool that only supplements the primary source: an image is kept when
// its emotion, after synonym remapping, exists in the primary source, and the
// image is not already claimed by the primary source under any emotion.
// Primary labels are never overridden.
func ReadSecondaryLabels(path string, primary EmotionImages, synonyms map[string]string, opts LabelReaderOptions) (EmotionImages, ReadStats, error) {
	claimed := primary.AllImages()

	filler := make(EmotionImages)
	stats, err := readLabelRows(path, opts, func(image, emotion string) {
		if mapped, ok := synonyms[emotion]; ok {
			mapped = normalizeLabel(mapped)
			if mapped != "" {
				emotion = mapped
			}
		}
		if _, ok := primary[emotion]; !ok {
			return
		}
		if _, ok := claimed[image]; ok {
			return
		}
		filler.Add(emotion, image)
	})
	if err != nil {
		return nil, ReadStats{}, err
	}
	return filler, stats, nil
}

// MergeLabelSources unions the secondary filler into the primary map,
// per emotion. The primary source's emotions define the keyspace; filler
// emotions absent from it are dropped. Neither input is modified.
func MergeLabelSources(primary, secondary EmotionImages) EmotionImages {
	combined := make(EmotionImages, len(primary))
	for emotion, set := range primary {
		for img := range set {
			combined.Add(emotion, img)
		}
		for img := range secondary[emotion] {
			combined.Add(emotion, img)
		}
	}
	return combined
}
