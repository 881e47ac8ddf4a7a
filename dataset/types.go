package dataset

import "sort"

// EmotionImages maps an emotion label to the set of image names carrying that
// label. Emotion keys are discovered from the data while reading; they are not
// predeclared anywhere. Keys and image names are stored trimmed, and emotion
// keys lowercased, by the readers.
type EmotionImages map[string]map[string]struct{}

// Add records image under emotion, creating the emotion's set on first use.
// Empty emotion or image names are ignored.
func (m EmotionImages) Add(emotion, image string) {
	if emotion == "" || image == "" {
		return
	}
	set, ok := m[emotion]
	if !ok {
		set = make(map[string]struct{})
		m[emotion] = set
	}
	set[image] = struct{}{}
}

// Emotions returns the emotion keys in sorted order.
func (m EmotionImages) Emotions() []string {
	out := make([]string, 0, len(m))
	for e := range m {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// Images returns the image names for one emotion in sorted order.
func (m EmotionImages) Images(emotion string) []string {
	set := m[emotion]
	out := make([]string, 0, len(set))
	for img := range set {
		out = append(out, img)
	}
	sort.Strings(out)
	return out
}

// AllImages returns the set of every image name claimed by any emotion.
func (m EmotionImages) AllImages() map[string]struct{} {
	out := make(map[string]struct{})
	for _, set := range m {
		for img := range set {
			out[img] = struct{}{}
		}
	}
	return out
}

// Assignment is one emotion's ordered image list for one named split.
type Assignment struct {
	Emotion string
	Split   string
	Images  []string
}
