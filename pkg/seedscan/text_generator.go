package seedscan

// TextGenerator supplies pseudo-realistic placeholder text for synthetic rows.
// Every method must return a non-empty string.
type TextGenerator interface {
	// Name returns a short display name.
	Name() string

	// Sentence returns a single sentence.
	Sentence() string

	// Paragraph returns a single paragraph.
	Paragraph() string
}
