// Package fakedata produces the placeholder text stored in seeded rows.
package fakedata

import (
	"strings"
	"sync"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/vvka-141/seedscan/pkg/seedscan"
)

const (
	sentenceWords      = 6
	paragraphSentences = 3
	paragraphWords     = 8
)

// Generator implements seedscan.TextGenerator on top of gofakeit.
// Safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

var _ seedscan.TextGenerator = (*Generator)(nil)

// New returns a Generator seeded from a random source.
func New() *Generator {
	return NewSeeded(0)
}

// NewSeeded returns a Generator whose output is fully determined by seed.
// A zero seed selects a random source.
func NewSeeded(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Name returns a person name of at most seedscan.MaxNameLength runes.
func (g *Generator) Name() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return nonEmpty(truncateRunes(g.faker.Name(), seedscan.MaxNameLength), "Anonymous")
}

// Sentence returns one short sentence.
func (g *Generator) Sentence() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return nonEmpty(g.faker.Sentence(sentenceWords), "Lorem ipsum dolor sit amet.")
}

// Paragraph returns one paragraph of a few sentences.
func (g *Generator) Paragraph() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return nonEmpty(g.faker.Paragraph(1, paragraphSentences, paragraphWords, " "),
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit.")
}

// NewRecord assembles an unsaved record from gen: a name, a sentence for
// the normal column and a paragraph for the success column.
func NewRecord(gen seedscan.TextGenerator) seedscan.Record {
	return seedscan.Record{
		Name:    truncateRunes(gen.Name(), seedscan.MaxNameLength),
		Normal:  gen.Sentence(),
		Success: gen.Paragraph(),
	}
}

func truncateRunes(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max]))
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
