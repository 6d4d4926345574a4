// Package library resolves deep-dive topics. Pre-authored theory is served
// straight from the content catalog; anything else is generated once per
// request by the mentor.
package library

import (
	"context"

	"github.com/watchbench/apprentice/internal/content"
)

// Source tells where a deep-dive text came from.
type Source int

const (
	SourceLocal Source = iota
	SourceGenerated
)

func (s Source) String() string {
	if s == SourceLocal {
		return "local"
	}
	return "generated"
}

// Result is a resolved deep dive.
type Result struct {
	Topic  string
	Text   string
	Source Source
}

// TheorySource supplies pre-authored texts. *content.Catalog satisfies it.
type TheorySource interface {
	Theory(topic string) (string, bool)
}

// DeepDiver generates a text for a topic. *mentor.Mentor satisfies it.
type DeepDiver interface {
	DeepDive(ctx context.Context, topic string) string
}

// Library looks topics up locally before asking the mentor.
type Library struct {
	theory TheorySource
	diver  DeepDiver
}

// New creates a Library. A nil theory source uses the default catalog.
func New(theory TheorySource, diver DeepDiver) *Library {
	if theory == nil {
		theory = content.Default()
	}
	return &Library{theory: theory, diver: diver}
}

// IsLocal reports whether topic resolves without a backend call.
func (l *Library) IsLocal(topic string) bool {
	_, ok := l.theory.Theory(topic)
	return ok
}

// Lookup returns the stored text for an exact topic match, or makes
// exactly one deep-dive request on a miss.
func (l *Library) Lookup(ctx context.Context, topic string) Result {
	if text, ok := l.theory.Theory(topic); ok {
		return Result{Topic: topic, Text: text, Source: SourceLocal}
	}
	return Result{Topic: topic, Text: l.diver.DeepDive(ctx, topic), Source: SourceGenerated}
}
