package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c := Default()
	require.NotNil(t, c)

	assert.Equal(t, "v1.0.0", c.Version())
	assert.Len(t, c.Phases(), 4)
	assert.Len(t, c.Lessons(), 9)
	assert.Len(t, c.Movements(), 3)
	assert.Len(t, c.PartNames(), 12)
}

func TestEveryPhaseHasQuizAndCurriculum(t *testing.T) {
	c := Default()
	for _, p := range c.Phases() {
		q, ok := c.Quiz(p.ID)
		if !ok || len(q) == 0 {
			t.Errorf("phase %d has no quiz", p.ID)
		}
		if _, ok := c.Theory(p.CurriculumTopic()); !ok {
			t.Errorf("phase %d has no curriculum text under %q", p.ID, p.CurriculumTopic())
		}
	}
}

func TestQuizCorrectIndicesInRange(t *testing.T) {
	c := Default()
	for _, p := range c.Phases() {
		q, _ := c.Quiz(p.ID)
		for _, qq := range q {
			if qq.Correct < 0 || qq.Correct >= len(qq.Options) {
				t.Errorf("phase %d question %d: correct %d out of range", p.ID, qq.ID, qq.Correct)
			}
		}
	}
}

func TestQuizMissingPhase(t *testing.T) {
	_, ok := Default().Quiz(99)
	assert.False(t, ok)
}

func TestQuizReturnsCopy(t *testing.T) {
	c := Default()
	q, _ := c.Quiz(1)
	q[0].Correct = 3

	again, _ := c.Quiz(1)
	assert.Equal(t, 1, again[0].Correct)
}

func TestPartSpecLookup(t *testing.T) {
	c := Default()

	spec, ok := c.PartSpec("Cannon Pinion")
	require.True(t, ok)
	assert.Equal(t, "Friction Drive System", spec.Title)

	_, ok = c.PartSpec("Tourbillon Cage")
	assert.False(t, ok)
}

func TestServiceGuide(t *testing.T) {
	c := Default()

	g, ok := c.ServiceGuide("st3600")
	require.True(t, ok)
	assert.Contains(t, g, "ST3600")

	_, ok = c.ServiceGuide("eta2824")
	assert.False(t, ok)
}

func TestSearchParts(t *testing.T) {
	c := Default()

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"empty returns all", "", 12},
		{"by name", "magic", 1},
		{"name and category", "escape", 2},
		{"case insensitive", "ESCAPE WHEEL", 1},
		{"by category", "calendar", 2},
		{"by part number", "0015", 1},
		{"no match", "tourbillon", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.SearchParts("nh35a", tt.query)
			if len(got) != tt.want {
				t.Errorf("SearchParts(%q) = %d parts, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}

func TestSearchPartsUnknownMovement(t *testing.T) {
	assert.Empty(t, Default().SearchParts("unknown", "wheel"))
}

func TestTheoryExactMatch(t *testing.T) {
	c := Default()

	_, ok := c.Theory("The Theory of Horology")
	assert.True(t, ok)

	_, ok = c.Theory("the theory of horology")
	assert.False(t, ok, "lookup must be case sensitive")

	_, ok = c.Theory("The Theory of Horology ")
	assert.False(t, ok, "lookup must not trim")
}

func TestLibraryBooksHaveTheory(t *testing.T) {
	c := Default()
	for _, b := range c.Books() {
		if _, ok := c.Theory(b.Title); !ok {
			t.Errorf("book %q has no pre-authored text", b.Title)
		}
	}
}

func TestCareerContent(t *testing.T) {
	career := Default().Career()
	assert.Len(t, career.Pillars, 3)
	assert.Len(t, career.Checklist, 3)
	for _, cat := range career.Checklist {
		assert.Len(t, cat.Items, 4, cat.Title)
	}
	assert.NotEmpty(t, career.Protocol)
}

func TestCurriculumTopic(t *testing.T) {
	assert.Equal(t, "Detailed Curriculum for Phase 3", CurriculumTopic(3))
}

func TestLoadMinimal(t *testing.T) {
	c, err := Load([]byte(minimalYAML))
	require.NoError(t, err)

	q, ok := c.Quiz(1)
	require.True(t, ok)
	assert.Len(t, q, 1)
	assert.True(t, q[0].IsCorrect(0))
}

const minimalYAML = `
version: v1.2.0
phases:
  - { id: 1, title: "Only", goal: "", duration: "", quiz_topic: "Basics" }
quizzes:
  - phase: 1
    questions:
      - { id: 1, question: "Q?", options: ["a", "b"], correct: 0 }
parts: []
movements: []
theory: []
`

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty",
			yaml:    "",
			wantErr: "empty",
		},
		{
			name:    "major version mismatch",
			yaml:    strings.Replace(minimalYAML, "v1.2.0", "v2.0.0", 1),
			wantErr: "unsupported curriculum version",
		},
		{
			name:    "version not semver",
			yaml:    strings.Replace(minimalYAML, "v1.2.0", "one", 1),
			wantErr: "schema validation failed",
		},
		{
			name:    "correct index out of range",
			yaml:    strings.Replace(minimalYAML, "correct: 0", "correct: 5", 1),
			wantErr: "out of range",
		},
		{
			name:    "single option",
			yaml:    strings.Replace(minimalYAML, `["a", "b"]`, `["a"]`, 1),
			wantErr: "schema validation failed",
		},
		{
			name:    "quiz for unknown phase",
			yaml:    strings.Replace(minimalYAML, "  - phase: 1", "  - phase: 7", 1),
			wantErr: "unknown phase 7",
		},
		{
			name:    "missing phases",
			yaml:    "version: v1.0.0\nquizzes: []\nparts: []\nmovements: []\ntheory: []\n",
			wantErr: "schema validation failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
