// Package content holds the immutable curriculum tables: phases, lessons,
// quizzes, part specifications, movement data, reference theory and
// career material. The tables are loaded once from an embedded YAML asset
// and are safe for concurrent reads.
package content

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Placeholder texts rendered in place of missing content.
const (
	NoDataAvailable       = "No data available."
	ServiceGuideMissing   = "Service guide not available."
	curriculumTopicFormat = "Detailed Curriculum for Phase %d"
)

//go:embed curriculum.yaml
var curriculumYAML []byte

// Catalog is a read-only view over one loaded curriculum asset.
type Catalog struct {
	version   string
	phases    []Phase
	phaseByID map[int]int
	lessons   []Lesson
	quizzes   map[int][]QuizQuestion
	parts     []PartSpec
	partByKey map[string]int
	movements []Movement
	moveByID  map[string]int
	sheets    map[string][]TechnicalPart
	guides    map[string]string
	theory    map[string]string
	books     []Book
	topics    []string
	career    Career
}

// def is the package-level catalog built from the embedded asset.
var def *Catalog

func init() {
	c, err := Load(curriculumYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded curriculum is invalid: %v", err))
	}
	def = c
}

// Default returns the catalog built from the embedded curriculum.
func Default() *Catalog {
	return def
}

// Load parses and validates a curriculum asset.
func Load(data []byte) (*Catalog, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse curriculum: %w", err)
	}
	if err := validateDocument(&doc); err != nil {
		return nil, err
	}
	return build(&doc), nil
}

func build(doc *document) *Catalog {
	c := &Catalog{
		version:   doc.Version,
		phases:    doc.Phases,
		phaseByID: make(map[int]int, len(doc.Phases)),
		lessons:   doc.Lessons,
		quizzes:   make(map[int][]QuizQuestion, len(doc.Quizzes)),
		parts:     doc.Parts,
		partByKey: make(map[string]int, len(doc.Parts)),
		moveByID:  make(map[string]int, len(doc.Movements)),
		sheets:    make(map[string][]TechnicalPart, len(doc.Movements)),
		guides:    make(map[string]string),
		theory:    make(map[string]string, len(doc.Theory)),
		books:     doc.Library.Books,
		topics:    doc.Library.Topics,
		career:    doc.Career,
	}

	sort.SliceStable(c.phases, func(i, j int) bool { return c.phases[i].ID < c.phases[j].ID })
	for i, p := range c.phases {
		c.phaseByID[p.ID] = i
	}
	for _, q := range doc.Quizzes {
		c.quizzes[q.Phase] = q.Questions
	}
	for i, p := range c.parts {
		c.partByKey[p.Name] = i
	}
	for i, m := range doc.Movements {
		c.movements = append(c.movements, m.Movement)
		c.moveByID[m.ID] = i
		c.sheets[m.ID] = m.Sheet
		if strings.TrimSpace(m.Guide) != "" {
			c.guides[m.ID] = m.Guide
		}
	}
	for _, t := range doc.Theory {
		c.theory[t.Topic] = t.Text
	}
	return c
}

// Version returns the semantic version of the loaded asset.
func (c *Catalog) Version() string { return c.version }

// Phases returns all phases in ID order.
func (c *Catalog) Phases() []Phase {
	return append([]Phase(nil), c.phases...)
}

// Phase returns the phase with the given ID.
func (c *Catalog) Phase(id int) (Phase, bool) {
	i, ok := c.phaseByID[id]
	if !ok {
		return Phase{}, false
	}
	return c.phases[i], true
}

// Lessons returns the syllabus lessons in display order.
func (c *Catalog) Lessons() []Lesson {
	return append([]Lesson(nil), c.lessons...)
}

// Quiz returns the questions for a phase. The second value is false when
// no quiz is defined for the phase.
func (c *Catalog) Quiz(phaseID int) ([]QuizQuestion, bool) {
	q, ok := c.quizzes[phaseID]
	if !ok {
		return nil, false
	}
	return append([]QuizQuestion(nil), q...), true
}

// PartNames returns the part keys in display order.
func (c *Catalog) PartNames() []string {
	names := make([]string, len(c.parts))
	for i, p := range c.parts {
		names[i] = p.Name
	}
	return names
}

// PartSpec returns the specification card for a part key.
func (c *Catalog) PartSpec(name string) (PartSpec, bool) {
	i, ok := c.partByKey[name]
	if !ok {
		return PartSpec{}, false
	}
	return c.parts[i], true
}

// Movements returns the bench calibers in display order.
func (c *Catalog) Movements() []Movement {
	return append([]Movement(nil), c.movements...)
}

// Movement returns the caliber with the given ID.
func (c *Catalog) Movement(id string) (Movement, bool) {
	i, ok := c.moveByID[id]
	if !ok {
		return Movement{}, false
	}
	return c.movements[i], true
}

// MovementParts returns the technical data sheet of a caliber.
func (c *Catalog) MovementParts(id string) []TechnicalPart {
	return append([]TechnicalPart(nil), c.sheets[id]...)
}

// SearchParts filters a caliber's data sheet by a case-insensitive
// substring of the part name, part number or category. An empty query
// returns the full sheet.
func (c *Catalog) SearchParts(id, query string) []TechnicalPart {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.MovementParts(id)
	}
	var out []TechnicalPart
	for _, p := range c.sheets[id] {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.ID), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// ServiceGuide returns the service walkthrough for a caliber.
func (c *Catalog) ServiceGuide(id string) (string, bool) {
	g, ok := c.guides[id]
	return g, ok
}

// Theory returns the pre-authored text for a topic. Matching is exact.
func (c *Catalog) Theory(topic string) (string, bool) {
	t, ok := c.theory[topic]
	return t, ok
}

// TheoryTopics returns all topics that have pre-authored text, sorted.
func (c *Catalog) TheoryTopics() []string {
	out := make([]string, 0, len(c.theory))
	for k := range c.theory {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Books returns the library's reference texts.
func (c *Catalog) Books() []Book {
	return append([]Book(nil), c.books...)
}

// Topics returns the library's physics topics.
func (c *Catalog) Topics() []string {
	return append([]string(nil), c.topics...)
}

// Career returns the career-readiness content.
func (c *Catalog) Career() Career {
	return c.career
}

// CurriculumTopic returns the deep-dive topic for a phase's detailed
// curriculum.
func CurriculumTopic(phaseID int) string {
	return fmt.Sprintf(curriculumTopicFormat, phaseID)
}
