package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the curriculum asset major version this build reads.
const SupportedMajor = "v1"

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://curriculum.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func curriculumSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateSchema checks the raw asset against the embedded JSON schema.
// YAML is converted to JSON first so the validator sees JSON numbers.
func validateSchema(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse curriculum: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("curriculum is empty")
	}
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("convert curriculum to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(asJSON))
	if err != nil {
		return fmt.Errorf("decode curriculum JSON: %w", err)
	}

	sch, err := curriculumSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("curriculum schema validation failed: %w", err)
	}
	return nil
}

// validateDocument performs the cross-reference checks the schema cannot
// express. Returns a combined error describing all problems found.
func validateDocument(doc *document) error {
	var errs []string

	if !semver.IsValid(doc.Version) {
		errs = append(errs, fmt.Sprintf("invalid version %q", doc.Version))
	} else if semver.Major(doc.Version) != SupportedMajor {
		errs = append(errs, fmt.Sprintf("unsupported curriculum version %s (want %s.x.x)", doc.Version, SupportedMajor))
	}

	phaseIDs := make(map[int]bool, len(doc.Phases))
	for _, p := range doc.Phases {
		if phaseIDs[p.ID] {
			errs = append(errs, fmt.Sprintf("duplicate phase ID: %d", p.ID))
		}
		phaseIDs[p.ID] = true
	}

	quizPhases := make(map[int]bool, len(doc.Quizzes))
	for _, q := range doc.Quizzes {
		if !phaseIDs[q.Phase] {
			errs = append(errs, fmt.Sprintf("quiz references unknown phase %d", q.Phase))
		}
		if quizPhases[q.Phase] {
			errs = append(errs, fmt.Sprintf("duplicate quiz for phase %d", q.Phase))
		}
		quizPhases[q.Phase] = true
		for _, qq := range q.Questions {
			prefix := fmt.Sprintf("phase %d question %d", q.Phase, qq.ID)
			if len(qq.Options) < 2 {
				errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(qq.Options)))
			}
			if qq.Correct < 0 || qq.Correct >= len(qq.Options) {
				errs = append(errs, fmt.Sprintf("%s: correct index %d out of range", prefix, qq.Correct))
			}
		}
	}

	partNames := make(map[string]bool, len(doc.Parts))
	for _, p := range doc.Parts {
		if partNames[p.Name] {
			errs = append(errs, fmt.Sprintf("duplicate part spec: %q", p.Name))
		}
		partNames[p.Name] = true
	}

	moveIDs := make(map[string]bool, len(doc.Movements))
	for _, m := range doc.Movements {
		if moveIDs[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate movement ID: %q", m.ID))
		}
		moveIDs[m.ID] = true
	}

	topics := make(map[string]bool, len(doc.Theory))
	for _, t := range doc.Theory {
		if topics[t.Topic] {
			errs = append(errs, fmt.Sprintf("duplicate theory topic: %q", t.Topic))
		}
		topics[t.Topic] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
