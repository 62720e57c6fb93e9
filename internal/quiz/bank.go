package quiz

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed bank.json
var bankJSON []byte

//go:embed bank.schema.json
var bankSchemaJSON []byte

var (
	bankOnce sync.Once
	bank     []Question
	bankErr  error
)

// Bank returns the fixed, ordered question battery. The embedded data is
// schema-validated and decoded exactly once; a malformed bank is a build
// defect and surfaces as an error at first use.
func Bank() ([]Question, error) {
	bankOnce.Do(func() {
		bank, bankErr = loadBank(bankJSON)
	})
	return bank, bankErr
}

func loadBank(data []byte) ([]Question, error) {
	if err := validateBank(data); err != nil {
		return nil, err
	}

	var qs []Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	seen := make(map[int]bool, len(qs))
	for _, q := range qs {
		if seen[q.ID] {
			return nil, fmt.Errorf("question bank: duplicate id %d", q.ID)
		}
		seen[q.ID] = true
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, fmt.Errorf("question bank: id %d correctAnswer %d out of range", q.ID, q.CorrectAnswer)
		}
	}

	return qs, nil
}

// validateBank checks the raw bank JSON against the embedded schema.
func validateBank(data []byte) error {
	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(bankSchemaJSON))
	if err != nil {
		return fmt.Errorf("parse bank schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://question-bank.json", schemaDoc); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema://question-bank.json")
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse question bank: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("question bank schema validation: %w", err)
	}

	return nil
}
