package exam

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// KeyFile is the JSON answer key format:
//
//	{"name": "2026-spring", "answers": {"q1": "A", "q2": "B"}}
type KeyFile struct {
	Name    string            `json:"name"`
	Answers map[string]string `json:"answers"`
}

var keyFileSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"answers": map[string]any{
			"type":          "object",
			"minProperties": 1,
			"patternProperties": map[string]any{
				"^[qQ][0-9]+$": map[string]any{"type": "string"},
			},
			"additionalProperties": false,
		},
	},
	"required":             []any{"answers"},
	"additionalProperties": false,
}

var (
	keyFileSchemaOnce sync.Once
	keyFileSchema     *jsonschema.Schema
	keyFileSchemaErr  error
)

func compiledKeyFileSchema() (*jsonschema.Schema, error) {
	keyFileSchemaOnce.Do(func() {
		raw, err := json.Marshal(keyFileSchemaDef)
		if err != nil {
			keyFileSchemaErr = err
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			keyFileSchemaErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://answer-key.json", parsed); err != nil {
			keyFileSchemaErr = err
			return
		}
		keyFileSchema, keyFileSchemaErr = c.Compile("schema://answer-key.json")
	})
	return keyFileSchema, keyFileSchemaErr
}

// ParseKeyFile reads and validates a JSON answer key.
func ParseKeyFile(r io.Reader) (*KeyFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, dataErrorf("key file is not valid JSON: %v", err)
	}

	schema, err := compiledKeyFileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile key file schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, dataErrorf("key file rejected: %v", err)
	}

	var kf KeyFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("decode key file: %w", err)
	}
	return &kf, nil
}

// Questions returns the key's question labels sorted by number
// (q1, q2, ..., q10), lowercased.
func (k *KeyFile) Questions() []string {
	type entry struct {
		label  string
		number int
	}
	entries := make([]entry, 0, len(k.Answers))
	for label := range k.Answers {
		n, _ := strconv.Atoi(label[1:])
		entries = append(entries, entry{label: label, number: n})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].number < entries[j].number })

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = "q" + strconv.Itoa(e.number)
	}
	return out
}

// BuildKey converts the key file into an AnswerKey over the given
// question order. Questions absent from the file become invalid.
func (k *KeyFile) BuildKey(questions []string) (*AnswerKey, error) {
	raw := make(map[string]any, len(k.Answers))
	for label, ans := range k.Answers {
		n, _ := strconv.Atoi(label[1:])
		raw["q"+strconv.Itoa(n)] = ans
	}
	return BuildKey(questions, raw)
}
