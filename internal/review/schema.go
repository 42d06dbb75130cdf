package review

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	stringList = map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	dayList    = map[string]any{"type": "array", "items": map[string]any{"type": "integer", "minimum": 1}}
)

// PlanSchema is the JSON contract for serialized plans, as consumed by
// presentation layers and the plan archive.
var PlanSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"strategy": map[string]any{
			"type": "string",
			"enum": []any{"weakness_focused", "exam_preparation", "concept_integration"},
		},
		"title":      map[string]any{"type": "string", "minLength": 1},
		"student":    map[string]any{"type": "string"},
		"total_days": map[string]any{"type": "integer", "minimum": 1},
		"weakness_focused": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"weaknesses": stringList,
				"foundation": stringList,
				"weeks": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"week":     map[string]any{"type": "integer", "minimum": 1},
							"label":    map[string]any{"type": "string"},
							"goal":     map[string]any{"type": "string"},
							"topics":   stringList,
							"days":     map[string]any{"type": "array", "items": map[string]any{"$ref": "#/$defs/day"}},
							"practice": map[string]any{"type": "string"},
						},
						"required":             []any{"week", "label", "topics", "days"},
						"additionalProperties": false,
					},
				},
				"assessment_days": dayList,
			},
			"required":             []any{"weaknesses", "foundation", "weeks", "assessment_days"},
			"additionalProperties": false,
		},
		"exam_preparation": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"total_phases":   map[string]any{"type": "integer", "minimum": 1},
				"days_per_phase": map[string]any{"type": "integer", "minimum": 1},
				"phases": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name":          map[string]any{"type": "string"},
							"focus":         stringList,
							"days":          map[string]any{"type": "array", "items": map[string]any{"$ref": "#/$defs/daily"}},
							"practice_type": map[string]any{"type": "string"},
						},
						"required":             []any{"name", "focus", "days", "practice_type"},
						"additionalProperties": false,
					},
				},
				"mock_exam_days": dayList,
			},
			"required":             []any{"total_phases", "days_per_phase", "phases", "mock_exam_days"},
			"additionalProperties": false,
		},
		"concept_integration": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"clusters": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"cluster":     map[string]any{"type": "string"},
							"description": map[string]any{"type": "string"},
							"path": map[string]any{
								"type": "array",
								"items": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"concept":            map[string]any{"type": "string"},
										"name":               map[string]any{"type": "string"},
										"prerequisite_count": map[string]any{"type": "integer", "minimum": 0},
									},
									"required":             []any{"concept", "name", "prerequisite_count"},
									"additionalProperties": false,
								},
							},
							"activities": stringList,
						},
						"required":             []any{"cluster", "description", "path", "activities"},
						"additionalProperties": false,
					},
				},
				"projects": stringList,
			},
			"required":             []any{"clusters", "projects"},
			"additionalProperties": false,
		},
	},
	"required":             []any{"strategy", "title"},
	"additionalProperties": false,
	"allOf": []any{
		section("weakness_focused"),
		section("exam_preparation"),
		section("concept_integration"),
	},
	"$defs": map[string]any{
		"day": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"day":    map[string]any{"type": "integer", "minimum": 1},
				"topics": stringList,
			},
			"required":             []any{"day", "topics"},
			"additionalProperties": false,
		},
		"daily": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"day":         map[string]any{"type": "integer", "minimum": 1},
				"topics":      stringList,
				"topic_names": stringList,
				"duration":    map[string]any{"type": "string"},
				"practice": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"basic":    map[string]any{"type": "string"},
						"advanced": map[string]any{"type": "string"},
						"review":   map[string]any{"type": "string"},
					},
					"required":             []any{"basic", "advanced", "review"},
					"additionalProperties": false,
				},
			},
			"required":             []any{"day", "topics", "topic_names", "duration", "practice"},
			"additionalProperties": false,
		},
	},
}

// section requires the schedule named key exactly when strategy == key.
func section(key string) map[string]any {
	return map[string]any{
		"if": map[string]any{
			"properties": map[string]any{"strategy": map[string]any{"const": key}},
		},
		"then": map[string]any{"required": []any{key}},
		"else": map[string]any{"not": map[string]any{"required": []any{key}}},
	}
}

const planSchemaURL = "schema://review-plan.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func planSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, not Go maps with
		// native int types, so round-trip the definition first.
		raw, err := json.Marshal(PlanSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal plan schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = fmt.Errorf("parse plan schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(planSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(planSchemaURL)
	})
	return compiled, compileErr
}

// ValidatePlanJSON checks raw against PlanSchema. Returns *ErrInvalidPlan
// if raw is not valid JSON or does not conform.
func ValidatePlanJSON(raw []byte) error {
	sch, err := planSchema()
	if err != nil {
		return fmt.Errorf("compile plan schema: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidPlan{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := sch.Validate(inst); err != nil {
		return &ErrInvalidPlan{Err: err}
	}
	return nil
}

// Encode serializes p as indented JSON and checks it against PlanSchema.
func Encode(p *Plan) ([]byte, error) {
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal plan: %w", err)
	}
	if err := ValidatePlanJSON(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Decode parses a serialized plan after checking it against PlanSchema.
func Decode(raw []byte) (*Plan, error) {
	if err := ValidatePlanJSON(raw); err != nil {
		return nil, err
	}
	var p Plan
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	return &p, nil
}
