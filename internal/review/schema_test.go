package review_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathmap/internal/review"
)

func TestEncode_AllStrategiesConform(t *testing.T) {
	gen, _ := newGenerator(t)
	profile := review.Profile{Name: "小红", Weaknesses: []string{"NA3", "CA3"}, TotalDays: 21}

	for _, s := range review.AllStrategies() {
		t.Run(s.String(), func(t *testing.T) {
			plan, err := gen.Generate(profile, s)
			require.NoError(t, err)

			raw, err := review.Encode(plan)
			require.NoError(t, err)

			var doc map[string]any
			require.NoError(t, json.Unmarshal(raw, &doc))
			assert.Equal(t, s.String(), doc["strategy"])
			assert.Contains(t, doc, s.String())

			back, err := review.Decode(raw)
			require.NoError(t, err)
			assert.Equal(t, plan, back)
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	profile := review.Profile{Name: "小明", Weaknesses: []string{"CA2", "GG2"}, TotalDays: 28}
	for _, s := range review.AllStrategies() {
		genA, _ := newGenerator(t)
		genB, _ := newGenerator(t)

		a, err := genA.Generate(profile, s)
		require.NoError(t, err)
		b, err := genB.Generate(profile, s)
		require.NoError(t, err)

		rawA, err := review.Encode(a)
		require.NoError(t, err)
		rawB, err := review.Encode(b)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(rawA, rawB), "%s: output differs between runs", s)
	}
}

func TestEncode_EmptyListsAreArrays(t *testing.T) {
	gen, _ := newGenerator(t)
	plan, err := gen.Generate(review.Profile{TotalDays: 14}, review.WeaknessFocused)
	require.NoError(t, err)

	raw, err := review.Encode(plan)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "null")
}

func TestValidatePlanJSON_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"strategy":`},
		{"missing title", `{"strategy":"concept_integration","concept_integration":{"clusters":[],"projects":[]}}`},
		{"unknown strategy", `{"strategy":"cram","title":"x"}`},
		{"missing section", `{"strategy":"exam_preparation","title":"考试冲刺","total_days":30}`},
		{"mismatched section", `{"strategy":"exam_preparation","title":"考试冲刺","concept_integration":{"clusters":[],"projects":[]}}`},
		{"extra field", `{"strategy":"concept_integration","title":"概念整合","concept_integration":{"clusters":[],"projects":[]},"score":1}`},
		{"zero total days", `{"strategy":"concept_integration","title":"概念整合","total_days":0,"concept_integration":{"clusters":[],"projects":[]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := review.ValidatePlanJSON([]byte(tt.raw))
			require.Error(t, err)
			var invalid *review.ErrInvalidPlan
			assert.True(t, errors.As(err, &invalid), "got %T", err)
		})
	}
}

func TestValidatePlanJSON_Accepts(t *testing.T) {
	raw := `{"strategy":"concept_integration","title":"概念整合","concept_integration":{"clusters":[],"projects":[]}}`
	assert.NoError(t, review.ValidatePlanJSON([]byte(raw)))
}

func TestDecode_RejectsInvalid(t *testing.T) {
	plan, err := review.Decode([]byte(`{"strategy":"weakness_focused","title":"弱项突破"}`))
	assert.Nil(t, plan)
	var invalid *review.ErrInvalidPlan
	assert.ErrorAs(t, err, &invalid)
}
