package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathmap/internal/review"
	"github.com/abhisek/mathmap/internal/topicgraph"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mathmap (devel)\n", out)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelWarn, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestMasteryPersistsAcrossRuns(t *testing.T) {
	db := filepath.Join(t.TempDir(), "mathmap.db")

	out, err := run(t, "--db", db, "master", "NA1")
	require.NoError(t, err)
	assert.Contains(t, out, "NA1 分数四则混合运算 marked mastered")

	out, err = run(t, "--db", db, "topic", "show", "NA1")
	require.NoError(t, err)
	assert.Contains(t, out, "已掌握")

	_, err = run(t, "--db", db, "master", "ZZ9")
	assert.True(t, errors.Is(err, topicgraph.ErrNotFound), "got %v", err)
}

func TestPlanSaveAndList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "mathmap.db")

	out, err := run(t, "--db", db, "plan", "--strategy", "exam_preparation", "--name", "小明", "--json", "--save")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "exam_preparation", doc["strategy"])
	assert.Equal(t, "小明", doc["student"])
	assert.NoError(t, review.ValidatePlanJSON([]byte(out)))

	out, err = run(t, "--db", db, "plans", "list", "--student", "小明")
	require.NoError(t, err)
	assert.Contains(t, out, "exam_preparation")
	assert.Contains(t, out, "1 plans")
}

func TestPlanUnsupportedStrategy(t *testing.T) {
	db := filepath.Join(t.TempDir(), "mathmap.db")
	_, err := run(t, "--db", db, "plan", "--strategy", "cram", "--save=false")
	var unsupported *review.UnsupportedStrategyError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "cram", unsupported.Name)
}

func TestTopicTree(t *testing.T) {
	db := filepath.Join(t.TempDir(), "mathmap.db")
	out, err := run(t, "--db", db, "topic", "tree", "NA2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[0], "NA2 百分数的应用")
	assert.Contains(t, out, "depth 6, 7 distinct prerequisites")
}
