package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polymaze/builder"
	"github.com/katalvlaran/polymaze/maze"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestGenerate_Text(t *testing.T) {
	out, _, err := run(t, "generate", "--shape", "octa", "-n", "3", "--seed", "5", "--preset", "hard")
	require.NoError(t, err)
	assert.Contains(t, out, "octahedron_s5_n3")
	assert.Contains(t, out, "Solution:")
	for _, stage := range []string{"backbone", "loops", "one_way", "prune", "cull", "collectibles"} {
		assert.Contains(t, out, stage)
	}
}

func TestGenerate_JSONMatchesLibrary(t *testing.T) {
	out, _, err := run(t, "generate", "--shape", "cube", "-n", "3", "--seed", "9", "--output", "json", "--workers", "2")
	require.NoError(t, err)

	var got maze.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, builder.Cube, got.Descriptor.Spec.Shape)
	assert.Equal(t, uint64(9), got.Descriptor.Seed)

	m, err := maze.Regenerate(context.Background(), got.Descriptor)
	require.NoError(t, err)
	assert.Equal(t, m.Snapshot().Corridors, got.Corridors)
}

func TestGenerate_YAMLLevel(t *testing.T) {
	out, _, err := run(t, "generate", "--level", "level-04", "-o", "yaml")
	require.NoError(t, err)

	var got maze.Snapshot
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, builder.Dodecahedron, got.Descriptor.Spec.Shape)
	assert.NotEmpty(t, got.Rooms)
}

func TestGenerate_ParamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preset: easy\ncull_pass_through_nodes: false\n"), 0o600))

	out, _, err := run(t, "generate", "--shape", "tetrahedron", "-n", "1", "--params", path, "-o", "json")
	require.NoError(t, err)

	var got maze.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Rooms, 4)
	assert.Len(t, got.Corridors, 3)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad shape", []string{"generate", "--shape", "sphere"}},
		{"bad n", []string{"generate", "--shape", "dodecahedron", "-n", "2"}},
		{"bad preset", []string{"generate", "--preset", "brutal"}},
		{"bad level", []string{"generate", "--level", "level-99"}},
		{"bad output", []string{"generate", "-o", "xml"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestLevels(t *testing.T) {
	out, _, err := run(t, "levels")
	require.NoError(t, err)
	assert.Contains(t, out, "level-01")
	assert.Contains(t, out, "level-20")
	assert.Contains(t, out, "icosahedron")
	assert.Contains(t, out, "Collectibles")
}

func TestLevels_GenerateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	body := "levels:\n" +
		"  - {name: one, spec: {shape: cube, n: 2}, seed: 1}\n" +
		"  - {name: two, spec: {shape: tetrahedron, n: 3}, seed: 2}\n" +
		"  - {name: three, spec: {shape: icosahedron, n: 2}, seed: 3, preset: hard}\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	out, _, err := run(t, "levels", "--file", path, "--generate", "--parallel", "3")
	require.NoError(t, err)
	for _, name := range []string{"one", "two", "three", "Rooms", "Moves"} {
		assert.Contains(t, out, name)
	}
}

func TestVerify(t *testing.T) {
	out, _, err := run(t, "verify", "--shape", "icosahedron", "-n", "2", "--seed", "4", "--preset", "hard")
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
	assert.NotContains(t, out, "FAIL")
}

func TestMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.json")
	body := `{"levels": [{"spec": {"shape": "cube", "n": 2}, "seed": 1}, {"spec": {"shape": "octahedron", "n": 3}, "seed": 2}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	out, _, err := run(t, "metrics", "--file", path)
	require.NoError(t, err)
	for _, metric := range []string{
		"polymaze_stage_attempts_total",
		"polymaze_stage_commits_total",
		"polymaze_generation_duration_seconds",
		"polymaze_maze_vertices",
		`stage="backbone"`,
	} {
		assert.Contains(t, out, metric)
	}
}

func TestTraceFlag(t *testing.T) {
	_, stderr, err := run(t, "--trace", "generate", "--shape", "cube", "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "carve.prune")
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv("POLYMAZE_LOG_LEVEL", "debug")
	_, stderr, err := run(t, "generate", "--shape", "cube", "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "carve stage done")

	_, stderr, err = run(t, "--log-level", "error", "generate", "--shape", "cube", "-n", "2")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "carve stage done", "an explicit flag beats the environment")
}
