// Copyright 2026 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhenakh/hemesh/hemesh"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

const tetraYAML = `faces:
  - [0, 1, 2]
  - [0, 3, 1]
  - [1, 3, 2]
  - [2, 3, 0]
`

const fanJSON = `{
  "faces": [[0, 1, 4], [1, 2, 4], [2, 3, 4], [3, 0, 4]],
  "positions": [[0, 0, 0], [1, 0, 0], [1, 1, 0], [0, 1, 0], [0.3, 0.8, 2]]
}`

func TestInfo(t *testing.T) {
	out, _, err := run(t, "info", writeFile(t, "tetra.yaml", tetraYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "vertices: 4\n")
	assert.Contains(t, out, "edges: 6\n")
	assert.Contains(t, out, "polygons: 4\n")
	assert.Contains(t, out, "boundaries: 0\n")
	assert.Contains(t, out, "triangle mesh: true\n")
	assert.Contains(t, out, "valid: true\n")
	assert.NotContains(t, out, "centroid")

	out, _, err = run(t, "info", writeFile(t, "fan.json", fanJSON))
	require.NoError(t, err)
	assert.Contains(t, out, "boundaries: 1\n")
	assert.Contains(t, out, "centroid: ")
	assert.Contains(t, out, "bounds: 0 0 0, 1 1 2\n")
	assert.Contains(t, out, "area: ")
}

func TestInfoRejectsBadMesh(t *testing.T) {
	path := writeFile(t, "gap.yaml", "faces: [[0, 1, 2], [0, 2, 5]]\n")
	_, _, err := run(t, "info", path)
	assert.ErrorIs(t, err, hemesh.ErrIndexGap)

	_, _, err = run(t, "info", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBoundaries(t *testing.T) {
	out, _, err := run(t, "boundaries", writeFile(t, "sq.yaml", "faces: [[0, 1, 2], [0, 2, 3]]\n"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Len(t, strings.Fields(lines[0]), 4)

	out, _, err = run(t, "boundaries", writeFile(t, "tetra.yaml", tetraYAML))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExportRoundTrip(t *testing.T) {
	out, _, err := run(t, "export", writeFile(t, "tetra.yaml", tetraYAML))
	require.NoError(t, err)
	doc, err := readDocument(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 3, 1}, {1, 3, 2}, {2, 3, 0}}, doc.Faces)
	assert.Empty(t, doc.Positions)

	dst := filepath.Join(t.TempDir(), "out.yaml")
	_, _, err = run(t, "export", "-o", dst, writeFile(t, "fan.json", fanJSON))
	require.NoError(t, err)
	doc, err = readDocumentFile(dst)
	require.NoError(t, err)
	assert.Len(t, doc.Faces, 4)
	assert.Len(t, doc.Positions, 5)
}

func TestMinSurf(t *testing.T) {
	out, _, err := run(t, "minsurf", writeFile(t, "fan.json", fanJSON))
	require.NoError(t, err)
	doc, err := readDocument(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, doc.Positions, 5)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 0}, doc.Positions[4], 1e-12)
	assert.Equal(t, []float64{1, 1, 0}, doc.Positions[2])
}

func TestMinSurfGlue(t *testing.T) {
	soup := `faces: [[0, 1, 2], [3, 4, 5], [6, 7, 8], [9, 10, 11]]
positions:
  - [0, 0, 0]
  - [1, 0, 0]
  - [0.3, 0.8, 2]
  - [1, 0, 0]
  - [1, 1, 0]
  - [0.3, 0.8, 2]
  - [1, 1, 0]
  - [0, 1, 0]
  - [0.3, 0.8, 2]
  - [0, 1, 0]
  - [0, 0, 0]
  - [0.3, 0.8, 2]
`
	out, stderr, err := run(t, "minsurf", "--glue", "--log-level", "debug", writeFile(t, "soup.yaml", soup))
	require.NoError(t, err)
	assert.Contains(t, stderr, "glued positions")
	doc, err := readDocument(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, doc.Positions, 5)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 0}, doc.Positions[2], 1e-12)
}

func TestMinSurfErrors(t *testing.T) {
	_, _, err := run(t, "minsurf", writeFile(t, "tetra.yaml", tetraYAML))
	assert.ErrorIs(t, err, errNoPositions)

	quad := "faces: [[0, 1, 2, 3]]\npositions: [[0, 0, 0], [1, 0, 0], [1, 1, 0], [0, 1, 0]]\n"
	_, _, err = run(t, "minsurf", writeFile(t, "quad.yaml", quad))
	assert.Error(t, err)

	bad := "faces: [[0, 1, 2]]\npositions: [[0, 0], [1, 0, 0], [1, 1, 0]]\n"
	_, _, err = run(t, "minsurf", writeFile(t, "bad.yaml", bad))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := writeFile(t, "cfg.yaml", "log_level: debug\nminsurf:\n  max_iterations: 7\n")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 7, cfg.MinSurf.MaxIterations)
	assert.Equal(t, DefaultConfig().MinSurf.Tolerance, cfg.MinSurf.Tolerance)

	_, err = LoadConfig(writeFile(t, "lvl.yaml", "log_level: loud\n"))
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestConfigFlagAndLogLevel(t *testing.T) {
	cfgPath := writeFile(t, "cfg.yaml", "minsurf:\n  max_iterations: 1\n")
	out, stderr, err := run(t, "--config", cfgPath, "--log-level", "warn", "minsurf", writeFile(t, "fan.json", fanJSON))
	require.NoError(t, err)
	assert.Contains(t, stderr, "did not converge")
	assert.NotContains(t, stderr, "minsurf done")
	assert.NotEmpty(t, out)

	_, _, err = run(t, "--log-level", "loud", "info", writeFile(t, "tetra.yaml", tetraYAML))
	assert.Error(t, err)
}
