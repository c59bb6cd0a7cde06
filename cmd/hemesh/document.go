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
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akhenakh/hemesh/meshedit"
)

var errNoPositions = errors.New("document has no positions")

// Document is the on-disk mesh description: polygons as vertex index lists
// and optional vertex positions. JSON documents are read as YAML.
type Document struct {
	Faces     [][]int     `yaml:"faces"`
	Positions [][]float64 `yaml:"positions,omitempty"`
}

func readDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return doc, nil
		}
		return doc, fmt.Errorf("decode document: %w", err)
	}
	for i, p := range doc.Positions {
		if len(p) != 3 {
			return doc, fmt.Errorf("position %d has %d coordinates, want 3", i, len(p))
		}
	}
	return doc, nil
}

func readDocumentFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	return readDocument(f)
}

func writeDocument(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return enc.Close()
}

func (d Document) points() []meshedit.Point {
	pts := make([]meshedit.Point, len(d.Positions))
	for i, p := range d.Positions {
		pts[i] = meshedit.Point{X: p[0], Y: p[1], Z: p[2]}
	}
	return pts
}

func (d Document) triangles() ([][3]int, error) {
	tris := make([][3]int, len(d.Faces))
	for i, f := range d.Faces {
		if len(f) != 3 {
			return nil, fmt.Errorf("face %d has %d vertices: %w", i, len(f), meshedit.ErrNotTriMesh)
		}
		tris[i] = [3]int{f[0], f[1], f[2]}
	}
	return tris, nil
}

func fromPoints(pts []meshedit.Point) [][]float64 {
	out := make([][]float64, len(pts))
	for i, p := range pts {
		out[i] = []float64{p.X, p.Y, p.Z}
	}
	return out
}

func fromTriangles(tris [][3]int) [][]int {
	out := make([][]int, len(tris))
	for i, t := range tris {
		out[i] = []int{t[0], t[1], t[2]}
	}
	return out
}
