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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akhenakh/hemesh/hemesh"
	"github.com/akhenakh/hemesh/meshedit"
)

type topoMesh = hemesh.Mesh[struct{}, struct{}, struct{}]

// app carries state shared by the subcommands.
type app struct {
	configPath string
	logLevel   string

	cfg    Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "hemesh",
		Short:        "Inspect and process half-edge polygon meshes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		a.infoCmd(),
		a.boundariesCmd(),
		a.exportCmd(),
		a.minsurfCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	lvl, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	return nil
}

// load reads a document and builds its mesh.
func (a *app) load(path string) (Document, *topoMesh, error) {
	doc, err := readDocumentFile(path)
	if err != nil {
		return doc, nil, err
	}
	m := hemesh.New[struct{}, struct{}, struct{}]()
	if err := m.Init(doc.Faces); err != nil {
		return doc, nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("mesh loaded",
		slog.String("file", path),
		slog.Int("vertices", m.NumVertices()),
		slog.Int("polygons", m.NumPolygons()))
	return doc, m, nil
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print counts and topology checks for a mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, m, err := a.load(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "vertices: %d\n", m.NumVertices())
			fmt.Fprintf(w, "half-edges: %d\n", m.NumHalfEdges())
			fmt.Fprintf(w, "edges: %d\n", m.NumEdges())
			fmt.Fprintf(w, "polygons: %d\n", m.NumPolygons())
			fmt.Fprintf(w, "boundaries: %d\n", m.NumBoundaries())
			fmt.Fprintf(w, "triangle mesh: %t\n", m.IsTriMesh())
			fmt.Fprintf(w, "isolated vertices: %t\n", m.HaveIsolatedVertices())
			fmt.Fprintf(w, "valid: %t\n", m.IsValid())
			if len(doc.Positions) == 0 {
				return nil
			}
			pts := doc.points()
			c := meshedit.Centroid(pts)
			lo, hi := meshedit.Bounds(pts)
			fmt.Fprintf(w, "centroid: %g %g %g\n", c.X, c.Y, c.Z)
			fmt.Fprintf(w, "bounds: %g %g %g, %g %g %g\n", lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
			if tris, err := doc.triangles(); err == nil {
				area, err := meshedit.Area(pts, tris)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "area: %g\n", area)
			}
			return nil
		},
	}
}

func (a *app) boundariesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boundaries FILE",
		Short: "Print each boundary loop as vertex indices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := a.load(args[0])
			if err != nil {
				return err
			}
			ix := m.Snapshot()
			w := cmd.OutOrStdout()
			for _, loop := range m.Boundaries() {
				idx := make([]string, len(loop))
				for i, he := range loop {
					k, err := ix.Vertex(he.Origin())
					if err != nil {
						return err
					}
					idx[i] = fmt.Sprint(k)
				}
				fmt.Fprintln(w, strings.Join(idx, " "))
			}
			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Rebuild a mesh and write its faces back out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, m, err := a.load(args[0])
			if err != nil {
				return err
			}
			return a.write(cmd, output, Document{Faces: m.Export(), Positions: doc.Positions})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (a *app) minsurfCmd() *cobra.Command {
	var (
		output        string
		glue          bool
		maxIterations int
		tolerance     float64
	)
	cmd := &cobra.Command{
		Use:   "minsurf FILE",
		Short: "Relax a triangle mesh toward the minimal surface spanned by its boundary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocumentFile(args[0])
			if err != nil {
				return err
			}
			if len(doc.Positions) == 0 {
				return fmt.Errorf("%s: %w", args[0], errNoPositions)
			}
			pts := doc.points()
			tris, err := doc.triangles()
			if err != nil {
				return err
			}
			if glue {
				indices, unique, err := meshedit.GlueWithLogger(a.logger, pts, tris)
				if err != nil {
					return err
				}
				tris = tris[:0]
				for i := 0; i < len(indices); i += 3 {
					tris = append(tris, [3]int{indices[i], indices[i+1], indices[i+2]})
				}
				pts = unique
			}

			opts := a.cfg.MinSurf.Options(a.logger)
			if cmd.Flags().Changed("max-iterations") {
				opts.MaxIterations = maxIterations
			}
			if cmd.Flags().Changed("tolerance") {
				opts.Tolerance = tolerance
			}
			s := meshedit.NewMinSurf(opts)
			if err := s.Init(pts, tris); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if err := s.Run(); err != nil {
				return err
			}
			a.logger.Info("minsurf done",
				slog.Int("iterations", s.Iterations()),
				slog.Bool("converged", s.Converged()))
			return a.write(cmd, output, Document{
				Faces:     fromTriangles(s.Triangles()),
				Positions: fromPoints(s.Positions()),
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&glue, "glue", false, "weld coincident positions before relaxing")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "override the configured iteration limit")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "override the configured squared-displacement tolerance")
	return cmd
}

func (a *app) write(cmd *cobra.Command, output string, doc Document) error {
	if output == "" {
		return writeDocument(cmd.OutOrStdout(), doc)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := writeDocument(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
