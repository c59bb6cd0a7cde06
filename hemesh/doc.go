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

/*
Package hemesh implements a half-edge mesh: a polygon mesh whose
connectivity is stored as pairs of directed half-edges, so that walking
around a polygon or around a vertex takes time proportional to its size.

A Mesh owns four kinds of entities: vertices, half-edges, edges and
polygons. Each carries a user payload through the Mesh type parameters and
a dense index in [0, count) that Index reports. Removing an entity moves the
last entity of the same kind into its slot, so indices are only stable
between edits; Snapshot returns an Indexer that detects stale use.

Every half-edge has a pair running the opposite way along the same edge, a
next half-edge continuing its loop, and either a polygon or none. A
half-edge without a polygon lies on a boundary loop.

Meshes are built either with Init from lists of vertex indices, or
incrementally with AddVertex, AddEdge and AddPolygon. Local edits
(SplitEdge, RotateEdge, CollapseEdge, EraseVertex, ConnectVertex and
others) either complete or fail with an error and leave the mesh
unchanged. Violated preconditions panic instead when built with the
hemeshdebug tag.
*/
package hemesh
