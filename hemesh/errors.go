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

package hemesh

import "errors"

// Errors returned by mesh construction.
var (
	ErrDegeneratePolygon = errors.New("hemesh: polygon has fewer than 3 vertices or repeats a vertex")
	ErrIndexRange        = errors.New("hemesh: vertex index out of range")
	ErrIndexGap          = errors.New("hemesh: vertex indices are not contiguous from 0")
	ErrFlatLength        = errors.New("hemesh: index count is not a multiple of the side count")
	ErrNonManifoldEdge   = errors.New("hemesh: more than one polygon on the same side of an edge")
	ErrNonManifoldVertex = errors.New("hemesh: vertex has no consistent boundary ordering")
)

// Errors returned by edit operations.
var (
	ErrNotInMesh         = errors.New("hemesh: entity does not belong to this mesh")
	ErrSameVertex        = errors.New("hemesh: both ends are the same vertex")
	ErrConnected         = errors.New("hemesh: vertices are already connected")
	ErrHalfEdgeNotFree   = errors.New("hemesh: half-edge already bounds a polygon")
	ErrEdgeNotFree       = errors.New("hemesh: edge still bounds a polygon")
	ErrNotIsolated       = errors.New("hemesh: vertex still has incident edges")
	ErrNotLoop           = errors.New("hemesh: half-edges do not form a closed loop")
	ErrBoundaryEdge      = errors.New("hemesh: edge lies on the boundary")
	ErrDifferentPolygon  = errors.New("hemesh: half-edges lie on different polygons")
	ErrNotOnPolygon      = errors.New("hemesh: vertex is not on the polygon")
	ErrDuplicateEdge     = errors.New("hemesh: operation would create a duplicate edge")
	ErrNonManifoldResult = errors.New("hemesh: operation would produce a non-manifold mesh")
	ErrStaleIndex        = errors.New("hemesh: mesh changed since the snapshot was taken")
)

// precondition reports a violated precondition of an edit operation. Builds
// tagged hemeshdebug panic instead of returning.
func precondition(err error) error {
	if debugChecks && err != nil {
		panic(err)
	}
	return err
}
