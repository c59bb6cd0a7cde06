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

// slot records the position of an entity inside the set that owns it.
// A value of -1 marks an entity that has been removed from its mesh.
type slot struct {
	idx int
}

func (s *slot) slotIndex() *int { return &s.idx }

// Index returns the dense index of the entity in its mesh, or -1 if the
// entity has been removed. Indices are only stable until the next
// structural edit of the mesh.
func (s *slot) Index() int { return s.idx }

// storable is implemented by pointers to the four entity kinds.
type storable interface {
	comparable
	slotIndex() *int
}

// entitySet is a dense, unordered set of entity handles with O(1) insert,
// erase and index lookup. Erasing moves the last element into the freed
// slot, so any erase may change the index of one other element.
type entitySet[T storable] struct {
	items []T
}

func (s *entitySet[T]) insert(x T) {
	*x.slotIndex() = len(s.items)
	s.items = append(s.items, x)
}

// erase removes x and reports whether it was a member.
func (s *entitySet[T]) erase(x T) bool {
	if !s.contains(x) {
		return false
	}
	i := *x.slotIndex()
	last := len(s.items) - 1
	if i != last {
		moved := s.items[last]
		s.items[i] = moved
		*moved.slotIndex() = i
	}
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	*x.slotIndex() = -1
	return true
}

func (s *entitySet[T]) contains(x T) bool {
	var zero T
	if x == zero {
		return false
	}
	i := *x.slotIndex()
	return i >= 0 && i < len(s.items) && s.items[i] == x
}

// index returns the dense index of x, or false if x is not a member.
func (s *entitySet[T]) index(x T) (int, bool) {
	if !s.contains(x) {
		return -1, false
	}
	return *x.slotIndex(), true
}

func (s *entitySet[T]) size() int   { return len(s.items) }
func (s *entitySet[T]) empty() bool { return len(s.items) == 0 }

// slice returns the backing slice. Callers must not modify it.
func (s *entitySet[T]) slice() []T { return s.items }

func (s *entitySet[T]) reserve(n int) {
	if n <= cap(s.items) {
		return
	}
	items := make([]T, len(s.items), n)
	copy(items, s.items)
	s.items = items
}

// clear drops every element, marking each one as removed.
func (s *entitySet[T]) clear() {
	for _, x := range s.items {
		*x.slotIndex() = -1
	}
	s.items = nil
}
