// Copyright 2015-2017 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package blank provides a sequential blank node identifier generator
// satisfying the jsonld.BlankNodeGenerator interface.
package blank

import (
	"fmt"

	"github.com/jsonld-go/ldcore/jsonld"
)

// SequentialGenerator issues identifiers of the form "<prefix><n>",
// keeping track of any previously issued identifiers so that the same
// input key always maps to the same output identifier.
type SequentialGenerator struct {
	prefix        string
	counter       int
	existing      map[string]string
	existingOrder []string
}

var _ jsonld.BlankNodeGenerator = (*SequentialGenerator)(nil)

// New creates a SequentialGenerator that issues identifiers prefixed
// with prefix, e.g. "_:b".
func New(prefix string) *SequentialGenerator {
	return &SequentialGenerator{
		prefix:   prefix,
		existing: make(map[string]string),
	}
}

// ID returns the identifier assigned to key, allocating a new one on
// first use. An empty key always allocates a fresh, unshared identifier.
func (g *SequentialGenerator) ID(key string) string {
	if key != "" {
		if existing, present := g.existing[key]; present {
			return existing
		}
	}

	id := fmt.Sprintf("%s%d", g.prefix, g.counter)
	g.counter++

	if key != "" {
		g.existing[key] = id
		g.existingOrder = append(g.existingOrder, key)
	}

	return id
}

// HasID reports whether key has already been assigned an identifier.
func (g *SequentialGenerator) HasID(key string) bool {
	_, present := g.existing[key]
	return present
}

// Clone returns an independent copy of g. Unlike the issuer this type
// replaces, Clone rebuilds existingOrder by direct slice copy rather
// than co-iterating a map and a slice by a shared index, which would
// pair entries up in whatever order the map happens to yield them.
func (g *SequentialGenerator) Clone() jsonld.BlankNodeGenerator {
	clone := &SequentialGenerator{
		prefix:        g.prefix,
		counter:       g.counter,
		existing:      make(map[string]string, len(g.existing)),
		existingOrder: make([]string, len(g.existingOrder)),
	}
	copy(clone.existingOrder, g.existingOrder)
	for _, key := range g.existingOrder {
		clone.existing[key] = g.existing[key]
	}
	return clone
}
