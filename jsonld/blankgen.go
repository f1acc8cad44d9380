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

package jsonld

import "fmt"

// defaultBlankNodeGenerator is the zero-configuration BlankNodeGenerator
// used by Processor facade methods when Options.BlankNodeGenerator is
// nil. Callers who need a reusable, independently testable generator
// should construct one explicitly (see package jsonld/blank) and set it
// on Options; this one exists only so the facade has sane behavior
// out of the box.
type defaultBlankNodeGenerator struct {
	prefix   string
	counter  int
	existing map[string]string
}

func newDefaultBlankNodeGenerator(prefix string) *defaultBlankNodeGenerator {
	return &defaultBlankNodeGenerator{prefix: prefix, existing: make(map[string]string)}
}

func (g *defaultBlankNodeGenerator) ID(key string) string {
	if key != "" {
		if existing, present := g.existing[key]; present {
			return existing
		}
	}
	id := fmt.Sprintf("%s%d", g.prefix, g.counter)
	g.counter++
	if key != "" {
		g.existing[key] = id
	}
	return id
}

func (g *defaultBlankNodeGenerator) HasID(key string) bool {
	_, present := g.existing[key]
	return present
}

func (g *defaultBlankNodeGenerator) Clone() BlankNodeGenerator {
	clone := newDefaultBlankNodeGenerator(g.prefix)
	clone.counter = g.counter
	for k, v := range g.existing {
		clone.existing[k] = v
	}
	return clone
}

func blankGeneratorOrDefault(g BlankNodeGenerator) BlankNodeGenerator {
	if g != nil {
		return g
	}
	return newDefaultBlankNodeGenerator("_:b")
}
