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

package blank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialGenerator_ID(t *testing.T) {
	g := New("_:b")

	first := g.ID("a")
	assert.Equal(t, "_:b0", first)
	assert.True(t, g.HasID("a"))

	// same key returns the same id
	assert.Equal(t, first, g.ID("a"))

	second := g.ID("c")
	assert.Equal(t, "_:b1", second)

	// empty key always allocates a fresh id, never cached
	assert.Equal(t, "_:b2", g.ID(""))
	assert.Equal(t, "_:b3", g.ID(""))
	assert.False(t, g.HasID(""))
}

func TestSequentialGenerator_Clone(t *testing.T) {
	g := New("_:b")
	g.ID("a")
	g.ID("c")
	g.ID("b")

	clone := g.Clone().(*SequentialGenerator)

	assert.Equal(t, g.existingOrder, clone.existingOrder)
	assert.Equal(t, g.existing, clone.existing)
	assert.Equal(t, g.counter, clone.counter)

	// mutating the clone must not affect the original
	clone.ID("d")
	assert.NotEqual(t, g.counter, clone.counter)
	assert.False(t, g.HasID("d"))
	assert.True(t, clone.HasID("d"))

	// and the reverse
	g.ID("e")
	assert.False(t, clone.HasID("e"))
}
