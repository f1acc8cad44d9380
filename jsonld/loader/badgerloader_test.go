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

package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonld-go/ldcore/jsonld"
)

func TestPersistentCachingLoader_CachesAcrossCalls(t *testing.T) {
	inner := &fakeLoader{doc: &jsonld.RemoteDocument{
		DocumentURL: "http://example.org/doc",
		Document:    map[string]interface{}{"a": "b"},
	}}

	l, err := NewPersistentCachingLoader(t.TempDir(), inner)
	require.NoError(t, err)
	defer l.Close()

	doc1, err := l.LoadDocument("http://example.org/doc")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/doc", doc1.DocumentURL)

	doc2, err := l.LoadDocument("http://example.org/doc")
	require.NoError(t, err)
	assert.Equal(t, doc1.Document, doc2.Document)
	assert.Equal(t, 1, inner.calls)
}

func TestCacheKey_DeterministicAndDistinct(t *testing.T) {
	a := cacheKey("http://example.org/a")
	b := cacheKey("http://example.org/b")
	aAgain := cacheKey("http://example.org/a")

	assert.Equal(t, a, aAgain)
	assert.NotEqual(t, a, b)
}
