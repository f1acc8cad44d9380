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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonld-go/ldcore/jsonld"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.jsonld")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHTTPFileLoader_LocalFile(t *testing.T) {
	path := writeFixture(t, `{"@context": {"name": "http://schema.org/name"}, "name": "Alice"}`)

	l := NewHTTPFileLoader(nil)
	doc, err := l.LoadDocument(path)
	require.NoError(t, err)

	assert.Equal(t, path, doc.DocumentURL)
	m, ok := doc.Document.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Alice", m["name"])
}

func TestFastHTTPFileLoader_LocalFile(t *testing.T) {
	path := writeFixture(t, `{"@context": {"name": "http://schema.org/name"}, "name": "Bob"}`)

	l := NewFastHTTPFileLoader(nil)
	doc, err := l.LoadDocument(path)
	require.NoError(t, err)

	m, ok := doc.Document.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Bob", m["name"])
}

func TestHTTPFileLoader_MissingFile(t *testing.T) {
	l := NewHTTPFileLoader(nil)
	_, err := l.LoadDocument(filepath.Join(t.TempDir(), "missing.jsonld"))
	require.Error(t, err)
	var pErr *jsonld.ProcessingError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, jsonld.LoadingDocumentFailed, pErr.Code)
}

func TestParseLinkHeader(t *testing.T) {
	header := `<http://example.org/context>; rel="http://www.w3.org/ns/json-ld#context"`
	parsed := ParseLinkHeader(header)

	links := parsed["http://www.w3.org/ns/json-ld#context"]
	require.Len(t, links, 1)
	assert.Equal(t, "http://example.org/context", links[0]["target"])
}

func TestParseLinkHeader_MultipleEntries(t *testing.T) {
	header := `<http://example.org/a>; rel="alternate"; type="application/ld+json", ` +
		`<http://example.org/b>; rel="canonical"`
	parsed := ParseLinkHeader(header)

	require.Len(t, parsed["alternate"], 1)
	assert.Equal(t, "http://example.org/a", parsed["alternate"][0]["target"])
	assert.Equal(t, "application/ld+json", parsed["alternate"][0]["type"])

	require.Len(t, parsed["canonical"], 1)
	assert.Equal(t, "http://example.org/b", parsed["canonical"][0]["target"])
}

type fakeLoader struct {
	calls int
	doc   *jsonld.RemoteDocument
	err   error
}

func (f *fakeLoader) LoadDocument(u string) (*jsonld.RemoteDocument, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

func TestCachingLoader_CachesAfterFirstLoad(t *testing.T) {
	inner := &fakeLoader{doc: &jsonld.RemoteDocument{DocumentURL: "http://example.org/doc", Document: map[string]interface{}{"a": 1}}}
	cl := NewCachingLoader(inner)

	doc1, err := cl.LoadDocument("http://example.org/doc")
	require.NoError(t, err)
	doc2, err := cl.LoadDocument("http://example.org/doc")
	require.NoError(t, err)

	assert.Same(t, doc1, doc2)
	assert.Equal(t, 1, inner.calls)
}

func TestCachingLoader_AddDocument(t *testing.T) {
	inner := &fakeLoader{err: errors.New("should not be called")}
	cl := NewCachingLoader(inner)
	cl.AddDocument("http://example.org/preloaded", map[string]interface{}{"b": 2})

	doc, err := cl.LoadDocument("http://example.org/preloaded")
	require.NoError(t, err)
	assert.Equal(t, 0, inner.calls)
	assert.Equal(t, map[string]interface{}{"b": 2}, doc.Document)
}

func TestCachingLoader_PreloadWithMapping(t *testing.T) {
	inner := &fakeLoader{doc: &jsonld.RemoteDocument{DocumentURL: "file:///fixture.jsonld", Document: "content"}}
	cl := NewCachingLoader(inner)

	require.NoError(t, cl.PreloadWithMapping(map[string]string{
		"http://example.org/remote": "file:///fixture.jsonld",
	}))

	doc, err := cl.LoadDocument("http://example.org/remote")
	require.NoError(t, err)
	assert.Equal(t, "content", doc.Document)
	assert.Equal(t, 1, inner.calls)
}
