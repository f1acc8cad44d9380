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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	quads [][4]RDFTerm
}

func (s *recordingSink) EmitQuad(graph, subject, predicate, object RDFTerm) error {
	s.quads = append(s.quads, [4]RDFTerm{graph, subject, predicate, object})
	return nil
}

func TestValueToRDF_LangStringWithDirection(t *testing.T) {
	term := valueToRDF(map[string]interface{}{
		"@value":     "css",
		"@language":  "en",
		"@direction": "ltr",
	})

	assert.Equal(t, LiteralTerm, term.Kind)
	assert.Equal(t, "css", term.Value)
	assert.Equal(t, "en", term.Language)
	assert.Equal(t, "https://www.w3.org/ns/i18n#en_ltr", term.Datatype)
}

func TestValueToRDF_LangStringWithoutDirection(t *testing.T) {
	term := valueToRDF(map[string]interface{}{
		"@value":    "hello",
		"@language": "en",
	})

	assert.Equal(t, RDFLangString, term.Datatype)
	assert.Equal(t, "en", term.Language)
}

func TestValueToRDF_PlainTypes(t *testing.T) {
	boolTerm := valueToRDF(map[string]interface{}{"@value": true})
	assert.Equal(t, XSDBoolean, boolTerm.Datatype)
	assert.Equal(t, "true", boolTerm.Value)

	intTerm := valueToRDF(map[string]interface{}{"@value": float64(42)})
	assert.Equal(t, XSDInteger, intTerm.Datatype)
	assert.Equal(t, "42", intTerm.Value)

	doubleTerm := valueToRDF(map[string]interface{}{"@value": 1.5})
	assert.Equal(t, XSDDouble, doubleTerm.Datatype)

	stringTerm := valueToRDF(map[string]interface{}{"@value": "plain"})
	assert.Equal(t, XSDString, stringTerm.Datatype)
}

func TestCanonicalDouble(t *testing.T) {
	assert.Equal(t, "1.5E0", canonicalDouble(1.5))
	assert.Equal(t, "1.0E2", canonicalDouble(100))
}

func TestListToRDF_EmptyListIsRDFNil(t *testing.T) {
	sink := &recordingSink{}
	issuer := newDefaultBlankNodeGenerator("_:b")

	head, err := listToRDF(nil, issuer, RDFTerm{Kind: DefaultGraphTerm}, sink)
	require.NoError(t, err)
	assert.Equal(t, rdfNil, head)
	assert.Empty(t, sink.quads)
}

func TestOrderedOrNot(t *testing.T) {
	m := map[string]interface{}{"c": 1, "a": 2, "b": 3}

	sorted := orderedOrNot(m, true)
	assert.Equal(t, []string{"a", "b", "c"}, sorted)

	unordered := orderedOrNot(m, false)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, unordered)
}

func TestGraphToRDF_OrderedIsDeterministic(t *testing.T) {
	issuer := newDefaultBlankNodeGenerator("_:b")
	graph := map[string]interface{}{
		"http://example.org/z": map[string]interface{}{
			"http://example.org/p": []interface{}{map[string]interface{}{"@value": "1"}},
		},
		"http://example.org/a": map[string]interface{}{
			"http://example.org/p": []interface{}{map[string]interface{}{"@value": "2"}},
		},
	}

	sink := &recordingSink{}
	err := graphToRDF("@default", graph, issuer, false, true, sink)
	require.NoError(t, err)

	require.Len(t, sink.quads, 2)
	assert.Equal(t, "http://example.org/a", sink.quads[0][1].Value)
	assert.Equal(t, "http://example.org/z", sink.quads[1][1].Value)
}

func TestListToRDF_ChainsThroughBlankNodes(t *testing.T) {
	sink := &recordingSink{}
	issuer := newDefaultBlankNodeGenerator("_:b")
	graph := RDFTerm{Kind: DefaultGraphTerm}

	list := []interface{}{
		map[string]interface{}{"@value": "a"},
		map[string]interface{}{"@value": "b"},
	}

	head, err := listToRDF(list, issuer, graph, sink)
	require.NoError(t, err)
	assert.True(t, head.IsBlankNode())

	// two cells -> 4 quads: (first, rest) x 2
	require.Len(t, sink.quads, 4)
	assert.Equal(t, rdfFirst, sink.quads[0][2])
	assert.Equal(t, rdfRest, sink.quads[1][2])
	assert.Equal(t, rdfNil, sink.quads[3][3])
}
