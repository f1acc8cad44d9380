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

package rdfquad

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonld-go/ldcore/jsonld"
)

func TestTerm_IRI(t *testing.T) {
	v := Term(jsonld.RDFTerm{Kind: jsonld.IRITerm, Value: "http://example.org/s"})
	assert.Equal(t, quad.IRI("http://example.org/s"), v)
}

func TestTerm_BlankNode(t *testing.T) {
	v := Term(jsonld.RDFTerm{Kind: jsonld.BlankTerm, Value: "_:b0"})
	assert.Equal(t, quad.BNode("b0"), v)
}

func TestTerm_PlainLiteral(t *testing.T) {
	v := Term(jsonld.RDFTerm{Kind: jsonld.LiteralTerm, Value: "hello", Datatype: jsonld.XSDString})
	assert.Equal(t, quad.String("hello"), v)
}

func TestTerm_LangLiteral(t *testing.T) {
	v := Term(jsonld.RDFTerm{Kind: jsonld.LiteralTerm, Value: "hello", Language: "en"})
	assert.Equal(t, quad.LangString{Value: quad.String("hello"), Lang: "en"}, v)
}

func TestTerm_TypedLiteral(t *testing.T) {
	v := Term(jsonld.RDFTerm{Kind: jsonld.LiteralTerm, Value: "42", Datatype: jsonld.XSDInteger})
	assert.Equal(t, quad.TypedString{Value: quad.String("42"), Type: quad.IRI(jsonld.XSDInteger)}, v)
}

func TestTerm_DefaultGraphIsNil(t *testing.T) {
	v := Term(jsonld.RDFTerm{Kind: jsonld.DefaultGraphTerm})
	assert.Nil(t, v)
}

func TestSink_EmitQuad(t *testing.T) {
	s := &Sink{}
	err := s.EmitQuad(
		jsonld.RDFTerm{Kind: jsonld.DefaultGraphTerm},
		jsonld.RDFTerm{Kind: jsonld.IRITerm, Value: "http://example.org/s"},
		jsonld.RDFTerm{Kind: jsonld.IRITerm, Value: "http://example.org/p"},
		jsonld.RDFTerm{Kind: jsonld.LiteralTerm, Value: "v", Datatype: jsonld.XSDString},
	)
	require.NoError(t, err)
	require.Len(t, s.Quads, 1)
	assert.Equal(t, quad.IRI("http://example.org/s"), s.Quads[0].Subject)
	assert.Equal(t, quad.IRI("http://example.org/p"), s.Quads[0].Predicate)
}

func TestSink_WriteNQuads(t *testing.T) {
	s := &Sink{}
	require.NoError(t, s.EmitQuad(
		jsonld.RDFTerm{Kind: jsonld.DefaultGraphTerm},
		jsonld.RDFTerm{Kind: jsonld.IRITerm, Value: "http://example.org/s"},
		jsonld.RDFTerm{Kind: jsonld.IRITerm, Value: "http://example.org/p"},
		jsonld.RDFTerm{Kind: jsonld.LiteralTerm, Value: "v", Datatype: jsonld.XSDString},
	))

	var buf bytes.Buffer
	require.NoError(t, s.WriteNQuads(&buf))

	out := buf.String()
	assert.True(t, strings.Contains(out, "http://example.org/s"))
	assert.True(t, strings.Contains(out, "http://example.org/p"))
}
