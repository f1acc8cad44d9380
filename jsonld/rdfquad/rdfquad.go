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

// Package rdfquad adapts the core's jsonld.RDFTerm quad iterator onto
// github.com/cayleygraph/quad, so ToRDF output can be handed directly to
// any Cayley-compatible store or serialized as N-Quads.
package rdfquad

import (
	"io"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"

	"github.com/jsonld-go/ldcore/jsonld"
)

// Term converts an RDFTerm into a cayleygraph/quad.Value. The zero
// DefaultGraphTerm converts to a nil Value, matching quad.Quad's
// convention for an unnamed graph label.
func Term(t jsonld.RDFTerm) quad.Value {
	switch t.Kind {
	case jsonld.IRITerm:
		return quad.IRI(t.Value)
	case jsonld.BlankTerm:
		return quad.BNode(strings.TrimPrefix(t.Value, "_:"))
	case jsonld.LiteralTerm:
		switch {
		case t.Language != "":
			return quad.LangString{Value: quad.String(t.Value), Lang: t.Language}
		case t.Datatype != "" && t.Datatype != jsonld.XSDString:
			return quad.TypedString{Value: quad.String(t.Value), Type: quad.IRI(t.Datatype)}
		default:
			return quad.String(t.Value)
		}
	default:
		return nil
	}
}

// Sink collects the quad stream produced by (*jsonld.Pipeline).ToRDF /
// (*jsonld.Processor).ToRDF into a []quad.Quad.
type Sink struct {
	Quads []quad.Quad
}

var _ jsonld.QuadSink = (*Sink)(nil)

// EmitQuad implements jsonld.QuadSink.
func (s *Sink) EmitQuad(graph, subject, predicate, object jsonld.RDFTerm) error {
	s.Quads = append(s.Quads, quad.Quad{
		Subject:   Term(subject),
		Predicate: Term(predicate),
		Object:    Term(object),
		Label:     Term(graph),
	})
	return nil
}

// WriteNQuads serializes the collected quads as N-Quads to w.
func (s *Sink) WriteNQuads(w io.Writer) error {
	writer := nquads.NewWriter(w)
	defer writer.Close()
	for _, q := range s.Quads {
		if err := writer.WriteQuad(q); err != nil {
			return err
		}
	}
	return nil
}
