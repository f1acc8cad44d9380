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
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsonld-go/ldcore/jsonld/internal/jsoncanonicalizer"
)

// ToRDF walks the node map of the expanded input and emits one quad per
// RDF statement to sink, per the quad iterator contract (§6). issuer
// supplies blank node labels; a nil issuer gets a fresh default.
func (p *Pipeline) ToRDF(input interface{}, opts *Options, issuer BlankNodeGenerator, sink QuadSink) error {
	issuer = blankGeneratorOrDefault(issuer)

	nodeMap := make(map[string]interface{})
	nodeMap["@default"] = make(map[string]interface{})
	if _, err := p.GenerateNodeMap(input, nodeMap, "@default", issuer, "", "", nil); err != nil {
		return err
	}

	for _, graphName := range orderedOrNot(nodeMap, opts.Ordered) {
		if IsRelativeIri(graphName) {
			continue
		}
		graph := nodeMap[graphName].(map[string]interface{})
		if err := graphToRDF(graphName, graph, issuer, opts.ProduceGeneralizedRdf, opts.Ordered, sink); err != nil {
			return err
		}
	}
	return nil
}

// orderedOrNot returns m's keys sorted lexicographically when ordered is
// true (§6 "ordered" option), otherwise in Go's unspecified map order.
func orderedOrNot(m map[string]interface{}, ordered bool) []string {
	if ordered {
		return GetOrderedKeys(m)
	}
	return GetKeys(m)
}

func graphTerm(graphName string) RDFTerm {
	if graphName == "@default" || graphName == "" {
		return RDFTerm{Kind: DefaultGraphTerm}
	}
	return nodeReference(graphName)
}

func nodeReference(id string) RDFTerm {
	if strings.HasPrefix(id, "_:") {
		return RDFTerm{Kind: BlankTerm, Value: id}
	}
	return RDFTerm{Kind: IRITerm, Value: id}
}

func graphToRDF(graphName string, graph map[string]interface{}, issuer BlankNodeGenerator,
	produceGeneralizedRdf bool, ordered bool, sink QuadSink) error {

	graphObj := graphTerm(graphName)

	for _, id := range orderedOrNot(graph, ordered) {
		if IsRelativeIri(id) {
			continue
		}

		node := graph[id].(map[string]interface{})
		subject := nodeReference(id)

		for _, property := range GetOrderedKeys(node) {
			var values []interface{}
			predicateIRI := property

			switch {
			case property == "@type":
				values = node["@type"].([]interface{})
				predicateIRI = RDFType
			case IsKeyword(property):
				continue
			case strings.HasPrefix(property, "_:") && !produceGeneralizedRdf:
				continue
			case IsRelativeIri(property):
				continue
			default:
				values = node[property].([]interface{})
			}

			predicate := nodeReference(predicateIRI)

			for _, item := range values {
				object, ok, err := objectToRDF(item, issuer, graphObj, sink)
				if err != nil {
					return err
				}
				if ok && isValidTerm(object) {
					if err := sink.EmitQuad(graphObj, subject, predicate, object); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func isValidTerm(t RDFTerm) bool {
	if t.IsLiteral() {
		return true
	}
	return t.Value != "" && (strings.Contains(t.Value, ":") || t.IsBlankNode())
}

// objectToRDF converts a single expanded value into an RDFTerm, emitting
// any auxiliary list-chain quads directly to sink.
func objectToRDF(item interface{}, issuer BlankNodeGenerator, graph RDFTerm, sink QuadSink) (RDFTerm, bool, error) {
	if IsValue(item) {
		return valueToRDF(item.(map[string]interface{})), true, nil
	}

	if IsList(item) {
		list := item.(map[string]interface{})["@list"].([]interface{})
		head, err := listToRDF(list, issuer, graph, sink)
		if err != nil {
			return RDFTerm{}, false, err
		}
		return head, true, nil
	}

	var id string
	if itemMap, isMap := item.(map[string]interface{}); isMap {
		id = itemMap["@id"].(string)
		if IsRelativeIri(id) {
			return RDFTerm{}, false, nil
		}
	} else {
		id = item.(string)
	}
	return nodeReference(id), true, nil
}

func valueToRDF(value map[string]interface{}) RDFTerm {
	rawValue := value["@value"]
	datatype := value["@type"]

	if datatype == "@json" {
		canonical, err := canonicalJSON(rawValue)
		if err != nil {
			return RDFTerm{Kind: LiteralTerm, Value: "JSON canonicalization error: " + err.Error(), Datatype: RDFJSONLiteral}
		}
		return RDFTerm{Kind: LiteralTerm, Value: canonical, Datatype: RDFJSONLiteral}
	}

	booleanVal, isBool := rawValue.(bool)
	floatVal, isFloat := rawValue.(float64)
	if !isBool && !isFloat {
		if number, isNumber := rawValue.(json.Number); isNumber {
			if f, err := number.Float64(); err == nil {
				floatVal, isFloat = f, true
			}
		}
	}
	isInteger := isFloat && floatVal == float64(int64(floatVal))
	datatypeStr, _ := datatype.(string)

	switch {
	case isBool:
		if datatypeStr == "" {
			datatypeStr = XSDBoolean
		}
		return RDFTerm{Kind: LiteralTerm, Value: strconv.FormatBool(booleanVal), Datatype: datatypeStr}
	case isFloat && (!isInteger || datatypeStr == XSDDouble):
		if datatypeStr == "" {
			datatypeStr = XSDDouble
		}
		return RDFTerm{Kind: LiteralTerm, Value: canonicalDouble(floatVal), Datatype: datatypeStr}
	case isFloat:
		if datatypeStr == "" {
			datatypeStr = XSDInteger
		}
		return RDFTerm{Kind: LiteralTerm, Value: fmt.Sprintf("%d", int64(floatVal)), Datatype: datatypeStr}
	}

	strVal, _ := rawValue.(string)
	if langVal, hasLang := value["@language"]; hasLang {
		lang := langVal.(string)
		if dirVal, hasDir := value["@direction"]; hasDir {
			return RDFTerm{Kind: LiteralTerm, Value: strVal, Datatype: i18nDatatype(lang, dirVal.(string)), Language: lang}
		}
		if datatypeStr == "" {
			datatypeStr = RDFLangString
		}
		return RDFTerm{Kind: LiteralTerm, Value: strVal, Datatype: datatypeStr, Language: lang}
	}
	if datatypeStr == "" {
		datatypeStr = XSDString
	}
	return RDFTerm{Kind: LiteralTerm, Value: strVal, Datatype: datatypeStr}
}

func canonicalJSON(value interface{}) (string, error) {
	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		raw = b
	}
	canonical, err := jsoncanonicalizer.Transform(raw)
	if err != nil {
		return "", err
	}
	return string(canonical), nil
}

var rdfFirst = RDFTerm{Kind: IRITerm, Value: RDFFirst}
var rdfRest = RDFTerm{Kind: IRITerm, Value: RDFRest}
var rdfNil = RDFTerm{Kind: IRITerm, Value: RDFNil}

// listToRDF synthesizes the rdf:first/rdf:rest chain for list, returning
// the head term (rdf:nil for an empty list).
func listToRDF(list []interface{}, issuer BlankNodeGenerator, graph RDFTerm, sink QuadSink) (RDFTerm, error) {
	if len(list) == 0 {
		return rdfNil, nil
	}

	head := RDFTerm{Kind: BlankTerm, Value: issuer.ID("")}
	subject := head

	for i := 0; i < len(list)-1; i++ {
		object, ok, err := objectToRDF(list[i], issuer, graph, sink)
		if err != nil {
			return RDFTerm{}, err
		}
		next := RDFTerm{Kind: BlankTerm, Value: issuer.ID("")}
		if ok {
			if err := sink.EmitQuad(graph, subject, rdfFirst, object); err != nil {
				return RDFTerm{}, err
			}
		}
		if err := sink.EmitQuad(graph, subject, rdfRest, next); err != nil {
			return RDFTerm{}, err
		}
		subject = next
	}

	last, ok, err := objectToRDF(list[len(list)-1], issuer, graph, sink)
	if err != nil {
		return RDFTerm{}, err
	}
	if ok {
		if err := sink.EmitQuad(graph, subject, rdfFirst, last); err != nil {
			return RDFTerm{}, err
		}
	}
	if err := sink.EmitQuad(graph, subject, rdfRest, rdfNil); err != nil {
		return RDFTerm{}, err
	}

	return head, nil
}

var canonicalDoubleRegex = regexp.MustCompile(`(\d)0*E\+?0*(\d)`)

// canonicalDouble formats v the way xsd:double literals are canonicalized
// for RDF output.
func canonicalDouble(v float64) string {
	return canonicalDoubleRegex.ReplaceAllString(fmt.Sprintf("%1.15E", v), "${1}E${2}")
}
