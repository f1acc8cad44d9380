package jsonld

import "fmt"

// DecodeExpandedDocument converts the JSON-AST result of the expansion
// pipeline (a slice of node-object maps, the shape defined by the
// Expansion algorithm) into the typed document model from model.go.
// It is the boundary where the public API starts speaking Id/Term/Value
// instead of bare interface{}.
func DecodeExpandedDocument(raw []interface{}) (ExpandedDocument, error) {
	doc := make(ExpandedDocument, 0, len(raw))
	for _, item := range raw {
		ix, err := decodeIndexedObject(item)
		if err != nil {
			return nil, err
		}
		doc = append(doc, ix)
	}
	return doc, nil
}

// Encode converts the typed document back into the JSON-AST shape the
// rest of the pipeline (compaction, node-map generation, RDF
// serialization) already operates on.
func (doc ExpandedDocument) Encode() []interface{} {
	out := make([]interface{}, len(doc))
	for i, ix := range doc {
		out[i] = encodeIndexed(ix)
	}
	return out
}

func decodeIndexedObject(raw interface{}) (Indexed, error) {
	m, isMap := raw.(map[string]interface{})
	if !isMap {
		return Indexed{}, fmt.Errorf("jsonld: expected a JSON object in expanded form, got %T", raw)
	}

	index, hasIdx := m["@index"].(string)

	if _, hasValue := m["@value"]; hasValue {
		v, err := decodeValue(m)
		if err != nil {
			return Indexed{}, err
		}
		return Indexed{Index: index, HasIdx: hasIdx, Object: ValueObject(v)}, nil
	}

	if list, hasList := m["@list"]; hasList {
		items, err := decodeIndexedList(list)
		if err != nil {
			return Indexed{}, err
		}
		return Indexed{Index: index, HasIdx: hasIdx, Object: ListObject(items)}, nil
	}

	n, err := decodeNode(m)
	if err != nil {
		return Indexed{}, err
	}
	return Indexed{Index: index, HasIdx: hasIdx, Object: NodeObject(n)}, nil
}

func decodeIndexedList(raw interface{}) ([]Indexed, error) {
	items, isList := raw.([]interface{})
	if !isList {
		return nil, fmt.Errorf("jsonld: expected an array for @list, got %T", raw)
	}
	out := make([]Indexed, 0, len(items))
	for _, item := range items {
		ix, err := decodeIndexedObject(item)
		if err != nil {
			return nil, err
		}
		out = append(out, ix)
	}
	return out, nil
}

func decodeValue(m map[string]interface{}) (Value, error) {
	raw := m["@value"]
	dataType, _ := m["@type"].(string)

	if dataType == "@json" {
		return JSONValue(raw), nil
	}

	dirStr, hasDir := m["@direction"].(string)
	if lang, hasLang := m["@language"].(string); hasLang && !hasDir {
		text, _ := raw.(string)
		return LangStringValue(text, lang, DirectionNone, false), nil
	}

	if hasDir {
		text, _ := raw.(string)
		lang, _ := m["@language"].(string)
		dir, ok := ParseDirection(dirStr)
		if !ok {
			dir = DirectionNone
		}
		return LangStringValue(text, lang, dir, true), nil
	}

	holder := PrimOrKindHolder{ValueKind: ValueLiteral, DataType: dataType}
	switch v := raw.(type) {
	case nil:
		holder.Prim = PrimNull
	case bool:
		holder.Prim = PrimBool
		holder.Bool = v
	case float64:
		holder.Prim = PrimNumber
		holder.Number = v
	case string:
		holder.Prim = PrimString
		holder.String = v
	default:
		return JSONValue(raw), nil
	}
	return Value{Kind: holder}, nil
}

func decodeNode(m map[string]interface{}) (*Node, error) {
	n := NewNode()

	if idRaw, hasID := m["@id"]; hasID {
		idStr, _ := idRaw.(string)
		n.ID = idFromRaw(idStr)
		n.HasID = true
	}

	if typesRaw, hasTypes := m["@type"]; hasTypes {
		types, _ := typesRaw.([]interface{})
		for _, t := range types {
			ts, _ := t.(string)
			n.Types = append(n.Types, idFromRaw(ts))
		}
	}

	if revRaw, hasRev := m["@reverse"]; hasRev {
		revMap, _ := revRaw.(map[string]interface{})
		n.ReverseProperties = NewPropertyMap()
		for _, key := range sortedKeys(revMap) {
			vals, _ := revMap[key].([]interface{})
			for _, v := range vals {
				ix, err := decodeIndexedObject(v)
				if err != nil {
					return nil, err
				}
				n.ReverseProperties.Append(idFromRaw(key), ix)
			}
		}
	}

	if graphRaw, hasGraph := m["@graph"]; hasGraph {
		items, _ := graphRaw.([]interface{})
		for _, item := range items {
			ix, err := decodeIndexedObject(item)
			if err != nil {
				return nil, err
			}
			n.Graph = append(n.Graph, ix)
		}
	}

	if incRaw, hasInc := m["@included"]; hasInc {
		items, _ := incRaw.([]interface{})
		for _, item := range items {
			itemMap, _ := item.(map[string]interface{})
			child, err := decodeNode(itemMap)
			if err != nil {
				return nil, err
			}
			n.Included = append(n.Included, child)
		}
	}

	for _, key := range sortedKeys(m) {
		if IsKeywordString(key) {
			continue
		}
		vals, _ := m[key].([]interface{})
		for _, v := range vals {
			ix, err := decodeIndexedObject(v)
			if err != nil {
				return nil, err
			}
			n.Properties.Append(idFromRaw(key), ix)
		}
	}

	return n, nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

func encodeIndexed(ix Indexed) interface{} {
	var m map[string]interface{}
	switch ix.Object.Kind {
	case ObjectValue:
		m = encodeValue(ix.Object.Value)
	case ObjectNode:
		m = ix.Object.Node.EncodeMap()
	case ObjectList:
		m = map[string]interface{}{"@list": encodeIndexedList(ix.Object.List)}
	}
	if ix.HasIdx {
		m["@index"] = ix.Index
	}
	return m
}

func encodeIndexedList(items []Indexed) []interface{} {
	out := make([]interface{}, len(items))
	for i, ix := range items {
		out[i] = encodeIndexed(ix)
	}
	return out
}

func encodeValue(v Value) map[string]interface{} {
	m := make(map[string]interface{})
	switch v.Kind.ValueKind {
	case ValueLiteral:
		switch v.Kind.Prim {
		case PrimNull:
			m["@value"] = nil
		case PrimBool:
			m["@value"] = v.Kind.Bool
		case PrimNumber:
			m["@value"] = v.Kind.Number
		case PrimString:
			m["@value"] = v.Kind.String
		}
		if v.Kind.DataType != "" {
			m["@type"] = v.Kind.DataType
		}
	case ValueLangString:
		m["@value"] = v.Kind.Text
		if v.Kind.HasLang {
			m["@language"] = v.Kind.Language
		}
		if v.Kind.HasDir {
			m["@direction"] = v.Kind.DirValue.String()
		}
	case ValueJSON:
		m["@value"] = v.Kind.Raw
		m["@type"] = "@json"
	}
	return m
}

// EncodeMap converts a Node back into the map form used by the rest of
// the pipeline.
func (n *Node) EncodeMap() map[string]interface{} {
	m := make(map[string]interface{})
	if n.HasID {
		m["@id"] = n.ID.Value
	}
	if len(n.Types) > 0 {
		types := make([]interface{}, len(n.Types))
		for i, t := range n.Types {
			types[i] = t.Value
		}
		m["@type"] = types
	}
	if n.Properties != nil {
		for _, key := range n.Properties.Keys() {
			vals, _ := n.Properties.Get(key)
			arr := make([]interface{}, len(vals))
			for i, v := range vals {
				arr[i] = encodeIndexed(v)
			}
			m[key] = arr
		}
	}
	if n.ReverseProperties != nil && n.ReverseProperties.Len() > 0 {
		rev := make(map[string]interface{})
		for _, key := range n.ReverseProperties.Keys() {
			vals, _ := n.ReverseProperties.Get(key)
			arr := make([]interface{}, len(vals))
			for i, v := range vals {
				arr[i] = encodeIndexed(v)
			}
			rev[key] = arr
		}
		m["@reverse"] = rev
	}
	if len(n.Graph) > 0 {
		g := make([]interface{}, len(n.Graph))
		for i, ix := range n.Graph {
			g[i] = encodeIndexed(ix)
		}
		m["@graph"] = g
	}
	if len(n.Included) > 0 {
		inc := make([]interface{}, len(n.Included))
		for i, child := range n.Included {
			inc[i] = child.EncodeMap()
		}
		m["@included"] = inc
	}
	return m
}
