//
//  Copyright 2006-2019 WebPKI.org (http://webpki.org).
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      https://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

// Transform rewrites an arbitrary JSON document into its RFC 8785 (JSON
// Canonicalization Scheme) serialization: object members sorted by the
// UTF-16 code units of their names, minimal whitespace, and numbers
// formatted per the ES6 rules implemented by formatES6Number in this file.
package jsoncanonicalizer

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Transform parses input as JSON and re-encodes it in canonical form.
func Transform(input []byte) ([]byte, error) {
	decoder := json.NewDecoder(bytes.NewReader(input))
	decoder.UseNumber()

	var value interface{}
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := encodeValue(&buf, value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, value interface{}) error {
	switch v := value.(type) {
	case nil:
		buf.WriteString("null")
		return nil
	case bool:
		if v {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case json.Number:
		return encodeNumber(buf, v)
	case string:
		encodeString(buf, v)
		return nil
	case []interface{}:
		return encodeArray(buf, v)
	case map[string]interface{}:
		return encodeObject(buf, v)
	default:
		// Only reachable if a caller feeds encodeValue a non-JSON type directly.
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
}

func encodeNumber(buf *bytes.Buffer, n json.Number) error {
	f, err := n.Float64()
	if err != nil {
		return err
	}
	formatted, err := formatES6Number(f)
	if err != nil {
		return err
	}
	buf.WriteString(formatted)
	return nil
}

func encodeArray(buf *bytes.Buffer, arr []interface{}) error {
	buf.WriteByte('[')
	for i, item := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(buf, item); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func encodeObject(buf *bytes.Buffer, obj map[string]interface{}) error {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return less16(keys[i], keys[j])
	})

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodeString(buf, k)
		buf.WriteByte(':')
		if err := encodeValue(buf, obj[k]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// less16 orders strings by UTF-16 code unit, per RFC 8785 §3.2.3 — this
// differs from a byte-wise comparison for code points outside the BMP.
func less16(a, b string) bool {
	ua, ub := utf16.Encode([]rune(a)), utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}
	return len(ua) < len(ub)
}

func encodeString(buf *bytes.Buffer, s string) {
	// encoding/json already implements the RFC 8785 §3.2.2.2 escaping
	// rules (shortest \uXXXX/\b\f\n\r\t escapes, mandatory for control
	// characters, quote and backslash) when HTML escaping is disabled.
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
}

const nonFiniteBitPattern uint64 = 0x7ff0000000000000

// formatES6Number renders ieeeF64 the way EcmaScript's Number::toString
// does, per RFC 8785 §3.2.2.3: no exponent for magnitudes in
// [1e-6, 1e21), a minimal-length decimal otherwise, "-0" folded to "0",
// and NaN/Infinity rejected since JSON has no way to express them.
func formatES6Number(ieeeF64 float64) (string, error) {
	ieeeU64 := math.Float64bits(ieeeF64)

	if (ieeeU64 & nonFiniteBitPattern) == nonFiniteBitPattern {
		return "null", errors.New("invalid JSON number: " + strconv.FormatUint(ieeeU64, 16))
	}

	if ieeeF64 == 0 { // covers both -0 and 0
		return "0", nil
	}

	sign := ""
	if ieeeF64 < 0 {
		ieeeF64 = -ieeeF64
		sign = "-"
	}

	format := byte('e')
	if ieeeF64 < 1e+21 && ieeeF64 >= 1e-6 {
		format = 'f'
	}

	formatted := strconv.FormatFloat(ieeeF64, format, -1, 64)

	// Go's shortest-float formatting occasionally disagrees with ES6 at
	// precision -1; reconcile against 'g'/'f' with explicit precision.
	// https://github.com/golang/go/issues/29491
	exponent := strings.IndexByte(formatted, 'e')
	if exponent > 0 {
		gform := strconv.FormatFloat(ieeeF64, 'g', 17, 64)
		if len(gform) == len(formatted) {
			formatted = gform
		}
		// Go emits "1e+09"; ES6 wants "1e+9".
		if formatted[exponent+2] == '0' {
			formatted = formatted[:exponent+2] + formatted[exponent+3:]
		}
	} else if strings.IndexByte(formatted, '.') < 0 && len(formatted) >= 12 {
		i := len(formatted)
		for formatted[i-1] == '0' {
			i--
		}
		if i != len(formatted) {
			fix := strconv.FormatFloat(ieeeF64, 'f', 0, 64)
			if fix[i] >= '5' {
				formatted = fix[:i-1] + string(fix[i-1]+1) + formatted[i:]
			}
		}
	}
	return sign + formatted, nil
}
