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

package jsoncanonicalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform_SortsObjectKeysByUTF16CodeUnit(t *testing.T) {
	out, err := Transform([]byte(`{"b":1,"a":2,"€":3}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":1,"€":3}`, string(out))
}

func TestTransform_RemovesInsignificantWhitespace(t *testing.T) {
	out, err := Transform([]byte(`{ "a" : 1,  "b" : [ 1, 2, 3 ] }`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":[1,2,3]}`, string(out))
}

func TestTransform_NestedObjectsAndArrays(t *testing.T) {
	out, err := Transform([]byte(`{"z":[{"y":1,"x":2}],"a":null}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":null,"z":[{"x":2,"y":1}]}`, string(out))
}

func TestTransform_IntegralFloatsDropTrailingZero(t *testing.T) {
	out, err := Transform([]byte(`{"a":1.0,"b":-0,"c":100}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":0,"c":100}`, string(out))
}

func TestTransform_EscapesControlCharacters(t *testing.T) {
	out, err := Transform([]byte(`{"a":"line1\nline2\ttab"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":"line1\nline2\ttab"}`, string(out))
}
