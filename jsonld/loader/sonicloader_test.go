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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentFromReaderFast(t *testing.T) {
	doc, err := DocumentFromReaderFast(strings.NewReader(`{"@id": "http://example.org/x", "n": 3}`))
	require.NoError(t, err)

	m, ok := doc.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "http://example.org/x", m["@id"])
}

func TestDocumentFromReaderFast_InvalidJSON(t *testing.T) {
	_, err := DocumentFromReaderFast(strings.NewReader(`{not json`))
	require.Error(t, err)
}
