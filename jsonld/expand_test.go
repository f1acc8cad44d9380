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

func TestExpand_UndefinedTermStrictPolicyErrors(t *testing.T) {
	opts := NewOptions("")
	opts.Policy.AllowUndefined = PolicyStrict
	activeCtx := NewContext(nil, opts)
	pipeline := NewPipeline()

	_, err := pipeline.Expand(activeCtx, "", map[string]interface{}{
		"undefinedTerm": "value",
	}, opts)

	require.Error(t, err)
	pErr, ok := err.(*ProcessingError)
	require.True(t, ok)
	assert.Equal(t, InvalidTermDefinition, pErr.Code)
}

func TestExpand_UndefinedTermStrictestPolicyErrors(t *testing.T) {
	opts := NewOptions("")
	opts.Policy.AllowUndefined = PolicyStrictest
	activeCtx := NewContext(nil, opts)
	pipeline := NewPipeline()

	_, err := pipeline.Expand(activeCtx, "", map[string]interface{}{
		"undefinedTerm": "value",
	}, opts)

	require.Error(t, err)
}

func TestExpand_UndefinedTermStandardPolicyDrops(t *testing.T) {
	opts := NewOptions("")
	activeCtx := NewContext(nil, opts)
	pipeline := NewPipeline()

	result, err := pipeline.Expand(activeCtx, "", map[string]interface{}{
		"undefinedTerm": "value",
	}, opts)

	require.NoError(t, err)
	assert.Nil(t, result)
}
