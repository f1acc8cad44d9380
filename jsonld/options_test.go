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
)

func TestOptions_Copy(t *testing.T) {
	expected := Options{
		Base:                  "base",
		CompactArrays:         true,
		ProcessingMode:        JsonLd_1_1,
		Ordered:               true,
		Policy:                DefaultPolicy(),
		WarningHandler:        DiscardWarnings{},
		UseRdfType:            true,
		UseNativeTypes:        true,
		ProduceGeneralizedRdf: true,
		Format:                "format",
		OutputForm:            "output",
		SafeMode:              true,
	}
	assert.Equal(t, expected, *expected.Copy())
}

func TestNewOptions_Defaults(t *testing.T) {
	opts := NewOptions("http://example.org/")

	assert.Equal(t, "http://example.org/", opts.Base)
	assert.True(t, opts.CompactArrays)
	assert.Equal(t, JsonLd_1_1, opts.ProcessingMode)
	assert.Equal(t, DefaultPolicy(), opts.Policy)
	assert.Equal(t, DiscardWarnings{}, opts.WarningHandler)
	assert.Nil(t, opts.DocumentLoader)
	assert.Nil(t, opts.BlankNodeGenerator)
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, PolicyStandard, p.Invalid)
	assert.Equal(t, PolicyStandard, p.Vocab)
	assert.Equal(t, PolicyStandard, p.AllowUndefined)
}
