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

package ldlog

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonld-go/ldcore/jsonld"
)

func TestZapWarningHandler_Warn(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)

	handler := New(logger)
	handler.Warn(jsonld.Warning{
		Code:    jsonld.KeywordRedefinition,
		Term:    "@id",
		Details: "attempted to redefine a keyword",
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "jsonld processing warning", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, string(jsonld.KeywordRedefinition), fields["code"])
	assert.Equal(t, "@id", fields["term"])
	assert.Equal(t, "attempted to redefine a keyword", fields["details"])
}
