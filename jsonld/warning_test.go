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

func TestWarn_NilHandlerIsNoOp(t *testing.T) {
	assert.NotPanics(t, func() {
		warn(nil, Warning{Code: KeywordRedefinition})
		warn(&Options{}, Warning{Code: KeywordRedefinition})
	})
}

func TestCollectingWarnings(t *testing.T) {
	collector := &CollectingWarnings{}
	opts := &Options{WarningHandler: collector}

	warn(opts, Warning{Code: KeywordRedefinition, Term: "@foo"})
	warn(opts, Warning{Code: InvalidReverseProperty, Term: "@bar"})

	assert.Len(t, collector.Warnings, 2)
	assert.Equal(t, "@foo", collector.Warnings[0].Term)
	assert.Equal(t, "@bar", collector.Warnings[1].Term)
}

func TestDiscardWarnings(t *testing.T) {
	opts := &Options{WarningHandler: DiscardWarnings{}}
	assert.NotPanics(t, func() {
		warn(opts, Warning{Code: KeywordRedefinition})
	})
}
