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

// Warning is a non-fatal diagnostic raised while creating a term
// definition: a term or an @id/@reverse value that looks keyword-like
// (begins with '@' but isn't a recognized keyword) is ignored rather
// than rejected outright. Warnings never alter the algorithm's result.
type Warning struct {
	Code    ErrorCode
	Term    string
	Details interface{}
}

// WarningHandler receives warnings as they are raised. Handling must not
// suspend or otherwise affect control flow of the caller.
type WarningHandler interface {
	Warn(w Warning)
}

// DiscardWarnings is a WarningHandler that drops every warning. It is
// the default handler.
type DiscardWarnings struct{}

func (DiscardWarnings) Warn(Warning) {}

// CollectingWarnings is a WarningHandler that appends every warning it
// receives, for use by tests that assert on diagnostics.
type CollectingWarnings struct {
	Warnings []Warning
}

func (c *CollectingWarnings) Warn(w Warning) {
	c.Warnings = append(c.Warnings, w)
}

func warn(opts *Options, w Warning) {
	if opts == nil || opts.WarningHandler == nil {
		return
	}
	opts.WarningHandler.Warn(w)
}
