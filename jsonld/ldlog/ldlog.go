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

// Package ldlog adapts jsonld.WarningHandler onto a zap.Logger, so a
// host application's existing structured-logging setup can receive
// processing diagnostics without the core importing zap itself.
package ldlog

import (
	"go.uber.org/zap"

	"github.com/jsonld-go/ldcore/jsonld"
)

// ZapWarningHandler logs each warning as a single structured log entry
// at warn level.
type ZapWarningHandler struct {
	logger *zap.Logger
}

var _ jsonld.WarningHandler = (*ZapWarningHandler)(nil)

// New creates a ZapWarningHandler that writes to logger.
func New(logger *zap.Logger) *ZapWarningHandler {
	return &ZapWarningHandler{logger: logger}
}

// Warn implements jsonld.WarningHandler.
func (h *ZapWarningHandler) Warn(w jsonld.Warning) {
	h.logger.Warn("jsonld processing warning",
		zap.String("code", string(w.Code)),
		zap.String("term", w.Term),
		zap.Any("details", w.Details),
	)
}
