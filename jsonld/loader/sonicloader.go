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
	"io"

	"github.com/bytedance/sonic"

	"github.com/jsonld-go/ldcore/jsonld"
)

// DocumentFromReaderFast decodes a JSON document streamed from r using
// bytedance/sonic. Used by NewFastHTTPFileLoader.
func DocumentFromReaderFast(r io.Reader) (interface{}, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, err)
	}
	var document interface{}
	if err := sonic.Unmarshal(raw, &document); err != nil {
		return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, err)
	}
	return document, nil
}
