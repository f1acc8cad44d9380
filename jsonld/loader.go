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

// RemoteDocument is a document retrieved from an external source, plus
// whatever context-link metadata the retrieval surfaced.
type RemoteDocument struct {
	DocumentURL string
	Document    interface{}
	ContextURL  string
}

// DocumentLoader resolves an IRI to a parsed JSON-LD document. The core
// treats the loader as an opaque collaborator: transport, caching and
// content negotiation are none of its concern. A failed load of the input
// document is returned to the caller as the loader reported it; a failed
// remote-context or @import load surfaces as LoadingRemoteContextFailed.
type DocumentLoader interface {
	LoadDocument(iri string) (*RemoteDocument, error)
}
