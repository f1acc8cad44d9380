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
	"encoding/json"
	"errors"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/zeebo/xxh3"

	"github.com/jsonld-go/ldcore/jsonld"
)

// PersistentCachingLoader is a disk-backed cache overlay on top of
// another DocumentLoader, for hosts that re-process the same remote
// contexts across process restarts (e.g. a long-lived context-mapping
// vocabulary). Keys are the xxh3 hash of the requested IRI. Entries are
// written without a TTL, so a cached document is never evicted; badger
// handles on-disk compaction.
type PersistentCachingLoader struct {
	next jsonld.DocumentLoader
	db   *badger.DB
}

var _ jsonld.DocumentLoader = (*PersistentCachingLoader)(nil)

// NewPersistentCachingLoader opens (or creates) a badger database at dir
// and wraps next with it.
func NewPersistentCachingLoader(dir string, next jsonld.DocumentLoader) (*PersistentCachingLoader, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, err)
	}
	return &PersistentCachingLoader{next: next, db: db}, nil
}

// Close releases the underlying badger database.
func (l *PersistentCachingLoader) Close() error {
	return l.db.Close()
}

func cacheKey(iri string) []byte {
	h := xxh3.HashString128(iri)
	return []byte("jsonld-doc:" + strconv.FormatUint(h.Hi, 16) + strconv.FormatUint(h.Lo, 16))
}

// LoadDocument returns the cached document for u, fetching and persisting
// it via the wrapped loader on a miss.
func (l *PersistentCachingLoader) LoadDocument(u string) (*jsonld.RemoteDocument, error) {
	key := cacheKey(u)

	var cached jsonld.RemoteDocument
	err := l.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cached)
		})
	})
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, err)
	}

	doc, err := l.next.LoadDocument(u)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, err)
	}
	if txErr := l.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, encoded)
	}); txErr != nil {
		return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, txErr)
	}

	return doc, nil
}
