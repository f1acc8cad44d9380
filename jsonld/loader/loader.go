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

// Package loader provides concrete jsonld.DocumentLoader implementations:
// a plain HTTP/file loader, an unconditional in-memory cache overlay, and
// an RFC 7234 compliant caching loader.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"time"

	"github.com/pquerna/cachecontrol"

	"github.com/jsonld-go/ldcore/jsonld"
)

const (
	acceptHeader = "application/ld+json, application/json;q=0.9, application/javascript;q=0.5, " +
		"text/javascript;q=0.5, text/plain;q=0.2, */*;q=0.1"

	// ApplicationJSONLDType is the JSON-LD media type.
	ApplicationJSONLDType = "application/ld+json"

	linkHeaderRel = "http://www.w3.org/ns/json-ld#context"
)

// DocumentFromReader decodes a JSON document streamed from r.
func DocumentFromReader(r io.Reader) (interface{}, error) {
	var document interface{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&document); err != nil {
		return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, err)
	}
	return document, nil
}

// HTTPFileLoader retrieves documents over HTTP(S) or, for any other
// scheme, from the local filesystem.
type HTTPFileLoader struct {
	httpClient *http.Client
	decode     func(io.Reader) (interface{}, error)
}

var _ jsonld.DocumentLoader = (*HTTPFileLoader)(nil)

// NewHTTPFileLoader creates an HTTPFileLoader using httpClient, or
// http.DefaultClient if httpClient is nil.
func NewHTTPFileLoader(httpClient *http.Client) *HTTPFileLoader {
	return newHTTPFileLoader(httpClient, DocumentFromReader)
}

// NewFastHTTPFileLoader creates an HTTPFileLoader that decodes responses
// with bytedance/sonic rather than encoding/json, for hosts that process
// high volumes of documents and have measured reflection-based decode as
// a bottleneck.
func NewFastHTTPFileLoader(httpClient *http.Client) *HTTPFileLoader {
	return newHTTPFileLoader(httpClient, DocumentFromReaderFast)
}

func newHTTPFileLoader(httpClient *http.Client, decode func(io.Reader) (interface{}, error)) *HTTPFileLoader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPFileLoader{httpClient: httpClient, decode: decode}
}

// LoadDocument returns the JSON resource at u.
func (l *HTTPFileLoader) LoadDocument(u string) (*jsonld.RemoteDocument, error) {
	parsedURL, err := url.Parse(u)
	if err != nil {
		return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, fmt.Sprintf("error parsing URL: %s", u))
	}

	remoteDoc := &jsonld.RemoteDocument{}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		remoteDoc.DocumentURL = u
		file, err := os.Open(u)
		if err != nil {
			return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, err)
		}
		defer file.Close()

		remoteDoc.Document, err = l.decode(file)
		if err != nil {
			return nil, err
		}
		return remoteDoc, nil
	}

	req, err := http.NewRequest(http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, err)
	}
	req.Header.Add("Accept", acceptHeader)

	res, err := l.httpClient.Do(req)
	if err != nil {
		return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed,
			fmt.Sprintf("bad response status code: %d", res.StatusCode))
	}

	remoteDoc.DocumentURL = res.Request.URL.String()

	contentType := res.Header.Get("Content-Type")
	if linkHeader := res.Header.Get("Link"); linkHeader != "" {
		parsed := ParseLinkHeader(linkHeader)
		if contextLink, ok := parsed[linkHeaderRel]; ok && contentType != ApplicationJSONLDType &&
			(contentType == "application/json" || rApplicationJSON.MatchString(contentType)) {
			switch len(contextLink) {
			case 0:
			case 1:
				remoteDoc.ContextURL = contextLink[0]["target"]
			default:
				return nil, jsonld.NewProcessingError(jsonld.MultipleContextLinkHeaders, nil)
			}
		}

		if alt, ok := parsed["alternate"]; ok && len(alt) > 0 &&
			alt[0]["type"] == ApplicationJSONLDType && !rApplicationJSON.MatchString(contentType) {
			return l.LoadDocument(jsonld.ResolveIRI(u, alt[0]["target"]))
		}
	}

	remoteDoc.Document, err = l.decode(res.Body)
	if err != nil {
		return nil, err
	}
	return remoteDoc, nil
}

var (
	rSplitOnComma    = regexp.MustCompile(`(?:<[^>]*?>|"[^"]*?"|[^,])+`)
	rLinkHeader      = regexp.MustCompile(`\s*<([^>]*?)>\s*(?:;\s*(.*))?`)
	rApplicationJSON = regexp.MustCompile(`^application/(\w*\+)?json$`)
	rParams          = regexp.MustCompile(`(.*?)=(?:(?:"([^"]*?)")|([^"]*?))\s*(?:(?:;\s*)|$)`)
)

// ParseLinkHeader parses an HTTP Link header, keyed by the value of "rel".
func ParseLinkHeader(header string) map[string][]map[string]string {
	rval := make(map[string][]map[string]string)

	for _, entry := range rSplitOnComma.FindAllString(header, -1) {
		if !rLinkHeader.MatchString(entry) {
			continue
		}
		match := rLinkHeader.FindStringSubmatch(entry)

		result := map[string]string{"target": match[1]}
		for _, param := range rParams.FindAllStringSubmatch(match[2], -1) {
			if param[2] == "" {
				result[param[1]] = param[3]
			} else {
				result[param[1]] = param[2]
			}
		}
		rel := result["rel"]
		rval[rel] = append(rval[rel], result)
	}
	return rval
}

// CachingLoader is an unconditional cache overlay on top of another
// DocumentLoader: once a document has been fetched it is served from
// memory forever. Useful for tests, where it doubles as a preload store.
type CachingLoader struct {
	next  jsonld.DocumentLoader
	cache map[string]*jsonld.RemoteDocument
}

var _ jsonld.DocumentLoader = (*CachingLoader)(nil)

// NewCachingLoader creates a CachingLoader wrapping next.
func NewCachingLoader(next jsonld.DocumentLoader) *CachingLoader {
	return &CachingLoader{next: next, cache: make(map[string]*jsonld.RemoteDocument)}
}

// LoadDocument returns the cached document for u, fetching and caching
// it via the wrapped loader on a miss.
func (l *CachingLoader) LoadDocument(u string) (*jsonld.RemoteDocument, error) {
	if doc, cached := l.cache[u]; cached {
		return doc, nil
	}
	doc, err := l.next.LoadDocument(u)
	if err != nil {
		return nil, err
	}
	l.cache[u] = doc
	return doc, nil
}

// AddDocument preloads the cache with doc for u, bypassing the wrapped loader.
func (l *CachingLoader) AddDocument(u string, doc interface{}) {
	l.cache[u] = &jsonld.RemoteDocument{DocumentURL: u, Document: doc}
}

// PreloadWithMapping preloads the cache by loading, for each entry,
// mappedURL through the wrapped loader and storing the result under srcURL.
// This is how tests substitute local fixture files for remote URLs.
func (l *CachingLoader) PreloadWithMapping(urlMap map[string]string) error {
	for srcURL, mappedURL := range urlMap {
		doc, err := l.next.LoadDocument(mappedURL)
		if err != nil {
			return err
		}
		l.cache[srcURL] = doc
	}
	return nil
}

type cacheEntry struct {
	doc          *jsonld.RemoteDocument
	expireTime   time.Time
	neverExpires bool
}

// RFC7234CachingLoader is an HTTP document loader that honors RFC 7234
// cache-control response headers, via github.com/pquerna/cachecontrol.
type RFC7234CachingLoader struct {
	httpClient *http.Client
	cache      map[string]*cacheEntry
}

var _ jsonld.DocumentLoader = (*RFC7234CachingLoader)(nil)

// NewRFC7234CachingLoader creates an RFC7234CachingLoader using httpClient,
// or http.DefaultClient if httpClient is nil.
func NewRFC7234CachingLoader(httpClient *http.Client) *RFC7234CachingLoader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RFC7234CachingLoader{httpClient: httpClient, cache: make(map[string]*cacheEntry)}
}

// LoadDocument returns the JSON resource at u, serving a cached response
// while it remains fresh per the response's cache-control directives.
func (l *RFC7234CachingLoader) LoadDocument(u string) (*jsonld.RemoteDocument, error) {
	now := time.Now()
	if entry, ok := l.cache[u]; ok && (entry.neverExpires || entry.expireTime.After(now)) {
		return entry.doc, nil
	}

	parsedURL, err := url.Parse(u)
	if err != nil {
		return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, fmt.Sprintf("error parsing URL: %s", u))
	}

	remoteDoc := &jsonld.RemoteDocument{}
	neverExpires, shouldCache, expireTime := false, false, time.Now()

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		remoteDoc.DocumentURL = u
		file, err := os.Open(u)
		if err != nil {
			return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, err)
		}
		defer file.Close()

		remoteDoc.Document, err = DocumentFromReader(file)
		if err != nil {
			return nil, err
		}
		neverExpires, shouldCache = true, true
	} else {
		req, err := http.NewRequest(http.MethodGet, u, http.NoBody)
		if err != nil {
			return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, err)
		}
		req.Header.Add("Accept", acceptHeader)

		res, err := l.httpClient.Do(req)
		if err != nil {
			return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed, err)
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			return nil, jsonld.NewProcessingError(jsonld.LoadingDocumentFailed,
				fmt.Sprintf("bad response status code: %d", res.StatusCode))
		}

		remoteDoc.DocumentURL = res.Request.URL.String()

		contentType := res.Header.Get("Content-Type")
		if linkHeader := res.Header.Get("Link"); linkHeader != "" {
			parsed := ParseLinkHeader(linkHeader)
			if contextLink, ok := parsed[linkHeaderRel]; ok && contentType != ApplicationJSONLDType {
				switch len(contextLink) {
				case 0:
				case 1:
					remoteDoc.ContextURL = contextLink[0]["target"]
				default:
					return nil, jsonld.NewProcessingError(jsonld.MultipleContextLinkHeaders, nil)
				}
			}

			if alt, ok := parsed["alternate"]; ok && len(alt) > 0 &&
				alt[0]["type"] == ApplicationJSONLDType && !rApplicationJSON.MatchString(contentType) {
				remoteDoc, err = l.LoadDocument(jsonld.ResolveIRI(u, alt[0]["target"]))
				if err != nil {
					return nil, err
				}
			}
		}

		reasons, resExpireTime, ccErr := cachecontrol.CachableResponse(req, res, cachecontrol.Options{})
		if ccErr == nil && len(reasons) == 0 {
			shouldCache, expireTime = true, resExpireTime
		}

		if remoteDoc.Document == nil {
			remoteDoc.Document, err = DocumentFromReader(res.Body)
			if err != nil {
				return nil, err
			}
		}
	}

	if shouldCache {
		l.cache[u] = &cacheEntry{doc: remoteDoc, expireTime: expireTime, neverExpires: neverExpires}
	}

	return remoteDoc, nil
}
