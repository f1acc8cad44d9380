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
	"net/url"
	"regexp"
	"strings"
)

// iriReference holds an IRI split into the components base-IRI
// resolution needs: scheme, authority, path segments, query and
// fragment. It exists because context processing resolves IRIs
// against a base far more often than it needs a generic URL, and doing
// so with net/url alone loses the relative-reference edge cases RFC
// 3986 §5 requires (empty authority, dot-segment removal on paths that
// aren't syntactically absolute).
type iriReference struct {
	Href      string
	Scheme    string
	Host      string
	Auth      string
	User      string
	Password  string
	Hostname  string
	Port      string
	Relative  string
	Path      string
	Directory string
	File      string
	Query     string
	Hash      string

	// derived, not populated by the regex directly
	Pathname       string
	NormalizedPath string
	Authority      string
}

var iriParser = regexp.MustCompile(`^(?:([^:/?#]+):)?(?://((?:(([^:@]*)(?::([^:@]*))?)?@)?([^:/?#]*)(?::(\d*))?))?((((?:[^?#/]*/)*)([^?#]*))(?:\?([^#]*))?(?:#(.*))?)`)

// ParseIRIReference splits an IRI (or relative reference) into its
// components, normalizing the path by removing dot segments so it can
// be compared or recombined with another reference's components.
func ParseIRIReference(iri string) *iriReference {
	rval := iriReference{Href: iri}

	if iriParser.MatchString(iri) {
		matches := iriParser.FindStringSubmatch(iri)
		if matches[1] != "" {
			rval.Scheme = matches[1]
		}
		if matches[2] != "" {
			rval.Host = matches[2]
		}
		if matches[3] != "" {
			rval.Auth = matches[3]
		}
		if matches[4] != "" {
			rval.User = matches[4]
		}
		if matches[5] != "" {
			rval.Password = matches[5]
		}
		if matches[6] != "" {
			rval.Hostname = matches[6]
		}
		if matches[7] != "" {
			rval.Port = matches[7]
		}
		if matches[8] != "" {
			rval.Relative = matches[8]
		}
		if matches[9] != "" {
			rval.Path = matches[9]
		}
		if matches[10] != "" {
			rval.Directory = matches[10]
		}
		if matches[11] != "" {
			rval.File = matches[11]
		}
		if matches[12] != "" {
			rval.Query = matches[12]
		}
		if matches[13] != "" {
			rval.Hash = matches[13]
		}

		if rval.Host != "" && rval.Path == "" {
			rval.Path = "/"
		}

		rval.Pathname = rval.Path
		parseAuthority(&rval)
		rval.NormalizedPath = removeDotSegments(rval.Pathname, rval.Authority != "")
		if rval.Query != "" {
			rval.Path += "?" + rval.Query
		}
		if rval.Scheme != "" {
			rval.Scheme += ":"
		}
		if rval.Hash != "" {
			rval.Hash = "#" + rval.Hash
		}
	}

	return &rval
}

// removeDotSegments removes dot segments from an iriReference path,
// per RFC 3986 section 5.2.4.
func removeDotSegments(path string, hasAuthority bool) string {
	var rval []byte
	if strings.HasPrefix(path, "/") {
		rval = append(rval, '/')
	}

	input := strings.Split(path, "/")
	var output = make([]string, 0)
	for i := 0; i < len(input); i++ {
		if input[i] == "." || (input[i] == "" && len(input)-i > 1) {
			continue
		}
		if input[i] == ".." {
			if hasAuthority || (len(output) > 0 && output[len(output)-1] != "..") {
				if len(output) > 0 {
					output = output[:len(output)-1]
				}
			} else {
				output = append(output, "..")
			}
			continue
		}
		output = append(output, input[i])
	}

	if len(output) > 0 {
		rval = append(rval, output[0]...)
		for i := 1; i < len(output); i++ {
			rval = append(rval, '/')
			rval = append(rval, output[i]...)
		}
	}
	return string(rval)
}

// RemoveBaseIRI strips baseobj (a base IRI string or an already-parsed
// *iriReference) from iri, returning the relative reference that
// would re-resolve to iri against that base. Used by compaction to
// turn absolute IRIs back into base-relative ones when a context
// declares @base.
func RemoveBaseIRI(baseobj interface{}, iri string) string {
	if baseobj == nil {
		return iri
	}

	var base *iriReference
	if baseStr, isString := baseobj.(string); isString {
		base = ParseIRIReference(baseStr)
	} else {
		base = baseobj.(*iriReference)
	}

	root := ""
	if base.Href != "" {
		root += base.Scheme + "//" + base.Authority
	} else if !strings.HasPrefix(iri, "//") {
		root += "//"
	}

	if strings.Index(iri, root) != 0 {
		return iri
	}

	rel := ParseIRIReference(iri[len(root):])

	baseSegments := strings.Split(base.NormalizedPath, "/")
	iriSegments := strings.Split(rel.NormalizedPath, "/")

	last := 1
	if len(rel.Hash) > 0 || len(rel.Query) > 0 {
		last = 0
	}

	for len(baseSegments) > 0 && len(iriSegments) > last && baseSegments[0] == iriSegments[0] {
		baseSegments = baseSegments[1:]
		iriSegments = iriSegments[1:]
	}

	rval := ""

	if len(baseSegments) > 0 {
		if !strings.HasSuffix(base.NormalizedPath, "/") || baseSegments[0] == "" {
			baseSegments = baseSegments[0 : len(baseSegments)-1]
		}
		for i := 0; i < len(baseSegments); i++ {
			rval += "../"
		}
	}

	if len(iriSegments) > 0 {
		rval += iriSegments[0]
	}
	for i := 1; i < len(iriSegments); i++ {
		rval += "/" + iriSegments[i]
	}

	if rel.Query != "" {
		rval += "?" + rel.Query
	}
	if rel.Hash != "" {
		rval += rel.Hash
	}

	if rval == "" {
		rval = "./"
	}

	return rval
}

// ResolveIRI resolves pathToResolve against baseIRI and returns the
// resulting absolute (or still-relative, if baseIRI is empty) IRI
// string. This is the operation context processing's base-IRI and
// @import resolution steps both reduce to.
func ResolveIRI(baseIRI string, pathToResolve string) string {
	if baseIRI == "" {
		return pathToResolve
	}
	if pathToResolve == "" || strings.TrimSpace(pathToResolve) == "" {
		return baseIRI
	}

	uri, _ := url.Parse(baseIRI)
	if strings.HasPrefix(pathToResolve, "?") {
		uri.Fragment = ""
		uri.RawQuery = pathToResolve[1:]
		return uri.String()
	}

	pathToResolveURL, _ := url.Parse(pathToResolve)
	uri = uri.ResolveReference(pathToResolveURL)
	if uri.Path != "" {
		uri.Path = removeDotSegments(uri.Path, true)
	}
	return uri.String()
}

// parseAuthority fills in the Authority field of a parsed
// iriReference, handling the network-path-reference case ("//host/path")
// where the regex alone can't separate host from path.
func parseAuthority(parsed *iriReference) {
	if !strings.Contains(parsed.Href, ":") && strings.HasPrefix(parsed.Href, "//") && parsed.Host == "" {
		parsed.Pathname = parsed.Pathname[2:]
		idx := strings.Index(parsed.Pathname, "/")
		if idx == -1 {
			parsed.Authority = parsed.Pathname
			parsed.Pathname = ""
		} else {
			parsed.Authority = parsed.Pathname[0:idx]
			parsed.Pathname = parsed.Pathname[idx:]
		}
	} else {
		parsed.Authority = parsed.Host
		if parsed.Auth != "" {
			parsed.Authority = parsed.Auth + "@" + parsed.Authority
		}
	}
}
