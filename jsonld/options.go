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

// TermExpansionPolicy controls how an undefined term is handled during
// key expansion (§4.4.1).
type TermExpansionPolicy string

const (
	// PolicyRelaxed is accepted as a level, but key expansion treats it
	// like PolicyStandard: an undefined term without a colon is dropped,
	// not kept or marked Invalid.
	PolicyRelaxed TermExpansionPolicy = "relaxed"
	// PolicyStandard drops an undefined term unless it contains a colon,
	// in which case it is kept as a compact IRI or absolute IRI. This
	// is the JSON-LD 1.1 default.
	PolicyStandard TermExpansionPolicy = "standard"
	// PolicyStrict errors on an undefined term unless it contains a colon.
	PolicyStrict TermExpansionPolicy = "strict"
	// PolicyStrictest errors on any undefined term, colon or not.
	PolicyStrictest TermExpansionPolicy = "strictest"
)

// Policy groups the three term-expansion policy axes named in the
// options table: Invalid, Vocab and AllowUndefined. Each defaults to
// PolicyStandard. Expansion consults only AllowUndefined, for an
// undefined term; Invalid and Vocab are carried on Options but no
// algorithm reads them.
type Policy struct {
	Invalid        TermExpansionPolicy
	Vocab          TermExpansionPolicy
	AllowUndefined TermExpansionPolicy
}

// DefaultPolicy returns the JSON-LD 1.1 default term-expansion policy.
func DefaultPolicy() Policy {
	return Policy{
		Invalid:        PolicyStandard,
		Vocab:          PolicyStandard,
		AllowUndefined: PolicyStandard,
	}
}

const (
	JsonLd_1_0 = "json-ld-1.0" //nolint:stylecheck
	JsonLd_1_1 = "json-ld-1.1" //nolint:stylecheck
)

// Options type as specified in the JSON-LD-API specification:
// http://www.w3.org/TR/json-ld-api/#the-jsonldoptions-type
type Options struct { //nolint:stylecheck

	// Base options: http://www.w3.org/TR/json-ld-api/#idl-def-Options

	// http://www.w3.org/TR/json-ld-api/#widl-Options-base
	Base string
	// http://www.w3.org/TR/json-ld-api/#widl-Options-compactArrays
	CompactArrays bool
	// http://www.w3.org/TR/json-ld-api/#widl-Options-expandContext
	ExpandContext interface{}
	// http://www.w3.org/TR/json-ld-api/#widl-Options-processingMode
	ProcessingMode string
	// http://www.w3.org/TR/json-ld-api/#widl-Options-documentLoader
	DocumentLoader DocumentLoader

	// Ordered forces lexicographic key iteration wherever the algorithms
	// would otherwise walk a map in its underlying, unspecified order.
	Ordered bool

	// Policy controls how undefined terms are handled during expansion (§4.4.1).
	Policy Policy

	// WarningHandler receives non-fatal diagnostics raised during
	// processing. A nil handler discards warnings.
	WarningHandler WarningHandler

	// RDF conversion options: http://www.w3.org/TR/json-ld-api/#serialize-rdf-as-json-ld-algorithm

	UseRdfType            bool
	UseNativeTypes        bool
	ProduceGeneralizedRdf bool

	// BlankNodeGenerator allocates blank node identifiers during
	// flattening and RDF emission. A nil value defaults to a fresh
	// blank.SequentialGenerator at the call site.
	BlankNodeGenerator BlankNodeGenerator

	// The following properties aren't in the spec

	Format     string
	OutputForm string
	SafeMode   bool
}

// NewOptions creates and returns new instance of Options with the given base.
func NewOptions(base string) *Options { //nolint:stylecheck
	return &Options{
		Base:                  base,
		CompactArrays:         true,
		ProcessingMode:        JsonLd_1_1,
		Policy:                DefaultPolicy(),
		WarningHandler:        DiscardWarnings{},
		UseRdfType:            false,
		UseNativeTypes:        false,
		ProduceGeneralizedRdf: false,
		Format:                "",
		OutputForm:            "",
		SafeMode:              false,
	}
}

// Copy creates a deep copy of Options object.
func (opt *Options) Copy() *Options {
	return &Options{
		Base:                  opt.Base,
		CompactArrays:         opt.CompactArrays,
		ExpandContext:         opt.ExpandContext,
		ProcessingMode:        opt.ProcessingMode,
		DocumentLoader:        opt.DocumentLoader,
		Ordered:               opt.Ordered,
		Policy:                opt.Policy,
		WarningHandler:        opt.WarningHandler,
		UseRdfType:            opt.UseRdfType,
		UseNativeTypes:        opt.UseNativeTypes,
		ProduceGeneralizedRdf: opt.ProduceGeneralizedRdf,
		BlankNodeGenerator:    opt.BlankNodeGenerator,
		Format:                opt.Format,
		OutputForm:            opt.OutputForm,
		SafeMode:              opt.SafeMode,
	}
}
