// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package taxonomy maps part of speech codes produced by the
// NLPIR/ICTCLAS segmentation engine to human-readable names
// (English and Chinese). The tagset is hierarchical - e.g. 'nrj'
// (Japanese personal name) is a specialization of 'nr' (personal
// name) which is itself a specialization of 'n' (noun) - and
// a caller selects how deep into the hierarchy the returned
// name(s) should reach.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// GranularityParent selects the most generic name of a matched
	// code (e.g. 'noun' for 'nrj')
	GranularityParent Granularity = "parent"

	// GranularityChild selects the most specific name of a matched
	// code (e.g. 'Japanese personal name' for 'nrj')
	GranularityChild Granularity = "child"

	// GranularityAll selects the whole naming path of a matched code,
	// from the most generic to the most specific level
	GranularityAll Granularity = "all"

	LanguageEn Language = "en"
	LanguageZh Language = "zh"
)

// Granularity specifies how specific a resolved part of speech
// name should be.
type Granularity string

func (g Granularity) String() string {
	return string(g)
}

// Validate tests whether the value is one of the supported
// granularities. Anything else is a caller error.
func (g Granularity) Validate() error {
	if g != GranularityParent && g != GranularityChild && g != GranularityAll {
		return fmt.Errorf("invalid granularity: %s (must be one of: parent, child, all)", g)
	}
	return nil
}

// Language selects which of the two display names of a tag is used.
type Language string

func (lng Language) String() string {
	return string(lng)
}

func (lng Language) Validate() error {
	if lng != LanguageEn && lng != LanguageZh {
		return fmt.Errorf("invalid language: %s (must be one of: en, zh)", lng)
	}
	return nil
}

// Node is a single level of the part of speech classification.
// Once built by mustBuild, nodes are never mutated and may be read
// concurrently without synchronization.
type Node struct {
	Code     string
	NameZh   string
	NameEn   string
	Children NodeMap
}

// Name returns the display name of the node in the selected language.
func (n *Node) Name(lng Language) string {
	if lng == LanguageZh {
		return n.NameZh
	}
	return n.NameEn
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code     string  `json:"code"`
		NameZh   string  `json:"nameZh"`
		NameEn   string  `json:"nameEn"`
		Children []*Node `json:"children,omitempty"`
	}{
		Code:     n.Code,
		NameZh:   n.NameZh,
		NameEn:   n.NameEn,
		Children: n.Children.sorted(),
	})
}

// NodeMap maps full tag codes to nodes of a single hierarchy level.
type NodeMap map[string]*Node

// matchPath performs the longest-prefix descent for code and returns
// the chain of matched nodes ordered from the most generic one.
// At each level, candidate prefixes of the (complete) code are tried
// from the shortest one; the first existing node wins, even if a
// longer sibling code would also match. A nil result means the code
// is not covered by the taxonomy at all.
func (nm NodeMap) matchPath(code string) []*Node {
	for i := 1; i <= len(code); i++ {
		node, ok := nm[code[:i]]
		if !ok {
			continue
		}
		path := []*Node{node}
		if i < len(code) && len(node.Children) > 0 {
			// deeper levels are keyed by complete codes, so the
			// recursion receives the whole code, not just a suffix
			path = append(path, node.Children.matchPath(code)...)
		}
		return path
	}
	return nil
}

// Names is an ordered list of display names, from the most generic
// to the most specific matched level.
type Names []string

// Taxonomy is an immutable tree of part of speech codes with their
// bilingual names.
type Taxonomy struct {
	topLevel NodeMap
}

// Resolve translates a part of speech code as produced by the
// segmentation engine into its display name(s).
//
// For GranularityParent and GranularityChild the answer contains
// a single name, for GranularityAll it contains the whole matched
// path. Codes are matched case-insensitively.
//
// A code unknown to the taxonomy is a regular outcome (segmenters
// emit also internal/experimental tags) signaled by a nil answer,
// not by an error. An invalid granularity or language is a caller
// error and is reported as such.
func (t *Taxonomy) Resolve(code string, names Granularity, lng Language) (Names, error) {
	if err := names.Validate(); err != nil {
		return nil, err
	}
	if err := lng.Validate(); err != nil {
		return nil, err
	}
	// tags are authored lowercase but engines are known to produce
	// uppercase variants of the same codes
	code = strings.ToLower(code)
	log.Debug().
		Str("code", code).
		Str("names", names.String()).
		Str("lang", lng.String()).
		Msg("resolving a part of speech code")
	path := t.topLevel.matchPath(code)
	if len(path) == 0 {
		log.Warn().Str("code", code).Msg("part of speech not recognized")
		return nil, nil
	}
	var ans Names
	switch names {
	case GranularityParent:
		ans = Names{path[0].Name(lng)}
	case GranularityChild:
		ans = Names{path[len(path)-1].Name(lng)}
	case GranularityAll:
		ans = make(Names, len(path))
		for i, node := range path {
			ans[i] = node.Name(lng)
		}
	}
	log.Debug().Str("code", code).Strs("result", ans).Msg("part of speech name(s) found")
	return ans, nil
}

// Get returns the deepest node matching the code, along with
// a flag telling whether there was any match at all.
func (t *Taxonomy) Get(code string) (*Node, bool) {
	path := t.topLevel.matchPath(strings.ToLower(code))
	if len(path) == 0 {
		return nil, false
	}
	return path[len(path)-1], true
}

// TopLevel returns the first level of the hierarchy ordered by code.
func (t *Taxonomy) TopLevel() []*Node {
	return t.topLevel.sorted()
}

// mustBuild turns a nested code->node literal into a Taxonomy.
// Node codes are filled in from the mapping keys and the nesting
// invariant (a child code always extends its parent code) is
// enforced. A violation means a defect in the authored data, so
// the function panics rather than returning an error.
func mustBuild(topLevel NodeMap) *Taxonomy {
	fillCodes("", topLevel)
	return &Taxonomy{topLevel: topLevel}
}

func fillCodes(parentCode string, nodes NodeMap) {
	for code, node := range nodes {
		if len(code) <= len(parentCode) || !strings.HasPrefix(code, parentCode) {
			panic(fmt.Sprintf(
				"taxonomy code '%s' does not extend its parent code '%s'", code, parentCode))
		}
		node.Code = code
		if len(node.Children) > 0 {
			fillCodes(code, node.Children)
		}
	}
}

func (nm NodeMap) sorted() []*Node {
	codes := maps.Keys(nm)
	slices.Sort(codes)
	ans := make([]*Node, len(codes))
	for i, code := range codes {
		ans[i] = nm[code]
	}
	return ans
}
