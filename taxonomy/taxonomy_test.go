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

package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveParent(t *testing.T) {
	ans, err := NLPIR.Resolve("nrj", GranularityParent, LanguageEn)
	assert.NoError(t, err)
	assert.Equal(t, Names{"noun"}, ans)
}

func TestResolveChild(t *testing.T) {
	ans, err := NLPIR.Resolve("nrj", GranularityChild, LanguageEn)
	assert.NoError(t, err)
	assert.Equal(t, Names{"Japanese personal name"}, ans)
}

func TestResolveAll(t *testing.T) {
	ans, err := NLPIR.Resolve("nrj", GranularityAll, LanguageEn)
	assert.NoError(t, err)
	assert.Equal(t, Names{"noun", "personal name", "Japanese personal name"}, ans)
}

func TestResolveChinese(t *testing.T) {
	ans, err := NLPIR.Resolve("udh", GranularityChild, LanguageZh)
	assert.NoError(t, err)
	assert.Equal(t, Names{"的话"}, ans)
}

func TestResolveCaseInsensitive(t *testing.T) {
	for _, names := range []Granularity{GranularityParent, GranularityChild, GranularityAll} {
		upper, err := NLPIR.Resolve("NR", names, LanguageEn)
		assert.NoError(t, err)
		lower, err := NLPIR.Resolve("nr", names, LanguageEn)
		assert.NoError(t, err)
		assert.Equal(t, lower, upper)
	}
}

func TestResolveUnknownCode(t *testing.T) {
	ans, err := NLPIR.Resolve("qq_unknown_code", GranularityParent, LanguageEn)
	assert.NoError(t, err)
	assert.Nil(t, ans)
}

func TestResolveEmptyCode(t *testing.T) {
	ans, err := NLPIR.Resolve("", GranularityAll, LanguageEn)
	assert.NoError(t, err)
	assert.Nil(t, ans)
}

// TestResolvePartialMatch makes sure a code matching a parent but
// none of its declared children degrades to the parent-level names
// rather than failing.
func TestResolvePartialMatch(t *testing.T) {
	ans, err := NLPIR.Resolve("nsx", GranularityChild, LanguageEn)
	assert.NoError(t, err)
	assert.Equal(t, Names{"toponym"}, ans)

	ans, err = NLPIR.Resolve("nsx", GranularityAll, LanguageEn)
	assert.NoError(t, err)
	assert.Equal(t, Names{"noun", "toponym"}, ans)
}

func TestResolveInvalidGranularity(t *testing.T) {
	ans, err := NLPIR.Resolve("n", Granularity("totally"), LanguageEn)
	assert.Error(t, err)
	assert.Nil(t, ans)
}

func TestResolveInvalidLanguage(t *testing.T) {
	ans, err := NLPIR.Resolve("n", GranularityParent, Language("de"))
	assert.Error(t, err)
	assert.Nil(t, ans)
}

func TestResolveIsIdempotent(t *testing.T) {
	first, err := NLPIR.Resolve("vshi", GranularityAll, LanguageZh)
	assert.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := NLPIR.Resolve("vshi", GranularityAll, LanguageZh)
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestResolveShortestPrefixWins documents the scan order for the
// few sibling pairs where one authored code is a prefix of another
// ('gakr' vs 'gakrn', 'gwz' vs 'gwzj'). The shorter code always
// matches first, so the longer one is effectively shadowed. This
// mirrors the historical behavior of the tagset consumers and must
// not be changed silently.
func TestResolveShortestPrefixWins(t *testing.T) {
	ans, err := NLPIR.Resolve("gakrn", GranularityChild, LanguageEn)
	assert.NoError(t, err)
	assert.Equal(t, Names{"news agency kr"}, ans)

	ans, err = NLPIR.Resolve("gwzj", GranularityChild, LanguageEn)
	assert.NoError(t, err)
	assert.Equal(t, Names{"website z"}, ans)
}

// TestAllLeavesResolveToThemselves walks the whole taxonomy and
// checks that any leaf code resolves to its own name with the
// child granularity and to the full ancestry path with 'all',
// except for the two leaves shadowed by their shorter siblings.
func TestAllLeavesResolveToThemselves(t *testing.T) {
	shadowed := map[string]bool{"gakrn": true, "gwzj": true}

	var walk func(nodes NodeMap, pathEn Names)
	walk = func(nodes NodeMap, pathEn Names) {
		for code, node := range nodes {
			if shadowed[code] {
				continue
			}
			currPath := append(append(Names{}, pathEn...), node.NameEn)
			if len(node.Children) > 0 {
				walk(node.Children, currPath)
				continue
			}
			ans, err := NLPIR.Resolve(code, GranularityChild, LanguageEn)
			assert.NoError(t, err)
			assert.Equal(t, Names{node.NameEn}, ans, "code: %s", code)

			ans, err = NLPIR.Resolve(code, GranularityAll, LanguageEn)
			assert.NoError(t, err)
			assert.Equal(t, currPath, ans, "code: %s", code)
		}
	}
	walk(NLPIR.topLevel, Names{})
}

// TestParentEqualsChildForChildlessTopLevel covers top-level codes
// without any sub-classification where the parent and the child
// granularity must produce the same name.
func TestParentEqualsChildForChildlessTopLevel(t *testing.T) {
	for code, node := range NLPIR.topLevel {
		if len(node.Children) > 0 {
			continue
		}
		parent, err := NLPIR.Resolve(code, GranularityParent, LanguageEn)
		assert.NoError(t, err)
		child, err := NLPIR.Resolve(code, GranularityChild, LanguageEn)
		assert.NoError(t, err)
		assert.Equal(t, parent, child, "code: %s", code)
	}
}

func TestDataCodesAreLowercase(t *testing.T) {
	var walk func(nodes NodeMap)
	walk = func(nodes NodeMap) {
		for code, node := range nodes {
			assert.Equal(t, strings.ToLower(code), code)
			assert.Equal(t, code, node.Code)
			walk(node.Children)
		}
	}
	walk(NLPIR.topLevel)
}

func TestGet(t *testing.T) {
	node, ok := NLPIR.Get("pba")
	assert.True(t, ok)
	assert.Equal(t, "pba", node.Code)
	assert.Equal(t, "preposition 把", node.NameEn)

	_, ok = NLPIR.Get("qq_unknown_code")
	assert.False(t, ok)
}

func TestMustBuildRejectsNonExtendingChild(t *testing.T) {
	assert.Panics(t, func() {
		mustBuild(NodeMap{
			"n": {NameZh: "名词", NameEn: "noun", Children: NodeMap{
				"xr": {NameZh: "x", NameEn: "x"},
			}},
		})
	})
}

func TestMustBuildRejectsChildEqualToParent(t *testing.T) {
	assert.Panics(t, func() {
		mustBuild(NodeMap{
			"n": {NameZh: "名词", NameEn: "noun", Children: NodeMap{
				"n": {NameZh: "x", NameEn: "x"},
			}},
		})
	})
}

func TestGranularityValidate(t *testing.T) {
	assert.NoError(t, GranularityParent.Validate())
	assert.NoError(t, GranularityChild.Validate())
	assert.NoError(t, GranularityAll.Validate())
	assert.Error(t, Granularity("").Validate())
	assert.Error(t, Granularity("Parent").Validate())
}
