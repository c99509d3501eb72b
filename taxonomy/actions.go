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
	"fmt"
	"net/http"
	"strings"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

// Actions contains the HTTP REST actions of the tagset browsing
// and resolution API.
type Actions struct {
	tax *Taxonomy
}

type resolutionResponse struct {
	Code  string `json:"code"`
	Names Names  `json:"names"`
}

// ResolveTag translates a single part of speech code into its
// display name(s). The `names` URL argument selects the granularity
// (parent/child/all, dflt. parent), the `lang` argument the language
// of the names (en/zh, dflt. en).
func (a *Actions) ResolveTag(ctx *gin.Context) {
	code := ctx.Param("code")
	names := Granularity(ctx.DefaultQuery("names", GranularityParent.String()))
	lng := Language(ctx.DefaultQuery("lang", LanguageEn.String()))
	ans, err := a.tax.Resolve(code, names, lng)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	if ans == nil {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("part of speech not recognized: %s", code),
			http.StatusNotFound,
		)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, resolutionResponse{
		Code:  strings.ToLower(code),
		Names: ans,
	})
}

// TagsetTree returns the whole tag hierarchy with codes ordered
// alphabetically on each level.
func (a *Actions) TagsetTree(ctx *gin.Context) {
	uniresp.WriteJSONResponse(ctx.Writer, a.tax.TopLevel())
}

// NewActions is the default factory. The handler operates on the
// compiled-in NLPIR taxonomy.
func NewActions() *Actions {
	return &Actions{tax: NLPIR}
}
