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

package segmenter

import (
	"errors"
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"ictag/taxonomy"
)

// Actions contains the HTTP REST actions for text segmentation.
type Actions struct {
	service *Service
}

type segmentationArgs struct {
	Text string `json:"text"`

	// Names selects the granularity of resolved part of speech
	// names; when empty, tokens carry raw codes only.
	Names taxonomy.Granularity `json:"names"`

	// Lang is the language of resolved names (en/zh, dflt. en).
	Lang taxonomy.Language `json:"lang"`

	// SkipPosTagging disables part of speech tagging completely
	// (plain word splitting).
	SkipPosTagging bool `json:"skipPosTagging"`
}

type segmentationResponse struct {
	Tokens []Token `json:"tokens"`
	Size   int     `json:"size"`
}

// Segmentation segments a submitted text and annotates the tokens
// with part of speech information.
func (a *Actions) Segmentation(ctx *gin.Context) {
	var args segmentationArgs
	if err := ctx.BindJSON(&args); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	if args.Text == "" {
		uniresp.RespondWithErrorJSON(
			ctx, errors.New("missing a text to segment"), http.StatusBadRequest)
		return
	}
	if args.Lang == "" {
		args.Lang = taxonomy.LanguageEn
	}

	var tokens []Token
	if args.SkipPosTagging {
		for _, word := range a.service.Cut(args.Text) {
			tokens = append(tokens, Token{Word: word})
		}

	} else {
		var err error
		tokens, err = a.service.Annotate(args.Text, args.Names, args.Lang)
		if err != nil {
			uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
			return
		}
	}
	uniresp.WriteJSONResponse(ctx.Writer, segmentationResponse{
		Tokens: tokens,
		Size:   len(tokens),
	})
}

// NewActions is the default factory.
func NewActions(service *Service) *Actions {
	return &Actions{service: service}
}
