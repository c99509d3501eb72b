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

// Package segmenter wraps the gse word segmentation engine and
// decorates its output tokens with human-readable part of speech
// names resolved via the taxonomy package.
package segmenter

import (
	"fmt"
	"sync"

	"github.com/go-ego/gse"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"

	"ictag/taxonomy"
)

// Token is a single segmented word along with its part of speech
// annotation. Names is nil either when name resolution was not
// requested or when the engine produced a code unknown to the
// taxonomy.
type Token struct {
	Word  string         `json:"word"`
	Code  string         `json:"pos"`
	Names taxonomy.Names `json:"names,omitempty"`
}

// Service provides text segmentation with optional part of speech
// name resolution. The engine's dictionary is not synchronized by
// gse itself, so mu guards it - segmentation takes the read lock,
// dictionary updates the write lock.
type Service struct {
	mu  sync.RWMutex
	seg gse.Segmenter
	tax *taxonomy.Taxonomy
}

// Normalize applies the NFKC normal form to the input. Texts pasted
// from web sources mix full-width and half-width variants of the
// same characters which would otherwise fragment dictionary matches.
func Normalize(text string) string {
	return norm.NFKC.String(text)
}

// Cut returns plain segmented words without part of speech tagging.
func (s *Service) Cut(text string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seg.Cut(Normalize(text), true)
}

// Annotate segments the text and attaches part of speech codes to
// each token. If names is non-empty, codes are also resolved to
// display names at the requested granularity; an empty names value
// keeps raw codes only.
func (s *Service) Annotate(text string, names taxonomy.Granularity, lng taxonomy.Language) ([]Token, error) {
	if names != "" {
		if err := names.Validate(); err != nil {
			return nil, err
		}
		if err := lng.Validate(); err != nil {
			return nil, err
		}
	}
	s.mu.RLock()
	segments := s.seg.Pos(Normalize(text), true)
	s.mu.RUnlock()
	return s.decorate(segments, names, lng)
}

// decorate is a pure transformation of engine output into annotated
// tokens. Unrecognized codes keep their raw value with nil Names.
func (s *Service) decorate(segments []gse.SegPos, names taxonomy.Granularity, lng taxonomy.Language) ([]Token, error) {
	ans := make([]Token, len(segments))
	for i, sp := range segments {
		tok := Token{Word: sp.Text, Code: sp.Pos}
		if names != "" && sp.Pos != "" {
			resolved, err := s.tax.Resolve(sp.Pos, names, lng)
			if err != nil {
				return nil, err
			}
			tok.Names = resolved
		}
		ans[i] = tok
	}
	return ans, nil
}

// AddEntry feeds a user dictionary entry into the running engine.
func (s *Service) AddEntry(word string, frequency float64, pos string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seg.AddToken(word, frequency, pos)
}

// LoadEntries loads user dictionary data in the gse text format
// ("word frequency pos" per line) into the engine.
func (s *Service) LoadEntries(dictData string) error {
	if dictData == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seg.LoadDictStr(dictData)
}

// NewService creates a segmentation service with the engine's
// default embedded dictionary and the compiled-in NLPIR taxonomy.
func NewService() (*Service, error) {
	seg, err := gse.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize segmentation engine: %w", err)
	}
	log.Info().Msg("initialized gse segmentation engine")
	return &Service{
		seg: seg,
		tax: taxonomy.NLPIR,
	}, nil
}
