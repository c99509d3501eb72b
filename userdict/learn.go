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

package userdict

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"ictag/segmenter"
)

const (
	// dfltFrequency is used for words without an explicitly
	// provided corpus frequency
	dfltFrequency = 1000.0

	// dfltPos marks learned words as 'other proper noun' which is
	// what new vocabulary almost always is
	dfltPos = "nz"
)

var (
	specialToken = regexp.MustCompile(`[\p{P}\p{S}\p{Z}]`)
)

// isCandidateWord filters out tokens which make no sense as user
// dictionary entries - single characters, punctuation and other
// non-word material.
func isCandidateWord(token string) bool {
	if utf8.RuneCountInString(token) <= 1 {
		return false
	}
	return !specialToken.MatchString(token)
}

// LearnResult summarizes a single text scan.
type LearnResult struct {
	NumTokens int      `json:"numTokens"`
	NewWords  []string `json:"newWords"`
}

// Learner extracts so far unknown multi-character words from
// segmented texts and records them both in the persistent store
// and in the running segmentation engine.
type Learner struct {
	storage *Storage
	service *segmenter.Service
}

// ScanText segments the text and stores every unknown candidate
// word with the default frequency and part of speech.
func (l *Learner) ScanText(text string) (*LearnResult, error) {
	tokens := l.service.Cut(text)
	ans := &LearnResult{
		NumTokens: len(tokens),
		NewWords:  []string{},
	}
	seen := make(map[string]bool)
	for _, token := range tokens {
		if !isCandidateWord(token) || seen[token] {
			continue
		}
		seen[token] = true
		exists, err := l.storage.Contains(token)
		if err != nil {
			return nil, fmt.Errorf("failed to scan text: %w", err)
		}
		if exists {
			continue
		}
		entry := Entry{Word: token, Frequency: dfltFrequency, Pos: dfltPos}
		if err := l.storage.Set(entry); err != nil {
			return nil, fmt.Errorf("failed to scan text: %w", err)
		}
		if err := l.service.AddEntry(entry.Word, entry.Frequency, entry.Pos); err != nil {
			return nil, fmt.Errorf("failed to scan text: %w", err)
		}
		log.Debug().Str("word", token).Msg("learned a new word")
		ans.NewWords = append(ans.NewWords, token)
	}
	return ans, nil
}

// NewLearner is the default factory.
func NewLearner(storage *Storage, service *segmenter.Service) *Learner {
	return &Learner{storage: storage, service: service}
}
