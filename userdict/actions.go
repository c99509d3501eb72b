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
	"errors"
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"ictag/jobs"
	"ictag/segmenter"
	"ictag/taxonomy"
)

// Actions contains the HTTP REST actions for user dictionary
// maintenance.
type Actions struct {
	storage    *Storage
	service    *segmenter.Service
	learner    *Learner
	jobActions *jobs.Actions
}

type putWordArgs struct {
	Frequency float64 `json:"frequency"`
	Pos       string  `json:"pos"`
}

// PutWord stores a user dictionary entry and propagates it into
// the running segmentation engine.
func (a *Actions) PutWord(ctx *gin.Context) {
	word := ctx.Param("word")
	var args putWordArgs
	if err := ctx.BindJSON(&args); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	if args.Frequency == 0 {
		args.Frequency = dfltFrequency
	}
	if args.Pos == "" {
		args.Pos = dfltPos
	}
	if _, known := taxonomy.NLPIR.Get(args.Pos); !known {
		// not an error - segmenters work with extra-taxonomy tags too
		log.Warn().
			Str("word", word).
			Str("pos", args.Pos).
			Msg("storing an entry with a part of speech outside the known tagset")
	}
	entry := Entry{Word: word, Frequency: args.Frequency, Pos: args.Pos}
	if err := a.storage.Set(entry); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	if err := a.service.AddEntry(entry.Word, entry.Frequency, entry.Pos); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, entry)
}

// GetWord returns a stored user dictionary entry.
func (a *Actions) GetWord(ctx *gin.Context) {
	entry, err := a.storage.Get(ctx.Param("word"))
	if err == ErrorEntryNotFound {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)
		return

	} else if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, entry)
}

// DeleteWord removes an entry from the persistent store. The word
// stays known to the running engine until the next restart as gse
// provides no reliable removal.
func (a *Actions) DeleteWord(ctx *gin.Context) {
	word := ctx.Param("word")
	err := a.storage.Delete(word)
	if err == ErrorEntryNotFound {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)
		return

	} else if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"removed": word})
}

type wordListResponse struct {
	Entries []Entry `json:"entries"`
	Size    int     `json:"size"`
}

// Words returns all the stored user dictionary entries.
func (a *Actions) Words(ctx *gin.Context) {
	entries, err := a.storage.List()
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, wordListResponse{
		Entries: entries,
		Size:    len(entries),
	})
}

type textScanArgs struct {
	Text string `json:"text"`
}

// TextScan starts an asynchronous job extracting unknown words
// from a submitted text into the user dictionary.
func (a *Actions) TextScan(ctx *gin.Context) {
	var args textScanArgs
	if err := ctx.BindJSON(&args); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	if args.Text == "" {
		uniresp.RespondWithErrorJSON(
			ctx, errors.New("missing a text to scan"), http.StatusBadRequest)
		return
	}
	jobID, err := uuid.NewUUID()
	if err != nil {
		uniresp.RespondWithErrorJSON(
			ctx, errors.New("failed to create text scanning job"), http.StatusInternalServerError)
		return
	}
	jobInfo := LearnJobInfo{
		ID:    jobID.String(),
		Type:  LearnJobType,
		Start: jobs.CurrentDatetime(),
	}
	fn := jobs.QueuedFunc(func(upds chan<- jobs.GeneralJobInfo) {
		defer close(upds)
		result, err := a.learner.ScanText(args.Text)
		if err != nil {
			upds <- jobInfo.WithError(err)
			return
		}
		// the handler goroutine still reads jobInfo, mutate a copy
		newJobInfo := jobInfo
		newJobInfo.Result = result
		upds <- newJobInfo.AsFinished()
	})
	a.jobActions.EnqueueJob(&fn, jobInfo)
	uniresp.WriteJSONResponse(ctx.Writer, jobInfo.FullInfo())
}

// NewActions is the default factory.
func NewActions(
	storage *Storage,
	service *segmenter.Service,
	jobActions *jobs.Actions,
) *Actions {
	return &Actions{
		storage:    storage,
		service:    service,
		learner:    NewLearner(storage, service),
		jobActions: jobActions,
	}
}
