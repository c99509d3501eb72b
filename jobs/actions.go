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

package jobs

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Conf is the configuration of the jobs subsystem.
type Conf struct {
	MaxNumConcurrentJobs int `json:"maxNumConcurrentJobs"`
}

// Actions schedules enqueued jobs with a bounded number of
// concurrent workers and exposes the job registry via HTTP.
type Actions struct {
	conf       *Conf
	ctx        context.Context
	jobList    *collections.ConcurrentMap[string, GeneralJobInfo]
	queue      JobQueue
	queueLock  sync.Mutex
	slots      chan struct{}
	msgPrinter *message.Printer
}

// EnqueueJob registers a job and runs it as soon as a worker
// slot is available.
func (a *Actions) EnqueueJob(fn *QueuedFunc, initialStatus GeneralJobInfo) {
	a.queueLock.Lock()
	a.queue.Enqueue(fn, initialStatus)
	a.queueLock.Unlock()
	a.jobList.Set(initialStatus.GetID(), initialStatus)
	log.Info().
		Str("jobId", initialStatus.GetID()).
		Str("type", initialStatus.GetType()).
		Msg("enqueued job")
	a.tryNextJob()
}

func (a *Actions) tryNextJob() {
	if a.ctx.Err() != nil {
		return
	}
	select {
	case a.slots <- struct{}{}:
	default:
		// all workers busy; a finishing worker will pick the job up
		return
	}
	a.queueLock.Lock()
	fn, initialState, err := a.queue.Dequeue()
	a.queueLock.Unlock()
	if err == ErrorEmptyQueue {
		<-a.slots
		return
	}
	go func() {
		defer func() {
			<-a.slots
			a.tryNextJob()
		}()
		updates := make(chan GeneralJobInfo, 8)
		go (*fn)(updates)
		for upd := range updates {
			a.jobList.Set(upd.GetID(), upd)
		}
		final, ok := a.jobList.GetWithTest(initialState.GetID())
		if ok && final.GetError() != nil {
			log.Error().
				Err(final.GetError()).
				Str("jobId", initialState.GetID()).
				Msg("job finished with error")

		} else {
			log.Info().Str("jobId", initialState.GetID()).Msg("job finished")
		}
	}()
}

// GetJob returns a registered job by its ID.
func (a *Actions) GetJob(jobID string) (GeneralJobInfo, bool) {
	return a.jobList.GetWithTest(jobID)
}

func (a *Actions) allJobsSorted() []GeneralJobInfo {
	ans := make([]GeneralJobInfo, 0, a.jobList.Len())
	for _, jobID := range a.jobList.Keys() {
		if job, ok := a.jobList.GetWithTest(jobID); ok {
			ans = append(ans, job)
		}
	}
	slices.SortFunc(ans, func(j1, j2 GeneralJobInfo) int {
		if j1.GetStartDT().Before(j2.GetStartDT()) {
			return 1
		}
		if j2.GetStartDT().Before(j1.GetStartDT()) {
			return -1
		}
		return 0
	})
	return ans
}

type localizedJobInfo struct {
	Job         any    `json:"job"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// JobList returns all the registered jobs, newest first.
// With compact=1 a minimal overview is returned, with localize=1
// each item carries a human-readable description and status.
func (a *Actions) JobList(ctx *gin.Context) {
	jobList := a.allJobsSorted()
	if ctx.Query("compact") == "1" {
		ans := make([]JobInfoCompact, len(jobList))
		for i, job := range jobList {
			ans[i] = job.CompactVersion()
		}
		uniresp.WriteJSONResponse(ctx.Writer, ans)
		return
	}
	if ctx.Query("localize") == "1" {
		ans := make([]localizedJobInfo, len(jobList))
		for i, job := range jobList {
			ans[i] = localizedJobInfo{
				Job:         job.FullInfo(),
				Description: extractJobDescription(a.msgPrinter, job),
				Status:      localizedStatus(a.msgPrinter, job),
			}
		}
		uniresp.WriteJSONResponse(ctx.Writer, ans)
		return
	}
	ans := make([]any, len(jobList))
	for i, job := range jobList {
		ans[i] = job.FullInfo()
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// JobInfo returns a full state of a single job.
func (a *Actions) JobInfo(ctx *gin.Context) {
	job, ok := a.jobList.GetWithTest(ctx.Param("jobId"))
	if !ok {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("job not found"), http.StatusNotFound)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, job.FullInfo())
}

// Delete removes a job from the registry. A running job cannot be
// interrupted - it just loses its registry record.
func (a *Actions) Delete(ctx *gin.Context) {
	jobID := ctx.Param("jobId")
	job, ok := a.jobList.GetWithTest(jobID)
	if !ok {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("job not found"), http.StatusNotFound)
		return
	}
	a.jobList.Delete(jobID)
	uniresp.WriteJSONResponse(ctx.Writer, job.FullInfo())
}

type clearIfFinishedResponse struct {
	Removed bool `json:"removed"`
	Job     any  `json:"job"`
}

// ClearIfFinished removes a job from the registry but only if it
// is already finished.
func (a *Actions) ClearIfFinished(ctx *gin.Context) {
	jobID := ctx.Param("jobId")
	job, ok := a.jobList.GetWithTest(jobID)
	if !ok {
		uniresp.RespondWithErrorJSON(
			ctx, fmt.Errorf("job not found"), http.StatusNotFound)
		return
	}
	if !job.IsFinished() {
		uniresp.WriteJSONResponse(ctx.Writer, clearIfFinishedResponse{
			Removed: false,
			Job:     job.FullInfo(),
		})
		return
	}
	a.jobList.Delete(jobID)
	uniresp.WriteJSONResponse(ctx.Writer, clearIfFinishedResponse{
		Removed: true,
		Job:     job.FullInfo(),
	})
}

// NewActions creates the jobs subsystem. The language argument
// drives localization of job descriptions in listings.
func NewActions(conf *Conf, lang string, ctx context.Context) *Actions {
	return &Actions{
		conf:       conf,
		ctx:        ctx,
		jobList:    collections.NewConcurrentMap[string, GeneralJobInfo](),
		slots:      make(chan struct{}, conf.MaxNumConcurrentJobs),
		msgPrinter: message.NewPrinter(language.Make(lang)),
	}
}
