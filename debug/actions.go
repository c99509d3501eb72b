// Copyright 2024 Martin Zimandl <martin.zimandl@gmail.com>
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

package debug

import (
	"fmt"
	"net/http"

	"ictag/jobs"
	"ictag/taxonomy"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Actions contains all the server HTTP REST actions
type Actions struct {
	finishSignals map[string]chan<- bool
	jobActions    *jobs.Actions
}

// CreateDummyJob creates a job doing nothing, waiting for its finish
// signal. Used when testing the job queue.
func (a *Actions) CreateDummyJob(ctx *gin.Context) {
	jobID, err := uuid.NewUUID()
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionError("failed to create dummy job"), http.StatusInternalServerError)
		return
	}

	jobInfo := &jobs.DummyJobInfo{
		ID:    jobID.String(),
		Type:  "dummy-job",
		Start: jobs.CurrentDatetime(),
	}
	if ctx.Request.URL.Query().Get("error") == "1" {
		jobInfo.Error = fmt.Errorf("dummy error")
	}
	finishSignal := make(chan bool)
	fn := jobs.QueuedFunc(func(upds chan<- jobs.GeneralJobInfo) {
		defer close(upds)
		<-finishSignal
		jobInfo.Result = &jobs.DummyJobResult{Payload: "Job Done!"}
		upds <- jobInfo.AsFinished()
	})
	a.jobActions.EnqueueJob(&fn, jobInfo)
	a.finishSignals[jobID.String()] = finishSignal
	uniresp.WriteJSONResponse(ctx.Writer, jobInfo)
}

func (a *Actions) FinishDummyJob(ctx *gin.Context) {
	finish, ok := a.finishSignals[ctx.Param("jobId")]
	if ok {
		delete(a.finishSignals, ctx.Param("jobId"))
		defer close(finish)
		finish <- true
		if storedJob, ok := a.jobActions.GetJob(ctx.Param("jobId")); ok {
			// note: the final job value is written in a different
			// goroutine so the response may show a slightly older state
			uniresp.WriteJSONResponse(ctx.Writer, storedJob.FullInfo())

		} else {
			uniresp.WriteJSONErrorResponse(ctx.Writer, uniresp.NewActionError("job not found"), http.StatusNotFound)
		}

	} else {
		uniresp.WriteJSONErrorResponse(ctx.Writer, uniresp.NewActionError("job not found"), http.StatusNotFound)
	}
}

// TaxonomyDump returns a developer-readable dump of the whole
// tagset tree including the internal code attributes.
func (a *Actions) TaxonomyDump(ctx *gin.Context) {
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{
		"dump": spew.Sdump(taxonomy.NLPIR),
	})
}

// NewActions is the default factory
func NewActions(jobActions *jobs.Actions) *Actions {
	return &Actions{
		finishSignals: make(map[string]chan<- bool),
		jobActions:    jobActions,
	}
}
