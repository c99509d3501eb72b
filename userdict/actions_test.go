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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"ictag/jobs"
	"ictag/segmenter"
)

// TestTextScanRespondsWithPendingJob makes sure the handler answers
// with the enqueued (unfinished) job state and that the result of the
// scan appears only in the job registry. The job goroutine must not
// write into the value the handler serializes.
func TestTextScanRespondsWithPendingJob(t *testing.T) {
	gin.SetMode(gin.TestMode)
	storage := testStorage(t)
	svc, err := segmenter.NewService()
	assert.NoError(t, err)
	jobActions := jobs.NewActions(
		&jobs.Conf{MaxNumConcurrentJobs: 2}, "en", context.Background())
	actions := NewActions(storage, svc, jobActions)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(
		http.MethodPost,
		"/dictionary/textScan",
		strings.NewReader(`{"text":"深度学习框架"}`),
	)
	actions.TextScan(ctx)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID       string       `json:"id"`
		Type     string       `json:"type"`
		Finished bool         `json:"finished"`
		Result   *LearnResult `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, LearnJobType, resp.Type)
	assert.False(t, resp.Finished)
	assert.Nil(t, resp.Result)

	assert.Eventually(t, func() bool {
		job, ok := jobActions.GetJob(resp.ID)
		if !ok || !job.IsFinished() {
			return false
		}
		info, isLearnJob := job.(LearnJobInfo)
		return isLearnJob && info.Error == nil && info.Result != nil
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTextScanRejectsEmptyText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	storage := testStorage(t)
	svc, err := segmenter.NewService()
	assert.NoError(t, err)
	jobActions := jobs.NewActions(
		&jobs.Conf{MaxNumConcurrentJobs: 2}, "en", context.Background())
	actions := NewActions(storage, svc, jobActions)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(
		http.MethodPost, "/dictionary/textScan", strings.NewReader(`{"text":""}`))
	actions.TextScan(ctx)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
