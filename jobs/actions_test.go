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
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnqueueJobRunsAndFinishes(t *testing.T) {
	a := NewActions(&Conf{MaxNumConcurrentJobs: 2}, "en", context.Background())
	jobInfo := DummyJobInfo{ID: "job1", Type: "dummy-job", Start: CurrentDatetime()}
	fn := QueuedFunc(func(upds chan<- GeneralJobInfo) {
		defer close(upds)
		jobInfo.Result = &DummyJobResult{Payload: "done"}
		upds <- jobInfo.AsFinished()
	})
	a.EnqueueJob(&fn, jobInfo)

	assert.Eventually(t, func() bool {
		job, ok := a.GetJob("job1")
		return ok && job.IsFinished()
	}, 2*time.Second, 10*time.Millisecond)
}

func TestEnqueueJobRespectsConcurrencyLimit(t *testing.T) {
	a := NewActions(&Conf{MaxNumConcurrentJobs: 1}, "en", context.Background())
	var running, maxRunning int32
	release := make(chan bool)
	for i := 0; i < 3; i++ {
		jobInfo := DummyJobInfo{
			ID:    fmt.Sprintf("job%d", i),
			Type:  "dummy-job",
			Start: CurrentDatetime(),
		}
		fn := QueuedFunc(func(upds chan<- GeneralJobInfo) {
			defer close(upds)
			curr := atomic.AddInt32(&running, 1)
			for {
				prev := atomic.LoadInt32(&maxRunning)
				if curr <= prev || atomic.CompareAndSwapInt32(&maxRunning, prev, curr) {
					break
				}
			}
			<-release
			atomic.AddInt32(&running, -1)
			upds <- jobInfo.AsFinished()
		})
		a.EnqueueJob(&fn, jobInfo)
	}
	close(release)
	assert.Eventually(t, func() bool {
		for i := 0; i < 3; i++ {
			job, ok := a.GetJob(fmt.Sprintf("job%d", i))
			if !ok || !job.IsFinished() {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&maxRunning))
}

func TestGetJobMissing(t *testing.T) {
	a := NewActions(&Conf{MaxNumConcurrentJobs: 1}, "en", context.Background())
	_, ok := a.GetJob("no-such-job")
	assert.False(t, ok)
}
