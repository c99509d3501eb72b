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
	"errors"
)

var (
	ErrorEmptyQueue = errors.New("empty queue")
)

// QueuedFunc is the work of a job. It must close the provided
// channel once done; the last written value is the final job state.
type QueuedFunc = func(chan<- GeneralJobInfo)

type queueEntry struct {
	job          *QueuedFunc
	initialState GeneralJobInfo
}

// JobQueue is a FIFO of jobs waiting for a free worker slot.
// It is not synchronized - the owner must guard concurrent access.
type JobQueue struct {
	entries []queueEntry
}

func (jq *JobQueue) Size() int {
	return len(jq.entries)
}

func (jq *JobQueue) Enqueue(item *QueuedFunc, initialState GeneralJobInfo) {
	jq.entries = append(jq.entries, queueEntry{job: item, initialState: initialState})
}

func (jq *JobQueue) Dequeue() (*QueuedFunc, GeneralJobInfo, error) {
	if len(jq.entries) == 0 {
		return nil, nil, ErrorEmptyQueue
	}
	first := jq.entries[0]
	jq.entries = jq.entries[1:]
	return first.job, first.initialState, nil
}

// PeekID returns the ID of the next job to be dequeued.
func (jq *JobQueue) PeekID() (string, error) {
	if len(jq.entries) == 0 {
		return "", ErrorEmptyQueue
	}
	return jq.entries[0].initialState.GetID(), nil
}
