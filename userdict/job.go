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
	"time"

	"ictag/jobs"
)

// LearnJobType identifies the asynchronous text scanning job.
const LearnJobType = "dict-learning"

// LearnJobInfo collects the state of a text scanning job.
type LearnJobInfo struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	Start       jobs.JSONTime `json:"start"`
	Update      jobs.JSONTime `json:"update"`
	Finished    bool          `json:"finished"`
	Error       error         `json:"error,omitempty"`
	Result      *LearnResult  `json:"result"`
	NumRestarts int           `json:"numRestarts"`
}

func (j LearnJobInfo) GetID() string {
	return j.ID
}

func (j LearnJobInfo) GetType() string {
	return j.Type
}

func (j LearnJobInfo) GetStartDT() jobs.JSONTime {
	return j.Start
}

func (j LearnJobInfo) GetNumRestarts() int {
	return j.NumRestarts
}

func (j LearnJobInfo) IsFinished() bool {
	return j.Finished
}

func (j LearnJobInfo) AsFinished() jobs.GeneralJobInfo {
	j.Update = jobs.CurrentDatetime()
	j.Finished = true
	return j
}

func (j LearnJobInfo) CompactVersion() jobs.JobInfoCompact {
	item := jobs.JobInfoCompact{
		ID:       j.ID,
		Type:     j.Type,
		Start:    j.Start,
		Update:   j.Update,
		Finished: j.Finished,
		OK:       true,
	}
	if j.Error != nil || j.Result == nil {
		item.OK = false
	}
	return item
}

func (j LearnJobInfo) FullInfo() any {
	return struct {
		ID          string        `json:"id"`
		Type        string        `json:"type"`
		Start       jobs.JSONTime `json:"start"`
		Update      jobs.JSONTime `json:"update"`
		Finished    bool          `json:"finished"`
		Error       string        `json:"error,omitempty"`
		OK          bool          `json:"ok"`
		Result      *LearnResult  `json:"result"`
		NumRestarts int           `json:"numRestarts"`
	}{
		ID:          j.ID,
		Type:        j.Type,
		Start:       j.Start,
		Update:      j.Update,
		Finished:    j.Finished,
		Error:       jobs.ErrorToString(j.Error),
		OK:          j.Error == nil,
		Result:      j.Result,
		NumRestarts: j.NumRestarts,
	}
}

func (j LearnJobInfo) GetError() error {
	return j.Error
}

func (j LearnJobInfo) WithError(err error) jobs.GeneralJobInfo {
	return LearnJobInfo{
		ID:          j.ID,
		Type:        j.Type,
		Start:       j.Start,
		Update:      jobs.JSONTime(time.Now()),
		Finished:    true,
		Error:       err,
		Result:      j.Result,
		NumRestarts: j.NumRestarts,
	}
}
