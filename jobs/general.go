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

// Package jobs provides a simple asynchronous job subsystem with
// a bounded number of concurrently running workers. Jobs are
// fire-and-forget; their state lives in memory for the lifetime
// of the process.
package jobs

// GeneralJobInfo is the common interface of all trackable job
// state records. Implementations are value types - state changes
// produce new values which are stored in the job registry.
type GeneralJobInfo interface {
	GetID() string
	GetType() string
	GetStartDT() JSONTime
	GetNumRestarts() int
	GetError() error
	IsFinished() bool

	// AsFinished returns a copy of the info marked as finished
	// with an updated timestamp
	AsFinished() GeneralJobInfo

	// WithError returns a finished copy of the info with the
	// provided error attached
	WithError(err error) GeneralJobInfo

	CompactVersion() JobInfoCompact

	// FullInfo returns a JSON-serializable variant of the info
	// with the error exported as a plain string
	FullInfo() any
}

// JobInfoCompact is a minimal serializable job state overview
// used in job listings.
type JobInfoCompact struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Start    JSONTime `json:"start"`
	Update   JSONTime `json:"update"`
	Finished bool     `json:"finished"`
	OK       bool     `json:"ok"`
}

func ErrorToString(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}
