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

// Package userdict persists user-defined dictionary entries for the
// segmentation engine. Entries survive restarts and are loaded into
// the engine during startup.
package userdict

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	badger "github.com/dgraph-io/badger/v4"
)

var (
	ErrorEntryNotFound = errors.New("entry not found")
)

// Conf configures the user dictionary persistence.
type Conf struct {
	DBPath string `json:"dbPath"`
}

// Entry is a single user dictionary record in the form the
// segmentation engine understands.
type Entry struct {
	Word      string  `json:"word"`
	Frequency float64 `json:"frequency"`
	Pos       string  `json:"pos"`
}

// AsDictLine exports the entry in the gse text dictionary format.
func (e Entry) AsDictLine() string {
	return fmt.Sprintf("%s %f %s", e.Word, e.Frequency, e.Pos)
}

// Storage is a badger-backed store of dictionary entries keyed
// by the word itself.
type Storage struct {
	db *badger.DB
}

// Set stores (or overwrites) an entry.
func (s *Storage) Set(entry Entry) error {
	data, err := sonic.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to store dictionary entry: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(entry.Word), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store dictionary entry: %w", err)
	}
	return nil
}

// Get returns the entry stored for the word. A missing word is
// reported via ErrorEntryNotFound.
func (s *Storage) Get(word string) (Entry, error) {
	var ans Entry
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(word))
		if err == badger.ErrKeyNotFound {
			return ErrorEntryNotFound

		} else if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return sonic.Unmarshal(val, &ans)
		})
	})
	if err != nil {
		return Entry{}, err
	}
	return ans, nil
}

// Contains tests the presence of a word without deserializing it.
func (s *Storage) Contains(word string) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(word))
		return err
	})
	if err == badger.ErrKeyNotFound {
		return false, nil

	} else if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the entry of the word. Deleting a missing word
// is reported via ErrorEntryNotFound.
func (s *Storage) Delete(word string) error {
	if exists, err := s.Contains(word); err != nil {
		return err

	} else if !exists {
		return ErrorEntryNotFound
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(word))
	})
}

// ForEach calls fn for every stored entry. An error returned by fn
// stops the iteration.
func (s *Storage) ForEach(fn func(entry Entry) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var entry Entry
				if err := sonic.Unmarshal(val, &entry); err != nil {
					return err
				}
				return fn(entry)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns all the stored entries.
func (s *Storage) List() ([]Entry, error) {
	ans := make([]Entry, 0, 100)
	err := s.ForEach(func(entry Entry) error {
		ans = append(ans, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ans, nil
}

// ExportDictData returns all the entries in the gse text dictionary
// format suitable for Service.LoadEntries of the segmenter package.
func (s *Storage) ExportDictData() (string, error) {
	lines := make([]string, 0, 100)
	err := s.ForEach(func(entry Entry) error {
		lines = append(lines, entry.AsDictLine())
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// OpenStorage opens (and creates if needed) a badger database
// at the configured path.
func OpenStorage(conf *Conf) (*Storage, error) {
	opts := badger.DefaultOptions(conf.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open user dictionary storage: %w", err)
	}
	return &Storage{db: db}, nil
}

// OpenEphemeralStorage creates an in-memory storage which is not
// persisted anywhere. Used in tests.
func OpenEphemeralStorage() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open user dictionary storage: %w", err)
	}
	return &Storage{db: db}, nil
}
