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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testStorage(t *testing.T) *Storage {
	storage, err := OpenEphemeralStorage()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { storage.Close() })
	return storage
}

func TestSetAndGet(t *testing.T) {
	storage := testStorage(t)
	entry := Entry{Word: "自然语言", Frequency: 1200, Pos: "nz"}
	assert.NoError(t, storage.Set(entry))
	ans, err := storage.Get("自然语言")
	assert.NoError(t, err)
	assert.Equal(t, entry, ans)
}

func TestGetMissing(t *testing.T) {
	storage := testStorage(t)
	_, err := storage.Get("不存在")
	assert.Equal(t, ErrorEntryNotFound, err)
}

func TestSetOverwrites(t *testing.T) {
	storage := testStorage(t)
	assert.NoError(t, storage.Set(Entry{Word: "词", Frequency: 10, Pos: "n"}))
	assert.NoError(t, storage.Set(Entry{Word: "词", Frequency: 20, Pos: "nz"}))
	ans, err := storage.Get("词")
	assert.NoError(t, err)
	assert.Equal(t, 20.0, ans.Frequency)
	assert.Equal(t, "nz", ans.Pos)
}

func TestContains(t *testing.T) {
	storage := testStorage(t)
	assert.NoError(t, storage.Set(Entry{Word: "语料库", Frequency: 500, Pos: "n"}))
	ans, err := storage.Contains("语料库")
	assert.NoError(t, err)
	assert.True(t, ans)
	ans, err = storage.Contains("别的")
	assert.NoError(t, err)
	assert.False(t, ans)
}

func TestDelete(t *testing.T) {
	storage := testStorage(t)
	assert.NoError(t, storage.Set(Entry{Word: "删除", Frequency: 1, Pos: "v"}))
	assert.NoError(t, storage.Delete("删除"))
	ans, err := storage.Contains("删除")
	assert.NoError(t, err)
	assert.False(t, ans)
}

func TestDeleteMissing(t *testing.T) {
	storage := testStorage(t)
	err := storage.Delete("不存在")
	assert.Equal(t, ErrorEntryNotFound, err)
}

func TestList(t *testing.T) {
	storage := testStorage(t)
	assert.NoError(t, storage.Set(Entry{Word: "甲", Frequency: 1, Pos: "n"}))
	assert.NoError(t, storage.Set(Entry{Word: "乙", Frequency: 2, Pos: "n"}))
	entries, err := storage.List()
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	words := []string{entries[0].Word, entries[1].Word}
	assert.Contains(t, words, "甲")
	assert.Contains(t, words, "乙")
}

func TestListEmpty(t *testing.T) {
	storage := testStorage(t)
	entries, err := storage.List()
	assert.NoError(t, err)
	assert.Equal(t, []Entry{}, entries)
}

func TestExportDictData(t *testing.T) {
	storage := testStorage(t)
	assert.NoError(t, storage.Set(Entry{Word: "神经网络", Frequency: 800, Pos: "nz"}))
	data, err := storage.ExportDictData()
	assert.NoError(t, err)
	assert.Equal(t, "神经网络 800.000000 nz", data)
}

func TestExportDictDataMultiline(t *testing.T) {
	storage := testStorage(t)
	assert.NoError(t, storage.Set(Entry{Word: "甲", Frequency: 1, Pos: "n"}))
	assert.NoError(t, storage.Set(Entry{Word: "乙", Frequency: 2, Pos: "n"}))
	data, err := storage.ExportDictData()
	assert.NoError(t, err)
	lines := strings.Split(data, "\n")
	assert.Len(t, lines, 2)
}

func TestAsDictLine(t *testing.T) {
	entry := Entry{Word: "测试", Frequency: 42.5, Pos: "vn"}
	assert.Equal(t, "测试 42.500000 vn", entry.AsDictLine())
}
