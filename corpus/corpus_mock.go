// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package corpus

import (
	"sort"
)

// Implements the CorpusLoader interface with trivial implementation
type EmptyCorpusLoader struct{ Label string }

func (loader EmptyCorpusLoader) GetConfig() CorpusConfig {
	return CorpusConfig{}
}

func (loader EmptyCorpusLoader) LoadCollection(fName, colTitle string) (*[]CorpusEntry, error) {
	return &[]CorpusEntry{}, nil
}

func (loader EmptyCorpusLoader) ReadSentences(entry CorpusEntry) ([][]string, error) {
	return [][]string{}, nil
}

// Implements the CorpusLoader interface with mock data, sentences are keyed
// by the raw file name of the entry
type MockCorpusLoader struct {
	Label     string
	Excluded  map[string]bool
	Sentences map[string][][]string
}

func (loader MockCorpusLoader) GetConfig() CorpusConfig {
	return CorpusConfig{
		Excluded: loader.Excluded,
	}
}

func (loader MockCorpusLoader) LoadCollection(fName, colTitle string) (*[]CorpusEntry, error) {
	entries := []CorpusEntry{}
	for _, f := range sortedKeys(loader.Sentences) {
		entries = append(entries, CorpusEntry{
			RawFile:  f,
			Format:   FormatText,
			Title:    "Entry Title",
			ColTitle: colTitle,
		})
	}
	return &entries, nil
}

func (loader MockCorpusLoader) ReadSentences(entry CorpusEntry) ([][]string, error) {
	return loader.Sentences[entry.RawFile], nil
}

func sortedKeys(m map[string][][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
