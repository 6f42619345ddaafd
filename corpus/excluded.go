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
	"encoding/csv"
	"fmt"
	"io"
)

// Tests whether the token should be excluded from modeling
// Parameter
// text: the token to be tested
func IsExcluded(excluded map[string]bool, text string) bool {
	_, ok := excluded[text]
	return ok
}

// LoadExcluded reads a list of tokens to exclude, one per line in the first
// column
func LoadExcluded(file io.Reader) (map[string]bool, error) {
	excluded := make(map[string]bool)
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.Comma = rune('\t')
	reader.Comment = rune('#')
	rawCSVdata, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("corpus.LoadExcluded: error reading excluded text: %v",
			err)
	}
	for _, row := range rawCSVdata {
		if len(row) < 1 {
			return nil, fmt.Errorf("corpus.LoadExcluded: no columns in row")
		}
		excluded[row[0]] = true
	}
	return excluded, nil
}

// RemoveExcluded drops excluded tokens, and any sentence left empty, without
// modifying the input
func RemoveExcluded(excluded map[string]bool, sentences [][]string) [][]string {
	if len(excluded) == 0 {
		return sentences
	}
	kept := make([][]string, 0, len(sentences))
	for _, sentence := range sentences {
		s := make([]string, 0, len(sentence))
		for _, token := range sentence {
			if !IsExcluded(excluded, token) {
				s = append(s, token)
			}
		}
		if len(s) > 0 {
			kept = append(kept, s)
		}
	}
	return kept
}
