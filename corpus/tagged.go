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
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	taggedComment   = "*x*"
	taggedSeparator = "======"
	maxLineLen      = 1024 * 1024
)

// ParseTagged reads LDC part of speech tagged text into sentences of words.
// Tokens have the form word/TAG, with slashes inside the word escaped as \/.
// Lines of '=' separate sentences, lines starting with *x* are comments and
// the [ ] brackets marking noun phrase chunks are dropped.
func ParseTagged(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	sentences := [][]string{}
	sentence := []string{}
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, taggedComment) {
			continue
		}
		if strings.HasPrefix(line, taggedSeparator) {
			if len(sentence) > 0 {
				sentences = append(sentences, sentence)
				sentence = []string{}
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			if field == "[" || field == "]" {
				continue
			}
			sentence = append(sentence, taggedWord(field))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("corpus.ParseTagged: %v", err)
	}
	if len(sentence) > 0 {
		sentences = append(sentences, sentence)
	}
	return sentences, nil
}

// taggedWord strips the tag from a word/TAG token
func taggedWord(field string) string {
	i := strings.LastIndex(field, "/")
	for i > 0 && field[i-1] == '\\' {
		i = strings.LastIndex(field[:i-1], "/")
	}
	word := field
	if i > 0 {
		word = field[:i]
	}
	return strings.ReplaceAll(word, "\\/", "/")
}
