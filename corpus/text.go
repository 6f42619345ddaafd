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
	"log"
	"strings"
	"unicode"

	"github.com/alexamies/chinesenotes-go/config"
	"github.com/alexamies/chinesenotes-go/dictionary"
	"github.com/alexamies/chinesenotes-go/tokenizer"
)

// ParseText reads one sentence per non-blank line. Tokens are separated by
// white space. If a tokenizer is given, runs of Chinese characters are further
// segmented into dictionary words.
func ParseText(r io.Reader, tok tokenizer.Tokenizer) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	sentences := [][]string{}
	for scanner.Scan() {
		sentence := []string{}
		for _, field := range strings.Fields(scanner.Text()) {
			if tok == nil || !containsCJK(field) {
				sentence = append(sentence, field)
				continue
			}
			for _, t := range tok.Tokenize(field) {
				if w := strings.TrimSpace(t.Token); w != "" {
					sentence = append(sentence, w)
				}
			}
		}
		if len(sentence) > 0 {
			sentences = append(sentences, sentence)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("corpus.ParseText: %v", err)
	}
	return sentences, nil
}

func containsCJK(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// LoadTokenizer loads the dictionary files named in the app config and
// builds a tokenizer that segments Chinese text into dictionary words
func LoadTokenizer(appConfig config.AppConfig) (tokenizer.Tokenizer, error) {
	dict, err := dictionary.LoadDictFile(appConfig)
	if err != nil {
		return nil, fmt.Errorf("corpus.LoadTokenizer: could not load dictionary: %v", err)
	}
	log.Printf("corpus.LoadTokenizer: loaded %d dictionary entries\n", len(dict.Wdict))
	return tokenizer.NewDictTokenizer(dict.Wdict), nil
}
