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

// Package for counting unigram and bigram frequencies in a corpus of
// tokenized sentences
//
// Counts are the only mutable state. Probabilities are derived from the
// counts whenever they are read.
package ngram

import (
	"fmt"
)

// Sentinel tokens framing a sentence and standing in for unknown words
const (
	StartToken   = "<S>"
	EndToken     = "</S>"
	UnknownToken = "<UNK>"
)

// A Bigram is an ordered pair of adjacent tokens
type Bigram [2]string

// NewBigram creates a bigram from the preceding and following tokens
func NewBigram(preceding, following string) Bigram {
	return Bigram{preceding, following}
}

// Preceding is the token that is conditioned on
func (b Bigram) Preceding() string {
	return b[0]
}

// Following is the token that is predicted
func (b Bigram) Following() string {
	return b[1]
}

func (b Bigram) String() string {
	return fmt.Sprintf("%s %s", b[0], b[1])
}
