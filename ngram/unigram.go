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

package ngram

import (
	"sort"
)

// UnigramEntry is a read-only record of a token count and its probability
type UnigramEntry struct {
	Token       string
	Count       int
	Probability float64
}

// UnigramTable holds the frequency of each token in a training corpus
type UnigramTable struct {
	counts map[string]int
	total  int
}

// NewUnigramTable initializes an empty UnigramTable
func NewUnigramTable() *UnigramTable {
	return &UnigramTable{
		counts: map[string]int{},
		total:  0,
	}
}

// Increment adds one occurrence of the token
func (t *UnigramTable) Increment(token string) {
	t.AddCount(token, 1)
}

// AddCount adds n occurrences of the token, creating the entry if absent
func (t *UnigramTable) AddCount(token string, n int) {
	if n <= 0 {
		return
	}
	t.counts[token] += n
	if token != StartToken {
		t.total += n
	}
}

// Count gets the number of occurrences of the token, zero if never seen
func (t *UnigramTable) Count(token string) int {
	return t.counts[token]
}

// Contains tells whether the token was observed
func (t *UnigramTable) Contains(token string) bool {
	return t.counts[token] > 0
}

// TotalCount is the denominator for unigram probabilities. The start
// sentinel is only ever a history and is left out.
func (t *UnigramTable) TotalCount() int {
	return t.total
}

// Len is the number of distinct tokens, including sentinels
func (t *UnigramTable) Len() int {
	return len(t.counts)
}

// Probability of the token, zero for an unseen token or an empty table
func (t *UnigramTable) Probability(token string) float64 {
	if token == StartToken || t.total == 0 {
		return 0.0
	}
	return float64(t.counts[token]) / float64(t.total)
}

// Entry gets the count and probability of a token
func (t *UnigramTable) Entry(token string) (UnigramEntry, bool) {
	c, ok := t.counts[token]
	return UnigramEntry{
		Token:       token,
		Count:       c,
		Probability: t.Probability(token),
	}, ok
}

// Sorted gets the entries in descending order of frequency, ties broken
// alphabetically
func (t *UnigramTable) Sorted() []UnigramEntry {
	entries := make([]UnigramEntry, 0, len(t.counts))
	for k := range t.counts {
		e, _ := t.Entry(k)
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})
	return entries
}
