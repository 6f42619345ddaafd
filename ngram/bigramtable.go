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

// BigramEntry is a read-only record of a bigram count and its conditional
// probability given the preceding token
type BigramEntry struct {
	Preceding, Following string
	Count                int
	Probability          float64
}

// BigramTable holds the frequency of ordered pairs of adjacent tokens
type BigramTable struct {
	bfm BigramFreqMap
}

// NewBigramTable initializes an empty BigramTable
func NewBigramTable() *BigramTable {
	return &BigramTable{
		bfm: BigramFreqMap{},
	}
}

// Increment adds one occurrence of the preceding, following pair
func (t *BigramTable) Increment(preceding, following string) {
	t.bfm.PutBigram(NewBigram(preceding, following))
}

// AddCount adds n occurrences of the pair
func (t *BigramTable) AddCount(preceding, following string, n int) {
	t.bfm.PutBigramFreq(BigramFreq{NewBigram(preceding, following), n})
}

// Count gets the number of occurrences of the pair, zero if never seen
func (t *BigramTable) Count(preceding, following string) int {
	return t.bfm.GetBigram(NewBigram(preceding, following)).Frequency
}

// Len is the number of distinct bigrams
func (t *BigramTable) Len() int {
	return len(t.bfm)
}

// Probability of the following token given the preceding one.
// Param:
//   precedingCount: unigram count of the preceding token, when zero the
//                   probability is zero
func (t *BigramTable) Probability(preceding, following string, precedingCount int) float64 {
	if precedingCount <= 0 {
		return 0.0
	}
	c := t.Count(preceding, following)
	return float64(c) / float64(precedingCount)
}

// Entry gets the count and conditional probability of the pair
func (t *BigramTable) Entry(preceding, following string, precedingCount int) (BigramEntry, bool) {
	_, ok := t.bfm.GetBigramVal(preceding, following)
	return BigramEntry{
		Preceding:   preceding,
		Following:   following,
		Count:       t.Count(preceding, following),
		Probability: t.Probability(preceding, following, precedingCount),
	}, ok
}

// Following gets the counts of all tokens observed after the preceding token
func (t *BigramTable) Following(preceding string) map[string]int {
	following := map[string]int{}
	for k, v := range t.bfm {
		if k.Preceding() == preceding {
			following[k.Following()] = v.Frequency
		}
	}
	return following
}

// Sorted gets the bigram frequencies with the most frequent first
func (t *BigramTable) Sorted() []BigramFreq {
	return SortedFreq(t.bfm)
}
