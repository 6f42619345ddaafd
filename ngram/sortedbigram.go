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

// Sorted into descending order with most frequent bigram first
type SortedBFM struct {
	bfm BigramFreqMap
	f   []BigramFreq
}

func (sbf *SortedBFM) Len() int {
	return len(sbf.f)
}

// Ties are ordered by the text of the bigram so that reports are stable
func (sbf *SortedBFM) Less(i, j int) bool {
	fi := sbf.bfm.GetBigram(sbf.f[i].BigramVal).Frequency
	fj := sbf.bfm.GetBigram(sbf.f[j].BigramVal).Frequency
	if fi != fj {
		return fi > fj
	}
	return sbf.f[i].BigramVal.String() < sbf.f[j].BigramVal.String()
}

func NewSortedBFM(bfm BigramFreqMap) *SortedBFM {
	return &SortedBFM{bfm, []BigramFreq{}}
}

func (sbf *SortedBFM) Swap(i, j int) {
	sbf.f[i], sbf.f[j] = sbf.f[j], sbf.f[i]
}

// Get the bigram frequencies as a sorted array
func SortedFreq(bfm BigramFreqMap) []BigramFreq {
	sortedBFM := NewSortedBFM(bfm)
	sortedBFM.f = make([]BigramFreq, 0, len(bfm))
	for _, bf := range bfm {
		sortedBFM.f = append(sortedBFM.f, bf)
	}
	sort.Sort(sortedBFM)
	return sortedBFM.f
}
