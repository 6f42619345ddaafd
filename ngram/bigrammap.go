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

// Single record of the frequency of occurence of a bigram
type BigramFreq struct {
	BigramVal Bigram
	Frequency int
}

// Map of the frequency of occurence of a bigram in a collection of texts
type BigramFreqMap map[Bigram]BigramFreq

// Does the Bigram map contain a bigram with this combination of tokens?
func (bfmPtr *BigramFreqMap) GetBigramVal(preceding, following string) (Bigram, bool) {
	bfm := *bfmPtr
	bf, ok := bfm[NewBigram(preceding, following)]
	if ok {
		return bf.BigramVal, ok
	}
	return Bigram{}, ok
}

// Get the frequency record for the bigram, zero frequency if absent
func (bfmPtr *BigramFreqMap) GetBigram(bigram Bigram) BigramFreq {
	bfm := *bfmPtr
	if bf, ok := bfm[bigram]; ok {
		return bf
	}
	return BigramFreq{bigram, 0}
}

// Put the bigram in the bigram frequency map
func (bfmPtr *BigramFreqMap) PutBigram(bigram Bigram) {
	bfm := *bfmPtr
	if bf, ok := bfm[bigram]; !ok {
		bfm[bigram] = BigramFreq{bigram, 1}
	} else {
		bf.Frequency++
		bfm[bigram] = bf
	}
}

// Put the bigram frequency in the bigram frequency map
func (bfmPtr *BigramFreqMap) PutBigramFreq(bigramFreq BigramFreq) {
	if bigramFreq.Frequency <= 0 {
		return
	}
	bfm := *bfmPtr
	key := bigramFreq.BigramVal
	if bf, ok := bfm[key]; !ok {
		bfm[key] = bigramFreq
	} else {
		bf.Frequency += bigramFreq.Frequency
		bfm[key] = bf
	}
}
