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

// Test sorting of bigram frequencies
package ngram

import (
	"testing"
)

// Test basic Bigram functions
func TestSortedBFM(t *testing.T) {
	t.Log("TestSortedBFM: Begin unit test")
	b1 := NewBigram("蓝", "天")
	bm := BigramFreqMap{}
	bm.PutBigram(b1)
	bm.PutBigram(b1)
	b2 := NewBigram("蓝", "海")
	bm.PutBigram(b2)
	sbf := SortedFreq(bm)
	r1 := len(sbf)
	e1 := 2
	if r1 != e1 {
		t.Error("TestSortedBFM, expected ", e1, " got, ", r1)
	}
	r2 := sbf[0].Frequency
	e2 := 2
	if r2 != e2 {
		t.Error("TestSortedBFM, expected ", e2, " got, ", r2, "sbf[0]", sbf[0])
	}
	r3 := sbf[0].BigramVal.Following()
	e3 := "天"
	if r3 != e3 {
		t.Error("TestSortedBFM, expected ", e3, " got, ", r3, "sbf[0]", sbf[0])
	}
}

// Equal frequencies are sorted by the text of the bigram
func TestSortedBFMTies(t *testing.T) {
	bm := BigramFreqMap{}
	bm.PutBigram(NewBigram("the", "dog"))
	bm.PutBigram(NewBigram("the", "cat"))
	bm.PutBigram(NewBigram("a", "cat"))
	sbf := SortedFreq(bm)
	want := []string{"a cat", "the cat", "the dog"}
	for i, w := range want {
		if sbf[i].BigramVal.String() != w {
			t.Errorf("TestSortedBFMTies, %d: got %s, want %s", i,
				sbf[i].BigramVal.String(), w)
		}
	}
}

func TestSortedFreqEmpty(t *testing.T) {
	sbf := SortedFreq(BigramFreqMap{})
	if len(sbf) != 0 {
		t.Errorf("TestSortedFreqEmpty, expected empty, got %v", sbf)
	}
}
