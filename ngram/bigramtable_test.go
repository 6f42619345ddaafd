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
	"testing"
)

func TestBigramTableProbability(t *testing.T) {
	bt := NewBigramTable()
	bt.Increment(StartToken, "the")
	bt.Increment(StartToken, "the")
	bt.Increment("the", "cat")
	bt.Increment("the", "dog")
	testCases := []struct {
		name           string
		preceding      string
		following      string
		precedingCount int
		wantCount      int
		want           float64
	}{
		{
			name:           "Always follows",
			preceding:      StartToken,
			following:      "the",
			precedingCount: 2,
			wantCount:      2,
			want:           1.0,
		},
		{
			name:           "Half the time",
			preceding:      "the",
			following:      "cat",
			precedingCount: 2,
			wantCount:      1,
			want:           0.5,
		},
		{
			name:           "Missing bigram",
			preceding:      "cat",
			following:      "the",
			precedingCount: 1,
			wantCount:      0,
			want:           0.0,
		},
		{
			name:           "Degenerate preceding count",
			preceding:      "the",
			following:      "cat",
			precedingCount: 0,
			wantCount:      1,
			want:           0.0,
		},
	}
	for _, tc := range testCases {
		e, _ := bt.Entry(tc.preceding, tc.following, tc.precedingCount)
		if e.Count != tc.wantCount {
			t.Errorf("%s: count got %d, want %d", tc.name, e.Count, tc.wantCount)
		}
		if e.Probability != tc.want {
			t.Errorf("%s: probability got %f, want %f", tc.name, e.Probability,
				tc.want)
		}
	}
}

func TestBigramTableFollowing(t *testing.T) {
	bt := NewBigramTable()
	bt.Increment("the", "cat")
	bt.Increment("the", "dog")
	bt.Increment("the", "dog")
	bt.Increment("a", "dog")
	f := bt.Following("the")
	if len(f) != 2 || f["cat"] != 1 || f["dog"] != 2 {
		t.Errorf("TestBigramTableFollowing, got %v", f)
	}
	if len(bt.Following("dog")) != 0 {
		t.Errorf("TestBigramTableFollowing, expected nothing after dog")
	}
}

func TestBigramTableSorted(t *testing.T) {
	bt := NewBigramTable()
	bt.Increment("the", "cat")
	bt.AddCount("the", "dog", 2)
	bt.Increment("a", "cat")
	if bt.Len() != 3 {
		t.Errorf("TestBigramTableSorted, Len got %d, want 3", bt.Len())
	}
	sorted := bt.Sorted()
	if sorted[0].BigramVal != NewBigram("the", "dog") {
		t.Errorf("TestBigramTableSorted, first sorted got %v", sorted[0])
	}
	if sorted[1].BigramVal != NewBigram("a", "cat") {
		t.Errorf("TestBigramTableSorted, second sorted got %v", sorted[1])
	}
}
