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
	"reflect"
	"strings"
	"testing"
)

func TestParseTagged(t *testing.T) {
	wsj := `*x*                                                                     *x*
*x*   Copyright (C) 1990 University of Pennsylvania                    *x*
*x*                                                                     *x*

======================================

[ Pierre/NNP Vinken/NNP ]
,/, 
[ 61/CD years/NNS ]
old/JJ ./. 
======================================

[ Mr./NNP Vinken/NNP ]
is/VBZ 
[ chairman/NN ]
./. 
`
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "Empty",
			input: "",
			want:  [][]string{},
		},
		{
			name:  "Two sentences",
			input: wsj,
			want: [][]string{
				{"Pierre", "Vinken", ",", "61", "years", "old", "."},
				{"Mr.", "Vinken", "is", "chairman", "."},
			},
		},
		{
			name:  "Escaped slash",
			input: "1\\/2/CD cup/NN and\\/or/CC\n",
			want:  [][]string{{"1/2", "cup", "and/or"}},
		},
		{
			name:  "Untagged token",
			input: "hello world/NN\n",
			want:  [][]string{{"hello", "world"}},
		},
	}
	for _, tc := range tests {
		got, err := ParseTagged(strings.NewReader(tc.input))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
