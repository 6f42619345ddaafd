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

	"github.com/alexamies/chinesenotes-go/config"
	"github.com/alexamies/chinesenotes-go/dicttypes"
	"github.com/alexamies/chinesenotes-go/tokenizer"
)

func mockSmallDict() map[string]*dicttypes.Word {
	words := []dicttypes.Word{
		{
			HeadwordId:  1,
			Simplified:  "前",
			Traditional: "\\N",
			Pinyin:      "qián",
			Senses:      []dicttypes.WordSense{},
		},
		{
			HeadwordId:  2,
			Simplified:  "不见",
			Traditional: "不見",
			Pinyin:      "bújiàn",
			Senses:      []dicttypes.WordSense{},
		},
		{
			HeadwordId:  3,
			Simplified:  "古人",
			Traditional: "\\N",
			Pinyin:      "gǔrén",
			Senses:      []dicttypes.WordSense{},
		},
	}
	wdict := map[string]*dicttypes.Word{}
	for i := range words {
		w := &words[i]
		wdict[w.Simplified] = w
		if w.Traditional != "\\N" {
			wdict[w.Traditional] = w
		}
	}
	return wdict
}

func TestParseText(t *testing.T) {
	tok := tokenizer.NewDictTokenizer(mockSmallDict())
	tests := []struct {
		name  string
		input string
		tok   tokenizer.Tokenizer
		want  [][]string
	}{
		{
			name:  "Empty",
			input: "",
			want:  [][]string{},
		},
		{
			name:  "White space",
			input: "the cat  sat\n\n  the dog ran \n",
			want:  [][]string{{"the", "cat", "sat"}, {"the", "dog", "ran"}},
		},
		{
			name:  "Chinese without tokenizer",
			input: "前不见古人\n",
			want:  [][]string{{"前不见古人"}},
		},
		{
			name:  "Chinese with tokenizer",
			input: "前不见古人\n",
			tok:   tok,
			want:  [][]string{{"前", "不见", "古人"}},
		},
		{
			name:  "Mixed text",
			input: "Chen Ziang 前不見古人\n",
			tok:   tok,
			want:  [][]string{{"Chen", "Ziang", "前", "不見", "古人"}},
		},
	}
	for _, tc := range tests {
		got, err := ParseText(strings.NewReader(tc.input), tc.tok)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestLoadTokenizerMissingFile(t *testing.T) {
	appConfig := config.AppConfig{
		ProjectHome: ".",
		LUFileNames: []string{"testdata/no-such-words.txt"},
	}
	if _, err := LoadTokenizer(appConfig); err == nil {
		t.Error("TestLoadTokenizerMissingFile: expected an error")
	}
}
