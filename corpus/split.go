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
	"fmt"
	"math"
)

// SplitTrainTest divides the sentences into a training prefix and a test
// suffix. The number of test sentences is the test fraction of the total,
// rounded.
func SplitTrainTest(sentences [][]string, testFraction float64) (train, test [][]string, err error) {
	if math.IsNaN(testFraction) || testFraction <= 0.0 || testFraction >= 1.0 {
		return nil, nil, fmt.Errorf("corpus.SplitTrainTest: test fraction %v not in (0, 1)",
			testFraction)
	}
	n := len(sentences)
	numTest := int(math.Round(float64(n) * testFraction))
	return sentences[:n-numTest], sentences[n-numTest:], nil
}

// WordCount is the total number of tokens in the sentences
func WordCount(sentences [][]string) int {
	wc := 0
	for _, sentence := range sentences {
		wc += len(sentence)
	}
	return wc
}
