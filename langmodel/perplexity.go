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

package langmodel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// perplexity computes exp(-Σ log p / N)
func perplexity(logProbs []float64, numTokens int) (float64, error) {
	if numTokens <= 0 {
		return 0.0, ErrNoTokens
	}
	return math.Exp(-floats.Sum(logProbs) / float64(numTokens)), nil
}
