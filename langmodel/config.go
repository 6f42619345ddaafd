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

// Package for smoothed bigram language models trained left-to-right and
// right-to-left, and for combining the two directions when scoring text
package langmodel

import (
	"errors"
	"fmt"
	"math"
)

// Default weights from the reference evaluation. These are empirical, not
// derived.
const (
	DefaultLambda           = 0.5
	DefaultUnknownCount     = 1
	DefaultForwardBigram    = 0.6
	DefaultBackwardBigram   = 0.4
	DefaultForwardSentence  = 0.2
	DefaultBackwardSentence = 0.8
)

const weightTolerance = 1e-9

var (
	// ErrNoSentences is returned when evaluating an empty collection
	ErrNoSentences = errors.New("no sentences to evaluate")

	// ErrNoTokens is returned when a word perplexity has no tokens to predict
	ErrNoTokens = errors.New("no tokens to evaluate")

	// ErrInvalidConfig is returned for out of range model parameters
	ErrInvalidConfig = errors.New("invalid model configuration")
)

// Config holds the smoothing parameters of a directional model
type Config struct {

	// Weight of the bigram estimate, the unigram estimate gets 1 - Lambda
	Lambda float64

	// Pseudo-occurrences of the unknown token added after training so that
	// out-of-vocabulary tokens keep some probability mass
	UnknownCount int
}

// DefaultConfig gets the reference smoothing parameters
func DefaultConfig() Config {
	return Config{
		Lambda:       DefaultLambda,
		UnknownCount: DefaultUnknownCount,
	}
}

// Validate checks that Lambda is in [0, 1) and UnknownCount is not negative
func (c Config) Validate() error {
	if math.IsNaN(c.Lambda) || c.Lambda < 0.0 || c.Lambda >= 1.0 {
		return fmt.Errorf("%w: lambda %v not in [0, 1)", ErrInvalidConfig, c.Lambda)
	}
	if c.UnknownCount < 0 {
		return fmt.Errorf("%w: negative unknown count %d", ErrInvalidConfig,
			c.UnknownCount)
	}
	return nil
}

// Weights for blending the forward and backward models
type Weights struct {

	// Per-token blend of the bigram probabilities
	ForwardBigram, BackwardBigram float64

	// Whole-sentence blend of the sentence log probabilities
	ForwardSentence, BackwardSentence float64
}

// DefaultWeights gets the reference blending weights
func DefaultWeights() Weights {
	return Weights{
		ForwardBigram:    DefaultForwardBigram,
		BackwardBigram:   DefaultBackwardBigram,
		ForwardSentence:  DefaultForwardSentence,
		BackwardSentence: DefaultBackwardSentence,
	}
}

// Validate checks that each pair of weights is non-negative and sums to one
func (w Weights) Validate() error {
	if err := validPair(w.ForwardBigram, w.BackwardBigram); err != nil {
		return fmt.Errorf("%w: bigram weights: %v", ErrInvalidConfig, err)
	}
	if err := validPair(w.ForwardSentence, w.BackwardSentence); err != nil {
		return fmt.Errorf("%w: sentence weights: %v", ErrInvalidConfig, err)
	}
	return nil
}

func validPair(f, b float64) error {
	if math.IsNaN(f) || math.IsNaN(b) || f < 0.0 || b < 0.0 {
		return fmt.Errorf("negative or NaN weight (%v, %v)", f, b)
	}
	if math.Abs(f+b-1.0) > weightTolerance {
		return fmt.Errorf("(%v, %v) do not sum to 1", f, b)
	}
	return nil
}
