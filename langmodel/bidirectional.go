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
	"errors"
	"fmt"
	"math"

	"github.com/alexamies/bigramlm/ngram"
)

// Scorer combines a trained forward model and a trained backward model.
// It has two modes that answer different questions and are kept apart:
//
//   - WordLogProb and WordPerplexity blend the forward and backward bigram
//     probabilities for each token. The end sentinel is not predicted, so
//     the perplexity denominator is the number of tokens.
//   - SentenceLogProb and Perplexity blend the whole-sentence log
//     probabilities of the two models. Each model predicts its end sentinel,
//     so the denominator is the number of tokens plus one per sentence,
//     as for a single directional model.
//
// The different denominators come from the reference evaluation and are
// reported as is.
//
// For the last token of a sentence the backward bigram is conditioned on the
// backward model's start sentinel, the boundary it reads first. Looking up
// the end sentinel literally as the history always gives 0 there, so the
// bidirectional word perplexities differ from, and are lower than, numbers
// from an evaluation that scores the right boundary that way.
type Scorer struct {
	forward, backward *BigramModel
	weights           Weights
}

// NewScorer creates a Scorer. The models are only read.
func NewScorer(forward, backward *BigramModel, weights Weights) (*Scorer, error) {
	if forward == nil || backward == nil {
		return nil, errors.New("langmodel.NewScorer: nil model")
	}
	if forward.Direction() != Forward {
		return nil, fmt.Errorf("langmodel.NewScorer: first model is %v, want %v",
			forward.Direction(), Forward)
	}
	if backward.Direction() != Backward {
		return nil, fmt.Errorf("langmodel.NewScorer: second model is %v, want %v",
			backward.Direction(), Backward)
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("langmodel.NewScorer: %w", err)
	}
	return &Scorer{
		forward:  forward,
		backward: backward,
		weights:  weights,
	}, nil
}

// TokenProb is the blended probability of the token at position i.
// The token and the token after it are resolved against the forward model's
// vocabulary. The forward bigram conditions on the token before, the
// backward bigram on the token after, and the blend is interpolated with the
// forward unigram probability using the backward model's Lambda.
// The position must be in [0, len(sentence)); 0 is returned otherwise.
func (s *Scorer) TokenProb(sentence []string, i int) float64 {
	if i < 0 || i >= len(sentence) {
		return 0.0
	}
	f, b := s.forward, s.backward
	prev := ngram.StartToken
	if i > 0 {
		prev = f.Resolve(sentence[i-1])
	}
	next := ngram.EndToken
	if i < len(sentence)-1 {
		next = sentence[i+1]
	}
	token := f.Resolve(sentence[i])
	next = f.Resolve(next)
	fwd := f.BigramProb(prev, token)
	bwd := b.BigramProb(b.history(next), token)
	combined := s.weights.ForwardBigram*fwd + s.weights.BackwardBigram*bwd
	return b.Interpolate(f.UnigramProb(token), combined)
}

// WordLogProb is the sum of the log blended token probabilities, without a
// term for the end sentinel
func (s *Scorer) WordLogProb(sentence []string) float64 {
	logProb := 0.0
	for i := range sentence {
		logProb += math.Log(s.TokenProb(sentence, i))
	}
	return logProb
}

// WordPerplexity over the sentences using the per-token blend, with the
// number of tokens as denominator
func (s *Scorer) WordPerplexity(sentences [][]string) (float64, error) {
	if len(sentences) == 0 {
		return 0.0, fmt.Errorf("langmodel.Scorer.WordPerplexity: %w",
			ErrNoSentences)
	}
	logProbs := make([]float64, len(sentences))
	numTokens := 0
	for i, sentence := range sentences {
		logProbs[i] = s.WordLogProb(sentence)
		numTokens += len(sentence)
	}
	return perplexity(logProbs, numTokens)
}

// SentenceLogProb is the weighted sum of the forward and backward sentence
// log probabilities. The sentence is given in normal reading order.
func (s *Scorer) SentenceLogProb(sentence []string) float64 {
	return s.weights.ForwardSentence*s.forward.SentenceLogProb(sentence) +
		s.weights.BackwardSentence*s.backward.SentenceLogProb(sentence)
}

// Perplexity over the sentences using the whole-sentence blend, with the
// number of tokens plus one end sentinel per sentence as denominator
func (s *Scorer) Perplexity(sentences [][]string) (float64, error) {
	if len(sentences) == 0 {
		return 0.0, fmt.Errorf("langmodel.Scorer.Perplexity: %w", ErrNoSentences)
	}
	logProbs := make([]float64, len(sentences))
	numTokens := 0
	for i, sentence := range sentences {
		logProbs[i] = s.SentenceLogProb(sentence)
		numTokens += len(sentence) + 1
	}
	return perplexity(logProbs, numTokens)
}
