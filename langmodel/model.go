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
	"fmt"
	"math"

	"github.com/alexamies/bigramlm/ngram"
)

// Direction that a model reads sentences in
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// BigramModel is a bigram model smoothed by fixed-weight interpolation with
// a unigram model. A backward model reverses each sentence before framing it,
// so the preceding token in its tables is the token that follows in normal
// reading order.
//
// Train replaces all statistics. After training the model is read-only and
// safe to share between scorers.
type BigramModel struct {
	direction Direction
	config    Config
	unigrams  *ngram.UnigramTable
	bigrams   *ngram.BigramTable
}

// NewForwardModel creates an untrained left-to-right model
func NewForwardModel(config Config) (*BigramModel, error) {
	return newModel(Forward, config)
}

// NewBackwardModel creates an untrained right-to-left model
func NewBackwardModel(config Config) (*BigramModel, error) {
	return newModel(Backward, config)
}

func newModel(direction Direction, config Config) (*BigramModel, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("langmodel.newModel %v: %w", direction, err)
	}
	m := &BigramModel{
		direction: direction,
		config:    config,
	}
	m.Train(nil)
	return m, nil
}

// Direction the model was trained in
func (m *BigramModel) Direction() Direction {
	return m.direction
}

// Lambda is the weight given to the bigram estimate
func (m *BigramModel) Lambda() float64 {
	return m.config.Lambda
}

// Unigrams gets the unigram table. Callers must not modify it.
func (m *BigramModel) Unigrams() *ngram.UnigramTable {
	return m.unigrams
}

// Bigrams gets the bigram table. Callers must not modify it.
func (m *BigramModel) Bigrams() *ngram.BigramTable {
	return m.bigrams
}

// Train counts the unigrams and bigrams of the framed sentences, replacing any
// earlier statistics. Tokens are counted as given, unknown tokens are only
// substituted when scoring.
func (m *BigramModel) Train(sentences [][]string) {
	unigrams := ngram.NewUnigramTable()
	bigrams := ngram.NewBigramTable()
	for _, sentence := range sentences {
		prev := ngram.StartToken
		unigrams.Increment(prev)
		for _, token := range m.orient(sentence) {
			unigrams.Increment(token)
			bigrams.Increment(prev, token)
			prev = token
		}
		unigrams.Increment(ngram.EndToken)
		bigrams.Increment(prev, ngram.EndToken)
	}
	unigrams.AddCount(ngram.UnknownToken, m.config.UnknownCount)
	m.unigrams = unigrams
	m.bigrams = bigrams
}

// orient gets the tokens in the order the model reads them, without
// modifying the caller's slice
func (m *BigramModel) orient(sentence []string) []string {
	if m.direction == Forward {
		return sentence
	}
	reversed := make([]string, len(sentence))
	for i, token := range sentence {
		reversed[len(sentence)-1-i] = token
	}
	return reversed
}

// Resolve maps a token that was not seen in training to the unknown token
func (m *BigramModel) Resolve(token string) string {
	if m.unigrams.Contains(token) {
		return token
	}
	return ngram.UnknownToken
}

// UnigramProb is the probability of a token that has already been resolved
func (m *BigramModel) UnigramProb(token string) float64 {
	return m.unigrams.Probability(token)
}

// BigramProb is the probability of the following token given the preceding
// token in the model's reading order, zero for an unseen pair
func (m *BigramModel) BigramProb(preceding, following string) float64 {
	return m.bigrams.Probability(preceding, following,
		m.unigrams.Count(preceding))
}

// Interpolate mixes a bigram and a unigram probability,
// Lambda * bigram + (1 - Lambda) * unigram
func (m *BigramModel) Interpolate(unigramProb, bigramProb float64) float64 {
	return m.config.Lambda*bigramProb + (1.0-m.config.Lambda)*unigramProb
}

// history maps the sentence boundary after the last token in reading order
// to this model's own frame. A backward model reads that boundary first, so
// it is its start sentinel.
func (m *BigramModel) history(token string) string {
	if m.direction == Backward && token == ngram.EndToken {
		return ngram.StartToken
	}
	return token
}

// TokenProb is the interpolated probability of a token after prev, both in
// the model's reading order. The token is resolved against the vocabulary.
func (m *BigramModel) TokenProb(prev, token string) float64 {
	t := m.Resolve(token)
	return m.Interpolate(m.UnigramProb(t), m.BigramProb(prev, t))
}

// SentenceLogProb is the natural log probability of a sentence given in
// normal reading order, including the prediction of the end sentinel
func (m *BigramModel) SentenceLogProb(sentence []string) float64 {
	return m.logProb(sentence, true)
}

// WordLogProb is like SentenceLogProb but leaves out predicting the end
// sentinel
func (m *BigramModel) WordLogProb(sentence []string) float64 {
	return m.logProb(sentence, false)
}

func (m *BigramModel) logProb(sentence []string, predictEnd bool) float64 {
	prev := ngram.StartToken
	logProb := 0.0
	for _, token := range m.orient(sentence) {
		t := m.Resolve(token)
		logProb += math.Log(m.TokenProb(prev, t))
		prev = t
	}
	if predictEnd {
		logProb += math.Log(m.TokenProb(prev, ngram.EndToken))
	}
	return logProb
}

// Perplexity of the model on the sentences, counting each token plus the end
// sentinel of each sentence as a prediction
func (m *BigramModel) Perplexity(sentences [][]string) (float64, error) {
	if len(sentences) == 0 {
		return 0.0, fmt.Errorf("langmodel.Perplexity %v: %w", m.direction,
			ErrNoSentences)
	}
	logProbs := make([]float64, len(sentences))
	numTokens := 0
	for i, sentence := range sentences {
		logProbs[i] = m.SentenceLogProb(sentence)
		numTokens += len(sentence) + 1
	}
	return perplexity(logProbs, numTokens)
}

// WordPerplexity of the model on the sentences, not counting predicting the
// end sentinel
func (m *BigramModel) WordPerplexity(sentences [][]string) (float64, error) {
	if len(sentences) == 0 {
		return 0.0, fmt.Errorf("langmodel.WordPerplexity %v: %w", m.direction,
			ErrNoSentences)
	}
	logProbs := make([]float64, len(sentences))
	numTokens := 0
	for i, sentence := range sentences {
		logProbs[i] = m.WordLogProb(sentence)
		numTokens += len(sentence)
	}
	return perplexity(logProbs, numTokens)
}
