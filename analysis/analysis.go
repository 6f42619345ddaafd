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

// Package for perplexity evaluation of bigram language models on a corpus
//
// This includes
// - reading the corpus sentences with a corpus loader
// - splitting the sentences into training and test sets
// - training forward and backward bigram models
// - computing directional and bidirectional perplexities on both sets
// - compiling the most frequent unigrams and bigrams for reports
package analysis

import (
	"fmt"
	"log"
	"time"

	"github.com/alexamies/bigramlm/corpus"
	"github.com/alexamies/bigramlm/langmodel"
	"github.com/alexamies/bigramlm/library"
	"github.com/alexamies/bigramlm/ngram"
)

// Default maximum number of frequency entries to output in reports
const defaultMaxFreqOutput = 25

// EvalConfig holds the parameters of an evaluation
type EvalConfig struct {

	// Fraction of the sentences, taken from the end, used for testing
	TestFraction float64

	// Smoothing parameters shared by both directional models
	Model langmodel.Config

	// Blending weights of the bidirectional scorer
	Weights langmodel.Weights

	// Maximum number of unigram and bigram frequencies to keep for reports
	MaxFreqOutput int
}

// DefaultEvalConfig gets the reference parameters with a tenth of the data
// held out for testing
func DefaultEvalConfig() EvalConfig {
	return EvalConfig{
		TestFraction:  0.1,
		Model:         langmodel.DefaultConfig(),
		Weights:       langmodel.DefaultWeights(),
		MaxFreqOutput: defaultMaxFreqOutput,
	}
}

// SetSize is the number of sentences and words in a set of sentences
type SetSize struct {
	Sentences, Words int
}

// Perplexities of each model on one set of sentences. Word perplexities do
// not count predicting the end of a sentence.
type Perplexities struct {
	Forward, ForwardWord             float64
	Backward, BackwardWord           float64
	Bidirectional, BidirectionalWord float64
}

// Results holds the evaluation of one corpus
type Results struct {
	Corpus, Title   string
	Train, Test     SetSize
	Vocabulary      int
	Config          langmodel.Config
	Weights         langmodel.Weights
	TrainPerplexity Perplexities
	TestPerplexity  Perplexities
	TopUnigrams     []ngram.UnigramEntry
	TopBigrams      []ngram.BigramFreq
	DateUpdated     string
}

// Evaluate splits the sentences, trains both directional models on the
// training set and computes perplexities on the training and test sets
func Evaluate(sentences [][]string, config EvalConfig) (*Results, error) {
	train, test, err := corpus.SplitTrainTest(sentences, config.TestFraction)
	if err != nil {
		return nil, fmt.Errorf("analysis.Evaluate: %v", err)
	}
	log.Printf("analysis.Evaluate: # Train Sentences = %d (# words = %d), "+
		"# Test Sentences = %d (# words = %d)\n", len(train),
		corpus.WordCount(train), len(test), corpus.WordCount(test))
	fwd, err := langmodel.NewForwardModel(config.Model)
	if err != nil {
		return nil, fmt.Errorf("analysis.Evaluate: %w", err)
	}
	bwd, err := langmodel.NewBackwardModel(config.Model)
	if err != nil {
		return nil, fmt.Errorf("analysis.Evaluate: %w", err)
	}
	log.Println("analysis.Evaluate: Training forward model")
	fwd.Train(train)
	log.Println("analysis.Evaluate: Training backward model")
	bwd.Train(train)
	scorer, err := langmodel.NewScorer(fwd, bwd, config.Weights)
	if err != nil {
		return nil, fmt.Errorf("analysis.Evaluate: %w", err)
	}
	trainPP, err := evaluateSet(fwd, bwd, scorer, train)
	if err != nil {
		return nil, fmt.Errorf("analysis.Evaluate training set: %w", err)
	}
	testPP, err := evaluateSet(fwd, bwd, scorer, test)
	if err != nil {
		return nil, fmt.Errorf("analysis.Evaluate test set: %w", err)
	}
	maxOutput := config.MaxFreqOutput
	if maxOutput <= 0 {
		maxOutput = defaultMaxFreqOutput
	}
	results := Results{
		Train:           SetSize{len(train), corpus.WordCount(train)},
		Test:            SetSize{len(test), corpus.WordCount(test)},
		Vocabulary:      fwd.Unigrams().Len(),
		Config:          config.Model,
		Weights:         config.Weights,
		TrainPerplexity: trainPP,
		TestPerplexity:  testPP,
		TopUnigrams:     topUnigrams(fwd.Unigrams(), maxOutput),
		TopBigrams:      topBigrams(fwd.Bigrams(), maxOutput),
		DateUpdated:     time.Now().Format("2006-01-02"),
	}
	return &results, nil
}

// EvaluateCorpus loads the sentences of one corpus in the library and
// evaluates them
func EvaluateCorpus(corpLoader corpus.CorpusLoader, c library.CorpusData, config EvalConfig) (*Results, error) {
	log.Printf("analysis.EvaluateCorpus: %s (%s)\n", c.Title, c.ShortName)
	sentences, err := corpus.LoadSentences(corpLoader, c.FileName, c.Title)
	if err != nil {
		return nil, fmt.Errorf("analysis.EvaluateCorpus %s: %v", c.ShortName, err)
	}
	results, err := Evaluate(sentences, config)
	if err != nil {
		return nil, fmt.Errorf("analysis.EvaluateCorpus %s: %w", c.ShortName, err)
	}
	results.Corpus = c.ShortName
	results.Title = c.Title
	return results, nil
}

// EvaluateLibrary evaluates each selected corpus in the library on its own
func EvaluateLibrary(lib library.Library, config EvalConfig) ([]Results, error) {
	corpora, err := lib.Corpora()
	if err != nil {
		return nil, fmt.Errorf("analysis.EvaluateLibrary: %v", err)
	}
	log.Printf("analysis.EvaluateLibrary: evaluating %d corpora\n", len(corpora))
	corpLoader := lib.Loader.GetCorpusLoader()
	all := []Results{}
	for _, c := range corpora {
		results, err := EvaluateCorpus(corpLoader, c, config)
		if err != nil {
			return nil, err
		}
		all = append(all, *results)
	}
	return all, nil
}

// evaluateSet computes all perplexities for one set of sentences
func evaluateSet(fwd, bwd *langmodel.BigramModel, scorer *langmodel.Scorer,
	sentences [][]string) (Perplexities, error) {
	pp := Perplexities{}
	var err error
	if pp.Forward, err = fwd.Perplexity(sentences); err != nil {
		return pp, err
	}
	if pp.ForwardWord, err = fwd.WordPerplexity(sentences); err != nil {
		return pp, err
	}
	if pp.Backward, err = bwd.Perplexity(sentences); err != nil {
		return pp, err
	}
	if pp.BackwardWord, err = bwd.WordPerplexity(sentences); err != nil {
		return pp, err
	}
	if pp.Bidirectional, err = scorer.Perplexity(sentences); err != nil {
		return pp, err
	}
	if pp.BidirectionalWord, err = scorer.WordPerplexity(sentences); err != nil {
		return pp, err
	}
	return pp, nil
}

// topUnigrams gets the most frequent tokens, leaving out the sentinels
func topUnigrams(unigrams *ngram.UnigramTable, max int) []ngram.UnigramEntry {
	top := []ngram.UnigramEntry{}
	for _, e := range unigrams.Sorted() {
		if len(top) >= max {
			break
		}
		if isSentinel(e.Token) {
			continue
		}
		top = append(top, e)
	}
	return top
}

// topBigrams gets the most frequent bigrams between two words
func topBigrams(bigrams *ngram.BigramTable, max int) []ngram.BigramFreq {
	top := []ngram.BigramFreq{}
	for _, bf := range bigrams.Sorted() {
		if len(top) >= max {
			break
		}
		if isSentinel(bf.BigramVal.Preceding()) || isSentinel(bf.BigramVal.Following()) {
			continue
		}
		top = append(top, bf)
	}
	return top
}

func isSentinel(token string) bool {
	return token == ngram.StartToken || token == ngram.EndToken ||
		token == ngram.UnknownToken
}
