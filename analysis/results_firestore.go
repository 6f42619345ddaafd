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

// Functions for publishing perplexity results to Firestore.

package analysis

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FsClient defines Firestore interfaces needed
type FsClient interface {
	Collection(path string) *firestore.CollectionRef
}

// ResultsRecord is the Firestore document for the evaluation of one corpus
type ResultsRecord struct {
	Corpus         string  `firestore:"corpus"`
	Title          string  `firestore:"title"`
	TrainSentences int     `firestore:"train_sentences"`
	TrainWords     int     `firestore:"train_words"`
	TestSentences  int     `firestore:"test_sentences"`
	TestWords      int     `firestore:"test_words"`
	Vocabulary     int     `firestore:"vocabulary"`
	Lambda         float64 `firestore:"lambda"`
	UnknownCount   int     `firestore:"unknown_count"`
	ForwardBigram  float64 `firestore:"forward_bigram_weight"`
	ForwardSent    float64 `firestore:"forward_sentence_weight"`
	TrainForward   float64 `firestore:"train_forward"`
	TrainBackward  float64 `firestore:"train_backward"`
	TrainBidir     float64 `firestore:"train_bidirectional"`
	TestForward    float64 `firestore:"test_forward"`
	TestForwardW   float64 `firestore:"test_forward_word"`
	TestBackward   float64 `firestore:"test_backward"`
	TestBackwardW  float64 `firestore:"test_backward_word"`
	TestBidir      float64 `firestore:"test_bidirectional"`
	TestBidirW     float64 `firestore:"test_bidirectional_word"`
	DateUpdated    string  `firestore:"date_updated"`
}

func newResultsRecord(r Results) ResultsRecord {
	return ResultsRecord{
		Corpus:         r.Corpus,
		Title:          r.Title,
		TrainSentences: r.Train.Sentences,
		TrainWords:     r.Train.Words,
		TestSentences:  r.Test.Sentences,
		TestWords:      r.Test.Words,
		Vocabulary:     r.Vocabulary,
		Lambda:         r.Config.Lambda,
		UnknownCount:   r.Config.UnknownCount,
		ForwardBigram:  r.Weights.ForwardBigram,
		ForwardSent:    r.Weights.ForwardSentence,
		TrainForward:   r.TrainPerplexity.Forward,
		TrainBackward:  r.TrainPerplexity.Backward,
		TrainBidir:     r.TrainPerplexity.Bidirectional,
		TestForward:    r.TestPerplexity.Forward,
		TestForwardW:   r.TestPerplexity.ForwardWord,
		TestBackward:   r.TestPerplexity.Backward,
		TestBackwardW:  r.TestPerplexity.BackwardWord,
		TestBidir:      r.TestPerplexity.Bidirectional,
		TestBidirW:     r.TestPerplexity.BidirectionalWord,
		DateUpdated:    r.DateUpdated,
	}
}

// docID gets a Firestore document id for the corpus, which may not contain
// slashes
func docID(r Results) string {
	id := r.Corpus
	if id == "" {
		id = r.Title
	}
	if id == "" {
		id = "corpus"
	}
	return strings.ReplaceAll(id, "/", "_")
}

// UpdateResults writes the evaluation results to the Firestore collection for
// the given generation, replacing earlier results for the same corpus
func UpdateResults(ctx context.Context, client FsClient, results []Results, generation int) error {
	fsCol := fmt.Sprintf("perplexity_%d", generation)
	log.Printf("UpdateResults: writing %d results to %s\n", len(results), fsCol)
	for _, r := range results {
		ref := client.Collection(fsCol).Doc(docID(r))
		_, err := ref.Get(ctx)
		if err != nil && status.Code(err) != codes.NotFound {
			return fmt.Errorf("UpdateResults, failed getting ref %v: %v", ref, err)
		} else if err == nil {
			log.Printf("UpdateResults, replacing results for %s\n", r.Corpus)
		}
		_, err = ref.Set(ctx, newResultsRecord(r))
		if err != nil {
			return fmt.Errorf("UpdateResults, failed setting ref %v: %v", ref, err)
		}
	}
	return nil
}
