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

// Command line tool to train forward and backward bigram language models and
// report their perplexities on a training and test split of a corpus.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"

	"cloud.google.com/go/firestore"
	"github.com/alexamies/bigramlm/analysis"
	"github.com/alexamies/bigramlm/corpus"
	"github.com/alexamies/bigramlm/generator"
	"github.com/alexamies/bigramlm/langmodel"
	"github.com/alexamies/bigramlm/library"
	"github.com/alexamies/chinesenotes-go/config"
	"github.com/alexamies/chinesenotes-go/tokenizer"
)

const (
	excludedFile = "data/corpus/excluded.txt"
	reportTitle  = "Bigram Language Model Perplexity"
)

var projectHome string

func init() {
	projectHome = os.Getenv("BIGRAMLM_HOME")
	log.Printf("config.init: projectHome: '%s'\n", projectHome)
	if len(projectHome) == 0 {
		projectHome = "."
	}
}

// loadExcluded reads the excluded tokens, an empty set if there is no file
func loadExcluded(fName string) map[string]bool {
	f, err := os.Open(fName)
	if err != nil {
		log.Printf("loadExcluded: no excluded tokens, %v\n", err)
		return map[string]bool{}
	}
	defer f.Close()
	excluded, err := corpus.LoadExcluded(f)
	if err != nil {
		log.Fatalf("loadExcluded: %v", err)
	}
	return excluded
}

// getAppConfig gets the project configuration, with the dictionary files
// used to segment Chinese text
func getAppConfig(dictFile string) config.AppConfig {
	lUFileNames := []string{}
	if len(dictFile) > 0 {
		lUFileNames = append(lUFileNames, dictFile)
	}
	return config.AppConfig{
		ProjectHome: projectHome,
		LUFileNames: lUFileNames,
	}
}

// loadTokenizer builds a dictionary tokenizer for Chinese text, nil if there
// is no dictionary
func loadTokenizer(appConfig config.AppConfig) tokenizer.Tokenizer {
	if len(appConfig.LUFileNames) == 0 {
		return nil
	}
	tok, err := corpus.LoadTokenizer(appConfig)
	if err != nil {
		log.Fatalf("loadTokenizer: %v", err)
	}
	return tok
}

func getCorpusConfig(appConfig config.AppConfig, excluded map[string]bool) corpus.CorpusConfig {
	return corpus.CorpusConfig{
		CorpusDataDir: appConfig.CorpusDataDir(),
		CorpusDir:     appConfig.CorpusDir(),
		Excluded:      excluded,
		ProjectHome:   appConfig.ProjectHome,
	}
}

// Gets the output configuration, as used for writing report files
func getHTMLOutPutConfig() generator.HTMLOutPutConfig {
	templateHome := os.Getenv("TEMPLATE_HOME")
	webDir := os.Getenv("WEB_DIR")
	if len(webDir) == 0 {
		webDir = "web"
	}
	return generator.HTMLOutPutConfig{
		Title:       reportTitle,
		Templates:   generator.NewTemplateMap(templateHome),
		TemplateDir: templateHome,
		WebDir:      webDir,
	}
}

// evaluateTagged evaluates the sentences in POS tagged files and directories
func evaluateTagged(paths []string, corpusConfig corpus.CorpusConfig,
	evalConfig analysis.EvalConfig) ([]analysis.Results, error) {
	sentences, err := corpus.LoadTaggedFiles(paths)
	if err != nil {
		return nil, err
	}
	sentences = corpus.RemoveExcluded(corpusConfig.Excluded, sentences)
	log.Printf("main: # Sentences = %d (# words = %d)\n", len(sentences),
		corpus.WordCount(sentences))
	results, err := analysis.Evaluate(sentences, evalConfig)
	if err != nil {
		return nil, err
	}
	results.Corpus = "tagged"
	results.Title = "Tagged files"
	return []analysis.Results{*results}, nil
}

// publish writes the results to Firestore
func publish(projectID string, results []analysis.Results, generation int) error {
	if len(projectID) == 0 {
		return fmt.Errorf("FIRESTORE_PROJECT_ID is not set")
	}
	ctx := context.Background()
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return fmt.Errorf("could not create Firestore client: %v", err)
	}
	defer client.Close()
	return analysis.UpdateResults(ctx, client, results, generation)
}

// Entry point for the bigramlm command line tool.
// Positional arguments are POS tagged files or directories of them. Without
// them the corpora in the library are evaluated.
func main() {
	// Command line flags
	var collectionFile = flag.String("collection", "",
		"Evaluate the corpus entries listed in the given collection file.")
	var testFraction = flag.Float64("testfrac", 0.1,
		"Fraction of the sentences, taken from the end, held out for testing.")
	var lambda = flag.Float64("lambda", langmodel.DefaultLambda,
		"Weight of the bigram probability in interpolation, in [0, 1).")
	var unk = flag.Int("unk", langmodel.DefaultUnknownCount,
		"Pseudo-count reserved for unknown words.")
	var fwdBigram = flag.Float64("fwd_bigram", langmodel.DefaultForwardBigram,
		"Weight of the forward model in per-token bidirectional scoring.")
	var fwdSentence = flag.Float64("fwd_sentence", langmodel.DefaultForwardSentence,
		"Weight of the forward model in sentence-level bidirectional scoring.")
	var maxFreq = flag.Int("maxfreq", 25,
		"Number of most frequent words and bigrams in reports.")
	var html = flag.Bool("html", false, "Write Markdown and HTML reports "+
		"to the WEB_DIR directory.")
	var fs = flag.Bool("firestore", false, "Publish results to Firestore in "+
		"the FIRESTORE_PROJECT_ID project.")
	var generation = flag.Int("generation", 0,
		"Generation of the Firestore results collection.")
	var dictFile = flag.String("dict", "",
		"Dictionary file for segmenting Chinese text.")
	var excludedFName = flag.String("excluded", "",
		"File listing tokens to exclude, defaults to "+excludedFile)
	var status = flag.String("status", "public",
		"Status of the library corpora to evaluate, all if empty.")
	var memprofile = flag.String("memprofile", "", "write memory profile to "+
		"this file")
	flag.Parse()

	evalConfig := analysis.EvalConfig{
		TestFraction: *testFraction,
		Model: langmodel.Config{
			Lambda:       *lambda,
			UnknownCount: *unk,
		},
		Weights: langmodel.Weights{
			ForwardBigram:    *fwdBigram,
			BackwardBigram:   1.0 - *fwdBigram,
			ForwardSentence:  *fwdSentence,
			BackwardSentence: 1.0 - *fwdSentence,
		},
		MaxFreqOutput: *maxFreq,
	}
	if err := evalConfig.Model.Validate(); err != nil {
		log.Fatalf("main: %v", err)
	}
	if err := evalConfig.Weights.Validate(); err != nil {
		log.Fatalf("main: %v", err)
	}

	exFName := *excludedFName
	if len(exFName) == 0 {
		exFName = filepath.Join(projectHome, excludedFile)
	}
	appConfig := getAppConfig(*dictFile)
	corpusConfig := getCorpusConfig(appConfig, loadExcluded(exFName))
	outputConfig := getHTMLOutPutConfig()
	tok := loadTokenizer(appConfig)

	var results []analysis.Results
	var err error
	if flag.NArg() > 0 {
		log.Printf("main: Evaluating %d tagged paths\n", flag.NArg())
		results, err = evaluateTagged(flag.Args(), corpusConfig, evalConfig)
	} else if *collectionFile != "" {
		log.Printf("main: Evaluating collection %s\n", *collectionFile)
		corpLoader := corpus.NewCorpusLoader(corpusConfig, tok)
		c := library.CorpusData{
			Title:     *collectionFile,
			ShortName: *collectionFile,
			FileName:  *collectionFile,
		}
		var r *analysis.Results
		r, err = analysis.EvaluateCorpus(corpLoader, c, evalConfig)
		if err == nil {
			results = []analysis.Results{*r}
		}
	} else {
		log.Println("main: Evaluating library")
		fname := filepath.Join(projectHome, library.LibraryFile)
		lib := library.Library{
			Title:        "Library",
			Summary:      "Corpora in the library",
			TargetStatus: *status,
			Loader:       library.NewLibraryLoader(fname, corpusConfig, tok),
		}
		results, err = analysis.EvaluateLibrary(lib, evalConfig)
	}
	if err != nil {
		log.Fatalf("main: could not evaluate: %v", err)
	}

	err = generator.WriteTextReport(os.Stdout, results, outputConfig)
	if err != nil {
		log.Fatalf("main: could not write report: %v", err)
	}
	if *html {
		err = generator.WriteReportFiles(results, outputConfig)
		if err != nil {
			log.Fatalf("main: could not write report files: %v", err)
		}
	}
	if *fs {
		err = publish(os.Getenv("FIRESTORE_PROJECT_ID"), results, *generation)
		if err != nil {
			log.Fatalf("main: could not publish results: %v", err)
		}
	}

	// Memory profiling
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
