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

package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/alexamies/bigramlm/analysis"
	"github.com/alexamies/bigramlm/corpus"
	"github.com/alexamies/bigramlm/generator"
)

var integration = flag.Bool("integration", false, "run an integration test")

func testCorpusConfig() corpus.CorpusConfig {
	return corpus.CorpusConfig{
		CorpusDataDir: "data/corpus",
		CorpusDir:     "corpus",
		Excluded:      map[string]bool{".": true},
		ProjectHome:   ".",
	}
}

// TestMain runs integration tests if the flag -integration is set
func TestMain(m *testing.M) {
	flag.Parse()
	if *integration {
		fmt.Println("Running integration test")
		os.Exit(m.Run())
	}
	fmt.Println("Skipping integration test")
}

func TestIntegration(t *testing.T) {
	t.Log("TestIntegration begin")
	evalConfig := analysis.DefaultEvalConfig()
	evalConfig.TestFraction = 0.2
	results, err := evaluateTagged([]string{"testdata/tagged"}, testCorpusConfig(),
		evalConfig)
	if err != nil {
		t.Fatalf("main, could not evaluate: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("main, expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Train.Sentences != 8 || r.Test.Sentences != 2 {
		t.Errorf("main, expected 8 train and 2 test sentences, got %d, %d",
			r.Train.Sentences, r.Test.Sentences)
	}
	if r.Test.Words != 6 {
		t.Errorf("main, expected 6 test words, got %d", r.Test.Words)
	}
	if r.TestPerplexity.Bidirectional < 1.0 {
		t.Errorf("main, perplexity %f less than 1", r.TestPerplexity.Bidirectional)
	}
	outputConfig := generator.HTMLOutPutConfig{
		Title:     reportTitle,
		Templates: generator.NewTemplateMap(""),
	}
	var buf bytes.Buffer
	err = generator.WriteTextReport(&buf, results, outputConfig)
	if err != nil {
		t.Fatalf("main, could not write report: %v", err)
	}
	if !strings.Contains(buf.String(), "Tagged files") {
		t.Errorf("main, report missing corpus title:\n%s", buf.String())
	}
}

func TestGetCorpusConfig(t *testing.T) {
	appConfig := getAppConfig("")
	if len(appConfig.LUFileNames) != 0 {
		t.Errorf("main, expected no dictionary files, got %v", appConfig.LUFileNames)
	}
	if tok := loadTokenizer(appConfig); tok != nil {
		t.Error("main, expected no tokenizer without a dictionary")
	}
	corpusConfig := getCorpusConfig(appConfig, map[string]bool{})
	if corpusConfig.CorpusDataDir != appConfig.CorpusDataDir() {
		t.Errorf("main, got corpus data dir %s, want %s",
			corpusConfig.CorpusDataDir, appConfig.CorpusDataDir())
	}
	if corpusConfig.CorpusDir != appConfig.CorpusDir() {
		t.Errorf("main, got corpus dir %s, want %s", corpusConfig.CorpusDir,
			appConfig.CorpusDir())
	}
}

func TestLoadTokenizer(t *testing.T) {
	tok := loadTokenizer(getAppConfig("testdata/words.txt"))
	if tok == nil {
		t.Fatal("main, expected a tokenizer")
	}
	got, err := corpus.ParseText(strings.NewReader("前不见古人\n"), tok)
	if err != nil {
		t.Fatalf("main, could not parse text: %v", err)
	}
	want := [][]string{{"前", "不见", "古人"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("main, got %v, want %v", got, want)
	}
}
