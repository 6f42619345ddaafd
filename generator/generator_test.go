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

package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	"github.com/alexamies/bigramlm/analysis"
	"github.com/alexamies/bigramlm/langmodel"
	"github.com/alexamies/bigramlm/ngram"
)

func mockResults() []analysis.Results {
	return []analysis.Results{
		{
			Corpus:     "wsj",
			Title:      "Wall Street Journal",
			Train:      analysis.SetSize{Sentences: 90, Words: 2000},
			Test:       analysis.SetSize{Sentences: 10, Words: 210},
			Vocabulary: 640,
			Config:     langmodel.DefaultConfig(),
			Weights:    langmodel.DefaultWeights(),
			TrainPerplexity: analysis.Perplexities{
				Forward:       45.5,
				Backward:      46.25,
				Bidirectional: 30.125,
			},
			TestPerplexity: analysis.Perplexities{
				Forward:       310.0,
				Backward:      305.5,
				Bidirectional: 250.75,
			},
			TopUnigrams: []ngram.UnigramEntry{
				{Token: "the", Count: 120},
			},
			TopBigrams: []ngram.BigramFreq{
				{BigramVal: ngram.NewBigram("of", "the"), Frequency: 17},
			},
			DateUpdated: "2022-06-01",
		},
	}
}

func mockOutputConfig(webDir string) HTMLOutPutConfig {
	return HTMLOutPutConfig{
		Title:     "Perplexity",
		Templates: NewTemplateMap(""),
		WebDir:    webDir,
	}
}

func TestWriteTextReport(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTextReport(&buf, mockResults(), mockOutputConfig(""))
	if err != nil {
		t.Fatalf("TestWriteTextReport: unexpected error: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"Corpus: Wall Street Journal (wsj)",
		"# Train Sentences = 90 (# words = 2000)",
		"# Test Sentences = 10 (# words = 210)",
		"test\t310.00\t305.50\t250.75",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("TestWriteTextReport: %q not found in\n%s", want, got)
		}
	}
}

func TestWriteMarkdownReport(t *testing.T) {
	var buf bytes.Buffer
	err := WriteMarkdownReport(&buf, mockResults(), mockOutputConfig(""))
	if err != nil {
		t.Fatalf("TestWriteMarkdownReport: unexpected error: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"# Perplexity",
		"## Wall Street Journal",
		"| Test | 310.00 | 305.50 | 250.75 |",
		"| 1 | the | 120 |",
		"| 1 | of the | 17 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("TestWriteMarkdownReport: %q not found in\n%s", want, got)
		}
	}
}

func TestWriteHTMLReport(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHTMLReport(&buf, mockResults(), mockOutputConfig(""))
	if err != nil {
		t.Fatalf("TestWriteHTMLReport: unexpected error: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"<title>Perplexity</title>",
		"<h2",
		"Wall Street Journal",
		"<table>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("TestWriteHTMLReport: %q not found in\n%s", want, got)
		}
	}
}

func TestWriteReportMissingTemplate(t *testing.T) {
	outputConfig := mockOutputConfig("")
	outputConfig.Templates = map[string]*template.Template{}
	var buf bytes.Buffer
	if err := WriteTextReport(&buf, mockResults(), outputConfig); err == nil {
		t.Error("TestWriteReportMissingTemplate: expected an error")
	}
}

func TestWriteReportFiles(t *testing.T) {
	webDir := filepath.Join(t.TempDir(), "web")
	err := WriteReportFiles(mockResults(), mockOutputConfig(webDir))
	if err != nil {
		t.Fatalf("TestWriteReportFiles: unexpected error: %v", err)
	}
	for _, fName := range []string{MarkdownReportFile, HTMLReportFile} {
		b, err := os.ReadFile(filepath.Join(webDir, fName))
		if err != nil {
			t.Errorf("TestWriteReportFiles: could not read %s: %v", fName, err)
			continue
		}
		if !strings.Contains(string(b), "Wall Street Journal") {
			t.Errorf("TestWriteReportFiles: title not found in %s", fName)
		}
	}
}
