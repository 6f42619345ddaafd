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
	"fmt"
	"log"
	"path/filepath"
	"text/template"
)

// Template names, also the file names looked for in a custom template
// directory
const (
	TextReportTemplate     = "report.txt"
	MarkdownReportTemplate = "report.md"
	HTMLPageTemplate       = "report-page.html"
)

// Templates from source for zero-config usage
const textReportTemplate = `{{.Title}}
{{ range $r := .Results }}
Corpus: {{ $r.Title }} ({{ $r.Corpus }})
# Train Sentences = {{ $r.Train.Sentences }} (# words = {{ $r.Train.Words }})
# Test Sentences = {{ $r.Test.Sentences }} (# words = {{ $r.Test.Words }})
Vocabulary: {{ $r.Vocabulary }}, lambda: {{ $r.Config.Lambda }}, unknown count: {{ $r.Config.UnknownCount }}
Set	Forward	Backward	Bidirectional
train	{{ pp $r.TrainPerplexity.Forward }}	{{ pp $r.TrainPerplexity.Backward }}	{{ pp $r.TrainPerplexity.Bidirectional }}
train (words)	{{ pp $r.TrainPerplexity.ForwardWord }}	{{ pp $r.TrainPerplexity.BackwardWord }}	{{ pp $r.TrainPerplexity.BidirectionalWord }}
test	{{ pp $r.TestPerplexity.Forward }}	{{ pp $r.TestPerplexity.Backward }}	{{ pp $r.TestPerplexity.Bidirectional }}
test (words)	{{ pp $r.TestPerplexity.ForwardWord }}	{{ pp $r.TestPerplexity.BackwardWord }}	{{ pp $r.TestPerplexity.BidirectionalWord }}
{{ end }}`

const markdownReportTemplate = `# {{.Title}}
{{ range $r := .Results }}
## {{ $r.Title }}

| Set | Sentences | Words |
|-----|-----------|-------|
| Train | {{ $r.Train.Sentences }} | {{ $r.Train.Words }} |
| Test | {{ $r.Test.Sentences }} | {{ $r.Test.Words }} |

Vocabulary size {{ $r.Vocabulary }}, lambda {{ $r.Config.Lambda }}, unknown
count {{ $r.Config.UnknownCount }}, bigram weights {{ $r.Weights.ForwardBigram }}
/ {{ $r.Weights.BackwardBigram }}, sentence weights
{{ $r.Weights.ForwardSentence }} / {{ $r.Weights.BackwardSentence }}.

| Perplexity | Forward | Backward | Bidirectional |
|------------|---------|----------|---------------|
| Train | {{ pp $r.TrainPerplexity.Forward }} | {{ pp $r.TrainPerplexity.Backward }} | {{ pp $r.TrainPerplexity.Bidirectional }} |
| Train (words) | {{ pp $r.TrainPerplexity.ForwardWord }} | {{ pp $r.TrainPerplexity.BackwardWord }} | {{ pp $r.TrainPerplexity.BidirectionalWord }} |
| Test | {{ pp $r.TestPerplexity.Forward }} | {{ pp $r.TestPerplexity.Backward }} | {{ pp $r.TestPerplexity.Bidirectional }} |
| Test (words) | {{ pp $r.TestPerplexity.ForwardWord }} | {{ pp $r.TestPerplexity.BackwardWord }} | {{ pp $r.TestPerplexity.BidirectionalWord }} |
{{ if $r.TopUnigrams }}
### Most frequent words

| Rank | Word | Count |
|------|------|-------|
{{ range $i, $u := $r.TopUnigrams }}| {{ add $i 1 }} | {{ $u.Token }} | {{ $u.Count }} |
{{ end }}{{ end }}{{ if $r.TopBigrams }}
### Most frequent bigrams

| Rank | Bigram | Count |
|------|--------|-------|
{{ range $i, $b := $r.TopBigrams }}| {{ add $i 1 }} | {{ $b.BigramVal }} | {{ $b.Frequency }} |
{{ end }}{{ end }}
Updated on {{ $r.DateUpdated }}
{{ end }}`

const htmlPageTemplate = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
  </head>
  <body>
    <main>
    {{.Content}}
    </main>
    <footer>
      <div>Page updated on {{.DateUpdated}}</div>
    </footer>
  </body>
</html>
`

// NewTemplateMap builds a template map, preferring templates in templDir when
// they can be parsed
func NewTemplateMap(templDir string) map[string]*template.Template {
	templateMap := make(map[string]*template.Template)
	tNames := map[string]string{
		TextReportTemplate:     textReportTemplate,
		MarkdownReportTemplate: markdownReportTemplate,
		HTMLPageTemplate:       htmlPageTemplate,
	}
	funcs := template.FuncMap{
		"add": func(x, y int) int { return x + y },
		"pp":  func(x float64) string { return fmt.Sprintf("%.2f", x) },
	}
	for tName, defTmpl := range tNames {
		if len(templDir) > 0 {
			fileName := filepath.Join(templDir, tName)
			tmpl, err := template.New(tName).Funcs(funcs).ParseFiles(fileName)
			if err == nil {
				templateMap[tName] = tmpl
				continue
			}
			log.Printf("NewTemplateMap: error parsing template, using default %s: %v",
				tName, err)
		}
		templateMap[tName] = template.Must(template.New(tName).Funcs(funcs).Parse(defTmpl))
	}
	return templateMap
}
