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

// Package for writing perplexity reports as plain text, Markdown and HTML.
// This includes templates embedded in source for zero-config usage.
// Custom templates can be provided by setting the TEMPLATE_HOME env variable.
package generator

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/alexamies/bigramlm/analysis"
	"github.com/gomarkdown/markdown"
)

// Report file names written to the web directory
const (
	MarkdownReportFile = "perplexity.md"
	HTMLReportFile     = "perplexity.html"
)

// HTMLOutPutConfig holds parameters for writing reports
type HTMLOutPutConfig struct {

	// Report title
	Title string

	// For rendering, if TemplateDir is not given
	Templates map[string]*template.Template

	// Containing a directory of Go templates, default to static templates if empty
	TemplateDir string

	// To write report files to
	WebDir string
}

// ReportContent holds the content for the report templates
type ReportContent struct {
	Title, DateUpdated string
	Results            []analysis.Results
}

// HTMLContent holds content for the page template
type HTMLContent struct {
	Content, DateUpdated, Title string
}

func newReportContent(results []analysis.Results, outputConfig HTMLOutPutConfig) ReportContent {
	return ReportContent{
		Title:       outputConfig.Title,
		DateUpdated: time.Now().Format("2006-01-02"),
		Results:     results,
	}
}

func getTemplate(outputConfig HTMLOutPutConfig, name string) (*template.Template, error) {
	templates := outputConfig.Templates
	if templates == nil {
		templates = NewTemplateMap(outputConfig.TemplateDir)
	}
	tmpl, ok := templates[name]
	if !ok || tmpl == nil {
		return nil, fmt.Errorf("template %s not found", name)
	}
	return tmpl, nil
}

// WriteTextReport writes a plain text report for the console
func WriteTextReport(w io.Writer, results []analysis.Results, outputConfig HTMLOutPutConfig) error {
	tmpl, err := getTemplate(outputConfig, TextReportTemplate)
	if err != nil {
		return fmt.Errorf("WriteTextReport: %v", err)
	}
	err = tmpl.Execute(w, newReportContent(results, outputConfig))
	if err != nil {
		return fmt.Errorf("WriteTextReport, error executing template: %v", err)
	}
	return nil
}

// WriteMarkdownReport writes the report as Markdown with tables of
// perplexities and the most frequent words and bigrams
func WriteMarkdownReport(w io.Writer, results []analysis.Results, outputConfig HTMLOutPutConfig) error {
	tmpl, err := getTemplate(outputConfig, MarkdownReportTemplate)
	if err != nil {
		return fmt.Errorf("WriteMarkdownReport: %v", err)
	}
	err = tmpl.Execute(w, newReportContent(results, outputConfig))
	if err != nil {
		return fmt.Errorf("WriteMarkdownReport, error executing template: %v", err)
	}
	return nil
}

// WriteHTMLReport renders the Markdown report to HTML and wraps it in the
// page template
func WriteHTMLReport(w io.Writer, results []analysis.Results, outputConfig HTMLOutPutConfig) error {
	var md bytes.Buffer
	if err := WriteMarkdownReport(&md, results, outputConfig); err != nil {
		return fmt.Errorf("WriteHTMLReport: %v", err)
	}
	tmpl, err := getTemplate(outputConfig, HTMLPageTemplate)
	if err != nil {
		return fmt.Errorf("WriteHTMLReport: %v", err)
	}
	body := markdown.ToHTML(md.Bytes(), nil, nil)
	content := HTMLContent{
		Content:     string(body),
		DateUpdated: time.Now().Format("2006-01-02"),
		Title:       outputConfig.Title,
	}
	bw := bufio.NewWriter(w)
	err = tmpl.Execute(bw, content)
	if err != nil {
		return fmt.Errorf("WriteHTMLReport, error executing template: %v", err)
	}
	return bw.Flush()
}

// WriteReportFiles writes the Markdown and HTML reports to the web directory
func WriteReportFiles(results []analysis.Results, outputConfig HTMLOutPutConfig) error {
	if err := os.MkdirAll(outputConfig.WebDir, 0755); err != nil {
		return fmt.Errorf("WriteReportFiles, could not create %s: %v",
			outputConfig.WebDir, err)
	}
	writers := map[string]func(io.Writer, []analysis.Results, HTMLOutPutConfig) error{
		MarkdownReportFile: WriteMarkdownReport,
		HTMLReportFile:     WriteHTMLReport,
	}
	for _, fName := range []string{MarkdownReportFile, HTMLReportFile} {
		path := filepath.Join(outputConfig.WebDir, fName)
		if err := writeReportFile(path, results, outputConfig, writers[fName]); err != nil {
			return err
		}
		log.Printf("WriteReportFiles: wrote %s\n", path)
	}
	return nil
}

func writeReportFile(path string, results []analysis.Results, outputConfig HTMLOutPutConfig,
	write func(io.Writer, []analysis.Results, HTMLOutPutConfig) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Error creating report file %s: %v", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := write(w, results, outputConfig); err != nil {
		return err
	}
	return w.Flush()
}
