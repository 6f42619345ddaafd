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

// Package for loading corpus collections into tokenized sentences
package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexamies/chinesenotes-go/tokenizer"
)

// Formats of corpus entry files
const (
	// LDC part of speech tagged text, word/TAG tokens
	FormatTagged = "pos"

	// One sentence per line, tokens separated by white space
	FormatText = "txt"

	// One sentence per line, Chinese text segmented with the dictionary
	FormatChinese = "zh"
)

// An entry in a collection
type CorpusEntry struct {
	RawFile, Format, Title, ColTitle string
}

// CorpusConfig encapsulates parameters for corpus configuration
type CorpusConfig struct {
	CorpusDataDir string
	CorpusDir     string
	Excluded      map[string]bool
	ProjectHome   string
}

type CorpusLoader interface {

	// Method to get the configuration used by the loader
	GetConfig() CorpusConfig

	// Method to load the entries in a collection
	// Param:
	//   fName: A file name containing the entries in the collection
	//   colTitle: The title of the collection
	LoadCollection(fName, colTitle string) (*[]CorpusEntry, error)

	// Method to read the sentences of a corpus entry
	// Param:
	//   entry: the entry giving the file name and format
	ReadSentences(entry CorpusEntry) ([][]string, error)
}

// A FileCorpusLoader loads the corpora from files
type FileCorpusLoader struct {
	Config    CorpusConfig
	Tokenizer tokenizer.Tokenizer
}

// NewCorpusLoader creates a loader reading files under the corpus
// directories. The tokenizer is only needed for Chinese text entries.
func NewCorpusLoader(config CorpusConfig, tok tokenizer.Tokenizer) CorpusLoader {
	return FileCorpusLoader{
		Config:    config,
		Tokenizer: tok,
	}
}

// GetConfig implements the CorpusLoader interface
func (loader FileCorpusLoader) GetConfig() CorpusConfig {
	return loader.Config
}

// LoadCollection implements the CorpusLoader interface
func (loader FileCorpusLoader) LoadCollection(fName, colTitle string) (*[]CorpusEntry, error) {
	cFile := filepath.Join(loader.Config.CorpusDataDir, fName)
	f, err := os.Open(cFile)
	if err != nil {
		return nil, fmt.Errorf("corpus.LoadCollection could not open %s: %v",
			cFile, err)
	}
	defer f.Close()
	return loadCorpusEntries(f, colTitle)
}

// ReadSentences implements the CorpusLoader interface
func (loader FileCorpusLoader) ReadSentences(entry CorpusEntry) ([][]string, error) {
	fName := filepath.Join(loader.Config.CorpusDir, entry.RawFile)
	f, err := os.Open(fName)
	if err != nil {
		return nil, fmt.Errorf("corpus.ReadSentences could not open %s: %v",
			fName, err)
	}
	defer f.Close()
	return readSentences(f, entry.Format, loader.Tokenizer)
}

func readSentences(r io.Reader, format string, tok tokenizer.Tokenizer) ([][]string, error) {
	switch format {
	case FormatTagged, "":
		return ParseTagged(r)
	case FormatText:
		return ParseText(r, nil)
	case FormatChinese:
		if tok == nil {
			return nil, fmt.Errorf("corpus.readSentences: format %s needs a tokenizer",
				format)
		}
		return ParseText(r, tok)
	}
	return nil, fmt.Errorf("corpus.readSentences: unknown format %q", format)
}

// LoadSentences reads all the sentences in a collection, in the order of the
// entries, with excluded tokens removed
func LoadSentences(loader CorpusLoader, fName, colTitle string) ([][]string, error) {
	entries, err := loader.LoadCollection(fName, colTitle)
	if err != nil {
		return nil, fmt.Errorf("corpus.LoadSentences: %v", err)
	}
	sentences := [][]string{}
	for _, entry := range *entries {
		s, err := loader.ReadSentences(entry)
		if err != nil {
			return nil, fmt.Errorf("corpus.LoadSentences error reading %s: %v",
				entry.RawFile, err)
		}
		sentences = append(sentences, s...)
	}
	log.Printf("corpus.LoadSentences: read %d sentences from %d entries in %s\n",
		len(sentences), len(*entries), fName)
	return RemoveExcluded(loader.GetConfig().Excluded, sentences), nil
}

// LoadTaggedFiles reads POS tagged files, walking into directories
// Param:
//   paths: files or directories, in the order the sentences should appear
func LoadTaggedFiles(paths []string) ([][]string, error) {
	sentences := [][]string{}
	for _, p := range paths {
		err := filepath.Walk(p, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() || strings.HasPrefix(info.Name(), ".") {
				return nil
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			s, err := ParseTagged(f)
			if err != nil {
				return fmt.Errorf("%s: %v", path, err)
			}
			sentences = append(sentences, s...)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("corpus.LoadTaggedFiles: %v", err)
		}
	}
	return sentences, nil
}

// Get a list of entries for a collection
func loadCorpusEntries(r io.Reader, colTitle string) (*[]CorpusEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comma = rune('\t')
	reader.Comment = rune('#')
	rawCSVdata, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("corpus.loadCorpusEntries: could not read entries: %v",
			err)
	}
	corpusEntries := make([]CorpusEntry, 0)
	for i, row := range rawCSVdata {
		if len(row) < 2 {
			return nil, fmt.Errorf("corpus.loadCorpusEntries: row %d has %d columns, need 2",
				i, len(row))
		}
		title := ""
		if len(row) > 2 && row[2] != "\\N" {
			title = row[2]
		}
		corpusEntries = append(corpusEntries, CorpusEntry{
			RawFile:  row[0],
			Format:   row[1],
			Title:    title,
			ColTitle: colTitle,
		})
	}
	return &corpusEntries, nil
}
