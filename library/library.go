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

// Package for the library of corpora that are evaluated
package library

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/alexamies/bigramlm/corpus"
	"github.com/alexamies/chinesenotes-go/tokenizer"
)

// The library file listing the corpora
const LibraryFile = "data/corpus/library.csv"

// CorpusData describes a corpus in the library. FileName is the collection
// file listing the corpus entries.
type CorpusData struct {
	Title, ShortName, Status, FileName string
}

// A Library is a set of corpora loaded using a LibraryLoader and metadata
type Library struct {
	Title, Summary, DateUpdated, TargetStatus string
	Loader                                   LibraryLoader
}

// LibraryLoader loads the corpora into the library
type LibraryLoader interface {

	// GetCorpusLoader gets the corpus loader
	GetCorpusLoader() corpus.CorpusLoader

	// LoadLibrary loads the corpora in the library
	LoadLibrary() (*[]CorpusData, error)
}

// fileLibraryLoader loads the corpora from files
type fileLibraryLoader struct {
	FileName string
	Config   corpus.CorpusConfig
	CLoader  corpus.CorpusLoader
}

// GetCorpusLoader implements the LibraryLoader interface
func (loader fileLibraryLoader) GetCorpusLoader() corpus.CorpusLoader {
	return loader.CLoader
}

// LoadLibrary implements the interface
func (loader fileLibraryLoader) LoadLibrary() (*[]CorpusData, error) {
	f, err := os.Open(loader.FileName)
	if err != nil {
		return nil, fmt.Errorf("library.LoadLibrary, could not open %s: %v",
			loader.FileName, err)
	}
	defer f.Close()
	return loadLibrary(f)
}

// NewLibraryLoader creates a new LibraryLoader
func NewLibraryLoader(fname string, config corpus.CorpusConfig, tok tokenizer.Tokenizer) LibraryLoader {
	return fileLibraryLoader{
		FileName: fname,
		Config:   config,
		CLoader:  corpus.NewCorpusLoader(config, tok),
	}
}

// Corpora gets the corpora in the library with the target status, or all of
// them if no target status is set
func (lib Library) Corpora() ([]CorpusData, error) {
	corpora, err := lib.Loader.LoadLibrary()
	if err != nil {
		return nil, err
	}
	selected := []CorpusData{}
	for _, c := range *corpora {
		if lib.TargetStatus == "" || c.Status == lib.TargetStatus {
			selected = append(selected, c)
		}
	}
	return selected, nil
}

// loadLibrary reads the tab separated list of corpora
func loadLibrary(r io.Reader) (*[]CorpusData, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comma = rune('\t')
	reader.Comment = rune('#')
	rawCSVdata, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("loadLibrary, error reading file: %v", err)
	}
	corpora := []CorpusData{}
	for i, row := range rawCSVdata {
		if len(row) < 4 {
			return nil, fmt.Errorf("library.loadLibrary: not enough columns in row %d, %d ",
				i, len(row))
		}
		title := row[0]
		shortName := row[1]
		status := row[2]
		fileName := row[3]
		corpus := CorpusData{title, shortName, status, fileName}
		corpora = append(corpora, corpus)
	}
	return &corpora, nil
}
