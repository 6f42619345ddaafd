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
	"os"
	"path/filepath"
	"testing"
)

// TestNewTemplateMap building the template map
func TestNewTemplateMap(t *testing.T) {
	dir := t.TempDir()
	custom := "custom {{.Title}}"
	err := os.WriteFile(filepath.Join(dir, TextReportTemplate), []byte(custom), 0644)
	if err != nil {
		t.Fatalf("TestNewTemplateMap: could not write template: %v", err)
	}
	tests := []struct {
		name     string
		templDir string
	}{
		{
			name:     "No template directory",
			templDir: "",
		},
		{
			name:     "Missing template directory",
			templDir: filepath.Join(dir, "missing"),
		},
		{
			name:     "Custom text template",
			templDir: dir,
		},
	}
	for _, tc := range tests {
		templates := NewTemplateMap(tc.templDir)
		for _, tName := range []string{TextReportTemplate, MarkdownReportTemplate, HTMLPageTemplate} {
			if _, ok := templates[tName]; !ok {
				t.Errorf("%s, template %s not found", tc.name, tName)
			}
		}
	}
}
