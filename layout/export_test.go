// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package layout

import (
	"strings"
	"testing"
)

func TestDotRender(t *testing.T) {
	g := mustBuildGraph(t, 20, []Edge{{20, 10}, {20, 30}})

	got, err := NewDotStrategy().Render(g, Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, fragment := range []string{
		"digraph avl {",
		"fillcolor=\"#81d4fa\"",
		"\"20\" -> \"10\";",
		"\"20\" -> \"30\";",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("Expected %q in DOT output:\n%s", fragment, got)
		}
	}

	// Parents must appear before children so external tools keep the
	// insertion side stable
	if strings.Index(got, "\"20\" -> \"10\"") > strings.Index(got, "\"20\" -> \"30\"") {
		t.Errorf("Expected the left edge before the right edge:\n%s", got)
	}
}

func TestDotRenderSingleKey(t *testing.T) {
	g := mustBuildGraph(t, 7, nil)

	got, err := NewDotStrategy().Render(g, Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(got, "\"7\";") {
		t.Errorf("Expected a lone node statement, got:\n%s", got)
	}
	if strings.Contains(got, "->") {
		t.Errorf("Expected no edges for a single key, got:\n%s", got)
	}
}

func TestDotRenderHeights(t *testing.T) {
	g := mustBuildGraph(t, 20, []Edge{{20, 10}})

	got, err := NewDotStrategy().Render(g, Options{ShowHeights: true})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(got, "label=\"20\\nh=2\"") {
		t.Errorf("Expected a height annotated label, got:\n%s", got)
	}
}

func TestMermaidRender(t *testing.T) {
	g := mustBuildGraph(t, 20, []Edge{{20, 10}, {20, 30}})

	got, err := NewMermaidStrategy().Render(g, Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, fragment := range []string{
		"graph TD",
		"n20[\"20\"]",
		"n20 --> n10",
		"n20 --> n30",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("Expected %q in Mermaid output:\n%s", fragment, got)
		}
	}
}

func TestMermaidNegativeKeys(t *testing.T) {
	g := mustBuildGraph(t, -5, []Edge{{-5, -10}, {-5, 3}})

	got, err := NewMermaidStrategy().Render(g, Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// A minus sign would split a Mermaid identifier
	for _, fragment := range []string{
		"m5[\"-5\"]",
		"m10[\"-10\"]",
		"m5 --> m10",
		"m5 --> n3",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("Expected %q in Mermaid output:\n%s", fragment, got)
		}
	}
}
