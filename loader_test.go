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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		token   string
		want    int
		wantErr bool
	}{
		{token: "42", want: 42},
		{token: "-3", want: -3},
		{token: " 7 ", want: 7},
		{token: "abc", wantErr: true},
		{token: "3.5", wantErr: true},
		{token: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseValue(tt.token)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseValue(%q): expected an error, got %d", tt.token, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseValue(%q) failed: %v", tt.token, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseValue(%q) = %d; want %d", tt.token, got, tt.want)
		}
	}
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		spec    string
		want    []int
		wantErr bool
	}{
		{spec: "1..5", want: []int{1, 2, 3, 4, 5}},
		{spec: "5..1", want: []int{5, 4, 3, 2, 1}},
		{spec: "3..3", want: []int{3}},
		{spec: "-2..2", want: []int{-2, -1, 0, 1, 2}},
		{spec: "1..x", wantErr: true},
		{spec: "x..5", wantErr: true},
		{spec: "5", wantErr: true},
		{spec: "1..100000", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSequence(tt.spec)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSequence(%q): expected an error, got %v", tt.spec, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSequence(%q) failed: %v", tt.spec, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseSequence(%q) = %v; want %v", tt.spec, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseSequence(%q)[%d] = %d; want %d", tt.spec, i, got[i], tt.want[i])
			}
		}
	}
}

func TestParseArgs(t *testing.T) {
	values, rejected := ParseArgs([]string{"3,1,4", "10", "6..8", "oops", "2..z"})

	want := []int{3, 1, 4, 10, 6, 7, 8}
	if len(values) != len(want) {
		t.Fatalf("Expected values %v, got %v", want, values)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("Expected value %d at %d, got %d", want[i], i, values[i])
		}
	}

	if len(rejected) != 2 || rejected[0] != "oops" || rejected[1] != "2..z" {
		t.Errorf("Expected rejected tokens [oops 2..z], got %v", rejected)
	}
}

func TestReadValuesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	content := "# sample keys\n5, 3\n8\n\nbad 7\n1..3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	values, rejected, err := ReadValuesFile(path)
	if err != nil {
		t.Fatalf("ReadValuesFile failed: %v", err)
	}

	want := []int{5, 3, 8, 7, 1, 2, 3}
	if len(values) != len(want) {
		t.Fatalf("Expected values %v, got %v", want, values)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("Expected value %d at %d, got %d", want[i], i, values[i])
		}
	}

	if len(rejected) != 1 || rejected[0] != "bad" {
		t.Errorf("Expected rejected tokens [bad], got %v", rejected)
	}
}

func TestReadValuesFileMissing(t *testing.T) {
	_, _, err := ReadValuesFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatalf("Expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected a helpful message, got: %v", err)
	}
}

func TestLoadValues(t *testing.T) {
	tree := NewAVLTree()
	session := NewSession(true)

	inserted, duplicates := LoadValues(tree, session, []int{10, 20, 10, 30}, false)
	if inserted != 3 || duplicates != 1 {
		t.Errorf("Expected 3 inserted and 1 duplicate, got %d and %d", inserted, duplicates)
	}
	if tree.Size() != 3 {
		t.Errorf("Expected tree size 3, got %d", tree.Size())
	}
	if session.Attempts() != 4 || session.Inserted() != 3 || session.Duplicates() != 1 {
		t.Errorf("Expected session 4/3/1, got %d/%d/%d",
			session.Attempts(), session.Inserted(), session.Duplicates())
	}

	// Values already in the tree from before the call count as duplicates
	inserted, duplicates = LoadValues(tree, session, []int{20, 40}, false)
	if inserted != 1 || duplicates != 1 {
		t.Errorf("Expected 1 inserted and 1 duplicate, got %d and %d", inserted, duplicates)
	}
}

func TestLoadValuesNilSession(t *testing.T) {
	tree := NewAVLTree()

	inserted, duplicates := LoadValues(tree, nil, []int{1, 2, 3}, false)
	if inserted != 3 || duplicates != 0 {
		t.Errorf("Expected 3 inserted and no duplicates, got %d and %d", inserted, duplicates)
	}
}
