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

func TestProfileRender(t *testing.T) {
	tests := []struct {
		name  string
		root  int
		edges []Edge
		opts  Options
		want  []string
	}{
		{
			name:  "Balanced Triple",
			root:  20,
			edges: []Edge{{20, 10}, {20, 30}},
			want: []string{
				"┌── 30",
				"20",
				"└── 10",
			},
		},
		{
			name:  "Complete Seven Keys",
			root:  4,
			edges: balancedEdges,
			want: []string{
				"    ┌── 7",
				"┌── 6",
				"│   └── 5",
				"4",
				"│   ┌── 3",
				"└── 2",
				"    └── 1",
			},
		},
		{
			name:  "Single Key",
			root:  5,
			edges: nil,
			want:  []string{"5"},
		},
		{
			name:  "ASCII Connectors",
			root:  20,
			edges: []Edge{{20, 10}, {20, 30}},
			opts:  Options{ASCII: true},
			want: []string{
				"/-- 30",
				"20",
				"\\-- 10",
			},
		},
		{
			name:  "Heights Annotated",
			root:  20,
			edges: []Edge{{20, 10}, {20, 30}},
			opts:  Options{ShowHeights: true},
			want: []string{
				"┌── 30(1)",
				"20(2)",
				"└── 10(1)",
			},
		},
	}

	strategy := NewProfileStrategy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustBuildGraph(t, tt.root, tt.edges)
			got, err := strategy.Render(g, tt.opts)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			want := strings.Join(tt.want, "\n")
			if got != want {
				t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
			}
		})
	}
}

func TestProfileAlwaysFits(t *testing.T) {
	g := mustBuildGraph(t, 4, balancedEdges)

	if !NewProfileStrategy().Fits(g, Options{Width: 1}) {
		t.Errorf("Expected the profile view to fit any width")
	}
}
