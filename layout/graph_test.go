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

import "testing"

// balancedEdges is the pre-order snapshot of the complete tree over 1..7
var balancedEdges = []Edge{{4, 2}, {2, 1}, {2, 3}, {4, 6}, {6, 5}, {6, 7}}

func mustBuildGraph(t *testing.T, rootKey int, edges []Edge) *Graph {
	t.Helper()
	g, err := BuildGraph(rootKey, edges)
	if err != nil {
		t.Fatalf("BuildGraph(%d, %v) failed: %v", rootKey, edges, err)
	}
	return g
}

func TestBuildGraphReconstructsShape(t *testing.T) {
	g := mustBuildGraph(t, 4, balancedEdges)

	if g.Size() != 7 {
		t.Errorf("Expected size 7, got %d", g.Size())
	}
	if g.Height() != 3 {
		t.Errorf("Expected height 3, got %d", g.Height())
	}
	if g.RootKey() != 4 {
		t.Errorf("Expected root key 4, got %d", g.RootKey())
	}

	// The side of each child follows from the key ordering alone
	root := g.root
	if root.left == nil || root.left.key != 2 {
		t.Fatalf("Expected left child 2 under the root")
	}
	if root.right == nil || root.right.key != 6 {
		t.Fatalf("Expected right child 6 under the root")
	}
	if root.left.left.key != 1 || root.left.right.key != 3 {
		t.Errorf("Expected children 1 and 3 under key 2, got %d and %d",
			root.left.left.key, root.left.right.key)
	}
	if root.right.left.key != 5 || root.right.right.key != 7 {
		t.Errorf("Expected children 5 and 7 under key 6, got %d and %d",
			root.right.left.key, root.right.right.key)
	}

	if root.height != 3 || root.left.height != 2 || root.left.left.height != 1 {
		t.Errorf("Expected recomputed heights 3/2/1 down the left spine, got %d/%d/%d",
			root.height, root.left.height, root.left.left.height)
	}
}

func TestBuildGraphSingleKey(t *testing.T) {
	g := mustBuildGraph(t, 9, nil)

	if g.Size() != 1 {
		t.Errorf("Expected size 1, got %d", g.Size())
	}
	if g.Height() != 1 {
		t.Errorf("Expected height 1, got %d", g.Height())
	}
	if len(g.Edges()) != 0 {
		t.Errorf("Expected no edges, got %v", g.Edges())
	}
}

func TestBuildGraphRejectsBadEdges(t *testing.T) {
	tests := []struct {
		name  string
		root  int
		edges []Edge
	}{
		{
			name:  "Self Edge",
			root:  4,
			edges: []Edge{{4, 4}},
		},
		{
			name:  "Child Listed Before Its Parent",
			root:  4,
			edges: []Edge{{2, 1}, {4, 2}},
		},
		{
			name:  "Key Claimed By Two Parents",
			root:  4,
			edges: []Edge{{4, 2}, {2, 1}, {4, 6}, {6, 1}},
		},
		{
			name:  "Left Slot Taken Twice",
			root:  4,
			edges: []Edge{{4, 2}, {4, 3}},
		},
		{
			name:  "Right Slot Taken Twice",
			root:  4,
			edges: []Edge{{4, 6}, {4, 7}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildGraph(tt.root, tt.edges); err == nil {
				t.Errorf("Expected an error for edges %v", tt.edges)
			}
		})
	}
}

func TestGraphEdgesRoundTrip(t *testing.T) {
	g := mustBuildGraph(t, 4, balancedEdges)

	got := g.Edges()
	if len(got) != len(balancedEdges) {
		t.Fatalf("Expected %d edges back, got %d", len(balancedEdges), len(got))
	}
	for i, edge := range balancedEdges {
		if got[i] != edge {
			t.Errorf("Edge %d: expected %v, got %v", i, edge, got[i])
		}
	}
}
