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
	"fmt"
	"strings"
)

// CanopyStrategy draws the tree top-down on a character grid, with the
// root on the first row and box-drawn connectors between levels.
type CanopyStrategy struct{}

// NewCanopyStrategy creates a canopy renderer
func NewCanopyStrategy() *CanopyStrategy {
	return &CanopyStrategy{}
}

// Name returns the strategy name
func (s *CanopyStrategy) Name() string {
	return "canopy"
}

// Description returns what this strategy renders
func (s *CanopyStrategy) Description() string {
	return "Top-down branching view with box-drawn connectors"
}

// Fits reports whether every key column fits into the requested width.
// A zero or negative width means the caller does not care.
func (s *CanopyStrategy) Fits(g *Graph, opts Options) bool {
	if g == nil || g.root == nil {
		return false
	}
	if opts.Width <= 0 {
		return true
	}
	return g.Size()*s.cellWidth(g, opts) <= opts.Width
}

// Render draws the graph onto a rune grid and returns it as text
func (s *CanopyStrategy) Render(g *Graph, opts Options) (string, error) {
	if g == nil || g.root == nil {
		return "", fmt.Errorf("canopy: nothing to draw")
	}

	// Every node gets its own column, assigned in sorted key order, so
	// a node is always strictly between its left and right subtrees.
	columns := make(map[*gnode]int, g.Size())
	assignColumns(g.root, columns, new(int))

	cell := s.cellWidth(g, opts)
	width := g.Size() * cell
	rows := 2*g.Height() - 1

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	s.place(grid, g.root, 0, columns, cell, opts)

	var sb strings.Builder
	for i, row := range grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
	}
	return sb.String(), nil
}

func (s *CanopyStrategy) cellWidth(g *Graph, opts Options) int {
	return maxLabelWidth(g.root, opts) + 1
}

// assignColumns numbers the nodes left to right in traversal order
func assignColumns(node *gnode, columns map[*gnode]int, next *int) {
	if node == nil {
		return
	}
	assignColumns(node.left, columns, next)
	columns[node] = *next
	*next++
	assignColumns(node.right, columns, next)
}

func (s *CanopyStrategy) place(grid [][]rune, node *gnode, depth int, columns map[*gnode]int, cell int, opts Options) {
	horizontal, tee := '─', '┴'
	topLeft, topRight := '┌', '┐'
	upLeft, upRight := '┘', '└'
	if opts.ASCII {
		horizontal, tee = '-', '+'
		topLeft, topRight = '+', '+'
		upLeft, upRight = '+', '+'
	}

	center := columns[node]*cell + cell/2
	label := labelFor(node, opts)

	start := center - len(label)/2
	if start+len(label) > len(grid[0]) {
		start = len(grid[0]) - len(label)
	}
	if start < 0 {
		start = 0
	}
	for i, r := range label {
		grid[2*depth][start+i] = r
	}

	if node.left == nil && node.right == nil {
		return
	}

	link := grid[2*depth+1]
	if node.left != nil {
		childCenter := columns[node.left]*cell + cell/2
		link[childCenter] = topLeft
		for x := childCenter + 1; x < center; x++ {
			link[x] = horizontal
		}
		s.place(grid, node.left, depth+1, columns, cell, opts)
	}
	if node.right != nil {
		childCenter := columns[node.right]*cell + cell/2
		link[childCenter] = topRight
		for x := center + 1; x < childCenter; x++ {
			link[x] = horizontal
		}
		s.place(grid, node.right, depth+1, columns, cell, opts)
	}

	switch {
	case node.left != nil && node.right != nil:
		link[center] = tee
	case node.left != nil:
		link[center] = upLeft
	default:
		link[center] = upRight
	}
}
