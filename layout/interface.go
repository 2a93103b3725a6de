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

// Package layout turns tree snapshots (root key + edge list) into drawable
// text: terminal views and export formats for external graph tooling.
package layout

import "strconv"

// Strategy defines the interface for different tree rendering strategies
type Strategy interface {
	Name() string
	Description() string
	Fits(g *Graph, opts Options) bool // Whether the result stays usable under opts
	Render(g *Graph, opts Options) (string, error)
}

// Options tune rendering without changing what is drawn.
type Options struct {
	Width       int  // Target width in cells; 0 means unbounded
	ASCII       bool // Plain ASCII connectors instead of box drawing
	ShowHeights bool // Annotate every key with its subtree height
}

// labelFor formats one node for on-screen strategies.
func labelFor(node *gnode, opts Options) string {
	if opts.ShowHeights {
		return strconv.Itoa(node.key) + "(" + strconv.Itoa(node.height) + ")"
	}
	return strconv.Itoa(node.key)
}

// maxLabelWidth is the widest label the graph will produce under opts.
func maxLabelWidth(node *gnode, opts Options) int {
	if node == nil {
		return 0
	}
	width := len(labelFor(node, opts))
	return max(width, max(maxLabelWidth(node.left, opts), maxLabelWidth(node.right, opts)))
}
