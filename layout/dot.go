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

// nodeFillColor is the light blue used for rendered nodes
const nodeFillColor = "#81d4fa"

// DotStrategy emits Graphviz DOT text. It is an export format rather
// than an on-screen view; pipe the output through `dot -Tpng`.
type DotStrategy struct{}

// NewDotStrategy creates a DOT exporter
func NewDotStrategy() *DotStrategy {
	return &DotStrategy{}
}

// Name returns the strategy name
func (s *DotStrategy) Name() string {
	return "dot"
}

// Description returns what this strategy renders
func (s *DotStrategy) Description() string {
	return "Graphviz DOT export"
}

// Fits always reports true; DOT output has no width constraint
func (s *DotStrategy) Fits(g *Graph, opts Options) bool {
	return g != nil && g.root != nil
}

// Render writes one node statement per key and one edge statement per
// parent child pair, parents before children.
func (s *DotStrategy) Render(g *Graph, opts Options) (string, error) {
	if g == nil || g.root == nil {
		return "", fmt.Errorf("dot: nothing to draw")
	}

	var sb strings.Builder
	sb.WriteString("digraph avl {\n")
	sb.WriteString("    graph [ordering=out];\n")
	fmt.Fprintf(&sb, "    node [shape=circle, style=filled, fillcolor=%q];\n", nodeFillColor)

	writeDotNodes(&sb, g.root, opts)
	for _, edge := range g.Edges() {
		fmt.Fprintf(&sb, "    \"%d\" -> \"%d\";\n", edge[0], edge[1])
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}

func writeDotNodes(sb *strings.Builder, node *gnode, opts Options) {
	if node == nil {
		return
	}
	if opts.ShowHeights {
		fmt.Fprintf(sb, "    \"%d\" [label=\"%d\\nh=%d\"];\n", node.key, node.key, node.height)
	} else {
		fmt.Fprintf(sb, "    \"%d\";\n", node.key)
	}
	writeDotNodes(sb, node.left, opts)
	writeDotNodes(sb, node.right, opts)
}
