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

// MermaidStrategy emits a Mermaid flowchart. The output pastes straight
// into Markdown files on hosts that render Mermaid blocks.
type MermaidStrategy struct{}

// NewMermaidStrategy creates a Mermaid exporter
func NewMermaidStrategy() *MermaidStrategy {
	return &MermaidStrategy{}
}

// Name returns the strategy name
func (s *MermaidStrategy) Name() string {
	return "mermaid"
}

// Description returns what this strategy renders
func (s *MermaidStrategy) Description() string {
	return "Mermaid flowchart export"
}

// Fits always reports true; Mermaid output has no width constraint
func (s *MermaidStrategy) Fits(g *Graph, opts Options) bool {
	return g != nil && g.root != nil
}

// Render declares every node with its label, then one arrow per edge
func (s *MermaidStrategy) Render(g *Graph, opts Options) (string, error) {
	if g == nil || g.root == nil {
		return "", fmt.Errorf("mermaid: nothing to draw")
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")
	writeMermaidNodes(&sb, g.root, opts)
	for _, edge := range g.Edges() {
		fmt.Fprintf(&sb, "    %s --> %s\n", mermaidID(edge[0]), mermaidID(edge[1]))
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func writeMermaidNodes(sb *strings.Builder, node *gnode, opts Options) {
	if node == nil {
		return
	}
	label := fmt.Sprintf("%d", node.key)
	if opts.ShowHeights {
		label = fmt.Sprintf("%d (h=%d)", node.key, node.height)
	}
	fmt.Fprintf(sb, "    %s[\"%s\"]\n", mermaidID(node.key), label)
	writeMermaidNodes(sb, node.left, opts)
	writeMermaidNodes(sb, node.right, opts)
}

// mermaidID maps a key to an identifier Mermaid accepts. Negative keys
// use an m prefix because a minus sign would split the identifier.
func mermaidID(key int) string {
	if key < 0 {
		return fmt.Sprintf("m%d", -key)
	}
	return fmt.Sprintf("n%d", key)
}
