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

// ProfileStrategy draws the tree sideways, one node per line, with the
// right subtree above its parent and the left subtree below. Tall trees
// stay readable because the line length grows with depth, not size.
type ProfileStrategy struct{}

// NewProfileStrategy creates a profile renderer
func NewProfileStrategy() *ProfileStrategy {
	return &ProfileStrategy{}
}

// Name returns the strategy name
func (s *ProfileStrategy) Name() string {
	return "profile"
}

// Description returns what this strategy renders
func (s *ProfileStrategy) Description() string {
	return "Sideways view, one key per line"
}

// Fits always reports true; the profile view is the narrow fallback
func (s *ProfileStrategy) Fits(g *Graph, opts Options) bool {
	return g != nil && g.root != nil
}

// Render walks the tree right-to-left so the output reads top-down
func (s *ProfileStrategy) Render(g *Graph, opts Options) (string, error) {
	if g == nil || g.root == nil {
		return "", fmt.Errorf("profile: nothing to draw")
	}

	link := profileGlyphs{upper: "┌── ", lower: "└── ", bar: "│   ", gap: "    "}
	if opts.ASCII {
		link = profileGlyphs{upper: "/-- ", lower: "\\-- ", bar: "|   ", gap: "    "}
	}

	var sb strings.Builder
	s.write(&sb, g.root, "", "", "", link, opts)
	return strings.TrimRight(sb.String(), "\n"), nil
}

type profileGlyphs struct {
	upper string
	lower string
	bar   string
	gap   string
}

// write emits the right subtree, then the node, then the left subtree.
// The three prefixes carry the indentation for the lines above the
// node, the node line itself, and the lines below it.
func (s *ProfileStrategy) write(sb *strings.Builder, node *gnode, above, self, below string, link profileGlyphs, opts Options) {
	if node.right != nil {
		s.write(sb, node.right, above+link.gap, above+link.upper, above+link.bar, link, opts)
	}
	sb.WriteString(self)
	sb.WriteString(labelFor(node, opts))
	sb.WriteByte('\n')
	if node.left != nil {
		s.write(sb, node.left, below+link.bar, below+link.lower, below+link.gap, link, opts)
	}
}
