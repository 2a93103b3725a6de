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

import "fmt"

// Edge is one (parent key, child key) pair from a tree snapshot.
type Edge = [2]int

// Graph is a binary search tree shape rebuilt from its root key and edge
// list. Because the producer is a search tree, each edge self-describes its
// side: a child key below the parent key hangs left, above hangs right. The
// edge order must list a parent before that parent's own child edges, which
// a pre-order snapshot guarantees.
type Graph struct {
	root    *gnode
	rootKey int
	size    int
	edges   []Edge
}

type gnode struct {
	key    int
	height int
	left   *gnode
	right  *gnode
}

// BuildGraph validates the edge list and reconstructs the tree shape.
// A rootKey with no edges yields a single-node graph.
func BuildGraph(rootKey int, edges []Edge) (*Graph, error) {
	root := &gnode{key: rootKey}
	nodes := map[int]*gnode{rootKey: root}

	for _, edge := range edges {
		parentKey, childKey := edge[0], edge[1]
		if parentKey == childKey {
			return nil, fmt.Errorf("edge %d -> %d links a key to itself", parentKey, childKey)
		}

		parent, ok := nodes[parentKey]
		if !ok {
			return nil, fmt.Errorf("edge %d -> %d references unknown parent %d", parentKey, childKey, parentKey)
		}
		if _, seen := nodes[childKey]; seen {
			return nil, fmt.Errorf("key %d appears as a child more than once", childKey)
		}

		child := &gnode{key: childKey}
		if childKey < parentKey {
			if parent.left != nil {
				return nil, fmt.Errorf("key %d already has a left child", parentKey)
			}
			parent.left = child
		} else {
			if parent.right != nil {
				return nil, fmt.Errorf("key %d already has a right child", parentKey)
			}
			parent.right = child
		}
		nodes[childKey] = child
	}

	computeHeight(root)

	return &Graph{
		root:    root,
		rootKey: rootKey,
		size:    len(nodes),
		edges:   append([]Edge(nil), edges...),
	}, nil
}

func computeHeight(node *gnode) int {
	if node == nil {
		return 0
	}
	node.height = max(computeHeight(node.left), computeHeight(node.right)) + 1
	return node.height
}

// Size reports the number of keys in the graph.
func (g *Graph) Size() int {
	return g.size
}

// Height reports the rebuilt tree's height.
func (g *Graph) Height() int {
	if g.root == nil {
		return 0
	}
	return g.root.height
}

// RootKey returns the key the graph was built around.
func (g *Graph) RootKey() int {
	return g.rootKey
}

// Edges returns the snapshot the graph was built from, in original order.
func (g *Graph) Edges() []Edge {
	return g.edges
}
