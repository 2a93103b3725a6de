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

// AVLNode is a single stored key plus its subtree bookkeeping. Height is 1
// for a leaf and 1+max(children) otherwise; nil subtrees count as height 0.
type AVLNode struct {
	Key    int
	Height int
	Left   *AVLNode
	Right  *AVLNode
}

// AVLTree is a self-balancing binary search tree over int keys. Keys are
// unique; inserting a key that is already present is a silent no-op. The
// tree is not safe for concurrent use; callers own serialization.
type AVLTree struct {
	Root *AVLNode
}

func NewAVLTree() *AVLTree {
	return &AVLTree{Root: nil}
}

func (tree *AVLTree) getHeight(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return node.Height
}

func (tree *AVLTree) updateHeight(node *AVLNode) {
	node.Height = max(tree.getHeight(node.Left), tree.getHeight(node.Right)) + 1
}

func (tree *AVLTree) getBalanceFactor(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return tree.getHeight(node.Left) - tree.getHeight(node.Right)
}

func (tree *AVLTree) rotateLeft(node *AVLNode) *AVLNode {
	if node == nil || node.Right == nil {
		return node // Nothing to rotate or invalid input
	}

	// Identify the pivot node (new root)
	pivot := node.Right

	// Perform the rotation
	node.Right = pivot.Left
	pivot.Left = node

	// Update heights, node first: it is now a child of the pivot
	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

func (tree *AVLTree) rotateRight(node *AVLNode) *AVLNode {
	if node == nil || node.Left == nil {
		return node // Nothing to rotate or invalid input
	}

	// Identify the pivot node (new root)
	pivot := node.Left

	// Perform the rotation
	node.Left = pivot.Right
	pivot.Right = node

	// Update heights, node first: it is now a child of the pivot
	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

// Insert adds key to the tree, rebalancing on the way back up. Duplicate
// keys are ignored.
func (tree *AVLTree) Insert(key int) {
	tree.Root = tree.insertRecursive(tree.Root, key)
}

func (tree *AVLTree) insertRecursive(node *AVLNode, key int) *AVLNode {
	if node == nil {
		return &AVLNode{Key: key, Height: 1}
	}

	if key < node.Key {
		node.Left = tree.insertRecursive(node.Left, key)
	} else if key > node.Key {
		node.Right = tree.insertRecursive(node.Right, key)
	} else {
		// Duplicate key: nothing below changed, so no ancestor needs a
		// height update or a rotation check.
		return node
	}

	tree.updateHeight(node)

	balanceFactor := tree.getBalanceFactor(node)
	if balanceFactor > 1 {
		if key < node.Left.Key {
			return tree.rotateRight(node)
		}
		// Left-Right case
		node.Left = tree.rotateLeft(node.Left)
		return tree.rotateRight(node)
	} else if balanceFactor < -1 {
		if key > node.Right.Key {
			return tree.rotateLeft(node)
		}
		// Right-Left case
		node.Right = tree.rotateRight(node.Right)
		return tree.rotateLeft(node)
	}

	return node
}

// GenerateEdges materializes the tree shape as (parent key, child key)
// pairs in pre-order: the left edge and subtree before the right ones.
// An empty tree yields no edges. Each call walks the current tree; the
// result is a snapshot, not a live view.
func (tree *AVLTree) GenerateEdges() [][2]int {
	var edges [][2]int
	collectEdges(tree.Root, &edges)
	return edges
}

func collectEdges(node *AVLNode, edges *[][2]int) {
	if node == nil {
		return
	}
	if node.Left != nil {
		*edges = append(*edges, [2]int{node.Key, node.Left.Key})
		collectEdges(node.Left, edges)
	}
	if node.Right != nil {
		*edges = append(*edges, [2]int{node.Key, node.Right.Key})
		collectEdges(node.Right, edges)
	}
}

// InOrderKeys returns all keys in ascending order.
func (tree *AVLTree) InOrderKeys() []int {
	var keys []int
	inOrderKeys(tree.Root, &keys)
	return keys
}

func inOrderKeys(node *AVLNode, keys *[]int) {
	if node == nil {
		return
	}
	inOrderKeys(node.Left, keys)
	*keys = append(*keys, node.Key)
	inOrderKeys(node.Right, keys)
}

// Height reports the height of the whole tree; 0 when empty.
func (tree *AVLTree) Height() int {
	return tree.getHeight(tree.Root)
}

// Size reports the number of stored keys.
func (tree *AVLTree) Size() int {
	return countNodes(tree.Root)
}

func countNodes(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return 1 + countNodes(node.Left) + countNodes(node.Right)
}
