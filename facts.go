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
	"math/rand"
)

var facts = []string{
	"Adelson-Velsky and Landis published the height-balanced tree in 1962",
	"A balance factor is the left subtree height minus the right",
	"Every balance factor in a balanced tree stays within -1, 0 and +1",
	"One insertion needs at most two rotations to restore balance",
	"Rotations change the shape but never the sorted key order",
	"A tree of n keys never grows taller than 1.44 log2(n+2)",
	"The sparsest balanced tree of height h holds a Fibonacci count of keys",
	"An in-order walk of a search tree visits keys in sorted order",
	"A pre-order walk lists every parent before its children",
	"A zig-zag insertion path needs a double rotation, \na straight path a single one",
	"Empty subtrees count as height zero, a lone leaf as height one",
	"Re-inserting a key the tree already holds changes nothing",
	"Every subtree of a balanced tree is itself balanced",
	"Rebalancing happens on the way back up from the inserted leaf",
	"2^h - 1 keys inserted in the right order make a perfect tree",
	"The root of a balanced tree splits the keys roughly in half",
	"Height-balanced trees predate red-black trees by a decade",
	"Lookups cost O(log n) because the height is kept logarithmic",
	"Sorted input is the worst case for a plain search tree \nand a non-event for a balanced one",
	"Half of the nodes in a perfect binary tree are leaves",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	randomIndex := rand.Intn(len(list))
	return list[randomIndex]
}

func GetRandomFact() string {
	return pickRandomString(facts)
}
