// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

// VisitFunc is called once per node during a Walk. Returning false prunes
// that node's children from the traversal (they are skipped, not visited).
type VisitFunc func(n *Node, parent *Node, depth int) bool

// Walk performs a pre-order traversal of the tree rooted at n, calling fn for
// n and then, unless fn returned false, for each child in source order.
func Walk(n *Node, fn VisitFunc) {
	walk(n, nil, 0, fn)
}

func walk(n *Node, parent *Node, depth int, fn VisitFunc) {
	if n == nil {
		return
	}
	if !fn(n, parent, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, n, depth+1, fn)
	}
}

// Find returns the first node (pre-order) for which pred returns true, or nil.
func Find(n *Node, pred func(*Node) bool) *Node {
	var found *Node
	Walk(n, func(cur *Node, _ *Node, _ int) bool {
		if found != nil {
			return false
		}
		if pred(cur) {
			found = cur
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes (including n) for which pred returns true.
func Count(n *Node, pred func(*Node) bool) int {
	count := 0
	Walk(n, func(cur *Node, _ *Node, _ int) bool {
		if pred(cur) {
			count++
		}
		return true
	})
	return count
}
