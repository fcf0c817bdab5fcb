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

// Clone returns a deep copy of the tree rooted at n. Since a Node exclusively
// owns its Children (the AST is a tree, never a DAG), a structural recursive
// copy is sufficient; there is no sharing to preserve and no cycle to guard
// against.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	clone := *n
	if n.Children != nil {
		clone.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			clone.Children[i] = Clone(c)
		}
	}
	if n.Attributes != nil {
		clone.Attributes = append([]string(nil), n.Attributes...)
	}
	return &clone
}
