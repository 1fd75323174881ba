/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tree.go
Description: Binary decision tree for word classification. Nodes live in a flat
arena slice with child indexes, and evaluation is an iterative walk from the root,
so there is no recursion during prediction and no shared mutable tree structure.
*/

package dtree

import (
	"fmt"
	"strings"

	"github.com/kleascm/akaylee-reglearn/pkg/interfaces"
)

// Node is one arena slot of a decision tree. Internal nodes route on
// Feature against Threshold (value <= Threshold goes left); leaves carry
// the predicted label.
type Node struct {
	Feature   string
	Threshold int
	Left      int // arena index, -1 for leaves
	Right     int // arena index, -1 for leaves
	Leaf      bool
	Value     bool
}

// Tree is an immutable, arena-backed binary decision tree.
type Tree struct {
	nodes []Node
	root  int
}

// Predict evaluates the tree on a feature vector. Missing features read
// as zero; classifiers are expected to be total over the feature space.
func (t *Tree) Predict(fv interfaces.FeatureVector) bool {
	idx := t.root
	for {
		node := t.nodes[idx]
		if node.Leaf {
			return node.Value
		}
		if fv[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
}

// Classifier exposes the tree as a classifier predicate.
func (t *Tree) Classifier() interfaces.Classifier {
	return t.Predict
}

// Size returns the number of nodes in the tree.
func (t *Tree) Size() int {
	return len(t.nodes)
}

// String renders the tree depth-first for inspection.
func (t *Tree) String() string {
	var sb strings.Builder
	type frame struct {
		idx   int
		depth int
	}
	stack := []frame{{idx: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := t.nodes[f.idx]
		indent := strings.Repeat("  ", f.depth)
		if node.Leaf {
			sb.WriteString(fmt.Sprintf("%sleaf=%v\n", indent, node.Value))
			continue
		}
		sb.WriteString(fmt.Sprintf("%s%s <= %d ?\n", indent, node.Feature, node.Threshold))
		stack = append(stack, frame{idx: node.Right, depth: f.depth + 1})
		stack = append(stack, frame{idx: node.Left, depth: f.depth + 1})
	}
	return sb.String()
}
