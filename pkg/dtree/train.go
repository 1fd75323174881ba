/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: train.go
Description: Entropy-based decision tree training. Recursively picks the feature
and threshold with the highest information gain, emitting nodes into the tree
arena. Feature names are visited in sorted order and thresholds ascending, so
training is fully deterministic for identical samples.
*/

package dtree

import (
	"errors"
	"math"
	"sort"

	"github.com/kleascm/akaylee-reglearn/pkg/interfaces"
)

// ErrNoSamples is returned when training is attempted on an empty set.
var ErrNoSamples = errors.New("dtree: no training samples")

// Sample pairs a feature vector with its membership label.
type Sample struct {
	Features interfaces.FeatureVector
	Label    bool
}

// Train builds a decision tree fitting the labeled samples. Splitting
// stops when a node is pure or no split has positive information gain, in
// which case the leaf takes the majority label.
func Train(samples []Sample) (*Tree, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	names := make([]string, 0, len(samples[0].Features))
	for name := range samples[0].Features {
		names = append(names, name)
	}
	sort.Strings(names)

	tree := &Tree{}
	tree.root = tree.grow(samples, names)
	return tree, nil
}

// grow emits the subtree for samples into the arena and returns its index.
func (t *Tree) grow(samples []Sample, names []string) int {
	positives := countPositives(samples)
	if positives == 0 {
		return t.emit(Node{Leaf: true, Value: false, Left: -1, Right: -1})
	}
	if positives == len(samples) {
		return t.emit(Node{Leaf: true, Value: true, Left: -1, Right: -1})
	}

	feature, threshold, left, right, ok := bestSplit(samples, names)
	if !ok {
		// No split gains: majority vote.
		return t.emit(Node{Leaf: true, Value: 2*positives >= len(samples), Left: -1, Right: -1})
	}

	leftIdx := t.grow(left, names)
	rightIdx := t.grow(right, names)
	return t.emit(Node{Feature: feature, Threshold: threshold, Left: leftIdx, Right: rightIdx})
}

// emit appends a node to the arena and returns its index.
func (t *Tree) emit(node Node) int {
	t.nodes = append(t.nodes, node)
	return len(t.nodes) - 1
}

// bestSplit finds the (feature, threshold) pair with the highest
// information gain. Returns ok=false when nothing beats zero gain.
func bestSplit(samples []Sample, names []string) (feature string, threshold int, left, right []Sample, ok bool) {
	base := entropy(countPositives(samples), len(samples))
	bestGain := 0.0

	for _, name := range names {
		for _, candidate := range thresholds(samples, name) {
			var l, r []Sample
			for _, s := range samples {
				if s.Features[name] <= candidate {
					l = append(l, s)
				} else {
					r = append(r, s)
				}
			}
			if len(l) == 0 || len(r) == 0 {
				continue
			}
			weighted := float64(len(l))/float64(len(samples))*entropy(countPositives(l), len(l)) +
				float64(len(r))/float64(len(samples))*entropy(countPositives(r), len(r))
			gain := base - weighted
			if gain > bestGain {
				bestGain = gain
				feature = name
				threshold = candidate
				left = l
				right = r
				ok = true
			}
		}
	}
	return feature, threshold, left, right, ok
}

// thresholds returns the candidate split points for a feature: every
// distinct observed value except the largest, ascending.
func thresholds(samples []Sample, name string) []int {
	seen := make(map[int]struct{})
	for _, s := range samples {
		seen[s.Features[name]] = struct{}{}
	}
	values := make([]int, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Ints(values)
	if len(values) < 2 {
		return nil
	}
	return values[:len(values)-1]
}

// entropy computes the binary entropy of positives out of total labels.
func entropy(positives, total int) float64 {
	if total == 0 || positives == 0 || positives == total {
		return 0
	}
	p := float64(positives) / float64(total)
	return -p*math.Log2(p) - (1-p)*math.Log2(1-p)
}

func countPositives(samples []Sample) int {
	n := 0
	for _, s := range samples {
		if s.Label {
			n++
		}
	}
	return n
}
