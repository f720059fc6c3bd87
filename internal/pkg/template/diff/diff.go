// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package diff provides functionalities to compare two YAML documents.
package diff

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Tree represents a difference tree between two YAML documents.
type Tree struct {
	root diffNode
}

// IsEmpty returns true if the two documents are the same.
func (t Tree) IsEmpty() bool {
	return t.root == nil
}

type diffNode interface {
	key() string
	newYAML() *yaml.Node
	oldYAML() *yaml.Node
	children() []diffNode
}

// keyNode is a diff node under a mapping key, or the root of the tree.
type keyNode struct {
	keyValue   string
	childNodes []diffNode // Ordered list of non-empty children.

	oldV *yaml.Node // Only populated for a leaf node (i.e. that has no child node).
	newV *yaml.Node // Only populated for a leaf node (i.e. that has no child node).
}

func (n *keyNode) key() string {
	return n.keyValue
}

func (n *keyNode) newYAML() *yaml.Node {
	return n.newV
}

func (n *keyNode) oldYAML() *yaml.Node {
	return n.oldV
}

func (n *keyNode) children() []diffNode {
	return n.childNodes
}

// seqItemNode is a diff node of an item in a sequence.
type seqItemNode struct {
	keyNode
}

// From is the YAML document that another YAML document is compared against.
type From []byte

// Parse constructs a diff tree that represent the differences of a YAML document against the From document.
func (from From) Parse(to []byte) (Tree, error) {
	var toNode, fromNode yaml.Node
	if err := yaml.Unmarshal(to, &toNode); err != nil {
		return Tree{}, fmt.Errorf("unmarshal current template: %w", err)
	}
	if err := yaml.Unmarshal(from, &fromNode); err != nil {
		return Tree{}, fmt.Errorf("unmarshal old template: %w", err)
	}
	return Nodes(&fromNode, &toNode)
}

// Nodes constructs a diff tree that represent the differences of the to node against the from node.
func Nodes(from, to *yaml.Node) (Tree, error) {
	root, err := parse(from, to, "")
	if err != nil {
		return Tree{}, err
	}
	return Tree{root: root}, nil
}

func parse(from, to *yaml.Node, key string) (diffNode, error) {
	from, to = unalias(from), unalias(to)
	// Handle base cases.
	if to == nil || from == nil || to.Kind != from.Kind {
		if to == nil && from == nil {
			return nil, nil
		}
		return &keyNode{
			keyValue: key,
			newV:     to,
			oldV:     from,
		}, nil
	}
	if isYAMLLeaf(to) && isYAMLLeaf(from) {
		if to.Value == from.Value && to.ShortTag() == from.ShortTag() {
			return nil, nil
		}
		return &keyNode{
			keyValue: key,
			newV:     to,
			oldV:     from,
		}, nil
	}

	var children []diffNode
	var err error
	switch {
	case to.Kind == yaml.SequenceNode && from.Kind == yaml.SequenceNode:
		children, err = parseSequence(from, to)
	case to.Kind == yaml.DocumentNode && from.Kind == yaml.DocumentNode:
		return parse(first(from), first(to), key)
	case to.Kind == yaml.MappingNode && from.Kind == yaml.MappingNode:
		children, err = parseMap(from, to)
	default:
		return nil, fmt.Errorf("unknown combination of node kinds: %v, %v", to.Kind, from.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("parse YAML content with key %s: %w", key, err)
	}
	if len(children) == 0 {
		return nil, nil
	}
	return &keyNode{
		keyValue:   key,
		childNodes: children,
	}, nil
}

func isYAMLLeaf(node *yaml.Node) bool {
	return len(node.Content) == 0
}

func first(node *yaml.Node) *yaml.Node {
	if len(node.Content) == 0 {
		return nil
	}
	return node.Content[0]
}

func unalias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func parseSequence(fromNode, toNode *yaml.Node) ([]diffNode, error) {
	fromSeq, toSeq := fromNode.Content, toNode.Content
	type cachedEntry struct {
		node diffNode
		err  error
	}
	cachedDiff := make(map[string]cachedEntry)
	lcsIndices := longestCommonSubsequence(fromSeq, toSeq, func(idxFrom, idxTo int) bool {
		diff, err := parse(fromSeq[idxFrom], toSeq[idxTo], "")
		if diff != nil || err != nil { // NOTE: cache the diff only if a modification could have happened at this position.
			cachedDiff[cacheKey(idxFrom, idxTo)] = cachedEntry{
				node: diff,
				err:  err,
			}
		}
		return err == nil && diff == nil
	})
	var children []diffNode
	nextKey, inspector := seqChildKeyFunc(), newLCSStateMachine(fromSeq, toSeq, lcsIndices)
	for action := inspector.action(); action != actionDone; action = inspector.action() {
		switch action {
		case actionMatch:
			nextKey()
		case actionMod:
			diff := cachedDiff[cacheKey(inspector.fromIndex(), inspector.toIndex())]
			if diff.err != nil {
				return nil, diff.err
			}
			node := diff.node.(*keyNode)
			node.keyValue = nextKey()
			children = append(children, &seqItemNode{*node})
		case actionDel:
			children = append(children, &seqItemNode{
				keyNode{
					keyValue: nextKey(),
					oldV:     inspector.fromItem(),
				},
			})
		case actionInsert:
			children = append(children, &seqItemNode{
				keyNode{
					keyValue: nextKey(),
					newV:     inspector.toItem(),
				},
			})
		}
		inspector.next()
	}
	return children, nil
}

// parseMap compares two mapping nodes. Children are ordered by the keys of the "to" node,
// followed by the keys only present in the "from" node.
func parseMap(from, to *yaml.Node) ([]diffNode, error) {
	fromValues := mapValues(from)
	toValues := mapValues(to)
	var children []diffNode
	for _, k := range unionOfKeys(to, from) {
		kDiff, err := parse(fromValues[k], toValues[k], k)
		if err != nil {
			return nil, err
		}
		if kDiff != nil {
			children = append(children, kDiff)
		}
	}
	return children, nil
}

func mapValues(node *yaml.Node) map[string]*yaml.Node {
	values := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		values[node.Content[i].Value] = node.Content[i+1]
	}
	return values
}

func unionOfKeys(nodes ...*yaml.Node) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, node := range nodes {
		for i := 0; i+1 < len(node.Content); i += 2 {
			k := node.Content[i].Value
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

func cacheKey(inFrom, inTo int) string {
	return fmt.Sprintf("%d,%d", inFrom, inTo)
}

func seqChildKeyFunc() func() string {
	idx := -1
	return func() string {
		idx++
		return strconv.Itoa(idx)
	}
}
