// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"gopkg.in/yaml.v3"
)

// Resource is an entry under the "Resources" section of a template.
type Resource struct {
	LogicalID string
	Type      string
	Node      *yaml.Node // Mapping node holding the resource definition.
}

// Lookup returns the node found by following keys from the root of the document.
// It returns false if any of the keys is missing.
func (d *Document) Lookup(keys ...string) (*yaml.Node, bool) {
	node := d.Root
	for _, key := range keys {
		next, ok := mappingValue(node, key)
		if !ok {
			return nil, false
		}
		node = next
	}
	return node, node != nil
}

// Description returns the value of the top-level "Description" key.
func (d *Document) Description() string {
	node, ok := d.Lookup("Description")
	if !ok || node.Kind != yaml.ScalarNode {
		return ""
	}
	return node.Value
}

// Resources returns the resources declared in the template in order of appearance.
func (d *Document) Resources() []Resource {
	node, ok := d.Lookup("Resources")
	if !ok || node.Kind != yaml.MappingNode {
		return nil
	}
	var resources []Resource
	for i := 0; i+1 < len(node.Content); i += 2 {
		r := Resource{
			LogicalID: node.Content[i].Value,
			Node:      node.Content[i+1],
		}
		if typ, ok := mappingValue(r.Node, "Type"); ok {
			r.Type = typ.Value
		}
		resources = append(resources, r)
	}
	return resources
}

// mappingValue returns the value under key if node is a mapping that contains it.
func mappingValue(node *yaml.Node, key string) (*yaml.Node, bool) {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1], true
		}
	}
	return nil, false
}

// Clone returns a deep copy of node.
func Clone(node *yaml.Node) *yaml.Node {
	return clone(node)
}

func clone(node *yaml.Node) *yaml.Node {
	return cloneWith(node, make(map[*yaml.Node]*yaml.Node))
}

// cloneWith keeps track of copied nodes so that aliases point to the copy of their anchor.
func cloneWith(node *yaml.Node, copied map[*yaml.Node]*yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}
	if c, ok := copied[node]; ok {
		return c
	}
	c := *node
	copied[node] = &c
	if node.Content != nil {
		c.Content = make([]*yaml.Node, len(node.Content))
		for i, child := range node.Content {
			c.Content[i] = cloneWith(child, copied)
		}
	}
	c.Alias = cloneWith(node.Alias, copied)
	return &c
}
