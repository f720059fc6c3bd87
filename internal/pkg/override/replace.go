// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package override provides hooks that mutate CloudFormation templates.
package override

import (
	"strings"

	"github.com/cfn-update/cfn-update/internal/pkg/template"
	"gopkg.in/yaml.v3"
)

const strTag = "!!str"

// Replace is a hook that replaces string values equal to Old with New.
// If Key is set, only the values of the mapping key Key are replaced, including the items of a sequence
// and the arguments of an intrinsic function under Key.
// Mapping keys are never replaced.
type Replace struct {
	Old string
	New string
	Key string

	replaced int
}

// NewReplace returns a Replace hook. It returns an ErrEmptyReplacement if old is empty.
func NewReplace(old, new, key string) (*Replace, error) {
	if old == "" {
		return nil, &ErrEmptyReplacement{}
	}
	return &Replace{
		Old: old,
		New: new,
		Key: key,
	}, nil
}

// Replaced returns the number of values replaced across all the templates.
func (r *Replace) Replaced() int {
	return r.replaced
}

// UpdateTemplate replaces the matching values of the document and marks it dirty if any was replaced.
func (r *Replace) UpdateTemplate(doc *template.Document) error {
	if r.Old == r.New {
		return nil
	}
	n := r.rewrite(doc.Root, r.Key == "")
	if n == 0 {
		return nil
	}
	r.replaced += n
	doc.MarkDirty()
	return nil
}

// rewrite returns the number of values replaced under node.
// inScope reports whether scalars directly under node are candidates.
func (r *Replace) rewrite(node *yaml.Node, inScope bool) int {
	if node == nil {
		return 0
	}
	switch node.Kind {
	case yaml.ScalarNode:
		if inScope && node.ShortTag() == strTag && node.Value == r.Old {
			node.Value = r.New
			return 1
		}
	case yaml.SequenceNode:
		var n int
		for _, item := range node.Content {
			n += r.rewrite(item, inScope)
		}
		return n
	case yaml.MappingNode:
		var n int
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			n += r.rewrite(node.Content[i+1], r.Key == "" || key == r.Key || inScope && isIntrinsicFunction(key))
		}
		return n
	case yaml.DocumentNode:
		var n int
		for _, child := range node.Content {
			n += r.rewrite(child, inScope)
		}
		return n
	}
	return 0
}

func isIntrinsicFunction(key string) bool {
	return key == "Ref" || strings.HasPrefix(key, "Fn::")
}
