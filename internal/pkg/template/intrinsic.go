// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	refFunc       = "Ref"
	conditionFunc = "Condition"
	getAttFunc    = "Fn::GetAtt"
	fnPrefix      = "Fn::"
)

// shortFormFuncs lists the intrinsic functions that have a YAML short form "!Name".
// Read https://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/intrinsic-function-reference.html.
var shortFormFuncs = map[string]bool{
	"And":          true,
	"Base64":       true,
	"Cidr":         true,
	"Equals":       true,
	"FindInMap":    true,
	"GetAtt":       true,
	"GetAZs":       true,
	"If":           true,
	"ImportValue":  true,
	"Join":         true,
	"Length":       true,
	"Not":          true,
	"Or":           true,
	"Select":       true,
	"Split":        true,
	"Sub":          true,
	"ToJsonString": true,
	"Transform":    true,
}

// ToLongForm rewrites every intrinsic function written with a short form tag, such as "!Ref Bucket" or
// "!GetAtt Bucket.Arn", into its long form mapping, "Ref: Bucket" or "Fn::GetAtt: [Bucket, Arn]".
// The node is modified in place and returned.
func ToLongForm(node *yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}
	for _, child := range node.Content {
		ToLongForm(child)
	}
	name, ok := shortFormName(node.Tag)
	if !ok {
		return node
	}
	value := *node
	value.Tag = ""
	value.Tag = value.ShortTag()
	value.Style &^= yaml.TaggedStyle
	value.HeadComment, value.LineComment, value.FootComment = "", "", ""
	if name == "GetAtt" && value.Kind == yaml.ScalarNode {
		value = getAttSequence(value.Value)
	}
	*node = yaml.Node{
		Kind:        yaml.MappingNode,
		Tag:         mapTag,
		Line:        node.Line,
		Column:      node.Column,
		HeadComment: node.HeadComment,
		LineComment: node.LineComment,
		FootComment: node.FootComment,
		Content: []*yaml.Node{
			scalar(strTag, longFormName(name)),
			&value,
		},
	}
	return node
}

// ToShortForm rewrites every long form intrinsic function mapping into its YAML short form tag.
// The node is modified in place and returned.
func ToShortForm(node *yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}
	for _, child := range node.Content {
		ToShortForm(child)
	}
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return node
	}
	key, value := node.Content[0], node.Content[1]
	name, ok := longFormShortName(key.Value)
	if !ok || value.Kind == yaml.AliasNode || value.Tag != "" && !strings.HasPrefix(value.Tag, "!!") {
		return node
	}
	short := *value
	if name == "GetAtt" {
		if joined, ok := getAttScalar(value); ok {
			short = *joined
		}
	}
	short.Tag = "!" + name
	short.HeadComment = joinComments(node.HeadComment, key.HeadComment)
	short.LineComment = joinComments(node.LineComment, value.LineComment)
	short.FootComment = joinComments(node.FootComment, value.FootComment)
	*node = short
	return node
}

func shortFormName(tag string) (string, bool) {
	if !strings.HasPrefix(tag, "!") || strings.HasPrefix(tag, "!!") {
		return "", false
	}
	name := strings.TrimPrefix(tag, "!")
	if name == refFunc || name == conditionFunc || shortFormFuncs[name] {
		return name, true
	}
	return "", false
}

func longFormName(short string) string {
	if short == refFunc || short == conditionFunc {
		return short
	}
	return fnPrefix + short
}

// longFormShortName returns the short form name of a long form function key.
// "Condition" is left alone as it is also a regular key of resources and outputs.
func longFormShortName(key string) (string, bool) {
	if key == refFunc {
		return refFunc, true
	}
	if !strings.HasPrefix(key, fnPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(key, fnPrefix)
	return name, shortFormFuncs[name]
}

// getAttSequence splits "Resource.Attribute" on the first dot.
func getAttSequence(value string) yaml.Node {
	parts := strings.SplitN(value, ".", 2)
	seq := yaml.Node{Kind: yaml.SequenceNode, Tag: seqTag}
	for _, part := range parts {
		seq.Content = append(seq.Content, scalar(strTag, part))
	}
	return seq
}

// getAttScalar joins a sequence of two strings into "Resource.Attribute".
func getAttScalar(value *yaml.Node) (*yaml.Node, bool) {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return nil, false
	}
	for _, part := range value.Content {
		if part.Kind != yaml.ScalarNode || part.ShortTag() != strTag {
			return nil, false
		}
	}
	return scalar(strTag, value.Content[0].Value+"."+value.Content[1].Value), true
}

func joinComments(comments ...string) string {
	var nonEmpty []string
	for _, c := range comments {
		if c != "" {
			nonEmpty = append(nonEmpty, c)
		}
	}
	return strings.Join(nonEmpty, "\n")
}
