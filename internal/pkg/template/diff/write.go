// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"io"

	"gopkg.in/yaml.v3"
)

const (
	prefixAdd = "+"
	prefixDel = "-"
	prefixMod = "~"
)

const indentInc = 4

// Writer writes the string representation of a diff tree.
type Writer struct {
	tree   Tree
	writer io.Writer
}

// NewWriter returns a Writer that writes the diff tree to w.
func NewWriter(tree Tree, w io.Writer) *Writer {
	return &Writer{
		tree:   tree,
		writer: w,
	}
}

// Write uses the writer to write the string representation of the diff tree stemmed from the root.
func (s *Writer) Write() error {
	if s.tree.root == nil {
		_, err := s.writer.Write([]byte("No changes.\n"))
		return err
	}
	if len(s.tree.root.children()) == 0 {
		// The documents are entirely different, for example one of them is empty.
		return s.writeLeaf(s.tree.root, 0, &keyedFormatter{key: "(document)"})
	}
	for _, child := range s.tree.root.children() {
		if err := s.write(child, 0); err != nil {
			return err
		}
	}
	return nil
}

func (s *Writer) write(node diffNode, indent int) error {
	var formatter formatter
	switch node.(type) {
	case *seqItemNode:
		formatter = &seqItemFormatter{}
	default:
		formatter = &keyedFormatter{key: node.key()}
	}
	if len(node.children()) == 0 {
		return s.writeLeaf(node, indent, formatter)
	}
	content := process(formatter.formatPath(node), prefixByFn(prefixMod), indentByFn(indent))
	if _, err := s.writer.Write([]byte(content + "\n")); err != nil {
		return err
	}
	for _, child := range node.children() {
		if err := s.write(child, indent+indentInc); err != nil {
			return err
		}
	}
	return nil
}

func (s *Writer) writeLeaf(node diffNode, indent int, formatter formatter) error {
	switch {
	case node.oldYAML() != nil && node.newYAML() != nil:
		return s.writeMod(node, indent, formatter)
	case node.oldYAML() != nil:
		return s.writeDel(node, indent, formatter)
	default:
		return s.writeInsert(node, indent, formatter)
	}
}

func (s *Writer) writeMod(node diffNode, indent int, formatter formatter) error {
	if node.oldYAML().Kind != node.newYAML().Kind || node.oldYAML().Kind != yaml.ScalarNode {
		if err := s.writeDel(node, indent, formatter); err != nil {
			return err
		}
		return s.writeInsert(node, indent, formatter)
	}
	content, err := formatter.formatMod(node)
	if err != nil {
		return err
	}
	content = processMultiline(content, prefixByFn(prefixMod), indentByFn(indent))
	_, err = s.writer.Write([]byte(content + "\n"))
	return err
}

func (s *Writer) writeDel(node diffNode, indent int, formatter formatter) error {
	raw, err := formatter.formatYAML(node.oldYAML())
	if err != nil {
		return err
	}
	content := processMultiline(string(raw), prefixByFn(prefixDel), indentByFn(indent))
	_, err = s.writer.Write([]byte(content + "\n"))
	return err
}

func (s *Writer) writeInsert(node diffNode, indent int, formatter formatter) error {
	raw, err := formatter.formatYAML(node.newYAML())
	if err != nil {
		return err
	}
	content := processMultiline(string(raw), prefixByFn(prefixAdd), indentByFn(indent))
	_, err = s.writer.Write([]byte(content + "\n"))
	return err
}
