// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package override

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cfn-update/cfn-update/internal/pkg/template"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const jsonPointerSeparator = "/"

// Supported patch operations.
const (
	opAdd     = "add"
	opRemove  = "remove"
	opReplace = "replace"
)

// Patch is a hook that applies overrides configured as JSON Patches,
// as defined in https://www.rfc-editor.org/rfc/rfc6902, to every template.
type Patch struct {
	filePath string
	patches  []yamlPatch
}

// NewPatch reads the YAML patch document at filePath.
// It returns an error if the document is not a non-empty list of "add", "remove" or "replace" operations,
// or if a path is not a JSON pointer.
func NewPatch(filePath string, fs afero.Fs) (*Patch, error) {
	patches, err := unmarshalPatches(filePath, fs)
	if err != nil {
		return nil, err
	}
	if len(patches) == 0 {
		return nil, fmt.Errorf("YAML patch document at %q does not contain any operations", filePath)
	}
	for i, patch := range patches {
		switch patch.Operation {
		case opAdd, opRemove, opReplace:
		default:
			return nil, fmt.Errorf("unsupported operation %q at index %d: supported operations are %q, %q, and %q", patch.Operation, i, opAdd, opRemove, opReplace)
		}
		if patch.Path != "" && !strings.HasPrefix(patch.Path, jsonPointerSeparator) {
			return nil, fmt.Errorf("invalid path %q at index %d: a path must be empty or start with %q", patch.Path, i, jsonPointerSeparator)
		}
	}
	return &Patch{
		filePath: filePath,
		patches:  patches,
	}, nil
}

// Operations returns the number of patch operations.
func (p *Patch) Operations() int {
	return len(p.patches)
}

// UpdateTemplate applies each patch operation in order to the document and marks it dirty.
func (p *Patch) UpdateTemplate(doc *template.Document) error {
	root := &yaml.Node{
		Kind: yaml.DocumentNode,
	}
	if doc.Root != nil {
		root.Content = []*yaml.Node{doc.Root}
	}
	for i := range p.patches {
		patch := p.patches[i]
		var err error
		switch patch.Operation {
		case opAdd:
			err = patch.applyAdd(root)
		case opRemove:
			err = patch.applyRemove(root)
		case opReplace:
			err = patch.applyReplace(root)
		}
		if err != nil {
			return fmt.Errorf("unable to apply the %q patch at index %d: %w", patch.Operation, i, err)
		}
	}
	doc.Root = root.Content[0]
	doc.MarkDirty()
	return nil
}

func unmarshalPatches(path string, fs afero.Fs) ([]yamlPatch, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read file at %q: %w", path, err)
	}

	var patches []yamlPatch
	if err := yaml.Unmarshal(content, &patches); err != nil {
		return nil, fmt.Errorf("file at %q does not conform to the YAML patch document schema: %w", path, err)
	}
	return patches, nil
}

type yamlPatch struct {
	Operation string `yaml:"op"`

	// Path is in JSON Pointer syntax: https://www.rfc-editor.org/rfc/rfc6901
	Path  string    `yaml:"path"`
	Value yaml.Node `yaml:"value"`
}

// value returns a copy of the patch value with intrinsic functions in their long form.
// Each template gets its own copy as the same patch applies to many templates.
func (p *yamlPatch) value() *yaml.Node {
	return template.ToLongForm(template.Clone(&p.Value))
}

func (p *yamlPatch) applyAdd(root *yaml.Node) error {
	if p.Value.IsZero() {
		return fmt.Errorf("value required")
	}

	pointer := p.pointer()
	parent, err := findNodeWithPointer(root, pointer.parent(), nil)
	if err != nil {
		return err
	}

	switch parent.Kind {
	case yaml.DocumentNode:
		parent.Content = []*yaml.Node{p.value()}
	case yaml.MappingNode:
		i, err := findInMap(parent, pointer.finalKey(), pointer.parent())
		if err == nil {
			// The key is in the map so its value is replaced.
			parent.Content[i+1] = p.value()
			return nil
		}
		parent.Content = append(parent.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: pointer.finalKey(),
		}, p.value())
	case yaml.SequenceNode:
		if pointer.finalKey() == "-" {
			parent.Content = append(parent.Content, p.value())
			return nil
		}

		idx, err := idxOrError(pointer.finalKey(), len(parent.Content), pointer.parent())
		if err != nil {
			return err
		}
		parent.Content = append(parent.Content[:idx], append([]*yaml.Node{p.value()}, parent.Content[idx:]...)...)
	default:
		return &errInvalidNodeKind{
			pointer: pointer.parent(),
			kind:    parent.Kind,
		}
	}
	return nil
}

func (p *yamlPatch) applyRemove(root *yaml.Node) error {
	pointer := p.pointer()
	parent, err := findNodeWithPointer(root, pointer.parent(), nil)
	if err != nil {
		return err
	}

	switch parent.Kind {
	case yaml.DocumentNode:
		return fmt.Errorf("the whole template cannot be removed")
	case yaml.MappingNode:
		i, err := findInMap(parent, pointer.finalKey(), pointer.parent())
		if err != nil {
			return err
		}
		parent.Content = append(parent.Content[:i], parent.Content[i+2:]...)
	case yaml.SequenceNode:
		idx, err := idxOrError(pointer.finalKey(), len(parent.Content)-1, pointer.parent())
		if err != nil {
			return err
		}
		parent.Content = append(parent.Content[:idx], parent.Content[idx+1:]...)
	default:
		return &errInvalidNodeKind{
			pointer: pointer.parent(),
			kind:    parent.Kind,
		}
	}
	return nil
}

func (p *yamlPatch) applyReplace(root *yaml.Node) error {
	if p.Value.IsZero() {
		return fmt.Errorf("value required")
	}

	node, err := findNodeWithPointer(root, p.pointer(), nil)
	if err != nil {
		return err
	}
	if node.Kind == yaml.DocumentNode {
		node.Content = []*yaml.Node{p.value()}
		return nil
	}
	*node = *p.value()
	return nil
}

type pointer []string

// parent returns a pointer to the parent of p.
func (p pointer) parent() pointer {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

func (p pointer) finalKey() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

func (p yamlPatch) pointer() pointer {
	split := strings.Split(p.Path, jsonPointerSeparator)
	for i := range split {
		// Read https://www.rfc-editor.org/rfc/rfc6901#section-4
		split[i] = strings.ReplaceAll(split[i], "~1", "/")
		split[i] = strings.ReplaceAll(split[i], "~0", "~")
	}
	return split
}

// findInMap returns the index of the _key_ node in a mapping node's Content.
// The index of the _value_ node is the returned index+1.
//
// If key is not in the map, an error is returned.
func findInMap(node *yaml.Node, key string, traversed pointer) (int, error) {
	for i := 0; i < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("key %q: %q not found in map", strings.Join(traversed, jsonPointerSeparator), key)
}

func findNodeWithPointer(node *yaml.Node, remaining, traversed pointer) (*yaml.Node, error) {
	if len(remaining) == 0 {
		return node, nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, fmt.Errorf("template is empty")
		}
		return findNodeWithPointer(node.Content[0], remaining[1:], append(traversed, remaining[0]))
	case yaml.MappingNode:
		i, err := findInMap(node, remaining[0], traversed)
		if err != nil {
			return nil, err
		}
		return findNodeWithPointer(node.Content[i+1], remaining[1:], append(traversed, remaining[0]))
	case yaml.SequenceNode:
		idx, err := idxOrError(remaining[0], len(node.Content)-1, traversed)
		if err != nil {
			return nil, err
		}
		return findNodeWithPointer(node.Content[idx], remaining[1:], append(traversed, remaining[0]))
	case yaml.AliasNode:
		return findNodeWithPointer(node.Alias, remaining, traversed)
	default:
		return nil, &errInvalidNodeKind{
			pointer: traversed,
			kind:    node.Kind,
		}
	}
}

func idxOrError(key string, maxIdx int, traversed pointer) (int, error) {
	idx, err := strconv.Atoi(key)
	switch {
	case err != nil:
		return 0, fmt.Errorf("key %q: expected index in sequence, got %q", strings.Join(traversed, jsonPointerSeparator), key)
	case idx < 0 || idx > maxIdx:
		return 0, fmt.Errorf("key %q: index %d out of bounds for sequence of length %d", strings.Join(traversed, jsonPointerSeparator), idx, maxIdx)
	}
	return idx, nil
}
