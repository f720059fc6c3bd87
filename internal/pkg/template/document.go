// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package template loads AWS CloudFormation templates written in JSON or YAML into
// an ordered node tree and writes them back in their original format.
package template

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Supported template file extensions.
const (
	FormatJSON = ".json"
	FormatYML  = ".yml"
	FormatYAML = ".yaml"
)

// MarkerKey is the top-level key that identifies a document as a CloudFormation template.
const MarkerKey = "AWSTemplateFormatVersion"

const defaultFileMode os.FileMode = 0644

// Document is a template file loaded in memory.
//
// Intrinsic functions are always held in their long form, "Ref" and "Fn::*" mappings,
// regardless of whether the file on disk uses the YAML short form tags.
type Document struct {
	Filename string // Path to the file.
	Basename string // File name without its extension.
	Format   string // One of FormatJSON, FormatYML or FormatYAML.

	// Root is the top-level node of the document, nil if the file is empty.
	Root *yaml.Node

	loaded *yaml.Node // Snapshot of Root right after Load.
	size   int64
	mode   os.FileMode
	dirty  bool
}

// New returns a Document for filename.
// It returns an ErrUnsupportedExtension if the file is not a JSON or YAML file.
func New(filename string) (*Document, error) {
	ext := filepath.Ext(filename)
	if !IsSupportedExtension(ext) {
		return nil, &ErrUnsupportedExtension{Filename: filename}
	}
	return &Document{
		Filename: filename,
		Basename: strings.TrimSuffix(filepath.Base(filename), ext),
		Format:   ext,
	}, nil
}

// IsSupportedExtension returns true if ext is the extension of a JSON or YAML file.
func IsSupportedExtension(ext string) bool {
	return ext == FormatJSON || ext == FormatYML || ext == FormatYAML
}

// HasSupportedExtension returns true if the path ends with a JSON or YAML file extension.
func HasSupportedExtension(path string) bool {
	return IsSupportedExtension(filepath.Ext(path))
}

// Load reads and parses the file. Any previous modification is discarded.
func (d *Document) Load(fs afero.Fs) error {
	d.Root, d.loaded, d.dirty = nil, nil, false

	info, err := fs.Stat(d.Filename)
	if err != nil {
		return fmt.Errorf("stat %s: %w", d.Filename, err)
	}
	raw, err := afero.ReadFile(fs, d.Filename)
	if err != nil {
		return fmt.Errorf("read %s: %w", d.Filename, err)
	}
	d.size, d.mode = info.Size(), info.Mode().Perm()
	root, err := d.decode(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", d.Filename, err)
	}
	d.Root = root
	d.loaded = clone(root)
	return nil
}

func (d *Document) decode(raw []byte) (*yaml.Node, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if d.Format == FormatJSON {
		return decodeJSON(raw)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	var next yaml.Node
	if err := dec.Decode(&next); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errMultipleDocuments
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	// Keep comments that sit above the first key.
	if doc.HeadComment != "" && root.HeadComment == "" {
		root.HeadComment = doc.HeadComment
	}
	return ToLongForm(root), nil
}

// IsCloudFormationTemplate returns true if the document is a mapping with the MarkerKey.
func (d *Document) IsCloudFormationTemplate() bool {
	_, ok := mappingValue(d.Root, MarkerKey)
	return ok
}

// MarkDirty flags the document as modified so that it gets written.
func (d *Document) MarkDirty() {
	d.dirty = true
}

// Dirty returns true if the document was modified since it was loaded.
func (d *Document) Dirty() bool {
	return d.dirty
}

// Loaded returns a copy of the document as it was right after Load.
func (d *Document) Loaded() *yaml.Node {
	return clone(d.loaded)
}

// Size returns the size in bytes of the file when it was loaded.
func (d *Document) Size() int64 {
	return d.size
}

// Marshal serializes the document in its original format.
func (d *Document) Marshal() ([]byte, error) {
	if d.Root == nil {
		return nil, errEmptyDocument
	}
	if d.Format == FormatJSON {
		return marshalJSON(d.Root)
	}
	return marshalYAML(d.Root)
}

// Write serializes the document in its original format and overwrites the file.
// Comments and formatting of JSON templates are lost.
func (d *Document) Write(fs afero.Fs) error {
	body, err := d.Marshal()
	if err != nil {
		return fmt.Errorf("marshal %s: %w", d.Filename, err)
	}
	mode := d.mode
	if mode == 0 {
		mode = defaultFileMode
	}
	if err := afero.WriteFile(fs, d.Filename, body, mode); err != nil {
		return fmt.Errorf("write %s: %w", d.Filename, err)
	}
	return nil
}

func marshalYAML(root *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ToShortForm(clone(root))); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
